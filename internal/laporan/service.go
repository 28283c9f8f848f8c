// Package laporan serves the dashboard figures and the per-lab reports.
package laporan

import (
	"context"

	"inventaris-lab-backend/internal/inventory"
	"inventaris-lab-backend/internal/inventory/ledger"
	"inventaris-lab-backend/internal/inventory/report"
	"inventaris-lab-backend/internal/platform/db"
)

type Service struct {
	db *db.Conn
}

func NewService(conn *db.Conn) *Service {
	return &Service{db: conn}
}

// snapshot reads the three collections in one read-only transaction so the
// figures agree with each other.
func (s *Service) snapshot(ctx context.Context) (*ledger.State, error) {
	var st *ledger.State
	err := db.ReadOnly(ctx, s.db, func(ctx context.Context, tx db.DBTX) error {
		var err error
		st, err = ledger.NewSQL(tx, s.db.Dialect).LoadState(ctx)
		return err
	})
	return st, err
}

// GET /dashboard
func (s *Service) Dashboard(ctx context.Context) (report.Dashboard, error) {
	st, err := s.snapshot(ctx)
	if err != nil {
		return report.Dashboard{}, err
	}
	return report.BuildDashboard(st.Tools, st.Materials, st.Loans), nil
}

// GET /laporan
func (s *Service) All(ctx context.Context) ([]report.Lab, error) {
	st, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return report.ByLab(st.Tools, st.Materials, st.Loans), nil
}

// GET /laporan/:lab
func (s *Service) ForLab(ctx context.Context, lab inventory.Lab) (report.Lab, error) {
	if !lab.Valid() {
		return report.Lab{}, inventory.ErrInvalid("lab must be Biologi, Fisika or Kimia")
	}
	st, err := s.snapshot(ctx)
	if err != nil {
		return report.Lab{}, err
	}
	return report.ForLab(lab, st.Tools, st.Materials, st.Loans), nil
}
