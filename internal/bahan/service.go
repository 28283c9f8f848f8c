package bahan

import (
	"context"
	"strings"

	"inventaris-lab-backend/internal/inventory"
	"inventaris-lab-backend/internal/inventory/filter"
	"inventaris-lab-backend/internal/inventory/ledger"
	"inventaris-lab-backend/internal/platform/db"
)

type Service struct {
	db    *db.Conn
	store *Store
}

func NewService(conn *db.Conn) *Service {
	return &Service{db: conn, store: NewStore()}
}

// POST /bahan
func (s *Service) Create(ctx context.Context, in CreateMaterialRequest) (inventory.Material, error) {
	if err := validateCreate(in); err != nil {
		return inventory.Material{}, err
	}
	m := inventory.Material{
		Name:     strings.TrimSpace(in.Name),
		Symbol:   strings.TrimSpace(in.Symbol),
		Quantity: *in.Quantity,
		Unit:     inventory.Unit(in.Unit),
		Expired:  in.Expired,
		Acquired: in.Acquired,
		Lab:      inventory.Lab(in.Lab),
		Location: strings.TrimSpace(in.Location),
	}
	if err := s.store.Insert(ctx, s.db, &m); err != nil {
		return inventory.Material{}, err
	}
	return m, nil
}

// GET /bahan/:id
func (s *Service) Get(ctx context.Context, id int64) (inventory.Material, error) {
	return s.store.Get(ctx, s.db, id)
}

func (s *Service) All(ctx context.Context) ([]inventory.Material, error) {
	return s.store.List(ctx, s.db)
}

// GET /bahan
func (s *Service) List(ctx context.Context, q filter.MaterialQuery) ([]inventory.Material, error) {
	if q.Lab != "" && q.Lab != inventory.LabAll && !q.Lab.Valid() {
		return nil, inventory.ErrInvalid("lab must be Biologi, Fisika, Kimia or Semua")
	}
	all, err := s.store.List(ctx, s.db)
	if err != nil {
		return nil, err
	}
	return filter.Materials(all, q), nil
}

// PUT /bahan/:id
func (s *Service) Update(ctx context.Context, id int64, in UpdateMaterialRequest) (inventory.Material, error) {
	if err := validateUpdate(in); err != nil {
		return inventory.Material{}, err
	}
	in.Name = trimmed(in.Name)
	in.Symbol = trimmed(in.Symbol)
	in.Location = trimmed(in.Location)

	var out inventory.Material
	err := db.RunInTx(ctx, s.db, nil, func(ctx context.Context, tx db.DBTX) error {
		if !in.empty() {
			if err := s.store.Update(ctx, tx, id, in); err != nil {
				return err
			}
		}
		var err error
		out, err = s.store.Get(ctx, tx, id)
		return err
	})
	if err != nil {
		return inventory.Material{}, err
	}
	return out, nil
}

// DELETE /bahan/:id. Loans naming the material are kept.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return db.RunInTx(ctx, s.db, nil, func(ctx context.Context, tx db.DBTX) error {
		return ledger.DeleteItem(ctx, ledger.NewSQL(tx, s.db.Dialect), inventory.KindMaterial, id)
	})
}

// ---------- validation ----------

func trimmed(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	return &v
}

func validateCreate(in CreateMaterialRequest) error {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return inventory.ErrInvalid("nama required")
	case in.Quantity == nil || *in.Quantity < 0:
		return inventory.ErrInvalid("jumlah must be >= 0")
	case !inventory.Unit(in.Unit).Valid():
		return inventory.ErrInvalid("satuan must be gram, kg, liter or ml")
	case !inventory.ValidDate(in.Acquired):
		return inventory.ErrInvalid("tanggal must be YYYY-MM-DD")
	case !inventory.Lab(in.Lab).Valid():
		return inventory.ErrInvalid("lab must be Biologi, Fisika or Kimia")
	case strings.TrimSpace(in.Location) == "":
		return inventory.ErrInvalid("lokasi required")
	}
	return nil
}

func validateUpdate(in UpdateMaterialRequest) error {
	switch {
	case in.Name != nil && strings.TrimSpace(*in.Name) == "":
		return inventory.ErrInvalid("nama must not be empty")
	case in.Quantity != nil && *in.Quantity < 0:
		return inventory.ErrInvalid("jumlah must be >= 0")
	case in.Unit != nil && !inventory.Unit(*in.Unit).Valid():
		return inventory.ErrInvalid("satuan must be gram, kg, liter or ml")
	case in.Acquired != nil && !inventory.ValidDate(*in.Acquired):
		return inventory.ErrInvalid("tanggal must be YYYY-MM-DD")
	case in.Lab != nil && !inventory.Lab(*in.Lab).Valid():
		return inventory.ErrInvalid("lab must be Biologi, Fisika or Kimia")
	case in.Location != nil && strings.TrimSpace(*in.Location) == "":
		return inventory.ErrInvalid("lokasi must not be empty")
	}
	return nil
}
