package alat

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

// POST /alat
func (s *Service) Create(ctx context.Context, in CreateToolRequest) (inventory.Tool, error) {
	if err := validateCreate(in); err != nil {
		return inventory.Tool{}, err
	}
	t := inventory.Tool{
		Name:     strings.TrimSpace(in.Name),
		Good:     *in.Good,
		Damaged:  *in.Damaged,
		Acquired: in.Acquired,
		Lab:      inventory.Lab(in.Lab),
		Location: strings.TrimSpace(in.Location),
	}
	if err := s.store.Insert(ctx, s.db, &t); err != nil {
		return inventory.Tool{}, err
	}
	return t, nil
}

// GET /alat/:id
func (s *Service) Get(ctx context.Context, id int64) (inventory.Tool, error) {
	return s.store.Get(ctx, s.db, id)
}

// All returns the unfiltered collection in id order.
func (s *Service) All(ctx context.Context) ([]inventory.Tool, error) {
	return s.store.List(ctx, s.db)
}

// GET /alat
func (s *Service) List(ctx context.Context, q filter.ToolQuery) ([]inventory.Tool, error) {
	if q.Lab != "" && q.Lab != inventory.LabAll && !q.Lab.Valid() {
		return nil, inventory.ErrInvalid("lab must be Biologi, Fisika, Kimia or Semua")
	}
	all, err := s.store.List(ctx, s.db)
	if err != nil {
		return nil, err
	}
	return filter.Tools(all, q), nil
}

// PUT /alat/:id
func (s *Service) Update(ctx context.Context, id int64, in UpdateToolRequest) (inventory.Tool, error) {
	if err := validateUpdate(in); err != nil {
		return inventory.Tool{}, err
	}
	if in.Name != nil {
		v := strings.TrimSpace(*in.Name)
		in.Name = &v
	}
	if in.Location != nil {
		v := strings.TrimSpace(*in.Location)
		in.Location = &v
	}

	var out inventory.Tool
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
		return inventory.Tool{}, err
	}
	return out, nil
}

// DELETE /alat/:id. Loans naming the tool are kept.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return db.RunInTx(ctx, s.db, nil, func(ctx context.Context, tx db.DBTX) error {
		return ledger.DeleteItem(ctx, ledger.NewSQL(tx, s.db.Dialect), inventory.KindTool, id)
	})
}

// ---------- validation ----------

func validateCreate(in CreateToolRequest) error {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return inventory.ErrInvalid("nama required")
	case in.Good == nil || *in.Good < 0:
		return inventory.ErrInvalid("baik must be >= 0")
	case in.Damaged == nil || *in.Damaged < 0:
		return inventory.ErrInvalid("rusak must be >= 0")
	case !inventory.ValidDate(in.Acquired):
		return inventory.ErrInvalid("tanggal must be YYYY-MM-DD")
	case !inventory.Lab(in.Lab).Valid():
		return inventory.ErrInvalid("lab must be Biologi, Fisika or Kimia")
	case strings.TrimSpace(in.Location) == "":
		return inventory.ErrInvalid("lokasi required")
	}
	return nil
}

func validateUpdate(in UpdateToolRequest) error {
	switch {
	case in.Name != nil && strings.TrimSpace(*in.Name) == "":
		return inventory.ErrInvalid("nama must not be empty")
	case in.Good != nil && *in.Good < 0:
		return inventory.ErrInvalid("baik must be >= 0")
	case in.Damaged != nil && *in.Damaged < 0:
		return inventory.ErrInvalid("rusak must be >= 0")
	case in.Acquired != nil && !inventory.ValidDate(*in.Acquired):
		return inventory.ErrInvalid("tanggal must be YYYY-MM-DD")
	case in.Lab != nil && !inventory.Lab(*in.Lab).Valid():
		return inventory.ErrInvalid("lab must be Biologi, Fisika or Kimia")
	case in.Location != nil && strings.TrimSpace(*in.Location) == "":
		return inventory.ErrInvalid("lokasi must not be empty")
	}
	return nil
}
