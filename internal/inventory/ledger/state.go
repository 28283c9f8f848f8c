package ledger

import (
	"context"

	"inventaris-lab-backend/internal/inventory"
)

// State is an explicit in-memory copy of the three collections. It is what
// the report endpoints aggregate over and what the seed loader fills; it
// also satisfies Collections so the ledger can run on it directly.
// A State is not safe for concurrent use.
type State struct {
	Tools     []inventory.Tool
	Materials []inventory.Material
	Loans     []inventory.Loan
}

var _ Collections = (*State)(nil)

// Clone returns a deep copy, so callers can keep the previous state around.
func (s *State) Clone() *State {
	out := &State{
		Tools:     append([]inventory.Tool(nil), s.Tools...),
		Materials: append([]inventory.Material(nil), s.Materials...),
		Loans:     make([]inventory.Loan, len(s.Loans)),
	}
	for i, l := range s.Loans {
		if l.ReturnDate != nil {
			d := *l.ReturnDate
			l.ReturnDate = &d
		}
		out.Loans[i] = l
	}
	return out
}

// Apply runs op against a copy of s and returns the copy. On error the copy
// is discarded and s is returned untouched, which gives the in-memory state
// the same all-or-nothing behaviour as a transaction.
func (s *State) Apply(ctx context.Context, op func(ctx context.Context, c Collections) error) (*State, error) {
	next := s.Clone()
	if err := op(ctx, next); err != nil {
		return s, err
	}
	return next, nil
}

func (s *State) FindTool(_ context.Context, name string) (*inventory.Tool, error) {
	idx := -1
	for i := range s.Tools {
		if s.Tools[i].Name == name && (idx < 0 || s.Tools[i].ID < s.Tools[idx].ID) {
			idx = i
		}
	}
	if idx < 0 {
		return nil, nil
	}
	t := s.Tools[idx]
	return &t, nil
}

func (s *State) SetToolGood(_ context.Context, id, good int64) error {
	for i := range s.Tools {
		if s.Tools[i].ID == id {
			s.Tools[i].Good = good
			return nil
		}
	}
	return inventory.ErrNotFound("alat not found")
}

func (s *State) FindMaterial(_ context.Context, name string) (*inventory.Material, error) {
	idx := -1
	for i := range s.Materials {
		if s.Materials[i].Name == name && (idx < 0 || s.Materials[i].ID < s.Materials[idx].ID) {
			idx = i
		}
	}
	if idx < 0 {
		return nil, nil
	}
	m := s.Materials[idx]
	return &m, nil
}

func (s *State) SetMaterialQuantity(_ context.Context, id, qty int64) error {
	for i := range s.Materials {
		if s.Materials[i].ID == id {
			s.Materials[i].Quantity = qty
			return nil
		}
	}
	return inventory.ErrNotFound("bahan not found")
}

// InsertLoan appends l, assigning the next id when l.ID is zero.
func (s *State) InsertLoan(_ context.Context, l *inventory.Loan) error {
	if l.ID == 0 {
		var last int64
		for _, x := range s.Loans {
			if x.ID > last {
				last = x.ID
			}
		}
		l.ID = last + 1
	}
	s.Loans = append(s.Loans, *l)
	return nil
}

func (s *State) GetLoan(_ context.Context, id int64) (*inventory.Loan, error) {
	for _, l := range s.Loans {
		if l.ID == id {
			return &l, nil
		}
	}
	return nil, nil
}

func (s *State) SetLoanReturnDate(_ context.Context, id int64, date string) error {
	for i := range s.Loans {
		if s.Loans[i].ID == id {
			d := date
			s.Loans[i].ReturnDate = &d
			return nil
		}
	}
	return inventory.ErrNotFound("peminjaman not found")
}

func (s *State) RemoveLoan(_ context.Context, id int64) (bool, error) {
	for i := range s.Loans {
		if s.Loans[i].ID == id {
			s.Loans = append(s.Loans[:i], s.Loans[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *State) RemoveTool(_ context.Context, id int64) (bool, error) {
	for i := range s.Tools {
		if s.Tools[i].ID == id {
			s.Tools = append(s.Tools[:i], s.Tools[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *State) RemoveMaterial(_ context.Context, id int64) (bool, error) {
	for i := range s.Materials {
		if s.Materials[i].ID == id {
			s.Materials = append(s.Materials[:i], s.Materials[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
