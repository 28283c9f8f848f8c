// Package ledger keeps item stock in step with the loan collection.
//
// Borrowing takes stock away from the first item whose name matches the
// loan, deleting an outstanding loan gives it back, and marking a loan as
// returned only records the date. The operations work against the
// Collections contract, implemented by the in-memory State and by the SQL
// store inside a transaction.
package ledger

import (
	"context"

	"inventaris-lab-backend/internal/inventory"
)

// Collections is the read/write surface the ledger needs. Find* and GetLoan
// return (nil, nil) when nothing matches. Find* pick the item with the lowest
// id among those with exactly the given name.
type Collections interface {
	FindTool(ctx context.Context, name string) (*inventory.Tool, error)
	SetToolGood(ctx context.Context, id, good int64) error
	FindMaterial(ctx context.Context, name string) (*inventory.Material, error)
	SetMaterialQuantity(ctx context.Context, id, qty int64) error

	InsertLoan(ctx context.Context, l *inventory.Loan) error
	GetLoan(ctx context.Context, id int64) (*inventory.Loan, error)
	SetLoanReturnDate(ctx context.Context, id int64, date string) error
	RemoveLoan(ctx context.Context, id int64) (bool, error)

	RemoveTool(ctx context.Context, id int64) (bool, error)
	RemoveMaterial(ctx context.Context, id int64) (bool, error)
}

// Adjustment describes the stock change caused by a ledger operation.
// Matched is false when no item carries the loan's name. Kind is the loan's
// jenis and is set even when nothing matched.
type Adjustment struct {
	Kind    inventory.Kind `json:"jenis"`
	Matched bool           `json:"matched"`
	ItemID  int64          `json:"itemId,omitempty"`
	Before  int64          `json:"before"`
	After   int64          `json:"after"`
}

// Take is the available quantity after lending qty. It never goes below zero.
func Take(available, qty int64) int64 {
	if qty >= available {
		return 0
	}
	return available - qty
}

// Give is the available quantity after qty comes back. It is not capped.
func Give(available, qty int64) int64 {
	return available + qty
}

// Borrow decrements the matching item and appends the loan. The loan is
// stored whether or not an item matched; its ReturnDate is forced to nil.
func Borrow(ctx context.Context, c Collections, l *inventory.Loan) (Adjustment, error) {
	if !l.Kind.Valid() {
		return Adjustment{}, inventory.ErrInvalid("jenis must be Alat or Bahan")
	}
	if l.Quantity <= 0 {
		return Adjustment{}, inventory.ErrInvalid("jumlah must be > 0")
	}

	adj, err := adjust(ctx, c, l.Kind, l.ItemName, func(avail int64) int64 { return Take(avail, l.Quantity) })
	if err != nil {
		return Adjustment{}, err
	}

	l.ReturnDate = nil
	if err := c.InsertLoan(ctx, l); err != nil {
		return Adjustment{}, err
	}
	adj.Kind = l.Kind
	return adj, nil
}

// MarkReturned records the return date. Stock is left alone; the borrowed
// quantity was consumed at Borrow time.
func MarkReturned(ctx context.Context, c Collections, id int64, date string) (*inventory.Loan, error) {
	if !inventory.ValidDate(date) {
		return nil, inventory.ErrInvalid("tanggalKembali must be YYYY-MM-DD")
	}
	l, err := c.GetLoan(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, inventory.ErrNotFound("peminjaman not found")
	}
	if !l.Outstanding() {
		return nil, inventory.ErrConflict("peminjaman already returned")
	}
	if err := c.SetLoanReturnDate(ctx, id, date); err != nil {
		return nil, err
	}
	d := date
	l.ReturnDate = &d
	return l, nil
}

// DeleteLoan removes the loan. An outstanding loan first gives its quantity
// back to the matching item.
func DeleteLoan(ctx context.Context, c Collections, id int64) (Adjustment, error) {
	l, err := c.GetLoan(ctx, id)
	if err != nil {
		return Adjustment{}, err
	}
	if l == nil {
		return Adjustment{}, inventory.ErrNotFound("peminjaman not found")
	}

	var adj Adjustment
	if l.Outstanding() {
		adj, err = adjust(ctx, c, l.Kind, l.ItemName, func(avail int64) int64 { return Give(avail, l.Quantity) })
		if err != nil {
			return Adjustment{}, err
		}
	}

	ok, err := c.RemoveLoan(ctx, id)
	if err != nil {
		return Adjustment{}, err
	}
	if !ok {
		return Adjustment{}, inventory.ErrNotFound("peminjaman not found")
	}
	adj.Kind = l.Kind
	return adj, nil
}

// DeleteItem removes a tool or material. Loans naming it are kept as they are.
func DeleteItem(ctx context.Context, c Collections, kind inventory.Kind, id int64) error {
	var (
		ok  bool
		err error
	)
	switch kind {
	case inventory.KindTool:
		ok, err = c.RemoveTool(ctx, id)
	case inventory.KindMaterial:
		ok, err = c.RemoveMaterial(ctx, id)
	default:
		return inventory.ErrInvalid("jenis must be Alat or Bahan")
	}
	if err != nil {
		return err
	}
	if !ok {
		return inventory.ErrNotFound(string(kind) + " not found")
	}
	return nil
}

func adjust(ctx context.Context, c Collections, kind inventory.Kind, name string, f func(int64) int64) (Adjustment, error) {
	switch kind {
	case inventory.KindTool:
		t, err := c.FindTool(ctx, name)
		if err != nil || t == nil {
			return Adjustment{}, err
		}
		after := f(t.Good)
		if err := c.SetToolGood(ctx, t.ID, after); err != nil {
			return Adjustment{}, err
		}
		return Adjustment{Matched: true, ItemID: t.ID, Before: t.Good, After: after}, nil
	case inventory.KindMaterial:
		m, err := c.FindMaterial(ctx, name)
		if err != nil || m == nil {
			return Adjustment{}, err
		}
		after := f(m.Quantity)
		if err := c.SetMaterialQuantity(ctx, m.ID, after); err != nil {
			return Adjustment{}, err
		}
		return Adjustment{Matched: true, ItemID: m.ID, Before: m.Quantity, After: after}, nil
	}
	return Adjustment{}, nil
}
