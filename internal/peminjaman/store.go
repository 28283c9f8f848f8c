package peminjaman

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"inventaris-lab-backend/internal/inventory"
	"inventaris-lab-backend/internal/platform/db"
)

// Store holds the read queries for the peminjaman table. Writes go through
// the ledger so stock stays in step.
type Store struct{}

func NewStore() *Store { return &Store{} }

func (s *Store) Get(ctx context.Context, q db.DBTX, id int64) (inventory.Loan, error) {
	return s.getOne(ctx, q, `SELECT `+inventory.LoanColumns+` FROM peminjaman WHERE id = ?`, id)
}

func (s *Store) GetByCode(ctx context.Context, q db.DBTX, code string) (inventory.Loan, error) {
	return s.getOne(ctx, q, `SELECT `+inventory.LoanColumns+` FROM peminjaman WHERE kode = ?`, code)
}

func (s *Store) getOne(ctx context.Context, q db.DBTX, stmt string, arg any) (inventory.Loan, error) {
	l, err := inventory.ScanLoan(q.QueryRowContext(ctx, stmt, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return inventory.Loan{}, inventory.ErrNotFound("peminjaman not found")
	}
	if err != nil {
		return inventory.Loan{}, fmt.Errorf("get peminjaman: %w", err)
	}
	return l, nil
}

// List returns every loan in id order.
func (s *Store) List(ctx context.Context, q db.DBTX) ([]inventory.Loan, error) {
	rows, err := q.QueryContext(ctx, `SELECT `+inventory.LoanColumns+` FROM peminjaman ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list peminjaman: %w", err)
	}
	defer rows.Close()

	out := []inventory.Loan{}
	for rows.Next() {
		l, err := inventory.ScanLoan(rows)
		if err != nil {
			return nil, fmt.Errorf("list peminjaman: %w", err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list peminjaman: %w", err)
	}
	return out, nil
}
