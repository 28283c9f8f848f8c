package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"inventaris-lab-backend/internal/platform/db"
)

type Account struct {
	ID           string
	PasswordHash string
	Role         string
	IsDisabled   bool
	CreatedAt    string
}

// Store holds the staff_accounts queries. created_at is filled by the
// column default on both dialects.
type Store struct{}

func NewStore() *Store { return &Store{} }

func (s *Store) GetByID(ctx context.Context, q db.DBTX, id string) (*Account, error) {
	const stmt = `
SELECT id, password_hash, role, is_disabled, created_at
FROM staff_accounts
WHERE id = ?
LIMIT 1
`
	var a Account
	var isDisabledInt int
	err := q.QueryRowContext(ctx, stmt, id).Scan(
		&a.ID,
		&a.PasswordHash,
		&a.Role,
		&isDisabledInt,
		&a.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}
	a.IsDisabled = isDisabledInt != 0
	return &a, nil
}

func (s *Store) Create(ctx context.Context, q db.DBTX, a *Account) error {
	const stmt = `
INSERT INTO staff_accounts (id, password_hash, role, is_disabled)
VALUES (?, ?, ?, 0)
`
	_, err := q.ExecContext(ctx, stmt, a.ID, a.PasswordHash, a.Role)
	return err
}

func (s *Store) Delete(ctx context.Context, q db.DBTX, id string) (int64, error) {
	res, err := q.ExecContext(ctx, `DELETE FROM staff_accounts WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("delete account: %w", err)
	}
	return res.RowsAffected()
}

func (s *Store) Count(ctx context.Context, q db.DBTX) (int, error) {
	var n int
	if err := q.QueryRowContext(ctx, `SELECT COUNT(*) FROM staff_accounts`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count accounts: %w", err)
	}
	return n, nil
}
