package bahan

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"inventaris-lab-backend/internal/inventory"
)

var errRowsAffected = errors.New("rows affected unsupported")

type brokenResult struct{}

func (brokenResult) LastInsertId() (int64, error) { return 0, nil }
func (brokenResult) RowsAffected() (int64, error) { return 0, errRowsAffected }

// execOnly answers every ExecContext with brokenResult.
type execOnly struct{}

func (execOnly) ExecContext(context.Context, string, ...any) (sql.Result, error) {
	return brokenResult{}, nil
}
func (execOnly) QueryContext(context.Context, string, ...any) (*sql.Rows, error) {
	return nil, errors.New("not used")
}
func (execOnly) QueryRowContext(context.Context, string, ...any) *sql.Row { return nil }

func TestStoreUpdateReportsRowsAffectedError(t *testing.T) {
	err := NewStore().Update(context.Background(), execOnly{}, 1, UpdateMaterialRequest{Name: str("Pipet")})
	if !errors.Is(err, errRowsAffected) {
		t.Fatalf("got=%v want wrapped %v", err, errRowsAffected)
	}
	if inventory.IsCode(err, inventory.CodeNotFound) {
		t.Fatalf("driver error reported as not found: %v", err)
	}
}
