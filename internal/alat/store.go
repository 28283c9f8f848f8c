package alat

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"inventaris-lab-backend/internal/inventory"
	"inventaris-lab-backend/internal/platform/db"
)

// Store holds the queries for the alat table. Every method takes the
// connection or transaction to run on.
type Store struct{}

func NewStore() *Store { return &Store{} }

func (s *Store) Insert(ctx context.Context, q db.DBTX, t *inventory.Tool) error {
	const stmt = `
INSERT INTO alat (nama, baik, rusak, tanggal, lab, lokasi)
VALUES (?, ?, ?, ?, ?, ?)`
	res, err := q.ExecContext(ctx, stmt, t.Name, t.Good, t.Damaged, t.Acquired, t.Lab, t.Location)
	if err != nil {
		return fmt.Errorf("insert alat: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert alat: %w", err)
	}
	t.ID = id
	return nil
}

func (s *Store) Get(ctx context.Context, q db.DBTX, id int64) (inventory.Tool, error) {
	t, err := inventory.ScanTool(q.QueryRowContext(ctx,
		`SELECT `+inventory.ToolColumns+` FROM alat WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return inventory.Tool{}, inventory.ErrNotFound("alat not found")
	}
	if err != nil {
		return inventory.Tool{}, fmt.Errorf("get alat: %w", err)
	}
	return t, nil
}

// List returns the whole collection in id order.
func (s *Store) List(ctx context.Context, q db.DBTX) ([]inventory.Tool, error) {
	rows, err := q.QueryContext(ctx, `SELECT `+inventory.ToolColumns+` FROM alat ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list alat: %w", err)
	}
	defer rows.Close()

	out := []inventory.Tool{}
	for rows.Next() {
		t, err := inventory.ScanTool(rows)
		if err != nil {
			return nil, fmt.Errorf("list alat: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list alat: %w", err)
	}
	return out, nil
}

// Update applies the non-nil fields in one statement.
func (s *Store) Update(ctx context.Context, q db.DBTX, id int64, in UpdateToolRequest) error {
	sets := []string{}
	args := []any{}
	if in.Name != nil {
		sets = append(sets, "nama = ?")
		args = append(args, *in.Name)
	}
	if in.Good != nil {
		sets = append(sets, "baik = ?")
		args = append(args, *in.Good)
	}
	if in.Damaged != nil {
		sets = append(sets, "rusak = ?")
		args = append(args, *in.Damaged)
	}
	if in.Acquired != nil {
		sets = append(sets, "tanggal = ?")
		args = append(args, *in.Acquired)
	}
	if in.Lab != nil {
		sets = append(sets, "lab = ?")
		args = append(args, *in.Lab)
	}
	if in.Location != nil {
		sets = append(sets, "lokasi = ?")
		args = append(args, *in.Location)
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)
	stmt := fmt.Sprintf(`UPDATE alat SET %s WHERE id = ?`, strings.Join(sets, ", "))

	res, err := q.ExecContext(ctx, stmt, args...)
	if err != nil {
		return fmt.Errorf("update alat: %w", err)
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update alat: %w", err)
	}
	if aff == 0 {
		return inventory.ErrNotFound("alat not found")
	}
	return nil
}
