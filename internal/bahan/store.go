package bahan

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"inventaris-lab-backend/internal/inventory"
	"inventaris-lab-backend/internal/platform/db"
)

type Store struct{}

func NewStore() *Store { return &Store{} }

func (s *Store) Insert(ctx context.Context, q db.DBTX, m *inventory.Material) error {
	const stmt = `
INSERT INTO bahan (nama, simbol, jumlah, satuan, is_expired, tanggal, lab, lokasi)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := q.ExecContext(ctx, stmt,
		m.Name, inventory.SymbolToNull(m.Symbol), m.Quantity, m.Unit, m.Expired, m.Acquired, m.Lab, m.Location)
	if err != nil {
		return fmt.Errorf("insert bahan: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert bahan: %w", err)
	}
	m.ID = id
	return nil
}

func (s *Store) Get(ctx context.Context, q db.DBTX, id int64) (inventory.Material, error) {
	m, err := inventory.ScanMaterial(q.QueryRowContext(ctx,
		`SELECT `+inventory.MaterialColumns+` FROM bahan WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return inventory.Material{}, inventory.ErrNotFound("bahan not found")
	}
	if err != nil {
		return inventory.Material{}, fmt.Errorf("get bahan: %w", err)
	}
	return m, nil
}

func (s *Store) List(ctx context.Context, q db.DBTX) ([]inventory.Material, error) {
	rows, err := q.QueryContext(ctx, `SELECT `+inventory.MaterialColumns+` FROM bahan ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list bahan: %w", err)
	}
	defer rows.Close()

	out := []inventory.Material{}
	for rows.Next() {
		m, err := inventory.ScanMaterial(rows)
		if err != nil {
			return nil, fmt.Errorf("list bahan: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list bahan: %w", err)
	}
	return out, nil
}

func (s *Store) Update(ctx context.Context, q db.DBTX, id int64, in UpdateMaterialRequest) error {
	sets := []string{}
	args := []any{}
	if in.Name != nil {
		sets = append(sets, "nama = ?")
		args = append(args, *in.Name)
	}
	if in.Symbol != nil {
		sets = append(sets, "simbol = ?")
		args = append(args, inventory.SymbolToNull(*in.Symbol))
	}
	if in.Quantity != nil {
		sets = append(sets, "jumlah = ?")
		args = append(args, *in.Quantity)
	}
	if in.Unit != nil {
		sets = append(sets, "satuan = ?")
		args = append(args, *in.Unit)
	}
	if in.Expired != nil {
		sets = append(sets, "is_expired = ?")
		args = append(args, *in.Expired)
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
	stmt := fmt.Sprintf(`UPDATE bahan SET %s WHERE id = ?`, strings.Join(sets, ", "))

	res, err := q.ExecContext(ctx, stmt, args...)
	if err != nil {
		return fmt.Errorf("update bahan: %w", err)
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update bahan: %w", err)
	}
	if aff == 0 {
		return inventory.ErrNotFound("bahan not found")
	}
	return nil
}
