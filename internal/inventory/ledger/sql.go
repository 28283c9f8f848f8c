package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"inventaris-lab-backend/internal/inventory"
	"inventaris-lab-backend/internal/platform/db"
)

// SQL implements Collections on top of an open transaction. Item lookups
// lock the matched row on MySQL so concurrent borrows of the same item
// serialise.
type SQL struct {
	tx      db.DBTX
	dialect db.Dialect
}

var _ Collections = (*SQL)(nil)

func NewSQL(tx db.DBTX, dialect db.Dialect) *SQL {
	return &SQL{tx: tx, dialect: dialect}
}

func (s *SQL) FindTool(ctx context.Context, name string) (*inventory.Tool, error) {
	q := `SELECT ` + inventory.ToolColumns + ` FROM alat WHERE nama = ? ORDER BY id LIMIT 1` + s.dialect.ForUpdate()
	t, err := inventory.ScanTool(s.tx.QueryRowContext(ctx, q, name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find alat: %w", err)
	}
	return &t, nil
}

func (s *SQL) SetToolGood(ctx context.Context, id, good int64) error {
	return s.execOne(ctx, "alat", `UPDATE alat SET baik = ? WHERE id = ?`, good, id)
}

func (s *SQL) FindMaterial(ctx context.Context, name string) (*inventory.Material, error) {
	q := `SELECT ` + inventory.MaterialColumns + ` FROM bahan WHERE nama = ? ORDER BY id LIMIT 1` + s.dialect.ForUpdate()
	m, err := inventory.ScanMaterial(s.tx.QueryRowContext(ctx, q, name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find bahan: %w", err)
	}
	return &m, nil
}

func (s *SQL) SetMaterialQuantity(ctx context.Context, id, qty int64) error {
	return s.execOne(ctx, "bahan", `UPDATE bahan SET jumlah = ? WHERE id = ?`, qty, id)
}

func (s *SQL) InsertLoan(ctx context.Context, l *inventory.Loan) error {
	const q = `
INSERT INTO peminjaman (kode, peminjam, jenis, namaItem, jumlah, tanggalPinjam, tanggalKembali)
VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := s.tx.ExecContext(ctx, q,
		l.Code, l.Borrower, l.Kind, l.ItemName, l.Quantity, l.LoanDate, inventory.ToNullString(l.ReturnDate))
	if err != nil {
		return fmt.Errorf("insert peminjaman: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert peminjaman: %w", err)
	}
	l.ID = id
	return nil
}

func (s *SQL) GetLoan(ctx context.Context, id int64) (*inventory.Loan, error) {
	q := `SELECT ` + inventory.LoanColumns + ` FROM peminjaman WHERE id = ?` + s.dialect.ForUpdate()
	l, err := inventory.ScanLoan(s.tx.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get peminjaman: %w", err)
	}
	return &l, nil
}

func (s *SQL) SetLoanReturnDate(ctx context.Context, id int64, date string) error {
	return s.execOne(ctx, "peminjaman", `UPDATE peminjaman SET tanggalKembali = ? WHERE id = ?`, date, id)
}

func (s *SQL) RemoveLoan(ctx context.Context, id int64) (bool, error) {
	return s.remove(ctx, `DELETE FROM peminjaman WHERE id = ?`, id)
}

func (s *SQL) RemoveTool(ctx context.Context, id int64) (bool, error) {
	return s.remove(ctx, `DELETE FROM alat WHERE id = ?`, id)
}

func (s *SQL) RemoveMaterial(ctx context.Context, id int64) (bool, error) {
	return s.remove(ctx, `DELETE FROM bahan WHERE id = ?`, id)
}

// LoadState reads all three collections in id order.
func (s *SQL) LoadState(ctx context.Context) (*State, error) {
	st := &State{}

	rows, err := s.tx.QueryContext(ctx, `SELECT `+inventory.ToolColumns+` FROM alat ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("load alat: %w", err)
	}
	for rows.Next() {
		t, err := inventory.ScanTool(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("load alat: %w", err)
		}
		st.Tools = append(st.Tools, t)
	}
	if err := closeRows(rows); err != nil {
		return nil, fmt.Errorf("load alat: %w", err)
	}

	rows, err = s.tx.QueryContext(ctx, `SELECT `+inventory.MaterialColumns+` FROM bahan ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("load bahan: %w", err)
	}
	for rows.Next() {
		m, err := inventory.ScanMaterial(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("load bahan: %w", err)
		}
		st.Materials = append(st.Materials, m)
	}
	if err := closeRows(rows); err != nil {
		return nil, fmt.Errorf("load bahan: %w", err)
	}

	rows, err = s.tx.QueryContext(ctx, `SELECT `+inventory.LoanColumns+` FROM peminjaman ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("load peminjaman: %w", err)
	}
	for rows.Next() {
		l, err := inventory.ScanLoan(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("load peminjaman: %w", err)
		}
		st.Loans = append(st.Loans, l)
	}
	if err := closeRows(rows); err != nil {
		return nil, fmt.Errorf("load peminjaman: %w", err)
	}

	return st, nil
}

func (s *SQL) execOne(ctx context.Context, table, q string, args ...any) error {
	res, err := s.tx.ExecContext(ctx, q, args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update %s: %w", table, err)
	}
	if n == 0 {
		return inventory.ErrNotFound(table + " not found")
	}
	return nil
}

func (s *SQL) remove(ctx context.Context, q string, id int64) (bool, error) {
	res, err := s.tx.ExecContext(ctx, q, id)
	if err != nil {
		return false, fmt.Errorf("delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete: %w", err)
	}
	return n > 0, nil
}

func closeRows(rows *sql.Rows) error {
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	return rows.Close()
}
