// Package seed imports the static alat.json, bahan.json and peminjaman.json
// files into an empty database.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"inventaris-lab-backend/internal/inventory"
	"inventaris-lab-backend/internal/inventory/ledger"
	"inventaris-lab-backend/internal/platform/db"
)

const (
	ToolsFile     = "alat.json"
	MaterialsFile = "bahan.json"
	LoansFile     = "peminjaman.json"
)

// Result tells what Import did. Skipped is set when the database already
// held data.
type Result struct {
	Tools     int
	Materials int
	Loans     int
	Skipped   bool
}

// Load reads the three files from dir. A missing file is an empty
// collection; records without an id get one after the highest id present.
func Load(dir string) (*ledger.State, error) {
	st := &ledger.State{}
	if err := readJSON(filepath.Join(dir, ToolsFile), &st.Tools); err != nil {
		return nil, err
	}
	if err := readJSON(filepath.Join(dir, MaterialsFile), &st.Materials); err != nil {
		return nil, err
	}
	if err := readJSON(filepath.Join(dir, LoansFile), &st.Loans); err != nil {
		return nil, err
	}

	assignIDs(len(st.Tools), func(i int) *int64 { return &st.Tools[i].ID })
	assignIDs(len(st.Materials), func(i int) *int64 { return &st.Materials[i].ID })
	assignIDs(len(st.Loans), func(i int) *int64 { return &st.Loans[i].ID })
	return st, nil
}

func readJSON(path string, v any) error {
	buf, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(buf, v); err != nil {
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return nil
}

func assignIDs(n int, id func(int) *int64) {
	var last int64
	for i := 0; i < n; i++ {
		if v := *id(i); v > last {
			last = v
		}
	}
	for i := 0; i < n; i++ {
		if p := id(i); *p <= 0 {
			last++
			*p = last
		}
	}
}

// Import writes st as-is, keeping ids, in one transaction. Stock is not
// adjusted for the loans. Loans without a kode get a fresh ULID.
func Import(ctx context.Context, conn *db.Conn, st *ledger.State, clock inventory.Clock, ids inventory.IDGen) (Result, error) {
	var res Result
	err := db.RunInTx(ctx, conn, nil, func(ctx context.Context, tx db.DBTX) error {
		empty, err := isEmpty(ctx, tx)
		if err != nil {
			return err
		}
		if !empty {
			res.Skipped = true
			return nil
		}

		for _, t := range st.Tools {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO alat (id, nama, baik, rusak, tanggal, lab, lokasi) VALUES (?, ?, ?, ?, ?, ?, ?)`,
				t.ID, t.Name, t.Good, t.Damaged, t.Acquired, t.Lab, t.Location); err != nil {
				return fmt.Errorf("seed alat %d: %w", t.ID, err)
			}
			res.Tools++
		}
		for _, m := range st.Materials {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO bahan (id, nama, simbol, jumlah, satuan, is_expired, tanggal, lab, lokasi) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				m.ID, m.Name, inventory.SymbolToNull(m.Symbol), m.Quantity, m.Unit, m.Expired, m.Acquired, m.Lab, m.Location); err != nil {
				return fmt.Errorf("seed bahan %d: %w", m.ID, err)
			}
			res.Materials++
		}
		for _, l := range st.Loans {
			if l.Code == "" {
				l.Code = ids.NewULID(clock.Now())
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO peminjaman (id, kode, peminjam, jenis, namaItem, jumlah, tanggalPinjam, tanggalKembali) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				l.ID, l.Code, l.Borrower, l.Kind, l.ItemName, l.Quantity, l.LoanDate, inventory.ToNullString(l.ReturnDate)); err != nil {
				return fmt.Errorf("seed peminjaman %d: %w", l.ID, err)
			}
			res.Loans++
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	return res, nil
}

func isEmpty(ctx context.Context, q db.DBTX) (bool, error) {
	var n int
	err := q.QueryRowContext(ctx,
		`SELECT (SELECT COUNT(*) FROM alat) + (SELECT COUNT(*) FROM bahan) + (SELECT COUNT(*) FROM peminjaman)`).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("count rows: %w", err)
	}
	return n == 0, nil
}
