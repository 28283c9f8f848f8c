// Package export renders inventory collections as XLSX workbooks.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"inventaris-lab-backend/internal/inventory"
)

const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const (
	LabelExpired    = "Expired"
	LabelNotExpired = "Not Expired"
)

// Sheet is one worksheet: a header row followed by one row per record.
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]any
}

func ExpiryLabel(expired bool) string {
	if expired {
		return LabelExpired
	}
	return LabelNotExpired
}

func ToolSheet(name string, tools []inventory.Tool) Sheet {
	s := Sheet{
		Name:   name,
		Header: []string{"id", "nama", "baik", "rusak", "tanggal", "lab", "lokasi"},
	}
	for _, t := range tools {
		s.Rows = append(s.Rows, []any{t.ID, t.Name, t.Good, t.Damaged, t.Acquired, string(t.Lab), t.Location})
	}
	return s
}

func MaterialSheet(name string, materials []inventory.Material) Sheet {
	s := Sheet{
		Name:   name,
		Header: []string{"id", "nama", "simbol", "jumlah", "satuan", "is_expired", "tanggal", "lab", "lokasi"},
	}
	for _, m := range materials {
		s.Rows = append(s.Rows, []any{
			m.ID, m.Name, m.Symbol, m.Quantity, string(m.Unit), ExpiryLabel(m.Expired), m.Acquired, string(m.Lab), m.Location,
		})
	}
	return s
}

func LoanSheet(name string, loans []inventory.Loan) Sheet {
	s := Sheet{
		Name:   name,
		Header: []string{"id", "kode", "peminjam", "jenis", "namaItem", "jumlah", "tanggalPinjam", "tanggalKembali", "status"},
	}
	for _, l := range loans {
		returned := ""
		if l.ReturnDate != nil {
			returned = *l.ReturnDate
		}
		s.Rows = append(s.Rows, []any{
			l.ID, l.Code, l.Borrower, string(l.Kind), l.ItemName, l.Quantity, l.LoanDate, returned, string(l.Status()),
		})
	}
	return s
}

// Workbook writes the sheets in order. The first sheet replaces the default
// one, so a single-sheet workbook has exactly one worksheet.
func Workbook(sheets ...Sheet) (*bytes.Buffer, error) {
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook needs at least one sheet")
	}
	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			if s.Name != "Sheet1" {
				if err := f.SetSheetName("Sheet1", s.Name); err != nil {
					return nil, fmt.Errorf("sheet %s: %w", s.Name, err)
				}
			}
		} else if _, err := f.NewSheet(s.Name); err != nil {
			return nil, fmt.Errorf("sheet %s: %w", s.Name, err)
		}

		header := make([]any, len(s.Header))
		for j, h := range s.Header {
			header[j] = h
		}
		if err := f.SetSheetRow(s.Name, "A1", &header); err != nil {
			return nil, fmt.Errorf("sheet %s header: %w", s.Name, err)
		}
		for r, row := range s.Rows {
			cell, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return nil, err
			}
			row := row
			if err := f.SetSheetRow(s.Name, cell, &row); err != nil {
				return nil, fmt.Errorf("sheet %s row %d: %w", s.Name, r+2, err)
			}
		}
	}
	f.SetActiveSheet(0)

	return f.WriteToBuffer()
}
