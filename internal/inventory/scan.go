package inventory

import "database/sql"

// Column lists in the order the Scan* helpers expect.
const (
	ToolColumns     = "id, nama, baik, rusak, tanggal, lab, lokasi"
	MaterialColumns = "id, nama, simbol, jumlah, satuan, is_expired, tanggal, lab, lokasi"
	LoanColumns     = "id, kode, peminjam, jenis, namaItem, jumlah, tanggalPinjam, tanggalKembali"
)

// Scanner is satisfied by *sql.Row and *sql.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

func ScanTool(sc Scanner) (Tool, error) {
	var t Tool
	err := sc.Scan(&t.ID, &t.Name, &t.Good, &t.Damaged, &t.Acquired, &t.Lab, &t.Location)
	return t, err
}

func ScanMaterial(sc Scanner) (Material, error) {
	var (
		m      Material
		symbol sql.NullString
	)
	err := sc.Scan(&m.ID, &m.Name, &symbol, &m.Quantity, &m.Unit, &m.Expired, &m.Acquired, &m.Lab, &m.Location)
	m.Symbol = symbol.String
	return m, err
}

func ScanLoan(sc Scanner) (Loan, error) {
	var (
		l        Loan
		returned sql.NullString
	)
	err := sc.Scan(&l.ID, &l.Code, &l.Borrower, &l.Kind, &l.ItemName, &l.Quantity, &l.LoanDate, &returned)
	l.ReturnDate = NullToPtr(returned)
	return l, err
}

func NullToPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}

func ToNullString(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}

// SymbolToNull stores an empty symbol as NULL.
func SymbolToNull(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
