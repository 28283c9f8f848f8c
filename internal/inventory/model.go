// Package inventory holds the record types shared by the lab inventory
// packages together with their enumerations and the common error model.
package inventory

import "time"

type Lab string

const (
	LabBiologi Lab = "Biologi"
	LabFisika  Lab = "Fisika"
	LabKimia   Lab = "Kimia"

	// LabAll is the filter value meaning "any lab".
	LabAll Lab = "Semua"
)

// Labs lists the lab rooms in report order.
var Labs = []Lab{LabBiologi, LabFisika, LabKimia}

func (l Lab) Valid() bool {
	switch l {
	case LabBiologi, LabFisika, LabKimia:
		return true
	}
	return false
}

// Kind selects which collection a loan refers to.
type Kind string

const (
	KindTool     Kind = "Alat"
	KindMaterial Kind = "Bahan"

	KindAll Kind = "Semua"
)

func (k Kind) Valid() bool { return k == KindTool || k == KindMaterial }

type Unit string

const (
	UnitGram  Unit = "gram"
	UnitKg    Unit = "kg"
	UnitLiter Unit = "liter"
	UnitMl    Unit = "ml"
)

func (u Unit) Valid() bool {
	switch u {
	case UnitGram, UnitKg, UnitLiter, UnitMl:
		return true
	}
	return false
}

// LoanStatus is the loan state filter.
type LoanStatus string

const (
	StatusAll         LoanStatus = "Semua"
	StatusOutstanding LoanStatus = "Belum Kembali"
	StatusReturned    LoanStatus = "Sudah Kembali"
)

// ParseLoanStatus accepts the display values and the English aliases.
func ParseLoanStatus(s string) (LoanStatus, bool) {
	switch s {
	case "", string(StatusAll), "any", "all":
		return StatusAll, true
	case string(StatusOutstanding), "outstanding":
		return StatusOutstanding, true
	case string(StatusReturned), "returned":
		return StatusReturned, true
	}
	return LoanStatus(s), false
}

// Tool is a lab tool (alat). Good is the quantity available for lending.
type Tool struct {
	ID       int64  `json:"id"`
	Name     string `json:"nama"`
	Good     int64  `json:"baik"`
	Damaged  int64  `json:"rusak"`
	Acquired string `json:"tanggal"`
	Lab      Lab    `json:"lab"`
	Location string `json:"lokasi"`
}

// Material is a consumable (bahan). Quantity is the available stock.
type Material struct {
	ID       int64  `json:"id"`
	Name     string `json:"nama"`
	Symbol   string `json:"simbol"`
	Quantity int64  `json:"jumlah"`
	Unit     Unit   `json:"satuan"`
	Expired  bool   `json:"is_expired"`
	Acquired string `json:"tanggal"`
	Lab      Lab    `json:"lab"`
	Location string `json:"lokasi"`
}

// Loan refers to its item by name within the collection chosen by Kind.
// A nil ReturnDate means the loan is outstanding.
type Loan struct {
	ID         int64   `json:"id"`
	Code       string  `json:"kode"`
	Borrower   string  `json:"peminjam"`
	Kind       Kind    `json:"jenis"`
	ItemName   string  `json:"namaItem"`
	Quantity   int64   `json:"jumlah"`
	LoanDate   string  `json:"tanggalPinjam"`
	ReturnDate *string `json:"tanggalKembali"`
}

func (l Loan) Outstanding() bool { return l.ReturnDate == nil }

func (l Loan) Status() LoanStatus {
	if l.Outstanding() {
		return StatusOutstanding
	}
	return StatusReturned
}

const DateLayout = "2006-01-02"

// ValidDate reports whether s is a calendar date in YYYY-MM-DD form.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
