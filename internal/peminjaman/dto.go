package peminjaman

import (
	"inventaris-lab-backend/internal/inventory"
	"inventaris-lab-backend/internal/inventory/ledger"
)

// ===== Request DTOs =====

// CreateLoanRequest records a borrow. jenis defaults to Alat.
type CreateLoanRequest struct {
	Borrower string `json:"peminjam"`
	Kind     string `json:"jenis"`
	ItemName string `json:"namaItem"`
	Quantity *int64 `json:"jumlah"`
	LoanDate string `json:"tanggalPinjam"`
}

// MarkReturnedRequest is the only update a loan accepts.
type MarkReturnedRequest struct {
	ReturnDate *string `json:"tanggalKembali"`
}

// ===== Response DTOs =====

// CreateLoanResponse is the stored loan plus the stock change it caused.
type CreateLoanResponse struct {
	inventory.Loan
	Stock ledger.Adjustment `json:"stok"`
}
