// Package testutil provides an in-memory SQLite database with the schema
// applied, plus small fixture helpers for store and handler tests.
package testutil

import (
	"context"
	"testing"

	"inventaris-lab-backend/internal/platform/db"
)

func DB(tb testing.TB) *db.Conn {
	tb.Helper()
	ctx := context.Background()
	conn, err := db.OpenSQLite(ctx, ":memory:")
	if err != nil {
		tb.Fatalf("open sqlite: %v", err)
	}
	tb.Cleanup(func() { _ = conn.Close() })
	if err := db.ApplySchema(ctx, conn); err != nil {
		tb.Fatalf("apply schema: %v", err)
	}
	return conn
}

// Exec runs a fixture statement and fails the test on error.
func Exec(tb testing.TB, conn *db.Conn, q string, args ...any) int64 {
	tb.Helper()
	res, err := conn.ExecContext(context.Background(), q, args...)
	if err != nil {
		tb.Fatalf("exec %q: %v", q, err)
	}
	id, _ := res.LastInsertId()
	return id
}

func InsertTool(tb testing.TB, conn *db.Conn, name string, good, damaged int64, lab, location string) int64 {
	tb.Helper()
	return Exec(tb, conn,
		`INSERT INTO alat (nama, baik, rusak, tanggal, lab, lokasi) VALUES (?, ?, ?, '2024-01-01', ?, ?)`,
		name, good, damaged, lab, location)
}

func InsertMaterial(tb testing.TB, conn *db.Conn, name, symbol string, qty int64, unit string, expired bool, lab, location string) int64 {
	tb.Helper()
	return Exec(tb, conn,
		`INSERT INTO bahan (nama, simbol, jumlah, satuan, is_expired, tanggal, lab, lokasi) VALUES (?, ?, ?, ?, ?, '2024-01-01', ?, ?)`,
		name, symbol, qty, unit, expired, lab, location)
}

// ToolGood reads the current good count of a tool.
func ToolGood(tb testing.TB, conn *db.Conn, id int64) int64 {
	tb.Helper()
	var n int64
	if err := conn.QueryRowContext(context.Background(), `SELECT baik FROM alat WHERE id = ?`, id).Scan(&n); err != nil {
		tb.Fatalf("read baik: %v", err)
	}
	return n
}

// MaterialQuantity reads the current jumlah of a material.
func MaterialQuantity(tb testing.TB, conn *db.Conn, id int64) int64 {
	tb.Helper()
	var n int64
	if err := conn.QueryRowContext(context.Background(), `SELECT jumlah FROM bahan WHERE id = ?`, id).Scan(&n); err != nil {
		tb.Fatalf("read jumlah: %v", err)
	}
	return n
}

// Count returns the number of rows in table.
func Count(tb testing.TB, conn *db.Conn, table string) int {
	tb.Helper()
	var n int
	if err := conn.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM `+table).Scan(&n); err != nil {
		tb.Fatalf("count %s: %v", table, err)
	}
	return n
}
