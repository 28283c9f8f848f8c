package db

import (
	"regexp"
	"testing"
)

// Item names are matched with '=' by the ledger; MySQL must compare them
// byte for byte like SQLite and the Go side do.
func TestMySQLNameColumnsAreBinary(t *testing.T) {
	buf, err := schemaFS.ReadFile("schema/mysql.sql")
	if err != nil {
		t.Fatal(err)
	}
	cases := map[string]string{
		"alat.nama":           `CREATE TABLE IF NOT EXISTS alat \([^;]*?\n\s*nama\s+VARCHAR\(255\) COLLATE utf8mb4_bin NOT NULL`,
		"bahan.nama":          `CREATE TABLE IF NOT EXISTS bahan \([^;]*?\n\s*nama\s+VARCHAR\(255\) COLLATE utf8mb4_bin NOT NULL`,
		"peminjaman.namaItem": `CREATE TABLE IF NOT EXISTS peminjaman \([^;]*?\n\s*namaItem\s+VARCHAR\(255\) COLLATE utf8mb4_bin NOT NULL`,
	}
	for col, pattern := range cases {
		if !regexp.MustCompile(pattern).Match(buf) {
			t.Fatalf("%s must use COLLATE utf8mb4_bin", col)
		}
	}
}

func TestSplitStatements(t *testing.T) {
	got := splitStatements("CREATE TABLE a (x INT);\n\n CREATE TABLE b (y INT);\n")
	if len(got) != 2 || got[1] != "CREATE TABLE b (y INT)" {
		t.Fatalf("statements: %q", got)
	}
}
