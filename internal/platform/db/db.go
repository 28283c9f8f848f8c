package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

// Dialect selects the SQL flavour of the backing database.
type Dialect string

const (
	DialectMySQL  Dialect = "mysql"
	DialectSQLite Dialect = "sqlite"
)

type DatabaseConfig struct {
	Driver   string `yaml:"driver"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	Path     string `yaml:"path"` // sqlite only
}

// Conn is a pool plus the dialect the stores need for locking clauses.
type Conn struct {
	*sql.DB
	Dialect Dialect
}

// ForUpdate returns the row lock suffix for SELECTs inside a transaction.
// SQLite serialises writers on its own and has no such clause.
func (d Dialect) ForUpdate() string {
	if d == DialectMySQL {
		return " FOR UPDATE"
	}
	return ""
}

func Connect(ctx context.Context, c DatabaseConfig) (*Conn, error) {
	switch Dialect(c.Driver) {
	case DialectMySQL, "":
		return connectMySQL(ctx, c)
	case DialectSQLite:
		return OpenSQLite(ctx, c.Path)
	default:
		return nil, fmt.Errorf("unknown database driver %q", c.Driver)
	}
}

func connectMySQL(ctx context.Context, c DatabaseConfig) (*Conn, error) {
	mc := mysql.NewConfig()
	mc.User = c.Username
	mc.Passwd = c.Password
	mc.Net = "tcp"
	mc.Addr = fmt.Sprintf("%s:%d", c.Host, c.Port)
	mc.DBName = c.DBName
	mc.Loc = time.UTC
	mc.Timeout = 3 * time.Second
	mc.ReadTimeout = 5 * time.Second
	mc.WriteTimeout = 5 * time.Second
	// RowsAffected must count matched rows, otherwise an UPDATE that
	// writes identical values looks like a missing record.
	mc.ClientFoundRows = true
	// DATE columns are scanned as YYYY-MM-DD strings.
	mc.ParseTime = false

	conn, err := sql.Open(string(DialectMySQL), mc.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping mysql: %w", err)
	}

	conn.SetMaxOpenConns(20)
	conn.SetMaxIdleConns(10)
	conn.SetConnMaxLifetime(30 * time.Minute)
	conn.SetConnMaxIdleTime(5 * time.Minute)

	return &Conn{DB: conn, Dialect: DialectMySQL}, nil
}

// OpenSQLite opens a single-connection SQLite pool. ":memory:" is valid and
// stays alive as long as the returned Conn is open.
func OpenSQLite(ctx context.Context, path string) (*Conn, error) {
	if path == "" {
		path = ":memory:"
	}
	conn, err := sql.Open(string(DialectSQLite), path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)
	conn.SetConnMaxIdleTime(0)

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return &Conn{DB: conn, Dialect: DialectSQLite}, nil
}
