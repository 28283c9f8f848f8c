package db

import (
	"context"
	"database/sql"
)

type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// RunInTx runs fn in a transaction. A nil return commits, anything else
// (including a panic) rolls back.
func RunInTx(ctx context.Context, conn *Conn, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := conn.BeginTx(ctx, opts)
	if err != nil {
		return err
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(ctx, tx); err != nil {
		return err
	}
	return tx.Commit()
}

// ReadOnly runs fn in a read-only transaction where the driver supports it.
func ReadOnly(ctx context.Context, conn *Conn, fn func(ctx context.Context, tx DBTX) error) error {
	var opts *sql.TxOptions
	if conn.Dialect == DialectMySQL {
		opts = &sql.TxOptions{ReadOnly: true}
	}
	return RunInTx(ctx, conn, opts, fn)
}
