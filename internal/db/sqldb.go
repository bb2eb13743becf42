package db

import (
	"context"
	"database/sql"
)

// Rows is the subset of *sql.Rows the repositories read from.
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (Rows, error)
}

type Conn interface {
	Querier
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type sqlConn struct {
	db *sql.DB
}

// NewSQLDB wraps a pool so every repository can share it.
func NewSQLDB(db *sql.DB) Conn {
	return &sqlConn{db: db}
}

func (s *sqlConn) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return s.db.ExecContext(ctx, query, args...)
}

// *sql.Rows satisfies Rows directly.
func (s *sqlConn) QueryContext(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
