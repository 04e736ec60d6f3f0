// Package pool is the connection layer to PostgreSQL.
//
// Stores depend on the interfaces here instead of pgxpool, so that
// they can be built on a pool, a single connection or a transaction.
package pool

import (
	"context"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// Queryer sends SQL.
//
// It is the common subset of *pgxpool.Pool, *pgxpool.Conn and pgx.Tx.
type Queryer interface {
	// Exec sends SQL without result rows.
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)

	// Query sends SQL with result rows.
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)

	// QueryRow sends SQL with just a single result row.
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// Tx is a transaction. pgx.Tx implements it.
type Tx interface {
	Queryer

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Conn is a connection acquired from Pool. *pgxpool.Conn implements it.
type Conn interface {
	Queryer

	// Release returns the connection to the pool.
	Release()
}

// Pool is the subset of *pgxpool.Pool in use.
type Pool interface {
	Queryer

	Begin(ctx context.Context) (Tx, error)
	Acquire(ctx context.Context) (Conn, error)
	Ping(ctx context.Context) error
	Close()
}

var (
	_ Tx   = pgx.Tx(nil)
	_ Conn = &pgxpool.Conn{}
)

type pgxPool struct {
	*pgxpool.Pool
}

func (p pgxPool) Begin(ctx context.Context) (Tx, error) {
	tx, err := p.Pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

func (p pgxPool) Acquire(ctx context.Context) (Conn, error) {
	conn, err := p.Pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// Wrap makes p a Pool.
func Wrap(p *pgxpool.Pool) Pool {
	return pgxPool{Pool: p}
}

// Connect opens a new pool to the database and wraps it.
func Connect(ctx context.Context, url string) (Pool, error) {
	p, err := pgxpool.Connect(ctx, url)
	if err != nil {
		return nil, err
	}
	return Wrap(p), nil
}
