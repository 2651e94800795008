package db

import (
	"context"
	"fmt"
	"time"

	"healthsched/internal/pkg/config"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is the subset of pgx that repositories run queries against. Both
// *pgxpool.Pool and pgx.Tx satisfy it, so the same repository code works
// inside and outside a transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TxBeginner opens explicit transactions. Satisfied by *pgxpool.Pool; use
// cases depend on this rather than the pool type so tests can substitute a
// mock.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

const (
	connectTimeout = 10 * time.Second
	maxConns       = 10
)

func Connect(cfg config.DBConfig) (*pgxpool.Pool, func(), error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, nil, fmt.Errorf("parse database config: %w", err)
	}
	poolCfg.MaxConns = maxConns

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, pool.Close, nil
}
