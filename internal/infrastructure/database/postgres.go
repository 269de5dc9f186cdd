package database

import (
	"context"
	"fmt"
	"log"
	"mercado_audiovisual/internal/config"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	postgresReadyTimeout = 30 * time.Second
	postgresInitialWait  = 500 * time.Millisecond
	postgresMaxWait      = 5 * time.Second
)

// ConnectPostgres opens a pgx pool and waits until the server answers a
// ping, backing off between attempts.
func ConnectPostgres(ctx context.Context, cfg config.Postgres) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 && cfg.MinConns <= poolCfg.MaxConns {
		poolCfg.MinConns = cfg.MinConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := waitForPostgres(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	log.Printf("[storage][postgres] connected max_conns=%d", poolCfg.MaxConns)
	return pool, nil
}

func waitForPostgres(ctx context.Context, pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(ctx, postgresReadyTimeout)
	defer cancel()

	wait := postgresInitialWait
	for {
		err := pool.Ping(ctx)
		if err == nil {
			return nil
		}
		log.Printf("[storage][postgres] not ready yet retry_in=%s err=%v", wait, err)
		select {
		case <-ctx.Done():
			return fmt.Errorf("postgres not ready: %w", err)
		case <-time.After(wait):
		}
		wait *= 2
		if wait > postgresMaxWait {
			wait = postgresMaxWait
		}
	}
}
