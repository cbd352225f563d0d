package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/seewa-ng/helios/internal/models"
)

// Database is the subset of a pgx pool the repository needs. Satisfied
// by *pgxpool.Pool and by pgxmock pools in tests.
type Database interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Interface is the estimate store contract the service consumes. The
// store is an external collaborator of the estimation core: the core
// hands over a summary and never reads it back during computation.
type Interface interface {
	SaveEstimate(ctx context.Context, summary models.EstimateSummary) error
	RecentEstimates(ctx context.Context, limit int) ([]models.EstimateSummary, error)
}

type Repository struct {
	db  Database
	log *slog.Logger
}

// NewRepository creates a new instance of Repository with the provided Database.
// It returns a pointer to the newly created Repository.
func NewRepository(db Database, log *slog.Logger) *Repository {
	return &Repository{db: db, log: log}
}

// NewDatabase connects a pgx pool to the configured PostgreSQL instance
// and verifies it with a ping.
func NewDatabase(ctx context.Context, host, port, user, password, name string) (*pgxpool.Pool, error) {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s", user, password, host, port, name)

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	cfg.MaxConns = 10
	cfg.HealthCheckPeriod = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}
