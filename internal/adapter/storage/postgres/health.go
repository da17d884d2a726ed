package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrSchemaNotReady reports a database without an applied, clean migration.
var ErrSchemaNotReady = errors.New("schema not ready")

// HealthCheck implements ports.HealthChecker for PostgreSQL. It fails when
// migrations were never applied or a migration stopped halfway.
type HealthCheck struct {
	pool    Pool
	timeout time.Duration
}

// NewHealthCheck creates a PostgreSQL health checker. timeout <= 0 leaves
// the caller's deadline in charge.
func NewHealthCheck(pool Pool, timeout time.Duration) *HealthCheck {
	return &HealthCheck{pool: pool, timeout: timeout}
}

// Ping checks connectivity and the golang-migrate state.
func (h *HealthCheck) Ping(ctx context.Context) error {
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}
	if err := h.pool.Ping(ctx); err != nil {
		return err
	}

	var (
		version int64
		dirty   bool
	)
	err := h.pool.QueryRow(ctx, `SELECT version, dirty FROM schema_migrations LIMIT 1`).Scan(&version, &dirty)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: no migration applied", ErrSchemaNotReady)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UndefinedTable {
		return fmt.Errorf("%w: schema_migrations missing", ErrSchemaNotReady)
	}
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if dirty {
		return fmt.Errorf("%w: migration %d is dirty", ErrSchemaNotReady, version)
	}
	return nil
}

func (h *HealthCheck) Name() string {
	return "postgresql"
}
