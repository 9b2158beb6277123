package database

import (
	"context"
	"fmt"

	"surf-booking/db"
)

// RunMigrations executes the embedded DDL schema. Every statement is
// idempotent (CREATE ... IF NOT EXISTS), so this is safe on every startup.
func RunMigrations(ctx context.Context, pool PgxIface) error {
	if _, err := pool.Exec(ctx, db.Schema); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}
