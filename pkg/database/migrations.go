package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialIndexes creates PostgreSQL partial indexes the schema
// definition cannot express. Idempotent; runs on every startup after
// migrations.
func CreatePartialIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// Claim query scans only pending rows ordered by age.
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_review_records_pending_created
		ON review_records (created_at)
		WHERE status = 'pending'`)
	if err != nil {
		return fmt.Errorf("failed to create pending claim index: %w", err)
	}

	// Orphan sweep scans only processing rows by heartbeat age.
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_review_records_processing_heartbeat
		ON review_records (last_interaction_at)
		WHERE status = 'processing'`)
	if err != nil {
		return fmt.Errorf("failed to create orphan sweep index: %w", err)
	}

	return nil
}
