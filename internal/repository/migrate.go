package repository

import (
	"context"
	"log/slog"

	"github.com/lockdesk/lockdesk/internal/common"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS job_log (
		id               TEXT PRIMARY KEY,
		vehicle          TEXT NOT NULL,
		job_type         TEXT NOT NULL,
		price            REAL NOT NULL DEFAULT 0,
		date             TEXT NOT NULL,
		status           TEXT NOT NULL,
		source           TEXT NOT NULL,
		notes            TEXT,
		customer_name    TEXT,
		customer_phone   TEXT,
		customer_address TEXT,
		company_name     TEXT,
		technician_name  TEXT,
		fcc_id           TEXT,
		key_type         TEXT,
		created_at       TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_job_log_status_date ON job_log (status, date)`,
	`CREATE INDEX IF NOT EXISTS idx_job_log_job_type ON job_log (job_type)`,
}

// Migrate applies the job_log schema. Statements are idempotent so the
// daemon can run this on every start.
func (db *DB) Migrate(ctx context.Context, logger *slog.Logger) error {
	for _, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			logger.Error("migration failed", "error", err)
			return common.WrapError(err, "apply migration")
		}
	}
	logger.Info("schema up to date")
	return nil
}
