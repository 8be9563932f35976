// jobexport writes the job-log accounting workbook to a file without going
// through the HTTP API. Useful for month-end runs from cron.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/lockdesk/lockdesk/internal/common"
	"github.com/lockdesk/lockdesk/internal/export"
	"github.com/lockdesk/lockdesk/internal/repository"
)

func main() {
	var (
		from = flag.String("from", "", "window start (YYYY-MM-DD, inclusive)")
		to   = flag.String("to", "", "window end (YYYY-MM-DD, inclusive)")
		out  = flag.String("out", "job-logs.xlsx", "output path")
	)
	flag.Parse()

	logger := slog.Default()
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := repository.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("opening store", "error", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	jobs := repository.NewJobLogRepository(db, logger)
	svc := export.NewService(jobs, logger)

	data, err := svc.ExportJobLogsXLSX(ctx, *from, *to)
	if err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		logger.Error("writing workbook", "error", err)
		os.Exit(1)
	}
	logger.Info("workbook written", "path", *out, "bytes", len(data))
}
