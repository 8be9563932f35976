package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/lockdesk/lockdesk/internal/repository"
)

// Service is a tiny façade over the job-log repository that produces XLSX
// bytes for accounting exports.
type Service struct {
	jobs   repository.JobLogRepository
	logger *slog.Logger
}

func NewService(jobs repository.JobLogRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{jobs: jobs, logger: logger}
}

// ExportJobLogsXLSX returns an XLSX workbook for the given date window.
// If only from is provided -> from..today (inclusive).
// If neither is provided   -> all job logs.
func (s *Service) ExportJobLogsXLSX(ctx context.Context, from, to string) ([]byte, error) {
	start := time.Now()

	if from != "" && to == "" {
		to = time.Now().UTC().Format("2006-01-02")
	}

	recs, err := s.jobs.ListJobLogs(ctx, repository.JobLogFilter{FromDate: from, ToDate: to})
	if err != nil {
		return nil, fmt.Errorf("query job logs: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Jobs"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Date",
		"Vehicle",
		"Job Type",
		"Status",
		"Price",
		"Customer",
		"Technician",
		"Notes",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	var total float64
	for _, r := range recs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, r.Date)
		write(2, r.Vehicle)
		write(3, r.JobType.Label())
		write(4, r.Status.Label())
		write(5, r.Price)
		write(6, strOrEmpty(r.CustomerName))
		write(7, strOrEmpty(r.TechnicianName))
		write(8, truncate(strOrEmpty(r.Notes), 140))

		total += r.Price
		row++
	}

	// totals row
	cell, _ := excelize.CoordinatesToCellName(4, row)
	_ = f.SetCellValue(sheet, cell, "Total")
	cell, _ = excelize.CoordinatesToCellName(5, row)
	_ = f.SetCellValue(sheet, cell, total)

	// drop the default sheet if it's not ours
	if sheet != "Sheet1" {
		_ = f.DeleteSheet("Sheet1")
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("export.ok",
		"rows", len(recs), "total", total,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
