package repository

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lockdesk/lockdesk/constants"
	"github.com/lockdesk/lockdesk/internal/common"
	"github.com/lockdesk/lockdesk/internal/entity"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenSQLite(":memory:", slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate(context.Background(), slog.Default()))
	return db
}

func strPtr(s string) *string { return &s }

func TestAddAndGetJobLog(t *testing.T) {
	ctx := context.Background()
	repo := NewJobLogRepository(openTestDB(t), slog.Default())

	draft := entity.JobLogDraft{
		Vehicle:      "2019 Honda Civic",
		JobType:      constants.JobTypeAKL,
		Price:        280,
		Date:         "2026-03-14",
		Status:       constants.StatusCompleted,
		Source:       entity.SourceManual,
		CustomerName: strPtr("John Doe"),
		FCCID:        strPtr("KR5V2X"),
	}

	created, err := repo.AddJobLog(ctx, draft)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetJobLog(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "2019 Honda Civic", got.Vehicle)
	assert.Equal(t, constants.JobTypeAKL, got.JobType)
	assert.Equal(t, 280.0, got.Price)
	assert.Equal(t, "2026-03-14", got.Date)
	require.NotNil(t, got.CustomerName)
	assert.Equal(t, "John Doe", *got.CustomerName)
	require.NotNil(t, got.FCCID)
	assert.Equal(t, "KR5V2X", *got.FCCID)
	// absent optionals stay absent
	assert.Nil(t, got.Notes)
	assert.Nil(t, got.CustomerPhone)
}

func TestGetJobLogNotFound(t *testing.T) {
	repo := NewJobLogRepository(openTestDB(t), slog.Default())

	_, err := repo.GetJobLog(context.Background(), [16]byte{1})
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestListJobLogsFilters(t *testing.T) {
	ctx := context.Background()
	repo := NewJobLogRepository(openTestDB(t), slog.Default())

	seed := []entity.JobLogDraft{
		{Vehicle: "2019 Civic", JobType: constants.JobTypeAKL, Date: "2026-03-01", Status: constants.StatusCompleted, Source: entity.SourceManual, Price: 280},
		{Vehicle: "2015 Tahoe", JobType: constants.JobTypeLockout, Date: "2026-03-05", Status: constants.StatusPending, Source: entity.SourceManual, Price: 80},
		{Vehicle: "2021 F150", JobType: constants.JobTypeAKL, Date: "2026-03-10", Status: constants.StatusCompleted, Source: entity.SourceManual, Price: 350},
	}
	for _, d := range seed {
		_, err := repo.AddJobLog(ctx, d)
		require.NoError(t, err)
	}

	all, err := repo.ListJobLogs(ctx, JobLogFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
	// newest date first
	assert.Equal(t, "2021 F150", all[0].Vehicle)

	akl := constants.JobTypeAKL
	byType, err := repo.ListJobLogs(ctx, JobLogFilter{JobType: &akl})
	require.NoError(t, err)
	assert.Len(t, byType, 2)

	pending := constants.StatusPending
	byStatus, err := repo.ListJobLogs(ctx, JobLogFilter{Status: &pending})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, "2015 Tahoe", byStatus[0].Vehicle)

	window, err := repo.ListJobLogs(ctx, JobLogFilter{FromDate: "2026-03-02", ToDate: "2026-03-09"})
	require.NoError(t, err)
	require.Len(t, window, 1)
	assert.Equal(t, "2015 Tahoe", window[0].Vehicle)

	limited, err := repo.ListJobLogs(ctx, JobLogFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}
