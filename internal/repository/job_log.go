package repository

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lockdesk/lockdesk/constants"
	"github.com/lockdesk/lockdesk/internal/common"
	"github.com/lockdesk/lockdesk/internal/entity"
)

// JobLogFilter narrows ListJobLogs. Nil members are ignored. FromDate and
// ToDate compare against the job's ISO date string, both ends inclusive.
type JobLogFilter struct {
	Status   *constants.JobStatus
	JobType  *constants.JobType
	FromDate string
	ToDate   string
	Limit    int
}

// JobLogRepository is the external JobStore of the interpreter's contract:
// it assigns id and created_at and owns all further mutation.
type JobLogRepository interface {
	AddJobLog(ctx context.Context, draft entity.JobLogDraft) (*entity.JobLog, error)
	GetJobLog(ctx context.Context, id uuid.UUID) (*entity.JobLog, error)
	ListJobLogs(ctx context.Context, filter JobLogFilter) ([]*entity.JobLog, error)
}

type jobLogRepo struct {
	db  *DB
	log *slog.Logger
}

func NewJobLogRepository(db *DB, log *slog.Logger) JobLogRepository {
	if log == nil {
		log = slog.Default()
	}
	return &jobLogRepo{db: db, log: log}
}

const jobLogColumns = `id, vehicle, job_type, price, date, status, source,
	notes, customer_name, customer_phone, customer_address,
	company_name, technician_name, fcc_id, key_type, created_at`

func (r *jobLogRepo) AddJobLog(ctx context.Context, draft entity.JobLogDraft) (*entity.JobLog, error) {
	rec := &entity.JobLog{
		ID:              uuid.New(),
		Vehicle:         draft.Vehicle,
		JobType:         draft.JobType,
		Price:           draft.Price,
		Date:            draft.Date,
		Status:          draft.Status,
		Source:          draft.Source,
		CreatedAt:       time.Now().UTC(),
		Notes:           draft.Notes,
		CustomerName:    draft.CustomerName,
		CustomerPhone:   draft.CustomerPhone,
		CustomerAddress: draft.CustomerAddress,
		CompanyName:     draft.CompanyName,
		TechnicianName:  draft.TechnicianName,
		FCCID:           draft.FCCID,
		KeyType:         draft.KeyType,
	}

	query := r.db.rebind(`INSERT INTO job_log (` + jobLogColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	_, err := r.db.ExecContext(ctx, query,
		rec.ID.String(), rec.Vehicle, string(rec.JobType), rec.Price, rec.Date,
		string(rec.Status), rec.Source,
		rec.Notes, rec.CustomerName, rec.CustomerPhone, rec.CustomerAddress,
		rec.CompanyName, rec.TechnicianName, rec.FCCID, rec.KeyType,
		rec.CreatedAt,
	)
	if err != nil {
		r.log.Error("job_log insert failed", "vehicle", rec.Vehicle, "err", err)
		return nil, common.WrapError(err, "insert job_log")
	}
	r.log.Info("job_log created",
		"job_id", rec.ID, "vehicle", rec.Vehicle,
		"job_type", rec.JobType, "price", rec.Price, "status", rec.Status,
	)
	return rec, nil
}

func (r *jobLogRepo) GetJobLog(ctx context.Context, id uuid.UUID) (*entity.JobLog, error) {
	query := r.db.rebind(`SELECT ` + jobLogColumns + ` FROM job_log WHERE id = ?`)
	row := r.db.QueryRowContext(ctx, query, id.String())
	rec, err := scanJobLog(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		r.log.Error("job_log get failed", "job_id", id, "err", err)
		return nil, common.WrapError(err, "get job_log")
	}
	return rec, nil
}

func (r *jobLogRepo) ListJobLogs(ctx context.Context, filter JobLogFilter) ([]*entity.JobLog, error) {
	query := `SELECT ` + jobLogColumns + ` FROM job_log WHERE 1=1`
	var args []any
	if filter.Status != nil {
		query += ` AND status = ?`
		args = append(args, string(*filter.Status))
	}
	if filter.JobType != nil {
		query += ` AND job_type = ?`
		args = append(args, string(*filter.JobType))
	}
	if filter.FromDate != "" {
		query += ` AND date >= ?`
		args = append(args, filter.FromDate)
	}
	if filter.ToDate != "" {
		query += ` AND date <= ?`
		args = append(args, filter.ToDate)
	}
	query += ` ORDER BY date DESC, created_at DESC`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	rows, err := r.db.QueryContext(ctx, r.db.rebind(query), args...)
	if err != nil {
		r.log.Error("job_log list failed", "err", err)
		return nil, common.WrapError(err, "list job_log")
	}
	defer rows.Close()

	var out []*entity.JobLog
	for rows.Next() {
		rec, err := scanJobLog(rows)
		if err != nil {
			return nil, common.WrapError(err, "scan job_log")
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJobLog(row rowScanner) (*entity.JobLog, error) {
	var (
		rec     entity.JobLog
		id      string
		jobType string
		status  string
		opts    [8]sql.NullString
	)
	err := row.Scan(
		&id, &rec.Vehicle, &jobType, &rec.Price, &rec.Date, &status, &rec.Source,
		&opts[0], &opts[1], &opts[2], &opts[3], &opts[4], &opts[5], &opts[6], &opts[7],
		&rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	rec.ID, err = uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	rec.JobType = constants.JobType(jobType)
	rec.Status = constants.JobStatus(status)

	for i, dst := range []**string{
		&rec.Notes, &rec.CustomerName, &rec.CustomerPhone, &rec.CustomerAddress,
		&rec.CompanyName, &rec.TechnicianName, &rec.FCCID, &rec.KeyType,
	} {
		if opts[i].Valid {
			v := opts[i].String
			*dst = &v
		}
	}
	return &rec, nil
}
