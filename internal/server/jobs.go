package server

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/lockdesk/lockdesk/constants"
	"github.com/lockdesk/lockdesk/internal/common"
	"github.com/lockdesk/lockdesk/internal/interpreter"
	"github.com/lockdesk/lockdesk/internal/repository"
)

func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	writeCORSHeaders(w)

	var filter repository.JobLogFilter
	q := r.URL.Query()

	if raw := q.Get("status"); raw != "" {
		st, known := constants.CanonicalizeStatus(raw)
		if !known {
			common.WriteJSONError(w, http.StatusBadRequest, fmt.Sprintf("unknown status %q", raw))
			return
		}
		filter.Status = &st
	}
	if raw := q.Get("job_type"); raw != "" {
		jt, known := constants.CanonicalizeJobType(raw)
		if !known {
			common.WriteJSONError(w, http.StatusBadRequest, fmt.Sprintf("unknown job type %q", raw))
			return
		}
		filter.JobType = &jt
	}
	var err error
	if filter.FromDate, err = parseDateParam(q.Get("from")); err != nil {
		common.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if filter.ToDate, err = parseDateParam(q.Get("to")); err != nil {
		common.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			common.WriteJSONError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		filter.Limit = n
	}

	logs, err := s.jobs.ListJobLogs(r.Context(), filter)
	if err != nil {
		s.logger.Warn("list jobs failed", zap.Error(err))
		common.WriteJSONError(w, http.StatusInternalServerError, "list jobs failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"jobs": logs})
}

// handleCreateJob accepts a JSON object of job fields and pushes it through
// the same interpretation path as the chat command, so alias handling,
// normalization and validation behave identically on both surfaces.
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	writeCORSHeaders(w)

	raw, err := io.ReadAll(io.LimitReader(r.Body, 1<<16))
	if err != nil {
		common.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	body := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(body, "{") {
		common.WriteJSONError(w, http.StatusBadRequest, "body must be a JSON object of job fields")
		return
	}

	switch res := interpreter.Interpret("log job: " + body).(type) {
	case interpreter.CommandError:
		common.WriteJSONError(w, http.StatusBadRequest, res.Message)
	case interpreter.CommandSuccess:
		rec, err := s.jobs.AddJobLog(r.Context(), res.Draft)
		if err != nil {
			s.logger.Error("add job log failed", zap.Error(err))
			common.WriteJSONError(w, http.StatusInternalServerError, "could not save job log")
			return
		}
		writeJSON(w, http.StatusCreated, rec)
	default:
		common.WriteJSONError(w, http.StatusBadRequest, "body must be a JSON object of job fields")
	}
}

func (s *Server) handleExportJobs(w http.ResponseWriter, r *http.Request) {
	writeCORSHeaders(w)

	q := r.URL.Query()
	from, err := parseDateParam(q.Get("from"))
	if err != nil {
		common.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	to, err := parseDateParam(q.Get("to"))
	if err != nil {
		common.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	out, err := s.exporter.ExportJobLogsXLSX(r.Context(), from, to)
	if err != nil {
		s.logger.Warn("export failed", zap.Error(err))
		common.WriteJSONError(w, http.StatusInternalServerError, "export failed")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="job-logs.xlsx"`)
	_, _ = w.Write(out)
}

func parseDateParam(raw string) (string, error) {
	if raw == "" {
		return "", nil
	}
	if _, err := time.Parse("2006-01-02", raw); err != nil {
		return "", fmt.Errorf("invalid date %q: want YYYY-MM-DD", raw)
	}
	return raw, nil
}
