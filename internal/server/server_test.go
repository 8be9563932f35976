package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lockdesk/lockdesk/constants"
	"github.com/lockdesk/lockdesk/internal/entity"
	"github.com/lockdesk/lockdesk/internal/export"
	"github.com/lockdesk/lockdesk/internal/library"
	"github.com/lockdesk/lockdesk/internal/repository"
)

type memRepo struct {
	logs       []*entity.JobLog
	lastFilter repository.JobLogFilter
}

func (m *memRepo) AddJobLog(_ context.Context, draft entity.JobLogDraft) (*entity.JobLog, error) {
	rec := &entity.JobLog{
		ID:           uuid.New(),
		Vehicle:      draft.Vehicle,
		JobType:      draft.JobType,
		Price:        draft.Price,
		Date:         draft.Date,
		Status:       draft.Status,
		Source:       draft.Source,
		CreatedAt:    time.Now().UTC(),
		Notes:        draft.Notes,
		CustomerName: draft.CustomerName,
	}
	m.logs = append(m.logs, rec)
	return rec, nil
}

func (m *memRepo) GetJobLog(_ context.Context, id uuid.UUID) (*entity.JobLog, error) {
	for _, l := range m.logs {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, errors.New("not found")
}

func (m *memRepo) ListJobLogs(_ context.Context, f repository.JobLogFilter) ([]*entity.JobLog, error) {
	m.lastFilter = f
	return m.logs, nil
}

type stubAssistant struct {
	reply string
	err   error
	asked string
}

func (s *stubAssistant) Reply(_ context.Context, message string) (string, error) {
	s.asked = message
	return s.reply, s.err
}

const testManifest = `{
	"documents": [
		{"id": "honda-civic-akl", "title": "Honda Civic AKL", "make": "Honda",
		 "model": "Civic", "doc_type": "programming", "path": "docs/civic.pdf"}
	]
}`

func newTestServer(t *testing.T) (*Server, *memRepo, *stubAssistant) {
	t.Helper()
	repo := &memRepo{}
	asst := &stubAssistant{reply: "It uses a PCF7953."}

	path := filepath.Join(t.TempDir(), "manifest.json")
	require.NoError(t, os.WriteFile(path, []byte(testManifest), 0o644))
	lib, err := library.Load(path, nil)
	require.NoError(t, err)

	return New(repo, asst, lib, export.NewService(repo, nil), nil), repo, asst
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 && strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec, decoded
}

func TestChatForwardsOrdinaryMessages(t *testing.T) {
	srv, repo, asst := newTestServer(t)

	rec, body := doJSON(t, srv.Handler(), http.MethodPost, "/api/chat",
		`{"message":"What chip does a 2014 BMW X5 use?"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "It uses a PCF7953.", body["content"])
	assert.Equal(t, "What chip does a 2014 BMW X5 use?", asst.asked)
	assert.Empty(t, repo.logs)
}

func TestChatLogsJob(t *testing.T) {
	srv, repo, _ := newTestServer(t)

	rec, body := doJSON(t, srv.Handler(), http.MethodPost, "/api/chat",
		`{"message":"log job: vehicle=2019 Honda Civic; job=akl; price=280"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, repo.logs, 1)
	assert.Equal(t, "2019 Honda Civic", repo.logs[0].Vehicle)
	assert.Equal(t, constants.JobTypeAKL, repo.logs[0].JobType)

	content, _ := body["content"].(string)
	assert.Contains(t, content, "Job logged:")
	assert.Contains(t, content, "All Keys Lost")
	assert.NotNil(t, body["job_log"])
}

func TestChatCommandErrorIsVerbatimAndCreatesNothing(t *testing.T) {
	srv, repo, asst := newTestServer(t)

	rec, body := doJSON(t, srv.Handler(), http.MethodPost, "/api/chat",
		`{"message":"log job: job=akl; price=280"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	content, _ := body["content"].(string)
	assert.Contains(t, content, "Vehicle is required")
	assert.Empty(t, repo.logs)
	assert.Empty(t, asst.asked) // command errors never reach the assistant
}

func TestChatAssistantDown(t *testing.T) {
	srv, _, asst := newTestServer(t)
	asst.err = errors.New("connection refused")

	rec, _ := doJSON(t, srv.Handler(), http.MethodPost, "/api/chat", `{"message":"hello"}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestChatRejectsBadRequests(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec, _ := doJSON(t, srv.Handler(), http.MethodPost, "/api/chat", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = doJSON(t, srv.Handler(), http.MethodPost, "/api/chat", `{"message":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListJobsFilterValidation(t *testing.T) {
	srv, repo, _ := newTestServer(t)

	rec, _ := doJSON(t, srv.Handler(), http.MethodGet, "/api/jobs?status=banana", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = doJSON(t, srv.Handler(), http.MethodGet, "/api/jobs?from=03/01/2026", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = doJSON(t, srv.Handler(), http.MethodGet, "/api/jobs?status=done&limit=5", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, repo.lastFilter.Status)
	assert.Equal(t, constants.StatusCompleted, *repo.lastFilter.Status)
	assert.Equal(t, 5, repo.lastFilter.Limit)
}

func TestCreateJobFromJSON(t *testing.T) {
	srv, repo, _ := newTestServer(t)

	rec, body := doJSON(t, srv.Handler(), http.MethodPost, "/api/jobs",
		`{"vehicle":"2021 Ford F150","job":"akl","price":350,"status":"pending"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, repo.logs, 1)
	assert.Equal(t, "2021 Ford F150", body["vehicle"])
	assert.Equal(t, "akl", body["job_type"])

	rec, _ = doJSON(t, srv.Handler(), http.MethodPost, "/api/jobs", `{"job":"akl"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Len(t, repo.logs, 1)

	rec, _ = doJSON(t, srv.Handler(), http.MethodPost, "/api/jobs", `plain text`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLibrarySearchEndpoint(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec, body := doJSON(t, srv.Handler(), http.MethodGet, "/api/library/documents?make=honda", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	docs, _ := body["documents"].([]any)
	require.Len(t, docs, 1)

	rec, body = doJSON(t, srv.Handler(), http.MethodGet, "/api/library/documents?make=tesla", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	docs, _ = body["documents"].([]any)
	assert.Empty(t, docs)
}

func TestExportEndpoint(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec, _ := doJSON(t, srv.Handler(), http.MethodGet, "/api/jobs/export?from=2026-03-01&to=2026-03-31", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "spreadsheetml")
	assert.NotZero(t, rec.Body.Len())
}

func TestHealth(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec, body := doJSON(t, srv.Handler(), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])
}
