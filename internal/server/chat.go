package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/lockdesk/lockdesk/internal/common"
	"github.com/lockdesk/lockdesk/internal/entity"
	"github.com/lockdesk/lockdesk/internal/interpreter"
)

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Role    string         `json:"role"`
	Content string         `json:"content"`
	JobLog  *entity.JobLog `json:"job_log,omitempty"`
}

// handleChat routes one chat line: job-logging commands go through the
// interpreter and the store, everything else is forwarded to the assistant
// backend.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	writeCORSHeaders(w)

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Message == "" {
		common.WriteJSONError(w, http.StatusBadRequest, "message is required")
		return
	}

	switch res := interpreter.Interpret(req.Message).(type) {
	case interpreter.NotACommand:
		reply, err := s.assistant.Reply(r.Context(), req.Message)
		if err != nil {
			s.logger.Warn("assistant reply failed", zap.Error(err))
			common.WriteJSONError(w, http.StatusBadGateway, "assistant unavailable")
			return
		}
		writeJSON(w, http.StatusOK, chatResponse{Role: "assistant", Content: reply})

	case interpreter.CommandError:
		// shown to the user verbatim; no record is created
		writeJSON(w, http.StatusOK, chatResponse{Role: "assistant", Content: res.Message})

	case interpreter.CommandSuccess:
		rec, err := s.jobs.AddJobLog(r.Context(), res.Draft)
		if err != nil {
			s.logger.Error("add job log failed", zap.Error(err))
			common.WriteJSONError(w, http.StatusInternalServerError, "could not save job log")
			return
		}
		writeJSON(w, http.StatusOK, chatResponse{
			Role:    "assistant",
			Content: confirmation(rec),
			JobLog:  rec,
		})
	}
}

func confirmation(rec *entity.JobLog) string {
	return fmt.Sprintf("Job logged: %s | %s | $%.2f | %s",
		rec.Vehicle, rec.JobType.Label(), rec.Price, rec.Status.Label())
}
