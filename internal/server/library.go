package server

import (
	"net/http"
	"strconv"

	"github.com/lockdesk/lockdesk/internal/common"
	"github.com/lockdesk/lockdesk/internal/library"
)

func (s *Server) handleLibrarySearch(w http.ResponseWriter, r *http.Request) {
	writeCORSHeaders(w)

	q := r.URL.Query()
	query := library.Query{
		Make:    q.Get("make"),
		Model:   q.Get("model"),
		DocType: q.Get("doc_type"),
		FCCID:   q.Get("fcc_id"),
		Keyword: q.Get("q"),
	}
	if raw := q.Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			common.WriteJSONError(w, http.StatusBadRequest, "year must be an integer")
			return
		}
		query.Year = year
	}

	docs := s.library.Search(query)
	writeJSON(w, http.StatusOK, map[string]any{"documents": docs})
}
