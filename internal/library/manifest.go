// Package library serves the technical-document manifest: programming
// guides, wiring diagrams and FCC cross-references that technicians search
// by vehicle.
package library

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/lockdesk/lockdesk/internal/entity"
)

type manifest struct {
	Documents []entity.Document `json:"documents"`
}

// Library holds the loaded manifest. Reload swaps the document set behind a
// lock so searches stay consistent while the file changes on disk.
type Library struct {
	path   string
	logger *slog.Logger

	mu   sync.RWMutex
	docs []entity.Document
}

// Empty returns a library with no documents, for deployments that don't
// ship a manifest.
func Empty(logger *slog.Logger) *Library {
	if logger == nil {
		logger = slog.Default()
	}
	return &Library{logger: logger}
}

// Load reads, validates and indexes the manifest at path.
func Load(path string, logger *slog.Logger) (*Library, error) {
	if logger == nil {
		logger = slog.Default()
	}
	l := &Library{path: path, logger: logger}
	if err := l.Reload(); err != nil {
		return nil, err
	}
	return l, nil
}

// Reload re-reads the manifest from disk. A manifest that fails schema
// validation is rejected wholesale; the previous document set stays live.
func (l *Library) Reload() error {
	raw, err := os.ReadFile(l.path)
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}
	if err := validateManifest(raw); err != nil {
		return fmt.Errorf("validate manifest: %w", err)
	}
	var m manifest
	if err := json.Unmarshal(raw, &m); err != nil {
		return fmt.Errorf("decode manifest: %w", err)
	}

	l.mu.Lock()
	l.docs = m.Documents
	l.mu.Unlock()

	l.logger.Info("library manifest loaded", "path", l.path, "documents", len(m.Documents))
	return nil
}

// Query filters the document set. Empty fields match everything; string
// matches are case-insensitive; Year matches when it falls inside the
// document's year range.
type Query struct {
	Make    string
	Model   string
	DocType string
	FCCID   string
	Keyword string
	Year    int
}

// Search returns the documents matching every populated query field.
func (l *Library) Search(q Query) []entity.Document {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]entity.Document, 0)
	for _, d := range l.docs {
		if !matches(d, q) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// Len reports the number of loaded documents.
func (l *Library) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.docs)
}

func matches(d entity.Document, q Query) bool {
	if q.Make != "" && !strings.EqualFold(d.Make, q.Make) {
		return false
	}
	if q.Model != "" && !strings.EqualFold(d.Model, q.Model) {
		return false
	}
	if q.DocType != "" && !strings.EqualFold(d.DocType, q.DocType) {
		return false
	}
	if q.FCCID != "" && !strings.EqualFold(d.FCCID, q.FCCID) {
		return false
	}
	if q.Year != 0 {
		if d.YearFrom != 0 && q.Year < d.YearFrom {
			return false
		}
		if d.YearTo != 0 && q.Year > d.YearTo {
			return false
		}
	}
	if q.Keyword != "" {
		kw := strings.ToLower(q.Keyword)
		if !strings.Contains(strings.ToLower(d.Title), kw) && !containsFold(d.Tags, kw) {
			return false
		}
	}
	return true
}

func containsFold(tags []string, lowered string) bool {
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), lowered) {
			return true
		}
	}
	return false
}
