package entity

// Document is one entry in the technical-document library manifest:
// programming guides, wiring diagrams, FCC cross-references and the like.
type Document struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Make     string   `json:"make"`
	Model    string   `json:"model,omitempty"`
	YearFrom int      `json:"year_from,omitempty"`
	YearTo   int      `json:"year_to,omitempty"`
	DocType  string   `json:"doc_type"` // e.g. programming, wiring, fcc
	FCCID    string   `json:"fcc_id,omitempty"`
	KeyType  string   `json:"key_type,omitempty"`
	Path     string   `json:"path"`
	Tags     []string `json:"tags,omitempty"`
}
