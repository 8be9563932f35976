package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/lockdesk/lockdesk/constants"
)

// SourceManual marks records created through the chat command or jobs API,
// as opposed to imported or synced records.
const SourceManual = "manual"

// JobLogDraft is an interpreted, validated job record that has not been
// persisted yet. Optional fields are pointers so that "absent" survives the
// trip to the store (never defaulted to empty strings).
type JobLogDraft struct {
	Vehicle string             `json:"vehicle"`
	JobType constants.JobType  `json:"job_type"`
	Price   float64            `json:"price"`
	Date    string             `json:"date"` // YYYY-MM-DD
	Status  constants.JobStatus `json:"status"`
	Source  string             `json:"source"`

	Notes           *string `json:"notes,omitempty"`
	CustomerName    *string `json:"customer_name,omitempty"`
	CustomerPhone   *string `json:"customer_phone,omitempty"`
	CustomerAddress *string `json:"customer_address,omitempty"`
	CompanyName     *string `json:"company_name,omitempty"`
	TechnicianName  *string `json:"technician_name,omitempty"`
	FCCID           *string `json:"fcc_id,omitempty"`
	KeyType         *string `json:"key_type,omitempty"`
}

// JobLog represents a persisted job record for data transfer between layers.
// The store assigns ID and CreatedAt; everything else comes from the draft.
type JobLog struct {
	ID        uuid.UUID           `json:"id"`
	Vehicle   string              `json:"vehicle"`
	JobType   constants.JobType   `json:"job_type"`
	Price     float64             `json:"price"`
	Date      string              `json:"date"`
	Status    constants.JobStatus `json:"status"`
	Source    string              `json:"source"`
	CreatedAt time.Time           `json:"created_at"`

	Notes           *string `json:"notes,omitempty"`
	CustomerName    *string `json:"customer_name,omitempty"`
	CustomerPhone   *string `json:"customer_phone,omitempty"`
	CustomerAddress *string `json:"customer_address,omitempty"`
	CompanyName     *string `json:"company_name,omitempty"`
	TechnicianName  *string `json:"technician_name,omitempty"`
	FCCID           *string `json:"fcc_id,omitempty"`
	KeyType         *string `json:"key_type,omitempty"`
}
