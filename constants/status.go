package constants

// JobStatus is the canonical lifecycle status for rows in job_log.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	StatusUnassigned    JobStatus = "unassigned"
	StatusClaimed       JobStatus = "claimed"
	StatusInProgress    JobStatus = "in_progress"
	StatusCompleted     JobStatus = "completed"
	StatusCancelled     JobStatus = "cancelled"
	StatusPending       JobStatus = "pending"
	StatusAppointment   JobStatus = "appointment"
	StatusAccepted      JobStatus = "accepted"
	StatusOnHold        JobStatus = "on_hold"
	StatusClosed        JobStatus = "closed"
	StatusPendingClose  JobStatus = "pending_close"
	StatusPendingCancel JobStatus = "pending_cancel"
	StatusEstimate      JobStatus = "estimate"
	StatusFollowUp      JobStatus = "follow_up"
)

var allStatuses = []JobStatus{
	StatusUnassigned,
	StatusClaimed,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
	StatusPending,
	StatusAppointment,
	StatusAccepted,
	StatusOnHold,
	StatusClosed,
	StatusPendingClose,
	StatusPendingCancel,
	StatusEstimate,
	StatusFollowUp,
}

// statusAliases maps canonical-key spellings to statuses. Canonical enum
// values canonicalize onto themselves (e.g. "in_progress" -> "inprogress"),
// so normalization is idempotent.
var statusAliases = map[string]JobStatus{
	"unassigned":    StatusUnassigned,
	"open":          StatusUnassigned,
	"new":           StatusUnassigned,
	"claimed":       StatusClaimed,
	"inprogress":    StatusInProgress,
	"working":       StatusInProgress,
	"wip":           StatusInProgress,
	"completed":     StatusCompleted,
	"complete":      StatusCompleted,
	"done":          StatusCompleted,
	"finished":      StatusCompleted,
	"cancelled":     StatusCancelled,
	"canceled":      StatusCancelled,
	"cancel":        StatusCancelled,
	"pending":       StatusPending,
	"appointment":   StatusAppointment,
	"appt":          StatusAppointment,
	"scheduled":     StatusAppointment,
	"accepted":      StatusAccepted,
	"onhold":        StatusOnHold,
	"hold":          StatusOnHold,
	"closed":        StatusClosed,
	"close":         StatusClosed,
	"pendingclose":  StatusPendingClose,
	"pendingcancel": StatusPendingCancel,
	"estimate":      StatusEstimate,
	"quote":         StatusEstimate,
	"followup":      StatusFollowUp,
}

var statusLabels = map[JobStatus]string{
	StatusUnassigned:    "Unassigned",
	StatusClaimed:       "Claimed",
	StatusInProgress:    "In Progress",
	StatusCompleted:     "Completed",
	StatusCancelled:     "Cancelled",
	StatusPending:       "Pending",
	StatusAppointment:   "Appointment",
	StatusAccepted:      "Accepted",
	StatusOnHold:        "On Hold",
	StatusClosed:        "Closed",
	StatusPendingClose:  "Pending Close",
	StatusPendingCancel: "Pending Cancel",
	StatusEstimate:      "Estimate",
	StatusFollowUp:      "Follow Up",
}

func StatusesAsStrings() []string {
	result := make([]string, len(allStatuses))
	for i, st := range allStatuses {
		result[i] = string(st)
	}
	return result
}

// CanonicalizeStatus narrows arbitrary input into the JobStatus enum.
// Unknown values map to StatusCompleted; the second return reports whether
// the input was recognized.
func CanonicalizeStatus(input string) (JobStatus, bool) {
	key := CanonicalKey(input)
	if key == "" {
		return StatusCompleted, false
	}
	if st, ok := statusAliases[key]; ok {
		return st, true
	}
	return StatusCompleted, false
}

// Label returns the display name for a status.
func (st JobStatus) Label() string {
	if l, ok := statusLabels[st]; ok {
		return l
	}
	return string(st)
}
