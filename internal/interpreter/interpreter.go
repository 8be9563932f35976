// Package interpreter turns a free-text chat line into a validated job-log
// draft. It is a pure function of its input: no I/O, no shared mutable
// state, and it never fails with an error value. Malformed input comes back
// as an in-band result the caller can show to the user.
package interpreter

import (
	"time"

	"github.com/lockdesk/lockdesk/constants"
	"github.com/lockdesk/lockdesk/internal/entity"
)

const usageExample = "log job: vehicle=2019 Honda Civic; job=akl; price=280; customer=John Doe"

const (
	msgEmptyBody      = "Please provide job details. Use: " + usageExample
	msgMissingVehicle = "Vehicle is required. Use: " + usageExample
	msgInvalidJSON    = "Invalid JSON format. Check quotes and braces, or use: " + usageExample
	msgJSONNotObject  = `JSON must be an object of field/value pairs, e.g. log job: {"vehicle":"2019 Honda Civic","job":"akl","price":280}`
)

const dateLayout = "2006-01-02"

// Result is the outcome of one interpretation pass.
type Result interface{ isResult() }

// NotACommand means the input did not match the command prefix grammar and
// should be handled as ordinary chat.
type NotACommand struct{}

// CommandError means the input was recognized as a command but cannot
// produce a record. Message is shown to the user verbatim.
type CommandError struct {
	Message string
}

// CommandSuccess carries the assembled draft, ready for the store.
type CommandSuccess struct {
	Draft entity.JobLogDraft
}

func (NotACommand) isResult()    {}
func (CommandError) isResult()   {}
func (CommandSuccess) isResult() {}

// Interpret runs the full pipeline against one line of chat input, with the
// current date as the default job date.
func Interpret(input string) Result {
	return InterpretAt(input, time.Now())
}

// InterpretAt is Interpret with an explicit clock, so date defaulting is
// deterministic under test.
func InterpretAt(input string, now time.Time) Result {
	isCommand, body := detect(input)
	if !isCommand {
		return NotACommand{}
	}
	if body == "" {
		return CommandError{Message: msgEmptyBody}
	}
	fields, errMsg := parseBody(body)
	if errMsg != "" {
		return CommandError{Message: errMsg}
	}
	return assemble(fields, now)
}

// assemble normalizes every populated field, enforces the one mandatory
// field, and builds the draft. Optional passthrough fields are set only when
// something was actually extracted.
func assemble(fields map[string]string, now time.Time) Result {
	vehicle, ok := pickField(fields, constants.FieldVehicle)
	if !ok {
		return CommandError{Message: msgMissingVehicle}
	}

	draft := entity.JobLogDraft{
		Vehicle: vehicle,
		JobType: constants.JobTypeOther,
		Price:   0,
		Date:    now.Format(dateLayout),
		Status:  constants.StatusCompleted,
		Source:  entity.SourceManual,
	}

	if raw, ok := pickField(fields, constants.FieldJobType); ok {
		draft.JobType, _ = constants.CanonicalizeJobType(raw)
	}
	if raw, ok := pickField(fields, constants.FieldPrice); ok {
		draft.Price = parseAmount(raw)
	}
	if raw, ok := pickField(fields, constants.FieldDate); ok {
		draft.Date = normalizeDate(raw, now)
	}
	if raw, ok := pickField(fields, constants.FieldStatus); ok {
		draft.Status, _ = constants.CanonicalizeStatus(raw)
	}

	setOptional(fields, constants.FieldNotes, &draft.Notes)
	setOptional(fields, constants.FieldCustomerName, &draft.CustomerName)
	setOptional(fields, constants.FieldCustomerPhone, &draft.CustomerPhone)
	setOptional(fields, constants.FieldCustomerAddress, &draft.CustomerAddress)
	setOptional(fields, constants.FieldCompanyName, &draft.CompanyName)
	setOptional(fields, constants.FieldTechnicianName, &draft.TechnicianName)
	setOptional(fields, constants.FieldFCCID, &draft.FCCID)
	setOptional(fields, constants.FieldKeyType, &draft.KeyType)

	return CommandSuccess{Draft: draft}
}

func setOptional(fields map[string]string, canonical string, dst **string) {
	if raw, ok := pickField(fields, canonical); ok {
		*dst = &raw
	}
}
