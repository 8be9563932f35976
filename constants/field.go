package constants

import "strings"

// Canonical field names for a job log. Parser keys and alias lookups all
// reduce to these.
const (
	FieldVehicle         = "vehicle"
	FieldJobType         = "job"
	FieldPrice           = "price"
	FieldDate            = "date"
	FieldStatus          = "status"
	FieldNotes           = "notes"
	FieldCustomerName    = "customername"
	FieldCustomerPhone   = "customerphone"
	FieldCustomerAddress = "customeraddress"
	FieldCompanyName     = "companyname"
	FieldTechnicianName  = "technicianname"
	FieldFCCID           = "fccid"
	FieldKeyType         = "keytype"
)

// FieldAliases lists the accepted spellings for each canonical field, in
// lookup priority order. Entries are matched after CanonicalKey reduction,
// so "Customer Name", "customer_name" and "customer-name" all hit
// "customername".
var FieldAliases = map[string][]string{
	FieldVehicle:         {"vehicle", "car", "auto", "vehicledescription", "vin"},
	FieldJobType:         {"job", "jobtype", "type", "service"},
	FieldPrice:           {"price", "amount", "cost", "charge", "total"},
	FieldDate:            {"date", "jobdate", "day", "when"},
	FieldStatus:          {"status", "state", "jobstatus"},
	FieldNotes:           {"notes", "note", "description", "comments", "comment"},
	FieldCustomerName:    {"customer", "customername", "name", "client"},
	FieldCustomerPhone:   {"phone", "customerphone", "phonenumber", "tel", "contact"},
	FieldCustomerAddress: {"address", "customeraddress", "location"},
	FieldCompanyName:     {"company", "companyname", "business"},
	FieldTechnicianName:  {"tech", "technician", "technicianname", "techname"},
	FieldFCCID:           {"fcc", "fccid"},
	FieldKeyType:         {"keytype", "key", "chip"},
}

// CanonicalKey reduces a field-key spelling to its lookup form: lowercased
// with spaces, underscores and hyphens removed.
func CanonicalKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-':
			return -1
		}
		return r
	}, s)
}
