package interpreter

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/lockdesk/lockdesk/constants"
)

var amountRe = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

// pickField returns the first non-empty value among a field's accepted
// aliases. This is how "customer=", "customerName=" and "name=" all converge
// on one logical field.
func pickField(fields map[string]string, canonical string) (string, bool) {
	for _, alias := range constants.FieldAliases[canonical] {
		if v, ok := fields[constants.CanonicalKey(alias)]; ok {
			v = strings.TrimSpace(v)
			if v != "" {
				return v, true
			}
		}
	}
	return "", false
}

// parseAmount extracts the first signed decimal from raw, ignoring "$" and
// thousands separators. Absent or non-finite values come back as 0; price
// parsing never fails.
func parseAmount(raw string) float64 {
	s := strings.NewReplacer("$", "", ",", "").Replace(raw)
	tok := amountRe.FindString(s)
	if tok == "" {
		return 0
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0
	}
	return f
}

var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"Jan 2 2006",
	time.RFC3339,
}

// normalizeDate parses raw against the accepted layouts and renders
// YYYY-MM-DD. Anything unparseable falls back to now's date; a date parse
// failure never propagates.
func normalizeDate(raw string, now time.Time) string {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(dateLayout)
		}
	}
	return now.Format(dateLayout)
}
