package interpreter

import (
	"regexp"
	"strings"

	"github.com/lockdesk/lockdesk/constants"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Ordered job-type patterns. Order encodes priority among ambiguous
// phrasings: "all keys lost" must be classified before "remote" gets a
// chance to match the same sentence.
var jobPatterns = []struct {
	jobType constants.JobType
	re      *regexp.Regexp
}{
	{constants.JobTypeAKL, regexp.MustCompile(`(?i)\ball\s*keys?\s*lost\b|\bakl\b`)},
	{constants.JobTypeAddKey, regexp.MustCompile(`(?i)\badd(?:ed)?\s+(?:a\s+)?(?:spare\s+)?key\b|\bspare\s+key\b|\bduplicate\s+key\b|\bkey\s+copy\b`)},
	{constants.JobTypeLockout, regexp.MustCompile(`(?i)\block(?:ed)?\s*-?\s*out\b|\bunlock\b`)},
	{constants.JobTypeRekey, regexp.MustCompile(`(?i)\bre\s*-?\s*key(?:ed|ing)?\b`)},
	{constants.JobTypeRemote, regexp.MustCompile(`(?i)\bremote\b|\b(?:key\s*)?fob\b`)},
	{constants.JobTypeBlade, regexp.MustCompile(`(?i)\bblade\b|\bcut\s+(?:a\s+)?key\b|\bkey\s+cut(?:ting)?\b`)},
	{constants.JobTypeSafe, regexp.MustCompile(`(?i)\bsafe\b`)},
}

var (
	priceKeywordRe  = regexp.MustCompile(`(?i)\b(?:priced?|charged?|total|for|at)\b\s*[:=]?\s*\$?\s*(-?\d+(?:\.\d+)?)`)
	priceDollarRe   = regexp.MustCompile(`\$\s*(-?\d+(?:\.\d+)?)`)
	priceTrailingRe = regexp.MustCompile(`(-?\d+(?:\.\d+)?)\s*$`)

	statusDoneRe    = regexp.MustCompile(`(?i)\b(?:done|completed?|closed)\b`)
	statusPendingRe = regexp.MustCompile(`(?i)\b(?:pending|appointment|estimate)\b`)

	vehicleLeadRe  = regexp.MustCompile(`(?i)^\s*(?:for|vehicle|car)\b[\s:=]*`)
	vehicleTrailRe = regexp.MustCompile(`(?i)[\s,.;:=\-]*\b(?:for|at|with|and|job|type|price|charged?)$`)
	trailPunctRe   = regexp.MustCompile(`[\s,.;:=\-]+$`)
)

// extract infers job type, price, status and a vehicle description from
// unstructured prose. It only ever produces the canonical keys "job",
// "price", "status" and "vehicle"; callers merge its output underneath any
// explicitly given fields.
func extract(text string) map[string]string {
	text = strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
	found := make(map[string]string)
	if text == "" {
		return found
	}

	jobIdx := -1
	for _, p := range jobPatterns {
		if loc := p.re.FindStringIndex(text); loc != nil {
			found[constants.FieldJobType] = string(p.jobType)
			jobIdx = loc[0]
			break
		}
	}

	priceIdx := -1
	if m := priceKeywordRe.FindStringSubmatchIndex(text); m != nil {
		found[constants.FieldPrice] = text[m[2]:m[3]]
		priceIdx = m[0]
	} else if m := priceDollarRe.FindStringSubmatchIndex(text); m != nil {
		found[constants.FieldPrice] = text[m[2]:m[3]]
		priceIdx = m[0]
	} else if jobIdx >= 0 {
		// "... akl 280": a bare trailing number counts once we know it's a job
		if m := priceTrailingRe.FindStringSubmatchIndex(text); m != nil {
			found[constants.FieldPrice] = text[m[2]:m[3]]
			priceIdx = m[0]
		}
	}

	if statusDoneRe.MatchString(text) {
		found[constants.FieldStatus] = string(constants.StatusCompleted)
	} else if statusPendingRe.MatchString(text) {
		found[constants.FieldStatus] = string(constants.StatusPending)
	}

	if vehicle := extractVehicle(text, jobIdx, priceIdx); vehicle != "" {
		found[constants.FieldVehicle] = vehicle
	}
	return found
}

// extractVehicle takes the prose before the first job-type or price match
// and strips leading/trailing filler until a clean description remains.
func extractVehicle(text string, jobIdx, priceIdx int) string {
	cut := len(text)
	if jobIdx >= 0 && jobIdx < cut {
		cut = jobIdx
	}
	if priceIdx >= 0 && priceIdx < cut {
		cut = priceIdx
	}

	candidate := vehicleLeadRe.ReplaceAllString(text[:cut], "")
	for {
		candidate = trailPunctRe.ReplaceAllString(candidate, "")
		next := vehicleTrailRe.ReplaceAllString(candidate, "")
		if next == candidate {
			break
		}
		candidate = next
	}
	return strings.TrimSpace(candidate)
}
