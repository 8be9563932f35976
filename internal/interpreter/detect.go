package interpreter

import (
	"regexp"
	"strings"
)

// Command prefix grammar: optional leading "/", then log|add|create, the
// literal word "job", and an optional ":" or "-" separator. Everything after
// the prefix is the body.
var commandRe = regexp.MustCompile(`(?i)^\s*/?(?:log|add|create)\s+job\b\s*[:\-]?\s*`)

// detect reports whether input is a job-logging command and returns the
// trimmed body after the prefix. A false first return means the message is
// ordinary chat.
func detect(input string) (bool, string) {
	loc := commandRe.FindStringIndex(input)
	if loc == nil {
		return false, ""
	}
	return true, strings.TrimSpace(input[loc[1]:])
}
