package interpreter

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/lockdesk/lockdesk/constants"
)

// parseBody builds the raw field map from the command body. The second
// return is a user-facing error message; it is non-empty only for the JSON
// failure modes, which short-circuit the pipeline instead of falling back.
func parseBody(body string) (map[string]string, string) {
	trimmed := strings.TrimSpace(body)
	if strings.HasPrefix(trimmed, "{") {
		return parseJSONBody(trimmed)
	}
	return parseDelimitedBody(body), ""
}

// parseJSONBody handles bodies that start with "{". The parsed value must be
// an object; every entry is coerced to a trimmed string, nulls are skipped.
func parseJSONBody(body string) (map[string]string, string) {
	var v any
	if err := json.Unmarshal([]byte(body), &v); err != nil {
		return nil, msgInvalidJSON
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, msgJSONNotObject
	}

	fields := make(map[string]string, len(obj))
	for k, val := range obj {
		key := constants.CanonicalKey(k)
		if key == "" {
			continue
		}
		s, ok := coerceString(val)
		if !ok {
			continue
		}
		fields[key] = s
	}
	return fields, ""
}

func coerceString(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return strings.TrimSpace(t), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		// nested arrays/objects: keep something printable rather than erroring
		return strings.TrimSpace(fmt.Sprintf("%v", t)), true
	}
}

// parseDelimitedBody splits the body on ";" into key=value / key:value
// segments, backfills gaps from the natural-language extractor, and finally
// applies the shorthand rule (whole body as vehicle) when nothing at all was
// extracted from a single free-text segment.
func parseDelimitedBody(body string) map[string]string {
	fields := make(map[string]string)
	examined := 0

	for _, seg := range strings.Split(body, ";") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		examined++

		pos := splitPos(seg)
		if pos < 0 {
			continue
		}
		key := constants.CanonicalKey(seg[:pos])
		val := strings.TrimSpace(seg[pos+1:])
		if key == "" || val == "" {
			continue
		}
		fields[key] = val
	}

	// Heuristic backfill. Explicit key=value input always wins.
	for k, v := range extract(body) {
		if _, ok := fields[k]; !ok {
			fields[k] = v
		}
	}

	if len(fields) == 0 && examined == 1 {
		fields[constants.FieldVehicle] = strings.TrimSpace(body)
	}
	return fields
}

// splitPos finds the key/value boundary of a segment: the earlier of "=" and
// ":" when both are present, whichever exists otherwise, -1 for neither.
func splitPos(seg string) int {
	eq := strings.IndexByte(seg, '=')
	colon := strings.IndexByte(seg, ':')
	switch {
	case eq >= 0 && colon >= 0:
		if eq < colon {
			return eq
		}
		return colon
	case eq >= 0:
		return eq
	default:
		return colon
	}
}
