package parser

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// ExtractObject recovers exactly one record object from arbitrary model
// output. The text may carry markdown fences, leading commentary, or
// trailing explanation after the JSON; everything around the first
// complete, balanced object is discarded. If the decoded value is an
// array, its first element is taken. Numbers decode as json.Number so
// amount precision survives until coercion.
func ExtractObject(text string) (map[string]any, error) {
	cleaned := stripFences(text)

	// Scan candidate start positions: prose before the object may itself
	// contain braces, so the first one is not guaranteed to open the value.
	for offset := 0; offset < len(cleaned); {
		rel := strings.IndexAny(cleaned[offset:], "{[")
		if rel < 0 {
			break
		}
		start := offset + rel

		dec := json.NewDecoder(strings.NewReader(cleaned[start:]))
		dec.UseNumber()
		var v any
		if err := dec.Decode(&v); err != nil {
			offset = start + 1
			continue
		}
		if arr, ok := v.([]any); ok {
			if len(arr) == 0 {
				offset = start + 1
				continue
			}
			v = arr[0]
		}
		obj, ok := v.(map[string]any)
		if !ok {
			offset = start + 1
			continue
		}
		return obj, nil
	}

	return nil, &FormatError{Raw: text, Err: errors.New("no balanced object found")}
}

var fenceLine = regexp.MustCompile("(?m)^[ \t]*```[a-zA-Z]*[ \t]*$")

// stripFences removes markdown code fence marker lines while keeping their
// content. Only whole lines are touched: JSON strings cannot span lines, so
// backtick runs inside a value never sit alone on one and are preserved.
func stripFences(text string) string {
	return strings.TrimSpace(fenceLine.ReplaceAllString(text, ""))
}
