package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// CoerceAmount converts an arbitrarily-typed amount value into a float64
// rounded to hundredths. Extraction output and human-edited table cells may
// carry amounts as numbers, json.Number, or strings with either decimal
// separator; anything unparseable coerces to 0 rather than failing, so a
// malformed cell never blocks review or aggregation of the rest of the
// ledger. Every numeric comparison and aggregation goes through this one
// function.
func CoerceAmount(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return RoundAmount(n)
	case float32:
		return RoundAmount(float64(n))
	case int:
		return RoundAmount(float64(n))
	case int64:
		return RoundAmount(float64(n))
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return RoundAmount(f)
	case string:
		s := strings.TrimSpace(n)
		s = strings.ReplaceAll(s, " ", "")
		s = strings.ReplaceAll(s, " ", "")
		// Comma-decimal input from localized cells.
		if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
			s = strings.Replace(s, ",", ".", 1)
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return RoundAmount(f)
	default:
		return 0
	}
}

// RoundAmount rounds to two-unit precision (hundredths).
func RoundAmount(v float64) float64 {
	return math.Round(v*100) / 100
}

// AmountCents returns the amount as integer hundredths. Duplicate matching
// compares cents so that float representation noise cannot split or merge
// logical keys.
func AmountCents(v float64) int64 {
	return int64(math.Round(v * 100))
}
