package cart

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// MaxQuantity is the largest value ParseQuantity returns.
const MaxQuantity = math.MaxInt32

// ParseQuantity normalizes raw user input to a valid quantity. Fractions are
// truncated; anything non-numeric or below 1 becomes 1.
func ParseQuantity(raw string) int {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.Atoi(raw); err == nil {
		return clamp(n)
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 1
	}
	f = math.Trunc(f)
	if f >= MaxQuantity {
		return MaxQuantity
	}
	return clamp(int(f))
}

func clamp(n int) int {
	switch {
	case n < 1:
		return 1
	case n > MaxQuantity:
		return MaxQuantity
	}
	return n
}

// QuantityFromValue normalizes a decoded JSON scalar. Strings and numbers are
// parsed like ParseQuantity; anything else becomes 1.
func QuantityFromValue(v any) int {
	switch q := v.(type) {
	case string:
		return ParseQuantity(q)
	case json.Number:
		return ParseQuantity(q.String())
	case float64:
		return ParseQuantity(strconv.FormatFloat(q, 'f', -1, 64))
	case int:
		return clamp(q)
	default:
		return 1
	}
}
