package utils

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// CoerceFloat converts loosely-typed numeric input (admin forms may submit
// prices as text) into a float64. Anything that does not parse cleanly,
// including NaN and infinities, becomes 0.
func CoerceFloat(v any) float64 {
	var f float64
	switch val := v.(type) {
	case float64:
		f = val
	case float32:
		f = float64(val)
	case int:
		f = float64(val)
	case int32:
		f = float64(val)
	case int64:
		f = float64(val)
	case json.Number:
		parsed, err := val.Float64()
		if err != nil {
			return 0
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// CoerceInt converts loosely-typed numeric input into an int, truncating
// fractional values. Unparseable input becomes 0.
func CoerceInt(v any) int {
	return int(CoerceFloat(v))
}
