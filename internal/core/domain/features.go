package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FeatureMap holds request features keyed by column name. Values are
// float64, string or bool once decoded from JSON.
type FeatureMap map[string]any

// Clone returns a shallow copy. A nil map clones to an empty one.
func (m FeatureMap) Clone() FeatureMap {
	out := make(FeatureMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Float converts a feature value to float64. Bools map to 1 and 0 and
// strings must parse as a finite number.
func Float(v any) (float64, error) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int32:
		f = float64(x)
	case int64:
		f = float64(x)
	case json.Number:
		parsed, err := x.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrFeatureCoercion, x.String())
		}
		f = parsed
	case bool:
		if x {
			return 1, nil
		}
		return 0, nil
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrFeatureCoercion, x)
		}
		f = parsed
	default:
		return 0, fmt.Errorf("%w: got %T", ErrInvalidFeatureValue, v)
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %v is not finite", ErrFeatureCoercion, f)
	}
	return f, nil
}

// ValidValue reports whether v is one of the scalar kinds a FeatureMap may hold.
func ValidValue(v any) bool {
	switch v.(type) {
	case float64, float32, int, int32, int64, json.Number, bool, string:
		return true
	}
	return false
}
