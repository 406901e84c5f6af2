package pipeline

import (
	"fmt"
	"math"
)

// Value is one scalar element flowing through a pipeline: string, int64,
// float64, or bool. Normalize converts the wider set of types produced
// by YAML, JSON, and database drivers into exactly those four kinds.
type Value = any

// Normalize coerces a decoded scalar to a canonical Value kind.
// Integral floats stay floats; smaller integer types widen to int64.
func Normalize(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return nil, fmt.Errorf("null is not a valid pipeline value")
	case string:
		return x, nil
	case bool:
		return x, nil
	case int:
		return int64(x), nil
	case int8:
		return int64(x), nil
	case int16:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case int64:
		return x, nil
	case uint:
		return int64(x), nil
	case uint8:
		return int64(x), nil
	case uint16:
		return int64(x), nil
	case uint32:
		return int64(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return nil, fmt.Errorf("integer %d overflows int64", x)
		}
		return int64(x), nil
	case float32:
		return float64(x), nil
	case float64:
		return x, nil
	case []byte:
		return string(x), nil
	}
	return nil, fmt.Errorf("unsupported value type %T", v)
}

// NormalizeAll normalizes a whole sequence, reporting the index of the
// first offending element.
func NormalizeAll(in []any) ([]Value, error) {
	out := make([]Value, len(in))
	for i, v := range in {
		n, err := Normalize(v)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = n
	}
	return out, nil
}

// kindRank orders the scalar kinds for the natural comparator:
// bools sort before numbers, numbers before strings.
func kindRank(v Value) int {
	switch v.(type) {
	case bool:
		return 0
	case int64, float64:
		return 1
	case string:
		return 2
	}
	return 3
}

// asFloat widens a numeric Value for cross-kind comparison.
func asFloat(v Value) (float64, bool) {
	switch x := v.(type) {
	case int64:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}

// lessValue is the natural "sorts before" comparator over Values:
// kinds order bool < number < string; false sorts before true; numbers
// compare numerically across int64/float64; strings compare bytewise.
func lessValue(a, b Value) bool {
	ra, rb := kindRank(a), kindRank(b)
	if ra != rb {
		return ra < rb
	}
	switch ra {
	case 0:
		return !a.(bool) && b.(bool)
	case 1:
		fa, _ := asFloat(a)
		fb, _ := asFloat(b)
		return fa < fb
	case 2:
		return a.(string) < b.(string)
	}
	return false
}

// equalValue is deep equality over normalized Values: numbers compare
// numerically across kinds, everything else by ==.
func equalValue(a, b Value) bool {
	if fa, ok := asFloat(a); ok {
		fb, ok := asFloat(b)
		return ok && fa == fb
	}
	return a == b
}

// formatValue renders a Value for text output.
func formatValue(v Value) string {
	switch x := v.(type) {
	case string:
		return x
	case int64:
		return fmt.Sprintf("%d", x)
	case float64:
		return fmt.Sprintf("%g", x)
	case bool:
		return fmt.Sprintf("%t", x)
	}
	return fmt.Sprintf("%v", v)
}
