package domain

import (
	"math"
	"strconv"
	"strings"
)

// ToFloat coerces a raw value to a float. Anything that does not parse as a
// number becomes nil, mirroring pandas' errors="coerce".
func ToFloat(v any) *float64 {
	switch x := v.(type) {
	case nil:
		return nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil
		}
		f := x
		return &f
	case float32:
		f := float64(x)
		return &f
	case int:
		f := float64(x)
		return &f
	case int64:
		f := float64(x)
		return &f
	case string:
		s := strings.TrimSpace(strings.ReplaceAll(x, ",", "."))
		if s == "" {
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		return &f
	default:
		return nil
	}
}

// ToInt coerces a raw value to an integer, rounding first so "3.7" becomes 4
// instead of being truncated to 3. Unparseable values become nil.
func ToInt(v any) *int64 {
	f := ToFloat(v)
	if f == nil {
		return nil
	}
	n := int64(math.Round(*f))
	return &n
}

// Ptr helpers used by mappers and tests.

func IntPtr(n int64) *int64 { return &n }

func FloatPtr(f float64) *float64 { return &f }

func StringPtr(s string) *string { return &s }
