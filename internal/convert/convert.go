// Package convert provides the saturating numeric conversions that generated
// converters call in place of the schema's ToInt32 and ToUInt64 casts.
//
// Values outside the target range clamp to its nearest bound and NaN becomes
// zero, so a corrupted wire value can never wrap into a plausible-looking one.
package convert

import "math"

// Number is any built-in integer or floating point type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// ToInt32 converts v to int32, clamping to [math.MinInt32, math.MaxInt32].
func ToInt32[T Number](v T) int32 {
	return int32(clamp(v, math.MinInt32, math.MaxInt32))
}

// ToUInt64 converts v to uint64. Negative values and NaN become 0.
func ToUInt64[T Number](v T) uint64 {
	switch x := any(v).(type) {
	case float32:
		return floatToUint64(float64(x))
	case float64:
		return floatToUint64(x)
	}

	if isNegative(v) {
		return 0
	}

	return uint64(v)
}

// ToInt64 converts v to int64, clamping to the int64 range.
func ToInt64[T Number](v T) int64 {
	switch x := any(v).(type) {
	case float32:
		return floatToInt64(float64(x))
	case float64:
		return floatToInt64(x)
	}

	if !isNegative(v) && uint64(v) > math.MaxInt64 {
		return math.MaxInt64
	}

	return int64(v)
}

// ToUInt32 converts v to uint32, clamping to [0, math.MaxUint32].
func ToUInt32[T Number](v T) uint32 {
	return uint32(clamp(v, 0, math.MaxUint32))
}

func isNegative[T Number](v T) bool {
	var zero T
	return v < zero
}

// clamp works in int64 space for integers and float64 space for floats; the
// bounds passed by callers fit both.
func clamp[T Number](v T, lo, hi int64) int64 {
	switch x := any(v).(type) {
	case float32:
		return clampFloat(float64(x), lo, hi)
	case float64:
		return clampFloat(x, lo, hi)
	}

	if isNegative(v) {
		n := int64(v)
		if n < lo {
			return lo
		}

		return n
	}

	u := uint64(v)
	if u > uint64(hi) {
		return hi
	}

	return int64(u)
}

func clampFloat(f float64, lo, hi int64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f <= float64(lo):
		return lo
	case f >= float64(hi):
		return hi
	}

	return int64(f)
}

func floatToUint64(f float64) uint64 {
	switch {
	case math.IsNaN(f), f <= 0:
		return 0
	case f >= math.MaxUint64:
		return math.MaxUint64
	}

	return uint64(f)
}

func floatToInt64(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f <= math.MinInt64:
		return math.MinInt64
	case f >= math.MaxInt64:
		return math.MaxInt64
	}

	return int64(f)
}
