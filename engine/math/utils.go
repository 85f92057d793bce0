package math

import "golang.org/x/exp/constraints"

// Clamp returns the value `f` clamped to the range [low, high].
// It works for any numeric type (integers and floats).
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

// Clamp01 clamps `f` to the range [0, 1].
func Clamp01[T constraints.Float](f T) T {
	return Clamp(f, 0, 1)
}

// absInt returns the absolute value of an integer component.
func absInt[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
