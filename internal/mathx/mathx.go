// Package mathx holds small generic numeric helpers.
package mathx

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Clamp limits v to [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampByte clamps v to [0, 255] and truncates it toward zero.
func ClampByte[T constraints.Float](v T) byte {
	f := float64(v)
	if math.IsNaN(f) {
		return 0
	}
	return byte(Clamp(f, 0, 255))
}

// Finite reports whether every value is neither NaN nor infinite.
func Finite[T constraints.Float](vals ...T) bool {
	for _, v := range vals {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
