// pkg/utils/math.go
package utils

import "math"

// Abs returns the absolute value of x.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Mod returns x modulo n in the range [0, n). n must be positive.
func Mod(x, n int) int {
	return (x%n + n) % n
}

// ModFloat returns x modulo n in the range [0, n). n must be positive.
func ModFloat(x, n float64) float64 {
	r := math.Mod(x, n)
	if r < 0 {
		r += n
	}
	// math.Mod of a tiny negative value can round back up to n.
	if r >= n {
		r -= n
	}
	return r
}

// ModularAdd adds delta to x and wraps the result into [0, n).
func ModularAdd(x, delta, n int) int {
	return Mod(x+delta, n)
}
