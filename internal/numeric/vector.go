package numeric

import "math"

// Dot returns the inner product of two equal-length vectors.
func Dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// Norm returns the Euclidean norm of v.
func Norm(v []float64) float64 {
	return math.Sqrt(Dot(v, v))
}

// MaxAbs returns the component of v with the largest magnitude, keeping
// its sign, and that magnitude. A zero vector yields (0, 0).
func MaxAbs(v []float64) (value, magnitude float64) {
	for _, x := range v {
		if m := math.Abs(x); m > magnitude {
			value, magnitude = x, m
		}
	}
	return value, magnitude
}

// CloneVec returns a copy of v.
func CloneVec(v []float64) []float64 {
	c := make([]float64, len(v))
	copy(c, v)
	return c
}

// IsFinite reports whether every component of v is finite.
func IsFinite(v []float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
