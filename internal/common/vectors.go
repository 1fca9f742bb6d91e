package common

import "math"

// Float is the element type of a vector.
type Float interface {
	~float32 | ~float64
}

// DotProduct returns the dot product of two vectors of equal length,
// accumulated in float64.
func DotProduct[T Float](a, b []T) float64 {
	var dot float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
	}
	return dot
}

// Norm returns the L2 norm of v.
func Norm[T Float](v []T) float64 {
	return math.Sqrt(DotProduct(v, v))
}

// Normalize returns a unit-length copy of v in float64.
// It returns false when v has zero length or a zero norm.
func Normalize[T Float](v []T) ([]float64, bool) {
	n := Norm(v)
	if len(v) == 0 || n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return nil, false
	}
	out := make([]float64, len(v))
	for i := range v {
		out[i] = float64(v[i]) / n
	}
	return out, true
}
