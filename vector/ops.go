// Package vector: pure algebraic operations — norm, normalization,
// dot and cross products, componentwise arithmetic and scalar scaling.
// Every function validates first, then allocates exactly one result.
package vector

import (
	"fmt"
	"math"
)

// Norm returns the Euclidean norm: sqrt of the sum of squared components.
// The norm of the zero-dimension vector is 0.
// Complexity: O(n).
func (v Vector) Norm() float64 {
	var sum float64
	for _, c := range v.comps {
		sum += c * c
	}

	return math.Sqrt(sum)
}

// Normalized returns the unit vector pointing in the same direction.
// Returns ErrZeroNorm if the norm is exactly 0.
// Complexity: O(n).
func (v Vector) Normalized() (Vector, error) {
	norm := v.Norm()
	if norm == 0 {
		return Vector{}, fmt.Errorf("Normalized: %w", ErrZeroNorm)
	}

	return v.Scale(1 / norm), nil
}

// Dot returns the dot (inner) product of v and other.
// Both vectors must have the same dimension; unlike a silent zip-style
// pairing, a length mismatch is an error, never a truncation.
// Complexity: O(n).
func (v Vector) Dot(other Vector) (float64, error) {
	if len(v.comps) != len(other.comps) {
		return 0, fmt.Errorf("Dot: %d vs %d: %w", len(v.comps), len(other.comps), ErrDimensionMismatch)
	}

	var sum float64
	for i, c := range v.comps {
		sum += c * other.comps[i]
	}

	return sum, nil
}

// Dot is the free-function form of Vector.Dot.
// Complexity: O(n).
func Dot(u, v Vector) (float64, error) {
	return u.Dot(v)
}

// Cross returns the standard 3D cross product u × v.
// Returns ErrNot3D unless both vectors have exactly 3 components.
// Complexity: O(1).
func Cross(u, v Vector) (Vector, error) {
	if u.Dim() != 3 || v.Dim() != 3 {
		return Vector{}, fmt.Errorf("Cross: %w", ErrNot3D)
	}

	return New(
		u.comps[1]*v.comps[2]-u.comps[2]*v.comps[1],
		u.comps[2]*v.comps[0]-u.comps[0]*v.comps[2],
		u.comps[0]*v.comps[1]-u.comps[1]*v.comps[0],
	), nil
}

// Add returns the componentwise sum v + other.
// Returns ErrDimensionMismatch when lengths differ.
// Complexity: O(n).
func (v Vector) Add(other Vector) (Vector, error) {
	return v.addSub(other, +1, "Add")
}

// Sub returns the componentwise difference v - other.
// Returns ErrDimensionMismatch when lengths differ.
// Complexity: O(n).
func (v Vector) Sub(other Vector) (Vector, error) {
	return v.addSub(other, -1, "Sub")
}

// addSub computes v + sign*other for sign ∈ {+1, -1}; shared by Add/Sub.
func (v Vector) addSub(other Vector, sign float64, opTag string) (Vector, error) {
	if len(v.comps) != len(other.comps) {
		return Vector{}, fmt.Errorf("%s: %d vs %d: %w", opTag, len(v.comps), len(other.comps), ErrDimensionMismatch)
	}

	out := make([]float64, len(v.comps))
	for i, c := range v.comps {
		out[i] = c + sign*other.comps[i]
	}

	return Vector{comps: out}, nil
}

// Scale returns the vector with every component multiplied by k.
// Complexity: O(n).
func (v Vector) Scale(k float64) Vector {
	out := make([]float64, len(v.comps))
	for i, c := range v.comps {
		out[i] = c * k
	}

	return Vector{comps: out}
}

// Div returns the vector scaled by 1/k.
// Returns ErrZeroDivisor when k is exactly 0.
// Complexity: O(n).
func (v Vector) Div(k float64) (Vector, error) {
	if k == 0 {
		return Vector{}, fmt.Errorf("Div: %w", ErrZeroDivisor)
	}

	return v.Scale(1 / k), nil
}
