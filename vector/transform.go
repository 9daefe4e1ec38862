// Package vector: geometric transformations — 2D rotation, rotation by an
// arbitrary square grid, left-multiplication by a row grid, and the
// clockwise angle from +y (Argument).
package vector

import (
	"fmt"
	"math"
)

// degPerRad converts radians to degrees without magic numbers inline.
const degPerRad = 180.0 / math.Pi

// Argument returns the angle, in degrees, between the vector and the unit
// vector (0, 1), measured clockwise from +y. A first component below zero
// reflects the angle to the [180, 360) range to keep the clockwise sense.
//
// Returns ErrNot2D for vectors of any other dimension and ErrZeroNorm for
// the zero vector.
// Complexity: O(1).
func (v Vector) Argument() (float64, error) {
	if len(v.comps) != 2 {
		return 0, fmt.Errorf("Argument: %w", ErrNot2D)
	}
	norm := v.Norm()
	if norm == 0 {
		return 0, fmt.Errorf("Argument: %w", ErrZeroNorm)
	}

	// cos(angle) = dot((0,1), v) / |v|, then convert to degrees.
	d, err := New(0, 1).Dot(v)
	if err != nil {
		return 0, fmt.Errorf("Argument: %w", err)
	}
	deg := math.Acos(d/norm) * degPerRad

	if v.comps[0] < 0 {
		return 360 - deg, nil
	}

	return deg, nil
}

// Rotated returns the vector rotated by thetaDeg degrees, applying the
// standard 2×2 rotation matrix [[cosθ, -sinθ], [sinθ, cosθ]].
// Returns ErrNot2D for vectors of any other dimension.
// Complexity: O(1).
func (v Vector) Rotated(thetaDeg float64) (Vector, error) {
	if len(v.comps) != 2 {
		return Vector{}, fmt.Errorf("Rotated: %w", ErrNot2D)
	}

	theta := thetaDeg / degPerRad // degrees → radians
	dc, ds := math.Cos(theta), math.Sin(theta)
	x, y := v.comps[0], v.comps[1]

	return New(dc*x-ds*y, ds*x+dc*y), nil
}

// Transformed returns the vector rotated/transformed by an arbitrary square
// row grid of the vector's dimension, delegating to Apply.
// Returns ErrShapeMismatch when the grid is not square or its dimension
// differs from the vector's.
// Complexity: O(n²).
func (v Vector) Transformed(rows [][]float64) (Vector, error) {
	if len(rows) != len(v.comps) {
		return Vector{}, fmt.Errorf("Transformed: %d rows for %d components: %w", len(rows), len(v.comps), ErrShapeMismatch)
	}
	for i, row := range rows {
		if len(row) != len(v.comps) {
			return Vector{}, fmt.Errorf("Transformed: row %d has length %d: %w", i, len(row), ErrShapeMismatch)
		}
	}

	return Apply(rows, v)
}

// Apply left-multiplies v by a row grid: component i of the result is the
// dot product of rows[i] with v. The grid may be rectangular; every row
// must match the vector's dimension (ErrShapeMismatch otherwise).
//
// Example: Apply([[1,2,3],[-1,0,1],[3,4,5]], New(1,2,3)) → (14, 2, 26).
// Complexity: O(r·n) for r rows.
func Apply(rows [][]float64, v Vector) (Vector, error) {
	// Validate every row length up front, before any allocation.
	for i, row := range rows {
		if len(row) != len(v.comps) {
			return Vector{}, fmt.Errorf("Apply: row %d has length %d, want %d: %w", i, len(row), len(v.comps), ErrShapeMismatch)
		}
	}

	out := make([]float64, len(rows))
	var sum float64
	for i, row := range rows {
		sum = 0
		for j, c := range row {
			sum += c * v.comps[j]
		}
		out[i] = sum
	}

	return Vector{comps: out}, nil
}
