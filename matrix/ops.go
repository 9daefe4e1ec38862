// Package matrix: arithmetic over Matrix values — scalar scaling,
// entrywise addition/subtraction, matrix and matrix-vector products, and
// transposition. Every function validates first, then allocates exactly
// one result; operands are never mutated.
package matrix

import (
	"fmt"

	"github.com/kwhuang/linalg/vector"
)

// Scale returns the matrix with every entry multiplied by k.
// Complexity: O(r·c).
func (m Matrix) Scale(k float64) Matrix {
	out := m.Values()
	for i, row := range out {
		for j := range row {
			out[i][j] *= k
		}
	}

	return Matrix{rows: out}
}

// Div returns the matrix scaled by 1/k.
// Returns ErrZeroDivisor when k is exactly 0.
// Complexity: O(r·c).
func (m Matrix) Div(k float64) (Matrix, error) {
	if k == 0 {
		return Matrix{}, fmt.Errorf("Div: %w", ErrZeroDivisor)
	}

	return m.Scale(1 / k), nil
}

// Add returns the entrywise sum a + b.
// Returns ErrDimensionMismatch when shapes differ.
// Complexity: O(r·c).
func Add(a, b Matrix) (Matrix, error) {
	return addSub(a, b, +1, "Add")
}

// Sub returns the entrywise difference a - b.
// Returns ErrDimensionMismatch when shapes differ.
// Complexity: O(r·c).
func Sub(a, b Matrix) (Matrix, error) {
	return addSub(a, b, -1, "Sub")
}

// addSub computes a + sign*b for sign ∈ {+1, -1}; shared by Add/Sub.
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	if err := validateSameShape(a, b); err != nil {
		return Matrix{}, fmt.Errorf("%s: %dx%d and %dx%d: %w", opTag, a.Rows(), a.Cols(), b.Rows(), b.Cols(), err)
	}

	out := a.Values()
	for i, row := range out {
		for j := range row {
			out[i][j] += sign * b.rows[i][j]
		}
	}

	return Matrix{rows: out}, nil
}

// Mul returns the standard matrix product a × b: entry (i, j) is the dot
// product of row i of a with column j of b, computed via package vector.
// The empty matrix times the empty matrix yields the empty matrix.
// Returns ErrDimensionMismatch when a.Cols() != b.Rows().
// Complexity: O(r·n·c).
func Mul(a, b Matrix) (Matrix, error) {
	if a.IsEmpty() && b.IsEmpty() {
		return Empty(), nil
	}
	if err := validateMulCompatible(a, b); err != nil {
		return Matrix{}, fmt.Errorf("Mul: %dx%d by %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), err)
	}

	// Materialize b's columns once; each is reused for every row of a.
	cols := make([]vector.Vector, b.Cols())
	var err error
	for j := range cols {
		if cols[j], err = b.ColVec(j); err != nil {
			return Matrix{}, fmt.Errorf("Mul: %w", err)
		}
	}

	out := make([][]float64, a.Rows())
	var rv vector.Vector
	for i := range out {
		if rv, err = a.RowVec(i); err != nil {
			return Matrix{}, fmt.Errorf("Mul: %w", err)
		}
		out[i] = make([]float64, b.Cols())
		for j := range out[i] {
			if out[i][j], err = vector.Dot(rv, cols[j]); err != nil {
				return Matrix{}, fmt.Errorf("Mul: %w", err)
			}
		}
	}

	return Matrix{rows: out}, nil
}

// MulVec returns the matrix-vector product m · v, delegating to
// vector.Apply over the matrix rows.
// Returns vector.ErrShapeMismatch when m.Cols() != v.Dim().
// Complexity: O(r·c).
func MulVec(m Matrix, v vector.Vector) (vector.Vector, error) {
	return vector.Apply(m.Values(), v)
}

// Transpose returns the matrix with row and column indices swapped.
// Transposing is involutive; the empty matrix transposes to itself.
// Complexity: O(r·c).
func (m Matrix) Transpose() Matrix {
	if m.IsEmpty() {
		return Empty()
	}

	out := make([][]float64, m.Cols())
	for j := range out {
		out[j] = make([]float64, len(m.rows))
		for i, row := range m.rows {
			out[j][i] = row[j]
		}
	}

	return Matrix{rows: out}
}

// IsCompatible reports whether a × b is defined, i.e. a's column count
// equals b's row count.
// Complexity: O(1).
func IsCompatible(a, b Matrix) bool {
	return a.Cols() == b.Rows()
}
