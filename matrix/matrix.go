// Package matrix: the Matrix value type, constructors and accessors.
// Arithmetic lives in ops.go, the determinant family in determinant.go,
// shared shape checks in validators.go.
package matrix

import (
	"fmt"
	"strings"

	"github.com/kwhuang/linalg/vector"
)

// Matrix is an immutable rectangular grid of float64 values, stored as
// rows of equal length. The canonical empty matrix holds a single empty
// row, so Rows() == 1 and Cols() == 0. Construct via New, Empty or
// Identity; every operation returns a fresh Matrix.
type Matrix struct {
	rows [][]float64 // private backing rows, never aliased outward
}

// New builds a Matrix from a grid of rows, deep-copying the input.
// Returns ErrNotRectangular unless every row has the same length.
// Nil or empty input yields the canonical empty matrix.
// Complexity: O(r·c).
func New(rows [][]float64) (Matrix, error) {
	if len(rows) == 0 {
		return Empty(), nil
	}
	if err := validateRectangular(rows); err != nil {
		return Matrix{}, fmt.Errorf("New: %w", err)
	}

	out := make([][]float64, len(rows))
	for i, row := range rows {
		out[i] = make([]float64, len(row))
		copy(out[i], row)
	}

	return Matrix{rows: out}, nil
}

// Empty returns the canonical empty matrix: one row of zero columns.
// Complexity: O(1).
func Empty() Matrix {
	return Matrix{rows: [][]float64{{}}}
}

// Identity returns the n×n identity matrix.
// Returns ErrInvalidDimensions when n <= 0.
// Complexity: O(n²).
func Identity(n int) (Matrix, error) {
	if n <= 0 {
		return Matrix{}, fmt.Errorf("Identity(%d): %w", n, ErrInvalidDimensions)
	}

	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		rows[i][i] = 1
	}

	return Matrix{rows: rows}, nil
}

// Rows returns the number of rows. The empty matrix reports 1.
// Complexity: O(1).
func (m Matrix) Rows() int {
	if m.rows == nil {
		return 1 // zero value behaves as the canonical empty matrix
	}

	return len(m.rows)
}

// Cols returns the number of columns (uniform across rows).
// Complexity: O(1).
func (m Matrix) Cols() int {
	if len(m.rows) == 0 {
		return 0
	}

	return len(m.rows[0])
}

// IsEmpty reports whether the matrix has no entries.
// Complexity: O(1).
func (m Matrix) IsEmpty() bool {
	return m.Cols() == 0
}

// IsSquare reports whether the row and column counts are equal.
// The empty matrix (1 row, 0 columns) is not square.
// Complexity: O(1).
func (m Matrix) IsSquare() bool {
	return m.Rows() == m.Cols()
}

// At retrieves the entry at (i, j).
// Returns ErrOutOfRange on invalid indices.
// Complexity: O(1).
func (m Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return 0, fmt.Errorf("At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return m.rows[i][j], nil
}

// RowVec materializes row n as a Vector (a copy, not a live view).
// Returns ErrOutOfRange on an invalid index.
// Complexity: O(c).
func (m Matrix) RowVec(n int) (vector.Vector, error) {
	if n < 0 || n >= m.Rows() {
		return vector.Vector{}, fmt.Errorf("RowVec(%d): %w", n, ErrOutOfRange)
	}
	if m.rows == nil {
		return vector.New(), nil // zero value: the empty matrix's empty row
	}

	return vector.New(m.rows[n]...), nil
}

// ColVec materializes column n as a Vector (a copy, not a live view).
// Returns ErrOutOfRange on an invalid index.
// Complexity: O(r).
func (m Matrix) ColVec(n int) (vector.Vector, error) {
	if n < 0 || n >= m.Cols() {
		return vector.Vector{}, fmt.Errorf("ColVec(%d): %w", n, ErrOutOfRange)
	}

	col := make([]float64, len(m.rows))
	for i, row := range m.rows {
		col[i] = row[n]
	}

	return vector.New(col...), nil
}

// Values returns a deep copy of the backing rows.
// Mutating the returned grid does not affect the matrix.
// Complexity: O(r·c).
func (m Matrix) Values() [][]float64 {
	if m.rows == nil {
		return [][]float64{{}}
	}

	out := make([][]float64, len(m.rows))
	for i, row := range m.rows {
		out[i] = make([]float64, len(row))
		copy(out[i], row)
	}

	return out
}

// String renders the matrix with one bracketed row per line, the whole
// wrapped in outer brackets, e.g. "[[1, 2]\n[3, 4]]".
// Complexity: O(r·c).
func (m Matrix) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, row := range m.Values() {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteByte('[')
		for j, val := range row {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(fmt.Sprintf("%g", val))
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(']')

	return sb.String()
}
