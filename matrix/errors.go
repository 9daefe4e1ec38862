// Package matrix: sentinel error set. All operations return these
// sentinels (possibly wrapped with operation context via %w) and callers
// match them with errors.Is. No operation panics on user input.
package matrix

import "errors"

var (
	// ErrNotRectangular indicates construction from rows of differing lengths.
	ErrNotRectangular = errors.New("matrix: matrix must be rectangular")

	// ErrDimensionMismatch indicates incompatible dimensions between operands:
	// Add/Sub over different shapes, or Mul where a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't (determinant, minors, cofactors, inverse).
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when inverting a matrix whose determinant is
	// exactly 0. The check is exact equality; there is no epsilon.
	ErrSingular = errors.New("matrix: singular matrix has no inverse")

	// ErrZeroDivisor indicates Div was called with a zero scalar.
	ErrZeroDivisor = errors.New("matrix: division by zero scalar")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidDimensions indicates a requested dimension that is not positive.
	ErrInvalidDimensions = errors.New("matrix: dimension must be > 0")
)
