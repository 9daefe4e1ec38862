package vector

import "errors"

var (
	// ErrDimensionMismatch indicates a pairwise operation (Add, Sub, Dot)
	// over vectors of different lengths.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrNot2D indicates a 2D-only operation (Rotated, Argument) was
	// applied to a vector of another dimension.
	ErrNot2D = errors.New("vector: operation requires a 2-dimensional vector")

	// ErrNot3D indicates a cross product over vectors that are not both
	// exactly 3-dimensional.
	ErrNot3D = errors.New("vector: cross product requires 3-dimensional vectors")

	// ErrZeroNorm indicates an operation that divides by the norm
	// (Normalized, Argument) was applied to a zero vector.
	ErrZeroNorm = errors.New("vector: zero vector has no direction")

	// ErrZeroDivisor indicates Div was called with a zero scalar.
	ErrZeroDivisor = errors.New("vector: division by zero scalar")

	// ErrShapeMismatch indicates a row grid whose rows do not match the
	// vector's dimension (Apply), or that is not square of the vector's
	// dimension (Transformed).
	ErrShapeMismatch = errors.New("vector: matrix shape incompatible with vector dimension")

	// ErrOutOfRange indicates a component index outside [0, Dim).
	ErrOutOfRange = errors.New("vector: component index out of range")
)
