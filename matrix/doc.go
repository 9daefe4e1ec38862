// Package matrix provides an immutable rectangular matrix value type with
// arithmetic and the determinant family via recursive cofactor expansion.
//
// What:
//
//   - Matrix wraps a rectangular grid of float64 (rows of equal length).
//   - Entrywise Add/Sub, scalar Scale/Div, matrix product Mul built on
//     package vector dot products, matrix-vector product MulVec, Transpose.
//   - Determinant / SubMatrix / Minors / Cofactors / Inverse: the
//     textbook Laplace expansion along the first row, recursing over
//     column-index views instead of materializing submatrices.
//   - Row/column extraction as vector.Vector values (RowVec, ColVec).
//
// Why:
//
//   - Exact small-matrix algebra: geometry, change-of-basis, 2D/3D
//     transforms, solving tiny linear systems via the adjugate.
//   - A readable reference implementation of cofactor expansion.
//
// Matrices are value objects: construction deep-copies the input, every
// operation returns a fresh Matrix, and no method mutates its receiver,
// so instances are safe to share across goroutines.
//
// Complexity:
//
//   - Add/Sub/Scale/Transpose: O(r·c). Mul: O(r·n·c).
//   - Determinant: O(n!) by construction — cofactor expansion, not LU.
//     Minors/Cofactors/Inverse: n² determinants of (n-1)-sized views.
//
// Errors:
//
//   - ErrNotRectangular: construction from rows of differing lengths.
//   - ErrDimensionMismatch: Add/Sub shape mismatch, Mul inner mismatch.
//   - ErrNonSquare: determinant family on a non-square matrix.
//   - ErrSingular: inverting a matrix whose determinant is exactly 0.
//   - ErrZeroDivisor: Div by exactly zero.
//   - ErrOutOfRange: row/column index outside the matrix bounds.
//   - ErrInvalidDimensions: Identity with n <= 0.
package matrix
