// Package vector provides an immutable n-dimensional vector value type
// with the usual geometric toolbox.
//
// What:
//
//   - Vector wraps a fixed-length tuple of float64 components.
//   - Norm, Normalized, Dot (method and free function), Cross (3D only).
//   - Componentwise Add/Sub, scalar Scale/Div.
//   - 2D rotation by an angle in degrees, general transformation by a
//     square row grid, and left-multiplication by an arbitrary row grid.
//   - Argument: the clockwise angle in degrees between a 2D vector and +y.
//
// Why:
//
//   - Geometry & physics: headings, displacements, force composition.
//   - Building block for package matrix: row/column views and dot products.
//
// All operations are pure: a Vector is never mutated after construction,
// and every result is a fresh value. Instances are safe to share across
// goroutines without synchronization.
//
// Complexity:
//
//   - All operations run in O(n) time for an n-dimensional vector;
//     Apply runs in O(r·n) for an r-row grid.
//
// Errors:
//
//   - ErrDimensionMismatch: pairwise operation on vectors of different lengths.
//   - ErrNot2D: 2D-only operation (Rotated, Argument) on another dimension.
//   - ErrNot3D: cross product on non-3-dimensional vectors.
//   - ErrZeroNorm: normalizing (or measuring the angle of) a zero vector.
//   - ErrZeroDivisor: Div by exactly zero.
//   - ErrShapeMismatch: row grid incompatible with the vector's dimension.
//   - ErrOutOfRange: component index outside [0, Dim).
package vector
