// Package linalg is a small, dependency-free linear-algebra toolkit for
// dense, small-to-medium matrices and n-dimensional vectors.
//
// What's inside?
//
//	A pure-Go library built from two packages:
//		• vector/ — immutable n-dimensional vectors: norm, dot & cross
//		  products, 2D rotation, angle measurement, matrix application
//		• matrix/ — immutable rectangular matrices: arithmetic, transpose,
//		  and the determinant / minors / cofactors / inverse family via
//		  recursive cofactor (Laplace) expansion
//
// Why choose linalg?
//
//   - Value semantics – every operation returns a fresh value; nothing is
//     ever mutated, so instances are safe to share across goroutines
//   - Explicit errors – shape and dimension violations surface as sentinel
//     errors matched with errors.Is; no panics on user input
//   - Pure Go – no cgo, no numeric dependencies
//
// The cofactor-expansion routines are intentionally the textbook recursive
// algorithm: exact results for small matrices, O(n!) cost for large ones.
// Callers needing bounded latency should cap input dimension externally;
// callers needing numerical stability at scale should reach for a
// factorization-based library instead.
//
//	go get github.com/kwhuang/linalg
package linalg
