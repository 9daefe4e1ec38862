// Package vector: the Vector value type, constructors and accessors.
// Operations live in ops.go (algebra) and transform.go (geometry).
package vector

import (
	"fmt"
	"strings"
)

// Vector is an immutable, fixed-length tuple of float64 components.
// The zero value is the zero-dimension vector. Construct via New, Zero
// or Zero2D; every operation returns a fresh Vector.
type Vector struct {
	comps []float64 // private backing storage, never aliased outward
}

// New builds a Vector from the supplied components.
// Calling New with no components yields the zero-dimension vector;
// use Zero2D or Zero for explicit zero vectors.
// Complexity: O(n) copy.
func New(components ...float64) Vector {
	// Copy the variadic slice so later caller mutations cannot leak in.
	comps := make([]float64, len(components))
	copy(comps, components)

	return Vector{comps: comps}
}

// Zero2D returns the canonical 2-dimensional zero vector (0, 0).
// Complexity: O(1).
func Zero2D() Vector {
	return Vector{comps: make([]float64, 2)}
}

// Zero returns the n-dimensional zero vector.
// Negative n is treated as zero-dimension.
// Complexity: O(n).
func Zero(n int) Vector {
	if n < 0 {
		n = 0
	}

	return Vector{comps: make([]float64, n)}
}

// Dim returns the number of components.
// Complexity: O(1).
func (v Vector) Dim() int {
	return len(v.comps)
}

// At retrieves component i.
// Returns ErrOutOfRange if i < 0 or i >= Dim().
// Complexity: O(1).
func (v Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.comps) {
		return 0, fmt.Errorf("At(%d): %w", i, ErrOutOfRange)
	}

	return v.comps[i], nil
}

// Components returns a copy of the component slice.
// Mutating the returned slice does not affect the vector.
// Complexity: O(n).
func (v Vector) Components() []float64 {
	out := make([]float64, len(v.comps))
	copy(out, v.comps)

	return out
}

// String renders the vector as its component tuple, e.g. "(1, 2, 3)".
// Complexity: O(n).
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, c := range v.comps {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprintf("%g", c))
	}
	sb.WriteByte(')')

	return sb.String()
}
