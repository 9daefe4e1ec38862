// Package matrix: the determinant family — recursive cofactor (Laplace)
// expansion along the first row, plus the submatrix, minors, cofactors
// and adjugate-based inverse built on top of it.
//
// The recursion never materializes submatrices: each level walks a shared
// row grid with an advancing top-row index and a shrinking set of live
// column indices. Results are identical to the materializing form; only
// the allocation pattern differs.
package matrix

import "fmt"

// Determinant computes the determinant by cofactor expansion along the
// first row: det = Σ_col (-1)^col · m[0][col] · det(m without row 0,
// column col), with the sole entry of a 1×1 matrix as the base case.
// Returns ErrNonSquare when the matrix is not square.
// Complexity: O(n!) time, O(n²) scratch space across recursion levels.
func (m Matrix) Determinant() (float64, error) {
	if err := validateSquare(m); err != nil {
		return 0, fmt.Errorf("Determinant: %dx%d: %w", m.Rows(), m.Cols(), err)
	}

	cols := make([]int, m.Cols())
	for j := range cols {
		cols[j] = j
	}

	return detView(m.rows, 0, cols), nil
}

// detView expands along row `top` of the grid, restricted to the live
// column indices in `cols`. Expansion always deletes the top remaining
// row, so rows are consumed in order and a single index suffices.
func detView(rows [][]float64, top int, cols []int) float64 {
	if len(cols) == 1 {
		return rows[top][cols[0]]
	}

	// One scratch buffer per level, refilled for each deleted column.
	sub := make([]int, len(cols)-1)
	var (
		det  float64
		sign = 1.0
	)
	for k, c := range cols {
		copy(sub, cols[:k])
		copy(sub[k:], cols[k+1:])
		det += sign * rows[top][c] * detView(rows, top+1, sub)
		sign = -sign
	}

	return det
}

// SubMatrix returns the matrix formed by deleting row i and column j —
// the building block of minors. Deleting from a 1×1 matrix yields the
// empty matrix.
// Returns ErrOutOfRange on invalid indices.
// Complexity: O(r·c).
func (m Matrix) SubMatrix(i, j int) (Matrix, error) {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return Matrix{}, fmt.Errorf("SubMatrix(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if m.Rows() == 1 {
		return Empty(), nil // deleting the only row leaves no entries
	}

	out := make([][]float64, 0, len(m.rows)-1)
	for r, row := range m.rows {
		if r == i {
			continue
		}
		kept := make([]float64, 0, len(row)-1)
		kept = append(kept, row[:j]...)
		kept = append(kept, row[j+1:]...)
		out = append(out, kept)
	}

	return Matrix{rows: out}, nil
}

// Minors returns the matrix whose (i, j) entry is the determinant of the
// submatrix deleting row i and column j.
// Returns ErrNonSquare for non-square input; a 1×1 matrix also fails,
// since its minors are determinants of the empty matrix.
// Complexity: n² determinants of (n-1)×(n-1) views.
func (m Matrix) Minors() (Matrix, error) {
	if err := validateSquare(m); err != nil {
		return Matrix{}, fmt.Errorf("Minors: %dx%d: %w", m.Rows(), m.Cols(), err)
	}

	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			sub, err := m.SubMatrix(i, j)
			if err != nil {
				return Matrix{}, fmt.Errorf("Minors: %w", err)
			}
			if out[i][j], err = sub.Determinant(); err != nil {
				return Matrix{}, fmt.Errorf("Minors: %w", err)
			}
		}
	}

	return Matrix{rows: out}, nil
}

// Cofactors returns the sign-alternated matrix of minors:
// cofactor(i, j) = (-1)^(i+j) · minor(i, j).
// Returns ErrNonSquare for non-square input.
// Complexity: dominated by Minors.
func (m Matrix) Cofactors() (Matrix, error) {
	minors, err := m.Minors()
	if err != nil {
		return Matrix{}, fmt.Errorf("Cofactors: %w", err)
	}

	out := minors.rows // Minors allocated these; safe to sign in place
	for i, row := range out {
		for j := range row {
			if (i+j)%2 != 0 {
				out[i][j] = -out[i][j]
			}
		}
	}

	return Matrix{rows: out}, nil
}

// Inverse computes the inverse via the adjugate: transpose the cofactor
// matrix and scale by the reciprocal determinant.
// Returns ErrSingular when the determinant is exactly 0 (no epsilon) and
// ErrNonSquare for non-square input.
// Complexity: dominated by the determinant family.
func (m Matrix) Inverse() (Matrix, error) {
	det, err := m.Determinant()
	if err != nil {
		return Matrix{}, fmt.Errorf("Inverse: %w", err)
	}
	if det == 0 {
		return Matrix{}, fmt.Errorf("Inverse: %w", ErrSingular)
	}

	cof, err := m.Cofactors()
	if err != nil {
		return Matrix{}, fmt.Errorf("Inverse: %w", err)
	}

	return cof.Transpose().Scale(1 / det), nil
}
