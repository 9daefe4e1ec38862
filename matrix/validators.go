// Package matrix: canonical shape checks shared by constructors and
// operations. Validators return plain sentinels; call sites wrap them
// with operation context so errors.Is keeps matching.
package matrix

// validateRectangular ensures every row of a grid has the same length.
// Assumes len(rows) > 0. Time: O(r).
func validateRectangular(rows [][]float64) error {
	want := len(rows[0])
	for _, row := range rows[1:] {
		if len(row) != want {
			return ErrNotRectangular
		}
	}

	return nil
}

// validateSameShape ensures a and b have equal dimensions.
// Time: O(1).
func validateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return ErrDimensionMismatch
	}

	return nil
}

// validateMulCompatible ensures the inner dimensions of a×b agree.
// Time: O(1).
func validateMulCompatible(a, b Matrix) error {
	if a.Cols() != b.Rows() {
		return ErrDimensionMismatch
	}

	return nil
}

// validateSquare ensures m has as many rows as columns.
// The empty matrix (1×0) is rejected. Time: O(1).
func validateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return ErrNonSquare
	}

	return nil
}
