// Package matrix_test contains unit tests for the determinant family:
// Determinant, SubMatrix, Minors, Cofactors and Inverse.
package matrix_test

import (
	"testing"

	"github.com/kwhuang/linalg/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDeterminant checks hand-computed determinants from 1×1 up to 4×4.
func TestDeterminant(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
		want float64
	}{
		{name: "1x1", rows: [][]float64{{3}}, want: 3},
		{name: "2x2", rows: [][]float64{{1, 2}, {3, 4}}, want: -2},
		{name: "3x3", rows: [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 10}}, want: -3},
		{name: "3x3 singular", rows: [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, want: 0},
		{name: "4x4 diagonal", rows: [][]float64{{2, 0, 0, 0}, {0, 3, 0, 0}, {0, 0, 4, 0}, {0, 0, 0, 5}}, want: 120},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := mustNew(t, tc.rows).Determinant()
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, floatTol)
		})
	}
}

// TestDeterminantNonSquare ensures rectangular and empty matrices are rejected.
func TestDeterminantNonSquare(t *testing.T) {
	_, err := mustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}}).Determinant()
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Empty().Determinant() // 1 row, 0 columns
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestDeterminantTransposeInvariant checks det(Aᵀ) == det(A).
func TestDeterminantTransposeInvariant(t *testing.T) {
	m := mustNew(t, [][]float64{{2, -1, 0}, {3, 5, 1}, {-2, 4, 7}})

	d, err := m.Determinant()
	require.NoError(t, err)
	dt, err := m.Transpose().Determinant()
	require.NoError(t, err)

	assert.InDelta(t, d, dt, floatTol)
}

// TestSubMatrix verifies row/column deletion and its bounds guard.
func TestSubMatrix(t *testing.T) {
	m := mustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	sub, err := m.SubMatrix(0, 1)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{4, 6}, {7, 9}}, sub.Values())

	sub, err = m.SubMatrix(2, 2)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2}, {4, 5}}, sub.Values())

	// deleting the only row of a 1×1 leaves the empty matrix
	one := mustNew(t, [][]float64{{7}})
	sub, err = one.SubMatrix(0, 0)
	require.NoError(t, err)
	require.True(t, sub.IsEmpty())

	_, err = m.SubMatrix(3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.SubMatrix(0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestMinorsAndCofactors checks the 2×2 closed forms and sign alternation.
func TestMinorsAndCofactors(t *testing.T) {
	m := mustNew(t, [][]float64{{1, 2}, {3, 4}})

	minors, err := m.Minors()
	require.NoError(t, err)
	require.Equal(t, [][]float64{{4, 3}, {2, 1}}, minors.Values())

	cof, err := m.Cofactors()
	require.NoError(t, err)
	require.Equal(t, [][]float64{{4, -3}, {-2, 1}}, cof.Values())

	_, err = mustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}}).Minors()
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestInverse checks the hand-computed 2×2 inverse and that A·A⁻¹ is the
// identity within tolerance, for a couple of sizes.
func TestInverse(t *testing.T) {
	m := mustNew(t, [][]float64{{1, 2}, {3, 4}})

	inv, err := m.Inverse()
	require.NoError(t, err)
	requireMatrixInDelta(t, mustNew(t, [][]float64{{-2, 1}, {1.5, -0.5}}), inv)

	for _, rows := range [][][]float64{
		{{1, 2}, {3, 4}},
		{{2, -1, 0}, {1, 3, -2}, {0, 1, 1}},
	} {
		a := mustNew(t, rows)
		inv, err = a.Inverse()
		require.NoError(t, err)

		prod, mulErr := matrix.Mul(a, inv)
		require.NoError(t, mulErr)
		id, idErr := matrix.Identity(a.Rows())
		require.NoError(t, idErr)
		requireMatrixInDelta(t, id, prod)
	}
}

// TestInverseSingular ensures a zero determinant is rejected exactly.
func TestInverseSingular(t *testing.T) {
	m := mustNew(t, [][]float64{{1, 2}, {2, 4}}) // rows are linearly dependent

	_, err := m.Inverse()
	require.ErrorIs(t, err, matrix.ErrSingular)
}

// TestInverseNonSquare ensures rectangular input is rejected up front.
func TestInverseNonSquare(t *testing.T) {
	_, err := mustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}}).Inverse()
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
