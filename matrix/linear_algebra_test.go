package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlcone/matrix"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

// hide wraps a Matrix to force the generic (non-*Dense) path.
type hide struct{ matrix.Matrix }

func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

func TestTranspose(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	require.Equal(t, 3, tr.Rows())
	require.Equal(t, 2, tr.Cols())
	v, err := tr.At(2, 1)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)

	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDet(t *testing.T) {
	cases := []struct {
		name string
		rows [][]float64
		want float64
	}{
		{"1x1", [][]float64{{-3}}, -3},
		{"diagonal", [][]float64{{2, 0}, {0, 2}}, 4},
		{"needs pivot", [][]float64{{0, 1}, {1, 0}}, -1},
		{"3x3", [][]float64{{2, -1, 0}, {-1, 2, -1}, {0, -1, 2}}, 4},
		{"singular", [][]float64{{1, 2}, {2, 4}}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := matrix.Det(mustRows(t, tc.rows))
			require.NoError(t, err)
			require.InDelta(t, tc.want, got, tol)

			// generic path must agree
			got, err = matrix.Det(hide{mustRows(t, tc.rows)})
			require.NoError(t, err)
			require.InDelta(t, tc.want, got, tol)
		})
	}
}

func TestDetNonSquare(t *testing.T) {
	_, err := matrix.Det(mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestLogDet(t *testing.T) {
	got, err := matrix.LogDet(mustRows(t, [][]float64{{2, 0}, {0, 2}}))
	require.NoError(t, err)
	require.InDelta(t, math.Log(4), got, tol)

	spd := mustRows(t, [][]float64{{4, 1, 0}, {1, 3, 1}, {0, 1, 2}})
	det, err := matrix.Det(spd)
	require.NoError(t, err)
	got, err = matrix.LogDet(spd)
	require.NoError(t, err)
	require.InDelta(t, math.Log(det), got, tol)

	// negative determinant → NaN, zero determinant → -Inf, no error
	got, err = matrix.LogDet(mustRows(t, [][]float64{{0, 1}, {1, 0}}))
	require.NoError(t, err)
	require.True(t, math.IsNaN(got))

	got, err = matrix.LogDet(mustRows(t, [][]float64{{1, 1}, {1, 1}}))
	require.NoError(t, err)
	require.True(t, math.IsInf(got, -1))

	// two negative pivots cancel out
	got, err = matrix.LogDet(mustRows(t, [][]float64{{-1, 0}, {0, -2}}))
	require.NoError(t, err)
	require.InDelta(t, math.Log(2), got, tol)
}

func TestLogDetLargeDoesNotOverflow(t *testing.T) {
	const n = 40
	m, err := matrix.NewIdentity(n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		require.NoError(t, m.Set(i, i, 1e10))
	}
	got, err := matrix.LogDet(m)
	require.NoError(t, err)
	require.InDelta(t, n*math.Log(1e10), got, 1e-6)
}

func TestEigenSym(t *testing.T) {
	vals, err := matrix.EigenSym(mustRows(t, [][]float64{{2, 1}, {1, 2}}), 1e-12, 100)
	require.NoError(t, err)
	require.Len(t, vals, 2)
	require.InDelta(t, 1.0, vals[0], tol)
	require.InDelta(t, 3.0, vals[1], tol)

	_, err = matrix.EigenSym(mustRows(t, [][]float64{{1, 2}, {0, 1}}), 1e-12, 100)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)

	_, err = matrix.EigenSym(mustRows(t, [][]float64{{2, 1}, {1, 2}}), 1e-12, 0)
	require.ErrorIs(t, err, matrix.ErrEigenFailed)
}

func TestMinEigenvalue(t *testing.T) {
	// [[D, Z], [Zᵀ, A]] with D = Z = A = 2I is PSD but singular.
	x := mustRows(t, [][]float64{
		{2, 0, 2, 0},
		{0, 2, 0, 2},
		{2, 0, 2, 0},
		{0, 2, 0, 2},
	})
	got, err := matrix.MinEigenvalue(x)
	require.NoError(t, err)
	require.InDelta(t, 0.0, got, tol)

	got, err = matrix.MinEigenvalue(mustRows(t, [][]float64{{1, 3}, {3, 1}}))
	require.NoError(t, err)
	require.InDelta(t, -2.0, got, tol)

	// the symmetric part of a skew matrix is zero
	got, err = matrix.MinEigenvalue(mustRows(t, [][]float64{{0, 1}, {-1, 0}}))
	require.NoError(t, err)
	require.InDelta(t, 0.0, got, tol)
}

func TestMaxAbsDiff(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustRows(t, [][]float64{{1, 2.5}, {3, 3}})
	d, err := matrix.MaxAbsDiff(a, b)
	require.NoError(t, err)
	require.InDelta(t, 1.0, d, tol)

	_, err = matrix.MaxAbsDiff(a, mustRows(t, [][]float64{{1}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
