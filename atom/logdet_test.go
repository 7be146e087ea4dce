package atom_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lvlcone/atom"
	"github.com/katalvlaran/lvlcone/linop"
	"github.com/katalvlaran/lvlcone/matrix"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

func mustVar(t *testing.T, rows, cols int) *linop.Expr {
	t.Helper()
	v, err := linop.NewVariable(linop.Shape{Rows: rows, Cols: cols})
	require.NoError(t, err)

	return v
}

func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// countKinds tallies constraints per family.
func countKinds(cons []linop.Constraint) map[linop.ConstraintKind]int {
	out := make(map[linop.ConstraintKind]int)
	for _, c := range cons {
		out[c.Kind()]++
	}

	return out
}

// expectedCount is the constraint total of a log-det reduction of size n:
// symmetry + 2 cones + n² loop equalities (n diagonal, n(n-1) off-diagonal,
// n(n-1)/2 triangular) + 3 blocks + n logs.
func expectedCount(n int) int {
	return 1 + 2 + n + n*(n-1) + n*(n-1)/2 + 3 + n
}

func TestLogDetContract(t *testing.T) {
	for _, n := range []int{1, 2, 5} {
		ld, err := atom.NewLogDet(mustVar(t, n, n))
		require.NoError(t, err)
		require.Equal(t, atom.KindLogDet, ld.Kind())
		require.Equal(t, linop.ScalarShape, ld.ShapeFromArgs())
		require.Equal(t, linop.ScalarShape, ld.Shape())
		require.Equal(t, atom.SignUnknown, ld.SignFromArgs())
		require.Equal(t, atom.CurvatureConcave, ld.FuncCurvature())
		require.Equal(t, []atom.Monotonicity{atom.Nonmonotonic}, ld.Monotonicity())
		require.Equal(t, []linop.Shape{{Rows: n, Cols: n}}, atom.ArgShapes(ld))
	}
}

func TestNewLogDetRejectsNonSquare(t *testing.T) {
	_, err := atom.NewLogDet(mustVar(t, 2, 3))
	require.ErrorIs(t, err, atom.ErrDomain)

	var de *atom.DomainError
	require.True(t, errors.As(err, &de))
	require.Equal(t, atom.KindLogDet, de.Atom)
	require.Equal(t, linop.Shape{Rows: 2, Cols: 3}, de.Shape)
	require.Contains(t, err.Error(), "argument must be a square matrix")

	_, err = atom.NewLogDet(nil)
	require.ErrorIs(t, err, atom.ErrArity)
}

func TestReduceLogDetRejectsNonSquareBeforeAllocating(t *testing.T) {
	obj, cons, err := atom.ReduceLogDet([]*linop.Expr{mustVar(t, 3, 2)}, linop.ScalarShape)
	require.ErrorIs(t, err, atom.ErrDomain)
	require.Nil(t, obj)
	require.Nil(t, cons)

	_, _, err = atom.ReduceLogDet(nil, linop.ScalarShape)
	require.ErrorIs(t, err, atom.ErrArity)

	_, _, err = atom.ReduceLogDet([]*linop.Expr{mustVar(t, 2, 2)}, linop.Shape{Rows: 2, Cols: 1})
	require.ErrorIs(t, err, linop.ErrShapeMismatch)
}

func TestLogDetNumeric(t *testing.T) {
	ld, err := atom.NewLogDet(mustVar(t, 3, 3))
	require.NoError(t, err)

	spd := mustDense(t, [][]float64{{4, 1, 0}, {1, 3, 1}, {0, 1, 2}})
	det, err := matrix.Det(spd)
	require.NoError(t, err)

	got, err := ld.Numeric([]matrix.Matrix{spd})
	require.NoError(t, err)
	v, err := got.At(0, 0)
	require.NoError(t, err)
	require.InDelta(t, math.Log(det), v, tol)

	_, err = ld.Numeric([]matrix.Matrix{mustDense(t, [][]float64{{1, 2}})})
	require.ErrorIs(t, err, atom.ErrDomain)
	_, err = ld.Numeric(nil)
	require.ErrorIs(t, err, atom.ErrArity)
}

func TestLogDetNumericDomain(t *testing.T) {
	ld, err := atom.NewLogDet(mustVar(t, 2, 2))
	require.NoError(t, err)
	neg := []matrix.Matrix{mustDense(t, [][]float64{{0, 1}, {1, 0}})}

	// default: NaN value, no error
	got, err := atom.Evaluate(ld, neg)
	require.NoError(t, err)
	v, err := got.At(0, 0)
	require.NoError(t, err)
	require.True(t, math.IsNaN(v))

	// strict: distinct error
	_, err = atom.Evaluate(ld, neg, atom.WithStrictDomain())
	require.ErrorIs(t, err, atom.ErrNumericDomain)

	singular := []matrix.Matrix{mustDense(t, [][]float64{{1, 1}, {1, 1}})}
	_, err = atom.Evaluate(ld, singular, atom.WithStrictDomain())
	require.ErrorIs(t, err, atom.ErrNumericDomain)

	_, err = atom.Evaluate(ld, []matrix.Matrix{mustDense(t, [][]float64{{1}})})
	require.ErrorIs(t, err, linop.ErrShapeMismatch)
}

func TestReduceLogDetCountsN2(t *testing.T) {
	a := mustVar(t, 2, 2)
	obj, cons, err := atom.ReduceLogDet([]*linop.Expr{a}, linop.ScalarShape)
	require.NoError(t, err)
	require.Len(t, cons, 13)
	require.Equal(t, map[linop.ConstraintKind]int{
		linop.KindEquality: 1 + 4 + 1 + 3,
		linop.KindPSD:      2,
		linop.KindExpCone:  2,
	}, countKinds(cons))

	require.True(t, obj.Shape().IsScalar())
	require.Equal(t, linop.OpSum, obj.Op())
	require.Len(t, obj.Args(), 2)

	// symmetry first, then the two cones on X and A
	sym := cons[0].Args()
	require.Equal(t, linop.KindEquality, cons[0].Kind())
	x := sym[0]
	require.Equal(t, linop.Shape{Rows: 4, Cols: 4}, x.Shape())
	require.Equal(t, linop.OpTranspose, sym[1].Op())
	require.Same(t, x, sym[1].Args()[0])
	require.Same(t, x, cons[1].Args()[0])
	require.Same(t, a, cons[2].Args()[0])

	// the block of X equated with A
	last := cons[10].Args()
	require.Equal(t, linop.Block{RowStart: 2, RowEnd: 4, ColStart: 2, ColEnd: 4}, last[0].Block())
	require.Same(t, a, last[1])
}

func TestReduceLogDetCountsScale(t *testing.T) {
	for _, n := range []int{1, 2, 3, 6} {
		_, cons, err := atom.ReduceLogDet([]*linop.Expr{mustVar(t, n, n)}, linop.ScalarShape)
		require.NoError(t, err)
		require.Len(t, cons, expectedCount(n), "n=%d", n)
		require.Equal(t, n, countKinds(cons)[linop.KindExpCone])
	}
}

func TestReduceLogDetN1Degenerates(t *testing.T) {
	a := mustVar(t, 1, 1)
	obj, cons, err := atom.ReduceLogDet([]*linop.Expr{a}, linop.ScalarShape)
	require.NoError(t, err)
	require.Len(t, cons, 8)
	// a single log term is the objective itself, not a sum
	require.True(t, obj.IsVariable())

	direct, directCons, err := atom.ReduceLog([]*linop.Expr{a}, linop.ScalarShape)
	require.NoError(t, err)
	require.Len(t, directCons, 1)
	require.True(t, direct.IsVariable())

	// the only cone on the log term has the same structure as the direct reduction
	cone := cons[len(cons)-1]
	require.Equal(t, linop.KindExpCone, cone.Kind())
	require.Same(t, obj, cone.Args()[0])

	// with A = [a], D = Z = [a], X = [[a, a], [a, a]], t = ln a every constraint holds
	const v = 3.0
	asg := assignCertificate(t, cons, a, mustDense(t, [][]float64{{v}}), 1)
	for i, c := range cons {
		ok, err := c.Satisfied(asg, tol)
		require.NoError(t, err)
		require.True(t, ok, "constraint %d", i)
	}
	got, err := linop.Evaluate(obj, asg)
	require.NoError(t, err)
	val, err := got.At(0, 0)
	require.NoError(t, err)
	require.InDelta(t, math.Log(v), val, tol)
}

func TestReduceLogDetVariableDisjoint(t *testing.T) {
	a1, a2 := mustVar(t, 3, 3), mustVar(t, 3, 3)
	obj1, cons1, err := atom.ReduceLogDet([]*linop.Expr{a1}, linop.ScalarShape)
	require.NoError(t, err)
	obj2, cons2, err := atom.ReduceLogDet([]*linop.Expr{a2}, linop.ScalarShape)
	require.NoError(t, err)

	require.Equal(t, linop.Format(obj1, cons1), linop.Format(obj2, cons2))

	seen := make(map[string]struct{})
	for _, c := range cons1 {
		for _, v := range c.Variables() {
			seen[v.ID().String()] = struct{}{}
		}
	}
	for _, c := range cons2 {
		for _, v := range c.Variables() {
			_, dup := seen[v.ID().String()]
			require.False(t, dup, "variable %s shared between reductions", v.ID())
		}
	}
}
