package linop_test

import (
	"testing"

	"github.com/katalvlaran/lvlcone/linop"
	"github.com/stretchr/testify/require"
)

func TestEqualityZeroRHS(t *testing.T) {
	x := mustVar(t, 2, 3)
	c, err := linop.Equality(x, nil)
	require.NoError(t, err)
	require.Equal(t, linop.KindEquality, c.Kind())

	args := c.Args()
	require.Len(t, args, 2)
	require.Equal(t, linop.OpConstant, args[1].Op())
	require.Equal(t, x.Shape(), args[1].Shape())

	_, err = linop.Equality(x, mustVar(t, 3, 2))
	require.ErrorIs(t, err, linop.ErrShapeMismatch)
	_, err = linop.Equality(nil, x)
	require.ErrorIs(t, err, linop.ErrNilExpr)
}

func TestPSDRequiresSquare(t *testing.T) {
	c, err := linop.PSD(mustVar(t, 3, 3))
	require.NoError(t, err)
	require.Equal(t, linop.KindPSD, c.Kind())

	_, err = linop.PSD(mustVar(t, 3, 2))
	require.ErrorIs(t, err, linop.ErrNotSquare)
}

func TestExpConeShapes(t *testing.T) {
	x, z := mustVar(t, 1, 1), mustVar(t, 1, 1)
	c, err := linop.ExpCone(x, linop.Scalar(1), z)
	require.NoError(t, err)
	require.Equal(t, linop.KindExpCone, c.Kind())
	require.Len(t, c.Variables(), 2)

	_, err = linop.ExpCone(x, linop.Scalar(1), mustVar(t, 2, 1))
	require.ErrorIs(t, err, linop.ErrShapeMismatch)
}

func TestGetIndex(t *testing.T) {
	d := mustVar(t, 3, 3)
	el, cons, err := linop.GetIndex(d, 2, 1)
	require.NoError(t, err)
	require.Empty(t, cons)
	require.True(t, el.Shape().IsScalar())
	require.Equal(t, linop.Block{RowStart: 2, RowEnd: 3, ColStart: 1, ColEnd: 2}, el.Block())

	_, _, err = linop.GetIndex(d, 3, 0)
	require.ErrorIs(t, err, linop.ErrOutOfRange)
}

func TestBlockEq(t *testing.T) {
	x := mustVar(t, 4, 4)
	d := mustVar(t, 2, 2)

	// block-shaped right-hand side
	cons, err := linop.BlockEq(x, d, 0, 2, 2, 4)
	require.NoError(t, err)
	require.Len(t, cons, 1)
	args := cons[0].Args()
	require.Equal(t, linop.OpIndex, args[0].Op())
	require.Same(t, d, args[1])

	// same-shaped right-hand side: the same block of both
	y := mustVar(t, 4, 4)
	cons, err = linop.BlockEq(x, y, 2, 4, 0, 2)
	require.NoError(t, err)
	args = cons[0].Args()
	require.Equal(t, linop.OpIndex, args[1].Op())
	require.Equal(t, args[0].Block(), args[1].Block())

	_, err = linop.BlockEq(x, mustVar(t, 3, 3), 0, 2, 0, 2)
	require.ErrorIs(t, err, linop.ErrShapeMismatch)
	_, err = linop.BlockEq(x, d, 3, 5, 0, 2)
	require.ErrorIs(t, err, linop.ErrOutOfRange)
}
