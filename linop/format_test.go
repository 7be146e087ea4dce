package linop_test

import (
	"testing"

	"github.com/katalvlaran/lvlcone/linop"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	x := mustVar(t, 2, 2)
	y := mustVar(t, 1, 1)
	el, _, err := linop.GetIndex(x, 1, 0)
	require.NoError(t, err)

	zero, err := linop.Equality(el, nil)
	require.NoError(t, err)
	blk, err := linop.BlockEq(x, x, 0, 1, 0, 2)
	require.NoError(t, err)
	cone, err := linop.ExpCone(y, linop.Scalar(1), el)
	require.NoError(t, err)
	c, err := linop.NewConstant(mustDense(t, [][]float64{{1, 2}}))
	require.NoError(t, err)
	mixed, err := linop.Equality(linop.Transpose(c), linop.Transpose(c))
	require.NoError(t, err)

	got := linop.Format(y, append([]linop.Constraint{zero, cone, mixed}, blk...))
	want := "variables:\n" +
		"  x0 2x2\n" +
		"  x1 1x1\n" +
		"objective: x1\n" +
		"constraints:\n" +
		"  0: x0[1,0] == 0\n" +
		"  1: expcone(x1, 1, x0[1,0])\n" +
		"  2: transpose(const[1x2]) == transpose(const[1x2])\n" +
		"  3: x0[0:1,0:2] == x0[0:1,0:2]\n"
	require.Equal(t, want, got)
}

func TestFormatUniformBlock(t *testing.T) {
	z, err := linop.Fill(linop.Shape{Rows: 2, Cols: 2}, 0)
	require.NoError(t, err)
	n := linop.NewNamer()
	require.Equal(t, "0[2x2]", n.Expr(z))
	require.Equal(t, "<nil>", n.Expr(nil))
}
