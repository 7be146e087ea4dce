// SPDX-License-Identifier: MIT

package atom

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlcone/linop"
	"github.com/katalvlaran/lvlcone/matrix"
)

// Log is the elementwise natural logarithm. Any argument shape is valid.
type Log struct {
	arg Expression
}

var _ Atom = (*Log)(nil)

// NewLog builds ln(arg).
func NewLog(arg Expression) (*Log, error) {
	if arg == nil {
		return nil, arityError(KindLog, 1, 0)
	}
	lg := &Log{arg: arg}
	if err := lg.ValidateArguments(); err != nil {
		return nil, err
	}

	return lg, nil
}

func (*Log) Kind() Kind                    { return KindLog }
func (lg *Log) Args() []Expression         { return []Expression{lg.arg} }
func (lg *Log) Shape() linop.Shape         { return lg.ShapeFromArgs() }
func (lg *Log) ShapeFromArgs() linop.Shape { return lg.arg.Shape() }
func (*Log) SignFromArgs() Sign            { return SignUnknown }
func (*Log) FuncCurvature() Curvature      { return CurvatureConcave }
func (*Log) Monotonicity() []Monotonicity  { return []Monotonicity{Increasing} }
func (lg *Log) ValidateArguments() error   { return lg.arg.Shape().Validate() }

// Numeric applies math.Log entrywise; negative entries give NaN.
func (*Log) Numeric(values []matrix.Matrix) (*matrix.Dense, error) {
	if len(values) != 1 {
		return nil, arityError(KindLog, 1, len(values))
	}
	if err := matrix.ValidateNotNil(values[0]); err != nil {
		return nil, fmt.Errorf("atom: %s: %w", KindLog, err)
	}
	v := values[0]
	out, err := matrix.NewDense(v.Rows(), v.Cols())
	if err != nil {
		return nil, fmt.Errorf("atom: %s: %w", KindLog, err)
	}
	for i := 0; i < v.Rows(); i++ {
		row := out.RawRowView(i)
		for j := range row {
			x, err := v.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("atom: %s: %w", KindLog, err)
			}
			row[j] = math.Log(x)
		}
	}

	return out, nil
}

// Reduce delegates to ReduceLog.
func (*Log) Reduce(args []*linop.Expr, shape linop.Shape) (*linop.Expr, []linop.Constraint, error) {
	return ReduceLog(args, shape)
}

// ReduceLog lowers ln(x) to its hypograph: a fresh t of x's shape with
// (t, 1, x) in the exponential cone, i.e. exp(t) <= x entrywise.
// Maximizing t drives it to ln(x).
func ReduceLog(args []*linop.Expr, shape linop.Shape) (*linop.Expr, []linop.Constraint, error) {
	if len(args) != 1 {
		return nil, nil, arityError(KindLog, 1, len(args))
	}
	x := args[0]
	if x == nil {
		return nil, nil, fmt.Errorf("atom: %s: %w", KindLog, linop.ErrNilExpr)
	}
	if shape != x.Shape() {
		return nil, nil, fmt.Errorf("atom: %s: target shape %s for argument %s: %w", KindLog, shape, x.Shape(), linop.ErrShapeMismatch)
	}
	t, err := linop.NewVariable(shape)
	if err != nil {
		return nil, nil, err
	}
	ones, err := linop.Fill(shape, 1)
	if err != nil {
		return nil, nil, err
	}
	cone, err := linop.ExpCone(t, ones, x)
	if err != nil {
		return nil, nil, err
	}

	return t, []linop.Constraint{cone}, nil
}
