// SPDX-License-Identifier: MIT

package linop

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/katalvlaran/lvlcone/matrix"
)

// Assignment maps variable identities to concrete values.
type Assignment map[uuid.UUID]*matrix.Dense

// Set records a copy of value for variable v after checking its shape.
func (a Assignment) Set(v *Expr, value *matrix.Dense) error {
	if v == nil || !v.IsVariable() {
		return linopErrorf(opAssign, fmt.Errorf("not a variable: %w", ErrNilExpr))
	}
	if err := matrix.ValidateNotNil(value); err != nil {
		return linopErrorf(opAssign, err)
	}
	if got := (Shape{Rows: value.Rows(), Cols: value.Cols()}); got != v.shape {
		return linopErrorf(opAssign, fmt.Errorf("value %s for variable %s: %w", got, v.shape, ErrShapeMismatch))
	}
	a[v.id] = value.Clone()

	return nil
}

// Evaluate computes the value of e under asg.
func Evaluate(e *Expr, asg Assignment) (*matrix.Dense, error) {
	if e == nil {
		return nil, linopErrorf(opEvaluate, ErrNilExpr)
	}
	switch e.op {
	case OpVariable:
		v, ok := asg[e.id]
		if !ok {
			return nil, linopErrorf(opEvaluate, fmt.Errorf("%s: %w", e.id, ErrUnassigned))
		}
		return v.Clone(), nil

	case OpConstant:
		return e.value.Clone(), nil

	case OpIndex:
		inner, err := Evaluate(e.args[0], asg)
		if err != nil {
			return nil, err
		}
		b := e.block
		out, err := inner.Block(b.RowStart, b.RowEnd, b.ColStart, b.ColEnd)
		if err != nil {
			return nil, linopErrorf(opEvaluate, err)
		}
		return out, nil

	case OpTranspose:
		inner, err := Evaluate(e.args[0], asg)
		if err != nil {
			return nil, err
		}
		out, err := matrix.Transpose(inner)
		if err != nil {
			return nil, linopErrorf(opEvaluate, err)
		}
		return out, nil

	case OpSum:
		acc, err := matrix.NewDense(e.shape.Rows, e.shape.Cols)
		if err != nil {
			return nil, linopErrorf(opEvaluate, err)
		}
		for _, a := range e.args {
			term, err := Evaluate(a, asg)
			if err != nil {
				return nil, err
			}
			for i := 0; i < e.shape.Rows; i++ {
				dst, src := acc.RawRowView(i), term.RawRowView(i)
				for j := range dst {
					dst[j] += src[j]
				}
			}
		}
		return acc, nil

	default:
		return nil, linopErrorf(opEvaluate, fmt.Errorf("unknown op %s", e.op))
	}
}

// Violation measures how far asg is from satisfying c; 0 means satisfied.
//
//   - equality: max |lhs - rhs| over all entries.
//   - psd: max(0, -λmin) of the symmetric part.
//   - expcone: max over entries of max(0, y·exp(x/y) - z); +Inf where y <= 0.
func (c Constraint) Violation(asg Assignment) (float64, error) {
	vals := make([]*matrix.Dense, len(c.args))
	for i, a := range c.args {
		v, err := Evaluate(a, asg)
		if err != nil {
			return 0, err
		}
		vals[i] = v
	}

	switch c.kind {
	case KindEquality:
		return matrix.MaxAbsDiff(vals[0], vals[1])

	case KindPSD:
		lmin, err := matrix.MinEigenvalue(vals[0])
		if err != nil {
			return 0, err
		}
		return math.Max(0, -lmin), nil

	case KindExpCone:
		worst := 0.0
		for i := 0; i < vals[0].Rows(); i++ {
			xs, ys, zs := vals[0].RawRowView(i), vals[1].RawRowView(i), vals[2].RawRowView(i)
			for j := range xs {
				if ys[j] <= 0 {
					return math.Inf(1), nil
				}
				worst = math.Max(worst, ys[j]*math.Exp(xs[j]/ys[j])-zs[j])
			}
		}
		return worst, nil

	default:
		return 0, fmt.Errorf("linop: unknown constraint kind %s", c.kind)
	}
}

// Satisfied reports whether Violation(asg) <= tol.
func (c Constraint) Satisfied(asg Assignment, tol float64) (bool, error) {
	v, err := c.Violation(asg)
	if err != nil {
		return false, err
	}

	return v <= tol, nil
}
