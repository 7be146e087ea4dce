// SPDX-License-Identifier: MIT

package atom

import (
	"fmt"

	"github.com/katalvlaran/lvlcone/linop"
	"github.com/katalvlaran/lvlcone/matrix"
)

// Transpose is the affine atom Aᵀ.
type Transpose struct {
	arg Expression
}

var _ Atom = (*Transpose)(nil)

// NewTranspose builds argᵀ.
func NewTranspose(arg Expression) (*Transpose, error) {
	if arg == nil {
		return nil, arityError(KindTranspose, 1, 0)
	}
	tr := &Transpose{arg: arg}
	if err := tr.ValidateArguments(); err != nil {
		return nil, err
	}

	return tr, nil
}

func (*Transpose) Kind() Kind                    { return KindTranspose }
func (tr *Transpose) Args() []Expression         { return []Expression{tr.arg} }
func (tr *Transpose) Shape() linop.Shape         { return tr.ShapeFromArgs() }
func (tr *Transpose) ShapeFromArgs() linop.Shape { return tr.arg.Shape().T() }
func (tr *Transpose) ValidateArguments() error   { return tr.arg.Shape().Validate() }
func (*Transpose) FuncCurvature() Curvature      { return CurvatureAffine }
func (*Transpose) Monotonicity() []Monotonicity  { return []Monotonicity{Increasing} }

// SignFromArgs keeps the argument's sign when it is known.
func (tr *Transpose) SignFromArgs() Sign { return signOf(tr.arg) }

// Numeric returns values[0]ᵀ.
func (*Transpose) Numeric(values []matrix.Matrix) (*matrix.Dense, error) {
	if len(values) != 1 {
		return nil, arityError(KindTranspose, 1, len(values))
	}
	out, err := matrix.Transpose(values[0])
	if err != nil {
		return nil, fmt.Errorf("atom: %s: %w", KindTranspose, err)
	}

	return out, nil
}

// Reduce delegates to ReduceTranspose.
func (*Transpose) Reduce(args []*linop.Expr, shape linop.Shape) (*linop.Expr, []linop.Constraint, error) {
	return ReduceTranspose(args, shape)
}

// ReduceTranspose rewrites args[0] as its transpose. The rewrite is affine,
// so no constraints are produced.
func ReduceTranspose(args []*linop.Expr, shape linop.Shape) (*linop.Expr, []linop.Constraint, error) {
	if len(args) != 1 {
		return nil, nil, arityError(KindTranspose, 1, len(args))
	}
	if args[0] == nil {
		return nil, nil, fmt.Errorf("atom: %s: %w", KindTranspose, linop.ErrNilExpr)
	}
	if want := args[0].Shape().T(); shape != want {
		return nil, nil, fmt.Errorf("atom: %s: target shape %s, want %s: %w", KindTranspose, shape, want, linop.ErrShapeMismatch)
	}

	return linop.Transpose(args[0]), nil, nil
}
