// SPDX-License-Identifier: MIT

package atom

import (
	"fmt"

	"github.com/katalvlaran/lvlcone/linop"
	"github.com/katalvlaran/lvlcone/matrix"
)

// LogDet is log det(A) for a square matrix argument A.
// It is scalar valued, concave, nonmonotonic in A and of unknown sign.
type LogDet struct {
	arg Expression
}

var _ Atom = (*LogDet)(nil)

// NewLogDet validates arg and builds the atom.
// A non-square argument yields a *DomainError and no atom.
func NewLogDet(arg Expression) (*LogDet, error) {
	if arg == nil {
		return nil, arityError(KindLogDet, 1, 0)
	}
	ld := &LogDet{arg: arg}
	if err := ld.ValidateArguments(); err != nil {
		return nil, err
	}

	return ld, nil
}

// Kind returns KindLogDet.
func (*LogDet) Kind() Kind { return KindLogDet }

// Args returns the single argument.
func (ld *LogDet) Args() []Expression { return []Expression{ld.arg} }

// Shape is the value shape, always 1×1.
func (ld *LogDet) Shape() linop.Shape { return ld.ShapeFromArgs() }

// ValidateArguments requires a square argument.
func (ld *LogDet) ValidateArguments() error {
	return validateSquare(KindLogDet, ld.arg.Shape())
}

// ShapeFromArgs is 1×1 regardless of the argument size.
func (*LogDet) ShapeFromArgs() linop.Shape { return linop.ScalarShape }

// SignFromArgs is UNKNOWN: log det changes sign with no general bound.
func (*LogDet) SignFromArgs() Sign { return SignUnknown }

// FuncCurvature is CONCAVE.
func (*LogDet) FuncCurvature() Curvature { return CurvatureConcave }

// Monotonicity is NONMONOTONIC in A.
func (*LogDet) Monotonicity() []Monotonicity { return []Monotonicity{Nonmonotonic} }

// Numeric returns ln(det(values[0])) as a 1×1 matrix.
// A non-positive determinant is not an error: the result is NaN (det < 0)
// or -Inf (det == 0), exactly what the logarithm of the determinant gives.
func (ld *LogDet) Numeric(values []matrix.Matrix) (*matrix.Dense, error) {
	if len(values) != 1 {
		return nil, arityError(KindLogDet, 1, len(values))
	}
	if values[0] == nil {
		return nil, fmt.Errorf("atom: %s: %w", KindLogDet, matrix.ErrNilMatrix)
	}
	if err := validateSquare(KindLogDet, linop.Shape{Rows: values[0].Rows(), Cols: values[0].Cols()}); err != nil {
		return nil, err
	}
	v, err := matrix.LogDet(values[0])
	if err != nil {
		return nil, fmt.Errorf("atom: %s: %w", KindLogDet, err)
	}

	return matrix.NewFilled(1, 1, v)
}

// Reduce delegates to ReduceLogDet.
func (*LogDet) Reduce(args []*linop.Expr, shape linop.Shape) (*linop.Expr, []linop.Constraint, error) {
	return ReduceLogDet(args, shape)
}

// ReduceLogDet lowers log det(A) for the n×n argument args[0] into
//
//	maximize    Σᵢ log(D[i,i])
//	subject to  D diagonal, diag(D) = diag(Z), Z upper triangular,
//	            X = [[D, Z], [Zᵀ, A]] symmetric, X ⪰ 0, A ⪰ 0
//
// with fresh X (2n×2n), Z (n×n) and D (n×n). At the optimum Z and D form an
// LDL-style factorization of A and det(D) = det(A).
//
// Constraint order: X == Xᵀ, psd(X), psd(A), the n² diagonal and
// triangularity equalities in row-major (i, j) order, the three block
// equalities on X, then the n exponential cones of the log terms.
// For n = 2 that is 1 + 2 + 5 + 3 + 2 = 13 constraints.
func ReduceLogDet(args []*linop.Expr, shape linop.Shape) (*linop.Expr, []linop.Constraint, error) {
	if len(args) != 1 {
		return nil, nil, arityError(KindLogDet, 1, len(args))
	}
	a := args[0]
	if a == nil {
		return nil, nil, fmt.Errorf("atom: %s: %w", KindLogDet, linop.ErrNilExpr)
	}
	if err := validateSquare(KindLogDet, a.Shape()); err != nil {
		return nil, nil, err
	}
	if shape != linop.ScalarShape {
		return nil, nil, fmt.Errorf("atom: %s: target shape %s: %w", KindLogDet, shape, linop.ErrShapeMismatch)
	}
	n := a.Shape().Rows

	var l constraintList
	x := l.expr(linop.NewVariable(linop.Shape{Rows: 2 * n, Cols: 2 * n}))
	z := l.expr(linop.NewVariable(linop.Shape{Rows: n, Cols: n}))
	d := l.expr(linop.NewVariable(linop.Shape{Rows: n, Cols: n}))
	if l.err != nil {
		return nil, nil, l.err
	}

	// X == Xᵀ, which also makes the A block symmetric.
	xt, cons, err := ReduceTranspose([]*linop.Expr{x}, x.Shape().T())
	l.extend(cons, err)
	l.add(linop.Equality(x, xt))

	l.add(linop.PSD(x))
	l.add(linop.PSD(a))

	// D diagonal, diag(D) == diag(Z), Z upper triangular.
	var dij, zij *linop.Expr
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				dij = l.index(d, i, j)
				zij = l.index(z, i, j)
				l.add(linop.Equality(dij, zij))
			}
			if i != j {
				dij = l.index(d, i, j)
				l.add(linop.Equality(dij, nil))
			}
			if i > j {
				zij = l.index(z, i, j)
				l.add(linop.Equality(zij, nil))
			}
		}
	}

	// X[0:n, 0:n] == D, X[0:n, n:2n] == Z, X[n:2n, n:2n] == A.
	// X[n:2n, 0:n] == Zᵀ follows from symmetry.
	l.extend(linop.BlockEq(x, d, 0, n, 0, n))
	l.extend(linop.BlockEq(x, z, 0, n, n, 2*n))
	l.extend(linop.BlockEq(x, a, n, 2*n, n, 2*n))

	terms := make([]*linop.Expr, 0, n)
	for i := 0; i < n; i++ {
		dii := l.index(d, i, i)
		if l.err != nil {
			break
		}
		obj, cons, err := ReduceLog([]*linop.Expr{dii}, linop.ScalarShape)
		l.extend(cons, err)
		terms = append(terms, obj)
	}
	if l.err != nil {
		return nil, nil, l.err
	}

	obj, err := linop.Sum(terms...)
	if err != nil {
		return nil, nil, err
	}

	return obj, l.cons, nil
}

// index wraps linop.GetIndex, folding its constraints and error into l.
func (l *constraintList) index(e *linop.Expr, i, j int) *linop.Expr {
	el, cons, err := linop.GetIndex(e, i, j)
	l.extend(cons, err)

	return el
}

func validateSquare(k Kind, s linop.Shape) error {
	if !s.IsSquare() {
		return &DomainError{Atom: k, Shape: s, Reason: "argument must be a square matrix"}
	}

	return nil
}
