// SPDX-License-Identifier: MIT

package linop

import "fmt"

// ConstraintKind tags the three constraint families a reduction can emit.
type ConstraintKind uint8

const (
	// KindEquality asserts lhs == rhs entrywise.
	KindEquality ConstraintKind = iota
	// KindPSD asserts a square expression lies in the positive-semidefinite cone.
	KindPSD
	// KindExpCone asserts (x, y, z) lies in the exponential cone entrywise:
	// y·exp(x/y) <= z with y > 0.
	KindExpCone
)

// String returns a short name for the kind.
func (k ConstraintKind) String() string {
	switch k {
	case KindEquality:
		return "eq"
	case KindPSD:
		return "psd"
	case KindExpCone:
		return "expcone"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Constraint is pure data: once built it is never mutated.
type Constraint struct {
	kind ConstraintKind
	args []*Expr
}

// Equality builds lhs == rhs. A nil rhs means the zero matrix of lhs's shape.
func Equality(lhs, rhs *Expr) (Constraint, error) {
	if lhs == nil {
		return Constraint{}, linopErrorf(opEquality, ErrNilExpr)
	}
	if rhs == nil {
		var err error
		if rhs, err = Fill(lhs.shape, 0); err != nil {
			return Constraint{}, linopErrorf(opEquality, err)
		}
	}
	if lhs.shape != rhs.shape {
		return Constraint{}, linopErrorf(opEquality, fmt.Errorf("%s vs %s: %w", lhs.shape, rhs.shape, ErrShapeMismatch))
	}

	return Constraint{kind: KindEquality, args: []*Expr{lhs, rhs}}, nil
}

// PSD builds the cone-membership constraint e ⪰ 0. e must be square.
func PSD(e *Expr) (Constraint, error) {
	if e == nil {
		return Constraint{}, linopErrorf(opPSD, ErrNilExpr)
	}
	if !e.shape.IsSquare() {
		return Constraint{}, linopErrorf(opPSD, fmt.Errorf("%s: %w", e.shape, ErrNotSquare))
	}

	return Constraint{kind: KindPSD, args: []*Expr{e}}, nil
}

// ExpCone builds the entrywise exponential cone constraint on (x, y, z).
// All three must share a shape.
func ExpCone(x, y, z *Expr) (Constraint, error) {
	if x == nil || y == nil || z == nil {
		return Constraint{}, linopErrorf(opExpCone, ErrNilExpr)
	}
	if x.shape != y.shape || x.shape != z.shape {
		return Constraint{}, linopErrorf(opExpCone, fmt.Errorf("%s, %s, %s: %w", x.shape, y.shape, z.shape, ErrShapeMismatch))
	}

	return Constraint{kind: KindExpCone, args: []*Expr{x, y, z}}, nil
}

// Kind returns the constraint family.
func (c Constraint) Kind() ConstraintKind { return c.kind }

// Args returns a copy of the constrained expressions, in constructor order.
func (c Constraint) Args() []*Expr {
	out := make([]*Expr, len(c.args))
	copy(out, c.args)

	return out
}

// Variables returns the distinct variables the constraint references.
func (c Constraint) Variables() []*Expr { return Variables(c.args...) }
