// SPDX-License-Identifier: MIT

package atom

import (
	"github.com/katalvlaran/lvlcone/linop"
	"github.com/katalvlaran/lvlcone/matrix"
)

// Expression is any node of the modeling graph: an affine leaf
// (*linop.Expr) or an Atom. Atoms implement it too, so they nest.
type Expression interface {
	Shape() linop.Shape
}

// Atom is the uniform contract every operator satisfies.
type Atom interface {
	Expression

	// Kind returns the variant tag.
	Kind() Kind

	// Args returns the atom's argument sub-expressions.
	Args() []Expression

	// ValidateArguments rejects argument shapes outside the atom's domain.
	ValidateArguments() error

	// ShapeFromArgs is the shape of the atom's value.
	ShapeFromArgs() linop.Shape

	// SignFromArgs is the sign of the atom's value.
	SignFromArgs() Sign

	// FuncCurvature is the curvature of the atom as a function.
	FuncCurvature() Curvature

	// Monotonicity returns one entry per argument.
	Monotonicity() []Monotonicity

	// Numeric evaluates the atom on concrete argument values.
	Numeric(values []matrix.Matrix) (*matrix.Dense, error)

	// Reduce lowers the atom given its already-reduced arguments.
	Reduce(args []*linop.Expr, shape linop.Shape) (*linop.Expr, []linop.Constraint, error)
}

// argShapes collects the shapes of args.
func argShapes(args []Expression) []linop.Shape {
	out := make([]linop.Shape, len(args))
	for i, a := range args {
		out[i] = a.Shape()
	}

	return out
}

// ArgShapes returns the shapes of a's arguments, in order.
func ArgShapes(a Atom) []linop.Shape { return argShapes(a.Args()) }

// signOf returns the sign of e when e is an atom; leaves are UNKNOWN.
func signOf(e Expression) Sign {
	if a, ok := e.(Atom); ok {
		return a.SignFromArgs()
	}

	return SignUnknown
}
