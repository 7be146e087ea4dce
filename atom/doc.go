// SPDX-License-Identifier: MIT

// Package atom defines the contract every disciplined-convex operator
// satisfies and the atoms needed to lower log det(A) into conic form.
//
// 🚀 What is an atom?
//
//	An atom is a named operator with fixed curvature, sign and
//	monotonicity metadata, a numeric evaluator and a graph reduction.
//	The reduction rewrites the atom into an affine objective plus a list
//	of cone and equality constraints with the same optimal value.
//
// ✨ Atoms shipped here:
//   - LogDet    — log det(A) of a square matrix, concave, reduced through
//     an LDL-style certificate dominated by a semidefinite constraint.
//   - Log       — elementwise ln(x), concave, reduced to exponential cones.
//   - Transpose — affine; reduction is a pure rewrite with no constraints.
//
// Validation happens in the constructors: an atom value that exists has
// arguments of a valid shape. Reductions are pure functions of their
// arguments, allocate fresh auxiliary variables on every call and keep no
// state between calls, so they are safe to call concurrently.
//
// ⚙️ Usage:
//
//	A, _ := linop.NewVariable(linop.Shape{Rows: 3, Cols: 3})
//	ld, err := atom.NewLogDet(A)     // *DomainError if A is not square
//	obj, cons, err := ld.Reduce([]*linop.Expr{A}, ld.ShapeFromArgs())
package atom
