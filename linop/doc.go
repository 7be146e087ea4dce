// SPDX-License-Identifier: MIT

// Package linop is the linear-operation primitive layer of the conic
// reduction: the affine expression tree atoms are lowered into, and the
// declarative constraints that accompany it.
//
// What lives here:
//
//   - Shape, the (rows, cols) pair every expression carries.
//   - Expr, an immutable node: Variable, Constant, Index, Transpose or Sum.
//     Variables get a fresh uuid on creation, so two reductions can never
//     share an auxiliary variable and no process-wide counter exists.
//   - Constraint, either an equality, a positive-semidefinite cone
//     membership or an exponential cone membership.
//   - Block indexing helpers (GetIndex, BlockEq). They return their own
//     constraint slices; callers concatenate instead of threading a
//     mutable list through nested calls.
//   - Assignment / Evaluate / Constraint.Violation for checking a
//     candidate certificate numerically.
//   - Format, a deterministic text listing used in logs and golden tests.
//
// Nothing in this package solves anything; it only builds and inspects
// descriptions of feasible regions.
package linop
