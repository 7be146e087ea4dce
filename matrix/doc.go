// SPDX-License-Identifier: MIT

// Package matrix provides the small dense linear-algebra kernel used to
// evaluate atoms numerically and to check conic certificates.
//
// The package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set.
//   - Transpose, Symmetrize and MaxAbsDiff helpers.
//   - Det and LogDet via LU factorization with partial pivoting.
//   - EigenSym / MinEigenvalue (cyclic Jacobi) for positive-semidefinite checks.
//
// All kernels are deterministic, never mutate their inputs and return
// package sentinels (see errors.go) wrapped with the operation name.
//
// LogDet follows IEEE semantics instead of failing: a negative determinant
// yields NaN and a zero determinant yields -Inf. Callers that need a hard
// failure must inspect the result.
package matrix
