// SPDX-License-Identifier: MIT

// Package canon is the compile-time side of the reduction: it walks a
// modeling expression, reduces every atom bottom-up and merges the
// results into one affine objective plus a constraint list.
//
// Arguments are canonicalized before the atom that consumes them, and the
// argument constraints precede the atom's own in the merged list. Each
// call allocates its own auxiliary variables, so independent expressions
// can be reduced concurrently with CanonicalizeAll.
//
// Logging goes through zap; the default logger is a no-op.
package canon
