// SPDX-License-Identifier: MIT
// Package matrix: numeric kernels used by atom evaluation and certificate checks.
//
// Notes:
//   - Inputs are never mutated; every kernel works on a private copy.
//   - Loop orders are fixed (i→j→k) so results are bit-for-bit reproducible.

package matrix

import (
	"fmt"
	"math"
	"sort"
)

// Numeric defaults for EigenSym / MinEigenvalue.
const (
	// DefaultEigenTol is the absolute off-diagonal threshold for Jacobi convergence.
	DefaultEigenTol = 1e-12

	// eigenSweepFactor scales the rotation budget with n².
	eigenSweepFactor = 64
)

// Transpose returns a new matrix mᵀ.
// Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out, err := NewDense(src.c, src.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	for i := 0; i < src.r; i++ {
		for j := 0; j < src.c; j++ {
			out.data[j*src.r+i] = src.data[i*src.c+j]
		}
	}

	return out, nil
}

// Symmetrize returns (m + mᵀ)/2 for a square m.
func Symmetrize(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}
	n := src.r
	out := src.Clone()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			avg := (src.data[i*n+j] + src.data[j*n+i]) / 2
			out.data[i*n+j] = avg
			out.data[j*n+i] = avg
		}
	}

	return out, nil
}

// MaxAbsDiff returns max |a[i,j] - b[i,j]| over all entries.
// A NaN entry on either side makes the result NaN.
func MaxAbsDiff(a, b Matrix) (float64, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return 0, matrixErrorf(opMaxAbsDiff, err)
	}
	da, err := toDense(a)
	if err != nil {
		return 0, matrixErrorf(opMaxAbsDiff, err)
	}
	db, err := toDense(b)
	if err != nil {
		return 0, matrixErrorf(opMaxAbsDiff, err)
	}
	worst := 0.0
	for i := range da.data {
		d := math.Abs(da.data[i] - db.data[i])
		if math.IsNaN(d) {
			return math.NaN(), nil
		}
		if d > worst {
			worst = d
		}
	}

	return worst, nil
}

// luDiag factors a copy of m as PA = LU with partial pivoting and returns the
// diagonal of U together with the permutation parity (+1 or -1).
// A zero pivot column stops the elimination early; the returned diagonal
// then contains a zero, which callers interpret as det = 0.
func luDiag(m Matrix) ([]float64, float64, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, 0, err
	}
	src, err := toDense(m)
	if err != nil {
		return nil, 0, err
	}
	n := src.r
	a := src.Clone().data
	parity := 1.0
	var (
		i, j, k, p int
		best, f    float64
	)
	for k = 0; k < n; k++ {
		// pick the largest |a[i,k]| for i >= k
		p, best = k, math.Abs(a[k*n+k])
		for i = k + 1; i < n; i++ {
			if v := math.Abs(a[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best == 0 {
			diag := make([]float64, n)
			for i = 0; i < n; i++ {
				diag[i] = a[i*n+i]
			}
			diag[k] = 0

			return diag, parity, nil
		}
		if p != k {
			for j = 0; j < n; j++ {
				a[k*n+j], a[p*n+j] = a[p*n+j], a[k*n+j]
			}
			parity = -parity
		}
		for i = k + 1; i < n; i++ {
			f = a[i*n+k] / a[k*n+k]
			if f == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				a[i*n+j] -= f * a[k*n+j]
			}
			a[i*n+k] = 0
		}
	}
	diag := make([]float64, n)
	for i = 0; i < n; i++ {
		diag[i] = a[i*n+i]
	}

	return diag, parity, nil
}

// Det returns the determinant of a square matrix.
// A singular input yields 0 without error.
// Complexity: O(n³) time, O(n²) memory.
func Det(m Matrix) (float64, error) {
	diag, parity, err := luDiag(m)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	det := parity
	for _, d := range diag {
		det *= d
	}

	return det, nil
}

// LogDet returns ln(det(m)).
//
// The value is accumulated as Σ ln|uᵢᵢ| so large matrices do not overflow.
// IEEE semantics are kept on purpose: det < 0 gives NaN, det == 0 gives -Inf.
// Only a nil or non-square argument produces an error.
func LogDet(m Matrix) (float64, error) {
	diag, parity, err := luDiag(m)
	if err != nil {
		return 0, matrixErrorf(opLogDet, err)
	}
	sum := 0.0
	for _, d := range diag {
		if d == 0 {
			return math.Inf(-1), nil
		}
		if d < 0 {
			parity = -parity
		}
		sum += math.Log(math.Abs(d))
	}
	if parity < 0 {
		return math.NaN(), nil
	}

	return sum, nil
}

// EigenSym computes the eigenvalues of a symmetric matrix with cyclic
// max-pivot Jacobi rotations and returns them in ascending order.
//
// Errors:
//   - ErrNonSquare / ErrAsymmetry from validation (symmetry checked with tol).
//   - ErrEigenFailed if the off-diagonal mass is still above tol after maxIter rotations.
//
// Complexity: O(n²) per rotation, O(n) memory beyond the working copy.
func EigenSym(m Matrix, tol float64, maxIter int) ([]float64, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	n := src.r
	a := src.Clone().data

	var (
		iter, i, p, q  int
		maxOff, off    float64
		app, aqq, apq  float64
		aip, aiq       float64
		theta, t, c, s float64
		converged      bool
	)
	for iter = 0; iter <= maxIter; iter++ {
		// find pivot (p,q) maximizing |a[p,q]|
		maxOff = 0
		for i = 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if off = math.Abs(a[i*n+j]); off > maxOff {
					maxOff, p, q = off, i, j
				}
			}
		}
		if maxOff <= tol {
			converged = true
			break
		}
		if iter == maxIter {
			break
		}

		app, aqq, apq = a[p*n+p], a[q*n+q], a[p*n+q]
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		for i = 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip, aiq = a[i*n+p], a[i*n+q]
			a[i*n+p] = c*aip - s*aiq
			a[p*n+i] = a[i*n+p]
			a[i*n+q] = s*aip + c*aiq
			a[q*n+i] = a[i*n+q]
		}
		a[p*n+p] = app - t*apq
		a[q*n+q] = aqq + t*apq
		a[p*n+q], a[q*n+p] = 0, 0
	}
	if !converged {
		return nil, matrixErrorf(opEigen, fmt.Errorf("after %d rotations: %w", maxIter, ErrEigenFailed))
	}

	vals := make([]float64, n)
	for i = 0; i < n; i++ {
		vals[i] = a[i*n+i]
	}
	sort.Float64s(vals)

	return vals, nil
}

// MinEigenvalue returns the smallest eigenvalue of the symmetric part of m.
// It is the workhorse of positive-semidefinite checks: m ⪰ 0 iff the result >= 0.
func MinEigenvalue(m Matrix) (float64, error) {
	sym, err := Symmetrize(m)
	if err != nil {
		return 0, err
	}
	budget := eigenSweepFactor * sym.r * sym.r
	if budget < 100 {
		budget = 100
	}
	vals, err := EigenSym(sym, DefaultEigenTol, budget)
	if err != nil {
		return 0, err
	}

	return vals[0], nil
}
