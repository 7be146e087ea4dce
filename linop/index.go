// SPDX-License-Identifier: MIT

package linop

import "fmt"

// GetIndex returns the scalar e[i, j].
// Indexing an affine expression is itself affine, so the returned
// constraint slice is always empty; it exists so callers treat every
// helper uniformly and concatenate whatever comes back.
func GetIndex(e *Expr, i, j int) (*Expr, []Constraint, error) {
	el, err := Index(e, Block{RowStart: i, RowEnd: i + 1, ColStart: j, ColEnd: j + 1})
	if err != nil {
		return nil, nil, err
	}

	return el, nil, nil
}

// BlockEq asserts a[r0:r1, c0:c1] == b as a single block equality.
//
// b may either have the block's shape, in which case it is equated whole,
// or a's shape, in which case the same block of b is used.
func BlockEq(a, b *Expr, r0, r1, c0, c1 int) ([]Constraint, error) {
	if a == nil || b == nil {
		return nil, linopErrorf(opBlockEq, ErrNilExpr)
	}
	blk := Block{RowStart: r0, RowEnd: r1, ColStart: c0, ColEnd: c1}
	lhs, err := Index(a, blk)
	if err != nil {
		return nil, linopErrorf(opBlockEq, err)
	}
	rhs := b
	switch b.shape {
	case blk.Shape():
	case a.shape:
		if rhs, err = Index(b, blk); err != nil {
			return nil, linopErrorf(opBlockEq, err)
		}
	default:
		return nil, linopErrorf(opBlockEq, fmt.Errorf("block %s of %s vs %s: %w", blk.Shape(), a.shape, b.shape, ErrShapeMismatch))
	}
	eq, err := Equality(lhs, rhs)
	if err != nil {
		return nil, linopErrorf(opBlockEq, err)
	}

	return []Constraint{eq}, nil
}
