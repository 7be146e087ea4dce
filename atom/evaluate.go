// SPDX-License-Identifier: MIT

package atom

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlcone/linop"
	"github.com/katalvlaran/lvlcone/matrix"
)

// Evaluate validates a, checks that values match its argument shapes and
// returns a.Numeric(values).
//
// By default a result outside the function's domain comes back as NaN/Inf
// with a nil error. WithStrictDomain turns that into ErrNumericDomain.
func Evaluate(a Atom, values []matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts...)
	if err := a.ValidateArguments(); err != nil {
		return nil, err
	}
	shapes := ArgShapes(a)
	if len(values) != len(shapes) {
		return nil, arityError(a.Kind(), len(shapes), len(values))
	}
	for i, v := range values {
		if err := matrix.ValidateNotNil(v); err != nil {
			return nil, fmt.Errorf("atom: %s: argument %d: %w", a.Kind(), i, err)
		}
		if got := (linop.Shape{Rows: v.Rows(), Cols: v.Cols()}); got != shapes[i] {
			return nil, fmt.Errorf("atom: %s: argument %d is %s, want %s: %w", a.Kind(), i, got, shapes[i], linop.ErrShapeMismatch)
		}
	}

	out, err := a.Numeric(values)
	if err != nil {
		return nil, err
	}
	if o.strictDomain {
		for i := 0; i < out.Rows(); i++ {
			for j, x := range out.RawRowView(i) {
				if math.IsNaN(x) || math.IsInf(x, 0) {
					return nil, fmt.Errorf("atom: %s: entry (%d,%d) = %g: %w", a.Kind(), i, j, x, ErrNumericDomain)
				}
			}
		}
	}

	return out, nil
}
