// SPDX-License-Identifier: MIT

package atom

import "github.com/katalvlaran/lvlcone/linop"

// constraintList collects the constraints of one reduction call.
// It is local to that call and handed to the caller by value at the end;
// the first error sticks and later additions become no-ops.
type constraintList struct {
	cons []linop.Constraint
	err  error
}

// add appends c unless an error is already recorded or err is non-nil.
func (l *constraintList) add(c linop.Constraint, err error) {
	if l.err != nil {
		return
	}
	if err != nil {
		l.err = err
		return
	}
	l.cons = append(l.cons, c)
}

// extend concatenates a helper's own constraint slice.
func (l *constraintList) extend(cs []linop.Constraint, err error) {
	if l.err != nil {
		return
	}
	if err != nil {
		l.err = err
		return
	}
	l.cons = append(l.cons, cs...)
}

// expr returns e, recording err when non-nil.
func (l *constraintList) expr(e *linop.Expr, err error) *linop.Expr {
	if l.err == nil && err != nil {
		l.err = err
	}

	return e
}
