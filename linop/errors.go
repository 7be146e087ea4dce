// SPDX-License-Identifier: MIT

package linop

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a shape has a non-positive component.
	ErrBadShape = errors.New("linop: invalid shape")

	// ErrShapeMismatch is returned when operands must share a shape but do not.
	ErrShapeMismatch = errors.New("linop: shape mismatch")

	// ErrNotSquare is returned when a square operand is required.
	ErrNotSquare = errors.New("linop: expression is not square")

	// ErrOutOfRange is returned by Index/GetIndex/BlockEq for bad bounds.
	ErrOutOfRange = errors.New("linop: index out of range")

	// ErrEmptySum is returned when Sum receives no terms.
	ErrEmptySum = errors.New("linop: sum of no terms")

	// ErrNilExpr is returned when a nil *Expr is passed where a node is required.
	ErrNilExpr = errors.New("linop: nil expression")

	// ErrUnassigned is returned by Evaluate when a variable has no value.
	ErrUnassigned = errors.New("linop: variable has no assigned value")
)

// Operation tags for error wrapping.
const (
	opVariable = "NewVariable"
	opConstant = "NewConstant"
	opIndex    = "Index"
	opSum      = "Sum"
	opEquality = "Equality"
	opPSD      = "PSD"
	opExpCone  = "ExpCone"
	opBlockEq  = "BlockEq"
	opEvaluate = "Evaluate"
	opAssign   = "Assignment.Set"
)

func linopErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
