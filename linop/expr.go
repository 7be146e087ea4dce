// SPDX-License-Identifier: MIT

package linop

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/katalvlaran/lvlcone/matrix"
)

// Op identifies the kind of an Expr node.
type Op uint8

const (
	// OpVariable is a leaf decision variable.
	OpVariable Op = iota
	// OpConstant is a leaf holding a fixed dense value.
	OpConstant
	// OpIndex selects a rectangular block of its single argument.
	OpIndex
	// OpTranspose transposes its single argument.
	OpTranspose
	// OpSum adds same-shaped arguments.
	OpSum
)

// String returns the lowercase op name.
func (o Op) String() string {
	switch o {
	case OpVariable:
		return "variable"
	case OpConstant:
		return "constant"
	case OpIndex:
		return "index"
	case OpTranspose:
		return "transpose"
	case OpSum:
		return "sum"
	default:
		return fmt.Sprintf("op(%d)", uint8(o))
	}
}

// Block is the half-open rectangle [RowStart:RowEnd, ColStart:ColEnd].
type Block struct {
	RowStart, RowEnd int
	ColStart, ColEnd int
}

// Shape returns the size of the block.
func (b Block) Shape() Shape {
	return Shape{Rows: b.RowEnd - b.RowStart, Cols: b.ColEnd - b.ColStart}
}

// within reports whether b is a non-empty rectangle inside s.
func (b Block) within(s Shape) bool {
	return b.RowStart >= 0 && b.ColStart >= 0 &&
		b.RowEnd <= s.Rows && b.ColEnd <= s.Cols &&
		b.RowStart < b.RowEnd && b.ColStart < b.ColEnd
}

// Expr is an immutable node of an affine expression tree.
// Nodes are built only through the constructors in this package, so a
// handle can be shared freely between constraints and objectives.
type Expr struct {
	op    Op
	shape Shape
	id    uuid.UUID     // OpVariable
	value *matrix.Dense // OpConstant
	block Block         // OpIndex
	args  []*Expr
}

// NewVariable creates a fresh variable of the given shape.
// Every call yields a distinct identity.
func NewVariable(s Shape) (*Expr, error) {
	if err := s.Validate(); err != nil {
		return nil, linopErrorf(opVariable, err)
	}

	return &Expr{op: OpVariable, shape: s, id: uuid.New()}, nil
}

// NewConstant wraps a copy of m as a constant expression.
func NewConstant(m *matrix.Dense) (*Expr, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, linopErrorf(opConstant, err)
	}

	return &Expr{op: OpConstant, shape: Shape{Rows: m.Rows(), Cols: m.Cols()}, value: m.Clone()}, nil
}

// Fill returns a constant of shape s with every entry equal to v.
func Fill(s Shape, v float64) (*Expr, error) {
	if err := s.Validate(); err != nil {
		return nil, linopErrorf(opConstant, err)
	}
	m, err := matrix.NewFilled(s.Rows, s.Cols, v)
	if err != nil {
		return nil, linopErrorf(opConstant, err)
	}

	return &Expr{op: OpConstant, shape: s, value: m}, nil
}

// Scalar returns the 1×1 constant v.
func Scalar(v float64) *Expr {
	m, _ := matrix.NewFilled(1, 1, v)

	return &Expr{op: OpConstant, shape: ScalarShape, value: m}
}

// Index selects block b of e.
func Index(e *Expr, b Block) (*Expr, error) {
	if e == nil {
		return nil, linopErrorf(opIndex, ErrNilExpr)
	}
	if !b.within(e.shape) {
		return nil, linopErrorf(opIndex, fmt.Errorf("[%d:%d,%d:%d] of %s: %w",
			b.RowStart, b.RowEnd, b.ColStart, b.ColEnd, e.shape, ErrOutOfRange))
	}

	return &Expr{op: OpIndex, shape: b.Shape(), block: b, args: []*Expr{e}}, nil
}

// Transpose returns eᵀ. A nil e yields nil.
func Transpose(e *Expr) *Expr {
	if e == nil {
		return nil
	}

	return &Expr{op: OpTranspose, shape: e.shape.T(), args: []*Expr{e}}
}

// Sum adds terms of identical shape. A single term is returned unchanged.
func Sum(terms ...*Expr) (*Expr, error) {
	if len(terms) == 0 {
		return nil, linopErrorf(opSum, ErrEmptySum)
	}
	for i, t := range terms {
		if t == nil {
			return nil, linopErrorf(opSum, fmt.Errorf("term %d: %w", i, ErrNilExpr))
		}
		if t.shape != terms[0].shape {
			return nil, linopErrorf(opSum, fmt.Errorf("term %d is %s, want %s: %w", i, t.shape, terms[0].shape, ErrShapeMismatch))
		}
	}
	if len(terms) == 1 {
		return terms[0], nil
	}
	args := make([]*Expr, len(terms))
	copy(args, terms)

	return &Expr{op: OpSum, shape: terms[0].shape, args: args}, nil
}

// Op returns the node kind.
func (e *Expr) Op() Op { return e.op }

// Shape returns the node's shape.
func (e *Expr) Shape() Shape { return e.shape }

// ID returns the identity of a variable node; uuid.Nil for other ops.
func (e *Expr) ID() uuid.UUID { return e.id }

// Block returns the selected rectangle of an index node.
func (e *Expr) Block() Block { return e.block }

// Value returns a copy of a constant node's value, or nil for other ops.
func (e *Expr) Value() *matrix.Dense {
	if e.value == nil {
		return nil
	}

	return e.value.Clone()
}

// Args returns a copy of the node's children.
func (e *Expr) Args() []*Expr {
	out := make([]*Expr, len(e.args))
	copy(out, e.args)

	return out
}

// IsVariable reports whether e is a variable leaf.
func (e *Expr) IsVariable() bool { return e.op == OpVariable }

// Variables returns the distinct variables reachable from e in depth-first,
// left-to-right order of first appearance.
func Variables(exprs ...*Expr) []*Expr {
	seen := make(map[uuid.UUID]struct{})
	var out []*Expr
	var walk func(*Expr)
	walk = func(e *Expr) {
		if e == nil {
			return
		}
		if e.op == OpVariable {
			if _, ok := seen[e.id]; !ok {
				seen[e.id] = struct{}{}
				out = append(out, e)
			}
			return
		}
		for _, a := range e.args {
			walk(a)
		}
	}
	for _, e := range exprs {
		walk(e)
	}

	return out
}
