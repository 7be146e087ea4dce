// SPDX-License-Identifier: MIT

package linop

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Namer assigns stable short names (x0, x1, ...) to variables in order of
// first appearance, so listings do not depend on random identities.
type Namer struct {
	names map[uuid.UUID]string
	order []*Expr
}

// NewNamer returns an empty Namer.
func NewNamer() *Namer {
	return &Namer{names: make(map[uuid.UUID]string)}
}

// Name returns the short name of v, assigning the next one on first use.
func (n *Namer) Name(v *Expr) string {
	if name, ok := n.names[v.id]; ok {
		return name
	}
	name := fmt.Sprintf("x%d", len(n.order))
	n.names[v.id] = name
	n.order = append(n.order, v)

	return name
}

// Variables returns the variables named so far, in naming order.
func (n *Namer) Variables() []*Expr {
	out := make([]*Expr, len(n.order))
	copy(out, n.order)

	return out
}

// Expr renders e. Scalar picks render as x[i,j], blocks as x[r0:r1,c0:c1].
func (n *Namer) Expr(e *Expr) string {
	if e == nil {
		return "<nil>"
	}
	switch e.op {
	case OpVariable:
		return n.Name(e)
	case OpConstant:
		return formatConstant(e)
	case OpIndex:
		b := e.block
		inner := n.Expr(e.args[0])
		if b.Shape().IsScalar() {
			return fmt.Sprintf("%s[%d,%d]", inner, b.RowStart, b.ColStart)
		}
		return fmt.Sprintf("%s[%d:%d,%d:%d]", inner, b.RowStart, b.RowEnd, b.ColStart, b.ColEnd)
	case OpTranspose:
		return "transpose(" + n.Expr(e.args[0]) + ")"
	case OpSum:
		parts := make([]string, len(e.args))
		for i, a := range e.args {
			parts[i] = n.Expr(a)
		}
		return "sum(" + strings.Join(parts, ", ") + ")"
	default:
		return e.op.String()
	}
}

// Constraint renders c on one line.
func (n *Namer) Constraint(c Constraint) string {
	switch c.kind {
	case KindEquality:
		lhs := n.Expr(c.args[0])
		return lhs + " == " + n.Expr(c.args[1])
	case KindPSD:
		return "psd(" + n.Expr(c.args[0]) + ")"
	case KindExpCone:
		x := n.Expr(c.args[0])
		y := n.Expr(c.args[1])
		return "expcone(" + x + ", " + y + ", " + n.Expr(c.args[2]) + ")"
	default:
		return c.kind.String()
	}
}

// formatConstant prints uniform constants compactly: "0" for a scalar zero,
// "0[2x2]" for a zero block, and "const[RxC]" otherwise.
func formatConstant(e *Expr) string {
	first, _ := e.value.At(0, 0)
	for i := 0; i < e.shape.Rows; i++ {
		for _, v := range e.value.RawRowView(i) {
			if v != first {
				return "const[" + e.shape.String() + "]"
			}
		}
	}
	if e.shape.IsScalar() {
		return fmt.Sprintf("%g", first)
	}

	return fmt.Sprintf("%g[%s]", first, e.shape)
}

// Format lists a reduction: the variables (renamed by first appearance in
// the constraints, then the objective), the objective and the numbered
// constraints.
func Format(objective *Expr, constraints []Constraint) string {
	n := NewNamer()
	lines := make([]string, len(constraints))
	for i, c := range constraints {
		lines[i] = fmt.Sprintf("  %d: %s", i, n.Constraint(c))
	}
	obj := n.Expr(objective)

	var sb strings.Builder
	sb.WriteString("variables:\n")
	for _, v := range n.Variables() {
		fmt.Fprintf(&sb, "  %s %s\n", n.Name(v), v.shape)
	}
	fmt.Fprintf(&sb, "objective: %s\n", obj)
	sb.WriteString("constraints:\n")
	for _, l := range lines {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}

	return sb.String()
}
