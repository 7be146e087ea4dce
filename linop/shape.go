// SPDX-License-Identifier: MIT

package linop

import "fmt"

// Shape is the (rows, cols) size of an expression. Scalars are 1×1.
type Shape struct {
	Rows int
	Cols int
}

// ScalarShape is the shape of every scalar expression.
var ScalarShape = Shape{Rows: 1, Cols: 1}

// NewShape returns Shape{rows, cols} or ErrBadShape if either is < 1.
func NewShape(rows, cols int) (Shape, error) {
	s := Shape{Rows: rows, Cols: cols}
	if err := s.Validate(); err != nil {
		return Shape{}, err
	}

	return s, nil
}

// Validate reports ErrBadShape for zero-sized or negative shapes.
func (s Shape) Validate() error {
	if s.Rows < 1 || s.Cols < 1 {
		return fmt.Errorf("%s: %w", s, ErrBadShape)
	}

	return nil
}

// IsSquare reports whether Rows == Cols.
func (s Shape) IsSquare() bool { return s.Rows == s.Cols }

// IsScalar reports whether the shape is 1×1.
func (s Shape) IsScalar() bool { return s == ScalarShape }

// Size is the number of entries, Rows*Cols.
func (s Shape) Size() int { return s.Rows * s.Cols }

// T returns the transposed shape.
func (s Shape) T() Shape { return Shape{Rows: s.Cols, Cols: s.Rows} }

// String renders the shape as "RxC".
func (s Shape) String() string { return fmt.Sprintf("%dx%d", s.Rows, s.Cols) }
