// SPDX-License-Identifier: MIT

package atom

import "fmt"

// Kind tags the concrete atom variant.
type Kind uint8

const (
	// KindLogDet is log det(A).
	KindLogDet Kind = iota
	// KindLog is the elementwise natural logarithm.
	KindLog
	// KindTranspose is the matrix transpose.
	KindTranspose
)

// String returns the atom's canonical name.
func (k Kind) String() string {
	switch k {
	case KindLogDet:
		return "log_det"
	case KindLog:
		return "log"
	case KindTranspose:
		return "transpose"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Sign is the sign of an expression's value over its domain.
type Sign uint8

const (
	SignUnknown Sign = iota
	SignPositive
	SignNegative
	SignZero
)

// String returns the uppercase sign name.
func (s Sign) String() string {
	switch s {
	case SignPositive:
		return "POSITIVE"
	case SignNegative:
		return "NEGATIVE"
	case SignZero:
		return "ZERO"
	default:
		return "UNKNOWN"
	}
}

// Curvature classifies an atom as a function of its arguments.
type Curvature uint8

const (
	CurvatureUnknown Curvature = iota
	CurvatureConstant
	CurvatureAffine
	CurvatureConvex
	CurvatureConcave
)

// String returns the uppercase curvature name.
func (c Curvature) String() string {
	switch c {
	case CurvatureConstant:
		return "CONSTANT"
	case CurvatureAffine:
		return "AFFINE"
	case CurvatureConvex:
		return "CONVEX"
	case CurvatureConcave:
		return "CONCAVE"
	default:
		return "UNKNOWN"
	}
}

// Monotonicity describes how an atom responds to one of its arguments.
type Monotonicity uint8

const (
	Nonmonotonic Monotonicity = iota
	Increasing
	Decreasing
)

// String returns the uppercase monotonicity name.
func (m Monotonicity) String() string {
	switch m {
	case Increasing:
		return "INCREASING"
	case Decreasing:
		return "DECREASING"
	default:
		return "NONMONOTONIC"
	}
}
