// SPDX-License-Identifier: MIT

package canon

import "errors"

var (
	// ErrNilExpression is returned for a nil expression or a typed-nil leaf.
	ErrNilExpression = errors.New("canon: nil expression")

	// ErrUnsupportedExpression is returned for a node that is neither an
	// affine leaf nor an atom.
	ErrUnsupportedExpression = errors.New("canon: unsupported expression")
)
