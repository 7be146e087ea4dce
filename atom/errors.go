// SPDX-License-Identifier: MIT

package atom

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlcone/linop"
)

var (
	// ErrDomain matches every *DomainError via errors.Is.
	ErrDomain = errors.New("atom: domain error")

	// ErrNumericDomain is returned by Evaluate in strict mode when the
	// numeric result is NaN or infinite.
	ErrNumericDomain = errors.New("atom: numeric result outside domain")

	// ErrArity is returned when an atom receives the wrong number of arguments.
	ErrArity = errors.New("atom: wrong number of arguments")
)

// DomainError reports an argument whose shape the atom cannot accept.
// It is raised before any variable or constraint is created.
type DomainError struct {
	Atom   Kind
	Shape  linop.Shape
	Reason string
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	return fmt.Sprintf("atom: %s: %s (got %s)", e.Atom, e.Reason, e.Shape)
}

// Unwrap lets errors.Is(err, ErrDomain) match.
func (e *DomainError) Unwrap() error { return ErrDomain }

func arityError(k Kind, want, got int) error {
	return fmt.Errorf("atom: %s: want %d argument(s), got %d: %w", k, want, got, ErrArity)
}
