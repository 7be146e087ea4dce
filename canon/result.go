// SPDX-License-Identifier: MIT

package canon

import (
	"fmt"

	"github.com/katalvlaran/lvlcone/linop"
	"gopkg.in/yaml.v3"
)

// Result is one canonicalized expression: an affine objective and the
// constraints that make it equal to the original expression at the optimum.
type Result struct {
	Objective   *linop.Expr
	Constraints []linop.Constraint
}

// Stats summarizes a Result.
type Stats struct {
	Variables  int `yaml:"variables"`
	Equalities int `yaml:"equalities"`
	PSD        int `yaml:"psd"`
	ExpCones   int `yaml:"expcones"`
}

// Constraints is the total number of constraints.
func (s Stats) Constraints() int { return s.Equalities + s.PSD + s.ExpCones }

// Stats counts distinct variables and constraints per family.
func (r *Result) Stats() Stats {
	var s Stats
	exprs := []*linop.Expr{r.Objective}
	for _, c := range r.Constraints {
		switch c.Kind() {
		case linop.KindEquality:
			s.Equalities++
		case linop.KindPSD:
			s.PSD++
		case linop.KindExpCone:
			s.ExpCones++
		}
		exprs = append(exprs, c.Args()...)
	}
	s.Variables = len(linop.Variables(exprs...))

	return s
}

// String is the deterministic listing from linop.Format.
func (r *Result) String() string {
	return linop.Format(r.Objective, r.Constraints)
}

// Summary is the YAML form of a Result.
type Summary struct {
	Objective   string   `yaml:"objective"`
	Stats       Stats    `yaml:"stats"`
	Constraints []string `yaml:"constraints"`
}

// Summary renders r with variables named as in String.
func (r *Result) Summary() Summary {
	n := linop.NewNamer()
	lines := make([]string, len(r.Constraints))
	for i, c := range r.Constraints {
		lines[i] = fmt.Sprintf("%s: %s", c.Kind(), n.Constraint(c))
	}

	return Summary{Objective: n.Expr(r.Objective), Stats: r.Stats(), Constraints: lines}
}

// MarshalYAML implements yaml.Marshaler.
func (r *Result) MarshalYAML() (interface{}, error) {
	return r.Summary(), nil
}

// YAML encodes the summary of r.
func (r *Result) YAML() ([]byte, error) {
	return yaml.Marshal(r)
}
