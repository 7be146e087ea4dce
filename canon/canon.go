// SPDX-License-Identifier: MIT

package canon

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvlcone/atom"
	"github.com/katalvlaran/lvlcone/linop"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Canonicalizer reduces modeling expressions to conic form.
// It holds only configuration and is safe for concurrent use.
type Canonicalizer struct {
	logger      *zap.Logger
	concurrency int
}

// New returns a Canonicalizer configured by opts.
func New(opts ...Option) *Canonicalizer {
	o := gatherOptions(opts...)

	return &Canonicalizer{logger: o.logger, concurrency: o.concurrency}
}

// Canonicalize reduces e. Affine leaves pass through with no constraints.
func (c *Canonicalizer) Canonicalize(e atom.Expression) (*Result, error) {
	obj, cons, err := c.reduce(e, 0)
	if err != nil {
		return nil, err
	}

	return &Result{Objective: obj, Constraints: cons}, nil
}

// CanonicalizeAll reduces independent expressions concurrently and returns
// the results in input order. The first failure cancels the rest.
func (c *Canonicalizer) CanonicalizeAll(ctx context.Context, exprs []atom.Expression) ([]*Result, error) {
	results := make([]*Result, len(exprs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for i, e := range exprs {
		i, e := i, e
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := c.Canonicalize(e)
			if err != nil {
				return fmt.Errorf("canon: expression %d: %w", i, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (c *Canonicalizer) reduce(e atom.Expression, depth int) (*linop.Expr, []linop.Constraint, error) {
	switch n := e.(type) {
	case nil:
		return nil, nil, ErrNilExpression

	case *linop.Expr:
		if n == nil {
			return nil, nil, ErrNilExpression
		}
		return n, nil, nil

	case atom.Atom:
		if err := n.ValidateArguments(); err != nil {
			c.logger.Warn("atom rejected",
				zap.Stringer("atom", n.Kind()),
				zap.Int("depth", depth),
				zap.Error(err))
			return nil, nil, err
		}

		args := n.Args()
		objs := make([]*linop.Expr, len(args))
		var cons []linop.Constraint
		for i, a := range args {
			obj, cs, err := c.reduce(a, depth+1)
			if err != nil {
				return nil, nil, err
			}
			objs[i] = obj
			cons = append(cons, cs...)
		}

		obj, own, err := n.Reduce(objs, n.ShapeFromArgs())
		if err != nil {
			return nil, nil, fmt.Errorf("canon: %s: %w", n.Kind(), err)
		}
		c.logger.Debug("reduced atom",
			zap.Stringer("atom", n.Kind()),
			zap.Int("depth", depth),
			zap.String("args", fmt.Sprint(atom.ArgShapes(n))),
			zap.Int("constraints", len(own)))

		return obj, append(cons, own...), nil

	default:
		return nil, nil, fmt.Errorf("%T: %w", e, ErrUnsupportedExpression)
	}
}
