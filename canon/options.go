// SPDX-License-Identifier: MIT

package canon

import "go.uber.org/zap"

// DefaultConcurrency bounds CanonicalizeAll when WithConcurrency is not given.
const DefaultConcurrency = 4

// Option configures a Canonicalizer.
type Option func(*options)

type options struct {
	logger      *zap.Logger
	concurrency int
}

func gatherOptions(opts ...Option) options {
	o := options{logger: zap.NewNop(), concurrency: DefaultConcurrency}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithLogger sets the structured logger. Panics on nil (programmer error).
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("canon: WithLogger(nil)")
	}

	return func(o *options) { o.logger = l }
}

// WithConcurrency bounds the number of expressions CanonicalizeAll reduces
// at once. Panics if n < 1.
func WithConcurrency(n int) Option {
	if n < 1 {
		panic("canon: WithConcurrency requires n >= 1")
	}

	return func(o *options) { o.concurrency = n }
}
