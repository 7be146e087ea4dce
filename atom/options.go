// SPDX-License-Identifier: MIT

package atom

// DefaultStrictDomain keeps IEEE semantics in Evaluate: a NaN or -Inf
// result is returned as a value, not as an error.
const DefaultStrictDomain = false

// Option configures Evaluate.
type Option func(*options)

type options struct {
	strictDomain bool
}

func gatherOptions(opts ...Option) options {
	o := options{strictDomain: DefaultStrictDomain}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithStrictDomain makes Evaluate return ErrNumericDomain when the result
// contains NaN or ±Inf (e.g. log det of a matrix with det <= 0).
func WithStrictDomain() Option {
	return func(o *options) { o.strictDomain = true }
}
