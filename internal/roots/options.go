package roots

import "github.com/san-kum/numlab/internal/numeric"

// DefaultMaxIter bounds Newton's iteration when the caller does not.
const DefaultMaxIter = 50

type options struct {
	tracer  numeric.Tracer
	maxIter int
}

// Option configures a root-finding run.
type Option func(*options)

// WithTracer reports every iteration through t.
func WithTracer(t numeric.Tracer) Option {
	return func(o *options) { o.tracer = t }
}

// WithMaxIter caps the number of Newton iterations. Values below 1 keep
// the default.
func WithMaxIter(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.maxIter = n
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{maxIter: DefaultMaxIter}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
