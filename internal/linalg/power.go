package linalg

import (
	"fmt"

	"github.com/san-kum/numlab/internal/numeric"
)

// PowerResult holds the dominant eigenpair estimate after a fixed number
// of power iterations, plus the final residual ||A*v - lambda*v|| as a
// convergence diagnostic.
type PowerResult struct {
	Value    float64
	Vector   []float64
	Residual float64
}

// PowerOption configures a power-method run.
type PowerOption func(*powerOptions)

type powerOptions struct {
	scale  bool
	tracer numeric.Tracer
}

// WithoutScaling disables the per-iteration rescaling by the iterate's
// largest-magnitude component. Without it large dominant eigenvalues
// overflow quickly.
func WithoutScaling() PowerOption {
	return func(o *powerOptions) { o.scale = false }
}

// WithPowerTracer reports each iterate through t.
func WithPowerTracer(t numeric.Tracer) PowerOption {
	return func(o *powerOptions) { o.tracer = t }
}

// PowerMethod runs exactly k iterations of x <- A*x from the nonzero
// start vector x0, then estimates the dominant eigenvalue from the
// Rayleigh quotient of the final iterate. There is no convergence test;
// callers judge the returned Residual. A must be square with a dominant
// eigenvalue for the estimate to mean anything.
func PowerMethod(a *Matrix, x0 []float64, k int, opts ...PowerOption) (PowerResult, error) {
	o := powerOptions{scale: true}
	for _, opt := range opts {
		opt(&o)
	}

	if a.rows != a.cols {
		return PowerResult{}, fmt.Errorf("matrix is %dx%d, want square: %w",
			a.rows, a.cols, numeric.ErrDimensionMismatch)
	}
	if len(x0) != a.cols {
		return PowerResult{}, fmt.Errorf("start vector length %d, want %d: %w",
			len(x0), a.cols, numeric.ErrDimensionMismatch)
	}
	if k < 1 {
		return PowerResult{}, numeric.ErrInvalidStepCount
	}
	if _, magnitude := numeric.MaxAbs(x0); magnitude == 0 {
		return PowerResult{}, fmt.Errorf("start vector: %w", numeric.ErrZeroVector)
	}

	x := numeric.CloneVec(x0)
	for i := 0; i < k; i++ {
		next, err := a.MulVec(x)
		if err != nil {
			return PowerResult{}, err
		}
		if o.scale {
			largest, magnitude := numeric.MaxAbs(next)
			if magnitude == 0 {
				return PowerResult{}, fmt.Errorf("iterate collapsed at step %d: %w", i, numeric.ErrZeroVector)
			}
			for j := range next {
				next[j] /= largest
			}
		}
		if o.tracer != nil {
			values := map[string]float64{}
			for j, v := range next {
				values[fmt.Sprintf("x%d", j)] = v
			}
			o.tracer.Trace(i, values)
		}
		x = next
	}

	ax, err := a.MulVec(x)
	if err != nil {
		return PowerResult{}, err
	}
	xx := numeric.Dot(x, x)
	if xx == 0 {
		return PowerResult{}, fmt.Errorf("final iterate: %w", numeric.ErrZeroVector)
	}
	lambda := numeric.Dot(x, ax) / xx

	residual := make([]float64, len(x))
	for i := range x {
		residual[i] = ax[i] - lambda*x[i]
	}

	return PowerResult{
		Value:    lambda,
		Vector:   x,
		Residual: numeric.Norm(residual),
	}, nil
}
