package roots

import (
	"fmt"
	"math"

	"github.com/san-kum/numlab/internal/numeric"
)

// Newton finds a root of f starting from x0 by the Newton-Raphson update
// x <- x - f(x)/f'(x), stopping once |f(x)| < tol. The iteration is
// bounded (DefaultMaxIter unless WithMaxIter overrides it) and fails with
// ErrNonConvergence past the bound, or ErrZeroDerivative if fprime
// vanishes at an iterate.
func Newton(f, fprime numeric.Func, x0, tol float64, opts ...Option) (float64, error) {
	o := buildOptions(opts)

	if tol <= 0 {
		return 0, fmt.Errorf("tolerance %g: %w", tol, numeric.ErrInvalidTolerance)
	}

	x := x0
	for i := 0; i < o.maxIter; i++ {
		fx := f(x)
		if math.Abs(fx) < tol {
			return x, nil
		}

		d := fprime(x)
		if d == 0 {
			return 0, fmt.Errorf("f'(%g) = 0 at iteration %d: %w", x, i, numeric.ErrZeroDerivative)
		}

		next := x - fx/d
		if o.tracer != nil {
			o.tracer.Trace(i, map[string]float64{"x": x, "fx": fx, "dfx": d, "next": next})
		}
		x = next
	}

	if math.Abs(f(x)) < tol {
		return x, nil
	}
	return 0, fmt.Errorf("no root within %d iterations from x0=%g: %w", o.maxIter, x0, numeric.ErrNonConvergence)
}
