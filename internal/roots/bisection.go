package roots

import (
	"fmt"
	"math"

	"github.com/san-kum/numlab/internal/numeric"
)

// Bisection finds a root of f inside the bracket (a, b) to within tol by
// repeated halving. The number of halvings needed is known up front,
// ceil(log2(|b-a|/tol)); the loop exits early when a midpoint satisfies
// |f(m)| < tol. f(a) and f(b) must have opposite signs, otherwise the
// call fails with ErrInvalidBracket.
func Bisection(f numeric.Func, a, b, tol float64, opts ...Option) (float64, error) {
	o := buildOptions(opts)

	if tol <= 0 {
		return 0, fmt.Errorf("tolerance %g: %w", tol, numeric.ErrInvalidTolerance)
	}
	fa, fb := f(a), f(b)
	if fa*fb >= 0 {
		return 0, fmt.Errorf("f(%g) and f(%g) have the same sign: %w", a, b, numeric.ErrInvalidBracket)
	}

	x1, x2 := a, b
	steps := int(math.Ceil(math.Log2(math.Abs(x2-x1) / tol)))

	for i := 0; i < steps; i++ {
		m := (x1 + x2) / 2
		fm := f(m)

		if o.tracer != nil {
			o.tracer.Trace(i, map[string]float64{"x1": x1, "x2": x2, "m": m, "fm": fm})
		}

		if math.Abs(fm) < tol {
			return m, nil
		}
		if f(x1)*fm < 0 {
			x2 = m
		} else {
			x1 = m
		}
	}

	return (x1 + x2) / 2, nil
}
