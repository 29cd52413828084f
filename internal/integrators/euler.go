package integrators

import "github.com/san-kum/numlab/internal/numeric"

// Euler is the forward Euler method, first order.
type Euler struct{}

func (Euler) Name() string { return "euler" }
func (Euler) Order() int   { return 1 }

func (Euler) Step(f numeric.RHS, x, y, h float64) float64 {
	return y + h*f(x, y)
}

func (Euler) StepSystem(f1, f2 numeric.RHS2, t, x, y, h float64) (float64, float64) {
	return x + h*f1(t, x, y), y + h*f2(t, x, y)
}
