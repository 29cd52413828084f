package integrators

import "github.com/san-kum/numlab/internal/numeric"

// RK2 is the midpoint Runge-Kutta method, second order.
type RK2 struct{}

func (RK2) Name() string { return "rk2" }
func (RK2) Order() int   { return 2 }

func (RK2) Step(f numeric.RHS, x, y, h float64) float64 {
	k1 := f(x, y)
	k2 := f(x+h/2, y+h*k1/2)
	return y + h*k2
}

func (RK2) StepSystem(f1, f2 numeric.RHS2, t, x, y, h float64) (float64, float64) {
	k11 := f1(t, x, y)
	k12 := f2(t, x, y)

	k21 := f1(t+h/2, x+h/2*k11, y+h/2*k12)
	k22 := f2(t+h/2, x+h/2*k11, y+h/2*k12)

	return x + h*k21, y + h*k22
}
