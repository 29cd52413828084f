package integrators

import "github.com/san-kum/numlab/internal/numeric"

// RK4 is the classical four-stage Runge-Kutta method, fourth order.
type RK4 struct{}

func (RK4) Name() string { return "rk4" }
func (RK4) Order() int   { return 4 }

func (RK4) Step(f numeric.RHS, x, y, h float64) float64 {
	k1 := f(x, y)
	k2 := f(x+h/2, y+h*k1/2)
	k3 := f(x+h/2, y+h*k2/2)
	k4 := f(x+h, y+h*k3)

	return y + h*(k1/6+k2/3+k3/3+k4/6)
}

func (RK4) StepSystem(f1, f2 numeric.RHS2, t, x, y, h float64) (float64, float64) {
	k11 := f1(t, x, y)
	k12 := f2(t, x, y)

	k21 := f1(t+h/2, x+h/2*k11, y+h/2*k12)
	k22 := f2(t+h/2, x+h/2*k11, y+h/2*k12)

	k31 := f1(t+h/2, x+h/2*k21, y+h/2*k22)
	k32 := f2(t+h/2, x+h/2*k21, y+h/2*k22)

	k41 := f1(t+h, x+h*k31, y+h*k32)
	k42 := f2(t+h, x+h*k31, y+h*k32)

	return x + h/6*(k11+2*k21+2*k31+k41), y + h/6*(k12+2*k22+2*k32+k42)
}
