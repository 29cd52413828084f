package integrators

import "github.com/san-kum/numlab/internal/numeric"

// Method is one fixed-step update rule. Step advances a scalar equation
// from (x, y) by h; StepSystem advances a coupled pair from (t, x, y).
type Method interface {
	Name() string
	Order() int
	Step(f numeric.RHS, x, y, h float64) float64
	StepSystem(f1, f2 numeric.RHS2, t, x, y, h float64) (float64, float64)
}

// ByName returns the method registered under name.
func ByName(name string) (Method, bool) {
	switch name {
	case "euler":
		return Euler{}, true
	case "rk2":
		return RK2{}, true
	case "rk4":
		return RK4{}, true
	}
	return nil, false
}

// Names lists the registered method names in ascending order of accuracy.
func Names() []string {
	return []string{"euler", "rk2", "rk4"}
}
