package problems

import (
	"math"
	"sort"

	"github.com/san-kum/numlab/internal/numeric"
)

// ODE is a scalar initial value problem dy/dx = F(x, y), y(X0) = Y0,
// integrated to XN by default. Exact is the closed-form solution when one
// is known, nil otherwise.
type ODE struct {
	Name       string
	F          numeric.RHS
	Exact      numeric.Func
	X0, Y0, XN float64
}

var odes = map[string]ODE{
	"exp": {
		Name:  "exp",
		F:     func(x, y float64) float64 { return y },
		Exact: math.Exp,
		X0:    0, Y0: 1, XN: 1,
	},
	"decay": {
		Name:  "decay",
		F:     func(x, y float64) float64 { return -2 * y },
		Exact: func(x float64) float64 { return math.Exp(-2 * x) },
		X0:    0, Y0: 1, XN: 2,
	},
	"logistic": {
		Name: "logistic",
		F:    func(x, y float64) float64 { return y * (1 - y) },
		Exact: func(x float64) float64 {
			return 1 / (1 + 9*math.Exp(-x)) // y(0) = 0.1
		},
		X0: 0, Y0: 0.1, XN: 5,
	},
	"cooling": {
		Name: "cooling",
		// Newton's law of cooling toward ambient 20 from 100.
		F: func(x, y float64) float64 { return -0.5 * (y - 20) },
		Exact: func(x float64) float64 {
			return 20 + 80*math.Exp(-0.5*x)
		},
		X0: 0, Y0: 100, XN: 10,
	},
}

// LookupODE returns the scalar problem registered under name.
func LookupODE(name string) (ODE, bool) {
	p, ok := odes[name]
	return p, ok
}

// ODENames lists the registered scalar problems.
func ODENames() []string { return sortedKeys(odes) }

// ODESystem is a coupled pair x'(t) = F1(t, x, y), y'(t) = F2(t, x, y)
// with x(T0) = X0, y(T0) = Y0, integrated to TN by default. ExactX and
// ExactY are closed-form solutions when known.
type ODESystem struct {
	Name           string
	F1, F2         numeric.RHS2
	ExactX, ExactY numeric.Func
	T0, X0, Y0, TN float64
}

var systems = map[string]ODESystem{
	"oscillator": {
		Name:   "oscillator",
		F1:     func(t, x, y float64) float64 { return y },
		F2:     func(t, x, y float64) float64 { return -x },
		ExactX: math.Cos,
		ExactY: func(t float64) float64 { return -math.Sin(t) },
		T0:     0, X0: 1, Y0: 0, TN: 2 * math.Pi,
	},
	"damped": {
		Name: "damped",
		F1:   func(t, x, y float64) float64 { return y },
		F2:   func(t, x, y float64) float64 { return -x - 0.5*y },
		T0:   0, X0: 1, Y0: 0, TN: 10,
	},
	"predator_prey": {
		Name: "predator_prey",
		F1:   func(t, x, y float64) float64 { return x*1.0 - 0.5*x*y },
		F2:   func(t, x, y float64) float64 { return 0.25*x*y - 0.75*y },
		T0:   0, X0: 2, Y0: 1, TN: 20,
	},
}

// LookupSystem returns the coupled problem registered under name.
func LookupSystem(name string) (ODESystem, bool) {
	p, ok := systems[name]
	return p, ok
}

// SystemNames lists the registered coupled problems.
func SystemNames() []string { return sortedKeys(systems) }

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
