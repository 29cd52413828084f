package problems

import (
	"math"

	"github.com/san-kum/numlab/internal/numeric"
)

// RootProblem is a root-finding target: F with its derivative, a scan
// interval (A, B) that contains the root, a Newton starting guess, and
// the known root for verification.
type RootProblem struct {
	Name       string
	F          numeric.Func
	Derivative numeric.Func
	A, B       float64
	Guess      float64
	Root       float64
}

var rootProblems = map[string]RootProblem{
	"sqrt2": {
		Name:       "sqrt2",
		F:          func(x float64) float64 { return x*x - 2 },
		Derivative: func(x float64) float64 { return 2 * x },
		A:          0, B: 2,
		Guess: 1,
		Root:  math.Sqrt2,
	},
	"parabola": {
		Name:       "parabola",
		F:          func(x float64) float64 { return x*x - 4 },
		Derivative: func(x float64) float64 { return 2 * x },
		A:          0, B: 5,
		Guess: 3,
		Root:  2,
	},
	"cosx": {
		Name:       "cosx",
		F:          func(x float64) float64 { return math.Cos(x) - x },
		Derivative: func(x float64) float64 { return -math.Sin(x) - 1 },
		A:          0, B: 2,
		Guess: 1,
		Root:  0.7390851332151607, // Dottie number
	},
	"cubic": {
		Name:       "cubic",
		F:          func(x float64) float64 { return x*x*x - x - 2 },
		Derivative: func(x float64) float64 { return 3*x*x - 1 },
		A:          1, B: 2,
		Guess: 1.5,
		Root:  1.5213797068045676,
	},
}

// LookupRoot returns the root problem registered under name.
func LookupRoot(name string) (RootProblem, bool) {
	p, ok := rootProblems[name]
	return p, ok
}

// RootNames lists the registered root problems.
func RootNames() []string { return sortedKeys(rootProblems) }
