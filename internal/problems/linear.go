package problems

// LinearSystem is a named system A*x = B. Solution is the known answer,
// nil when the system is singular.
type LinearSystem struct {
	Name     string
	A        [][]float64
	B        []float64
	Solution []float64
	Singular bool
}

var linearSystems = map[string]LinearSystem{
	"classic3": {
		Name: "classic3",
		A: [][]float64{
			{2, 1, 1},
			{4, -6, 0},
			{-2, 7, 2},
		},
		B:        []float64{5, -2, 9},
		Solution: []float64{1, 1, 2},
	},
	"swap2": {
		// Unsolvable without a row swap: zero leading diagonal entry.
		Name: "swap2",
		A: [][]float64{
			{0, 1},
			{1, 0},
		},
		B:        []float64{2, 3},
		Solution: []float64{3, 2},
	},
	"hilbert3": {
		Name: "hilbert3",
		A: [][]float64{
			{1, 1.0 / 2, 1.0 / 3},
			{1.0 / 2, 1.0 / 3, 1.0 / 4},
			{1.0 / 3, 1.0 / 4, 1.0 / 5},
		},
		B:        []float64{11.0 / 6, 13.0 / 12, 47.0 / 60},
		Solution: []float64{1, 1, 1},
	},
	"singular3": {
		Name: "singular3",
		A: [][]float64{
			{1, 2, 3},
			{2, 4, 6},
			{1, 0, 1},
		},
		B:        []float64{1, 2, 1},
		Singular: true,
	},
}

// LookupLinear returns the linear system registered under name.
func LookupLinear(name string) (LinearSystem, bool) {
	p, ok := linearSystems[name]
	return p, ok
}

// LinearNames lists the registered linear systems.
func LinearNames() []string { return sortedKeys(linearSystems) }

// EigenProblem is a named matrix with a dominant eigenpair for the power
// method, plus a start vector and the expected eigenvalue.
type EigenProblem struct {
	Name  string
	A     [][]float64
	X0    []float64
	Value float64
}

var eigenProblems = map[string]EigenProblem{
	"diag521": {
		Name: "diag521",
		A: [][]float64{
			{5, 0, 0},
			{0, 2, 0},
			{0, 0, 1},
		},
		X0:    []float64{1, 1, 1},
		Value: 5,
	},
	"sym2": {
		Name: "sym2",
		A: [][]float64{
			{4, 1},
			{1, 3},
		},
		X0:    []float64{1, 1},
		Value: (7 + 2.2360679774997896) / 2, // (7 + sqrt 5)/2
	},
	"fib": {
		Name: "fib",
		A: [][]float64{
			{1, 1},
			{1, 0},
		},
		X0:    []float64{1, 0},
		Value: 1.618033988749895, // golden ratio
	},
}

// LookupEigen returns the eigenvalue problem registered under name.
func LookupEigen(name string) (EigenProblem, bool) {
	p, ok := eigenProblems[name]
	return p, ok
}

// EigenNames lists the registered eigenvalue problems.
func EigenNames() []string { return sortedKeys(eigenProblems) }
