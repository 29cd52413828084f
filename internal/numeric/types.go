package numeric

// Func is a scalar function f(x).
type Func func(x float64) float64

// RHS is the right-hand side of a scalar ODE, dy/dx = f(x, y).
type RHS func(x, y float64) float64

// RHS2 is the right-hand side of one equation in a coupled pair,
// x'(t) = f1(t, x, y) and y'(t) = f2(t, x, y).
type RHS2 func(t, x, y float64) float64

// Trajectory is the sample record of a scalar integration. Samples are
// appended once during the integration and the slices are not touched
// after return.
type Trajectory struct {
	Xs []float64
	Ys []float64
}

// Len returns the number of samples.
func (t Trajectory) Len() int { return len(t.Xs) }

// Terminal returns the final estimate y(xn).
func (t Trajectory) Terminal() float64 {
	return t.Ys[len(t.Ys)-1]
}

// Trajectory2 is the sample record of a coupled two-equation integration.
type Trajectory2 struct {
	Ts []float64
	Xs []float64
	Ys []float64
}

// Len returns the number of samples.
func (t Trajectory2) Len() int { return len(t.Ts) }

// Terminal returns the final estimates x(tn), y(tn).
func (t Trajectory2) Terminal() (x, y float64) {
	return t.Xs[len(t.Xs)-1], t.Ys[len(t.Ys)-1]
}
