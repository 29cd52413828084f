package integrators

import (
	"math"

	"github.com/san-kum/numlab/internal/numeric"
)

type options struct {
	tracer numeric.Tracer
}

// Option configures an integration run.
type Option func(*options)

// WithTracer reports every retained step through t. The trace carries the
// abscissa and the current estimates; it never changes the result.
func WithTracer(t numeric.Tracer) Option {
	return func(o *options) { o.tracer = t }
}

// Integrate advances the scalar equation dy/dx = f(x, y) from (x0, y0) to
// xn on the fixed grid h = |xn-x0|/n, using n update steps of m. The
// returned trajectory holds n+1 samples; Terminal() is the estimate of
// y(xn). n < 1 fails with ErrInvalidStepCount.
func Integrate(m Method, f numeric.RHS, x0, y0, xn float64, n int, opts ...Option) (numeric.Trajectory, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if n < 1 {
		return numeric.Trajectory{}, numeric.ErrInvalidStepCount
	}

	h := math.Abs(xn-x0) / float64(n)
	if xn < x0 {
		h = -h
	}

	traj := numeric.Trajectory{
		Xs: make([]float64, 0, n+1),
		Ys: make([]float64, 0, n+1),
	}
	x, y := x0, y0
	traj.Xs = append(traj.Xs, x)
	traj.Ys = append(traj.Ys, y)

	for i := 0; i < n; i++ {
		if o.tracer != nil {
			o.tracer.Trace(i, map[string]float64{"h": h, "x": x, "y": y})
		}
		y = m.Step(f, x, y, h)
		x = x0 + float64(i+1)*h
		traj.Xs = append(traj.Xs, x)
		traj.Ys = append(traj.Ys, y)
	}

	return traj, nil
}

// IntegrateSystem advances the coupled pair x'(t) = f1(t, x, y),
// y'(t) = f2(t, x, y) from t0 to tn in n steps of m, returning n+1
// samples per component.
func IntegrateSystem(m Method, f1, f2 numeric.RHS2, t0, x0, y0, tn float64, n int, opts ...Option) (numeric.Trajectory2, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if n < 1 {
		return numeric.Trajectory2{}, numeric.ErrInvalidStepCount
	}

	h := math.Abs(tn-t0) / float64(n)
	if tn < t0 {
		h = -h
	}

	traj := numeric.Trajectory2{
		Ts: make([]float64, 0, n+1),
		Xs: make([]float64, 0, n+1),
		Ys: make([]float64, 0, n+1),
	}
	t, x, y := t0, x0, y0
	traj.Ts = append(traj.Ts, t)
	traj.Xs = append(traj.Xs, x)
	traj.Ys = append(traj.Ys, y)

	for i := 0; i < n; i++ {
		if o.tracer != nil {
			o.tracer.Trace(i, map[string]float64{"h": h, "t": t, "x": x, "y": y})
		}
		x, y = m.StepSystem(f1, f2, t, x, y, h)
		t = t0 + float64(i+1)*h
		traj.Ts = append(traj.Ts, t)
		traj.Xs = append(traj.Xs, x)
		traj.Ys = append(traj.Ys, y)
	}

	return traj, nil
}
