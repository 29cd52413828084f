// Package numeric provides the shared primitives for the numlab routines.
//
// The package defines the function signatures the solvers accept, the
// trajectory types they return, the domain error sentinels, and the
// optional trace side channel:
//
//   - [Func]: scalar function f(x)
//   - [RHS]: right-hand side of a scalar ODE, dy/dx = f(x, y)
//   - [RHS2]: right-hand side of one equation in a coupled pair
//   - [Trajectory], [Trajectory2]: ordered sample records
//   - [Tracer]: diagnostic hook, never affecting returned values
//
// # Example
//
//	tr := numeric.WriterTracer{W: os.Stderr}
//	result, err := integrators.Integrate(integrators.RK4{}, f, 0, 1, 2, 100,
//		integrators.WithTracer(tr))
//
// # Thread Safety
//
// All types here are plain values. Routines built on them hold no global
// state and may be called concurrently on independent inputs.
package numeric
