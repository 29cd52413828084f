// Package integrators implements fixed-step solvers for initial value
// problems: forward Euler and the classical Runge-Kutta methods of order
// 2 and 4, for a single scalar equation and for a coupled pair.
//
// A [Method] supplies one update step; [Integrate] and [IntegrateSystem]
// drive a method across the fixed grid h = |xn-x0|/n and collect the
// trajectory. There is no error control and no adaptive stepping.
package integrators
