package analysis

import (
	"fmt"
	"math"

	"github.com/san-kum/numlab/internal/integrators"
	"github.com/san-kum/numlab/internal/numeric"
	"github.com/san-kum/numlab/internal/problems"
)

// ConvergencePoint is the terminal error of one run at step count N.
type ConvergencePoint struct {
	N   int
	Err float64
}

// ErrorSweep integrates p with m at each step count in ns and records the
// absolute terminal error against the closed-form solution. p must carry
// one.
func ErrorSweep(m integrators.Method, p problems.ODE, ns []int) ([]ConvergencePoint, error) {
	if p.Exact == nil {
		return nil, fmt.Errorf("problem %q has no closed-form solution", p.Name)
	}

	exact := p.Exact(p.XN)
	points := make([]ConvergencePoint, 0, len(ns))
	for _, n := range ns {
		traj, err := integrators.Integrate(m, p.F, p.X0, p.Y0, p.XN, n)
		if err != nil {
			return nil, err
		}
		points = append(points, ConvergencePoint{
			N:   n,
			Err: math.Abs(traj.Terminal() - exact),
		})
	}
	return points, nil
}

// DoublingSweep is ErrorSweep over step counts n0, 2*n0, 4*n0, ...
// (levels entries).
func DoublingSweep(m integrators.Method, p problems.ODE, n0, levels int) ([]ConvergencePoint, error) {
	if n0 < 1 || levels < 1 {
		return nil, numeric.ErrInvalidStepCount
	}
	ns := make([]int, levels)
	for i := range ns {
		ns[i] = n0 << i
	}
	return ErrorSweep(m, p, ns)
}

// ObservedOrder reduces a doubling sweep to per-level order estimates
// log2(e_n / e_2n). For a method of order p the estimates approach p.
func ObservedOrder(points []ConvergencePoint) []float64 {
	if len(points) < 2 {
		return nil
	}
	orders := make([]float64, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		if points[i].Err == 0 || points[i-1].Err == 0 {
			continue
		}
		orders = append(orders, math.Log2(points[i-1].Err/points[i].Err))
	}
	return orders
}

// Errors extracts the error column for plotting.
func Errors(points []ConvergencePoint) []float64 {
	errs := make([]float64, len(points))
	for i, p := range points {
		errs[i] = p.Err
	}
	return errs
}
