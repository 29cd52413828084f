package analysis

import (
	"math"
	"testing"

	"github.com/san-kum/numlab/internal/integrators"
	"github.com/san-kum/numlab/internal/problems"
)

func expProblem(t *testing.T) problems.ODE {
	t.Helper()
	p, ok := problems.LookupODE("exp")
	if !ok {
		t.Fatal("exp problem not found")
	}
	return p
}

func TestObservedOrderEuler(t *testing.T) {
	points, err := DoublingSweep(integrators.Euler{}, expProblem(t), 20, 5)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	orders := ObservedOrder(points)
	last := orders[len(orders)-1]
	if math.Abs(last-1) > 0.2 {
		t.Errorf("expected observed order near 1, got %.3f", last)
	}
}

func TestObservedOrderRK4(t *testing.T) {
	points, err := DoublingSweep(integrators.RK4{}, expProblem(t), 5, 5)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	orders := ObservedOrder(points)
	last := orders[len(orders)-1]
	if math.Abs(last-4) > 0.4 {
		t.Errorf("expected observed order near 4, got %.3f", last)
	}
}

func TestObservedOrderDegenerateSweeps(t *testing.T) {
	if got := ObservedOrder(nil); got != nil {
		t.Errorf("expected nil for an empty sweep, got %v", got)
	}
	single := []ConvergencePoint{{N: 10, Err: 1e-3}}
	if got := ObservedOrder(single); got != nil {
		t.Errorf("expected nil for a single-point sweep, got %v", got)
	}
}

func TestErrorSweepMonotone(t *testing.T) {
	points, err := ErrorSweep(integrators.RK2{}, expProblem(t), []int{10, 40, 160})
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	for i := 1; i < len(points); i++ {
		if points[i].Err >= points[i-1].Err {
			t.Errorf("error did not shrink between n=%d and n=%d", points[i-1].N, points[i].N)
		}
	}

	errs := Errors(points)
	if len(errs) != 3 || errs[0] != points[0].Err {
		t.Error("Errors column does not match points")
	}
}

func TestErrorSweepRequiresClosedForm(t *testing.T) {
	noExact := problems.ODE{Name: "custom", F: func(x, y float64) float64 { return y }}
	if _, err := ErrorSweep(integrators.Euler{}, noExact, []int{10}); err == nil {
		t.Error("expected error for a problem without a closed form")
	}
}

func TestDoublingSweepValidation(t *testing.T) {
	if _, err := DoublingSweep(integrators.Euler{}, expProblem(t), 0, 3); err == nil {
		t.Error("expected error for n0=0")
	}
	if _, err := DoublingSweep(integrators.Euler{}, expProblem(t), 10, 0); err == nil {
		t.Error("expected error for levels=0")
	}
}
