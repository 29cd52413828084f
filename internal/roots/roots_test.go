package roots

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/numlab/internal/numeric"
)

func TestIncrementalSearchBracketsRoot(t *testing.T) {
	f := func(x float64) float64 { return x*x - 4 }

	bracket, found, err := IncrementalSearch(f, 0, 5, 0.1)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if !found {
		t.Fatal("expected a bracket, found none")
	}
	if !(bracket.X1 <= 2 && 2 <= bracket.X2) {
		t.Errorf("bracket (%g, %g) does not contain 2", bracket.X1, bracket.X2)
	}
	if bracket.X2-bracket.X1 > 0.1+1e-12 {
		t.Errorf("bracket wider than dx: (%g, %g)", bracket.X1, bracket.X2)
	}
}

func TestIncrementalSearchNoRoot(t *testing.T) {
	f := func(x float64) float64 { return x*x + 1 }

	_, found, err := IncrementalSearch(f, 0, 3, 0.5)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if found {
		t.Error("expected no bracket for a rootless function")
	}
}

func TestIncrementalSearchInvalidStep(t *testing.T) {
	f := func(x float64) float64 { return x }

	if _, _, err := IncrementalSearch(f, 0, 1, 0); !errors.Is(err, numeric.ErrInvalidStep) {
		t.Errorf("expected ErrInvalidStep for dx=0, got %v", err)
	}
	if _, _, err := IncrementalSearch(f, 0, 1, -0.1); !errors.Is(err, numeric.ErrInvalidStep) {
		t.Errorf("expected ErrInvalidStep for dx<0, got %v", err)
	}
}

func TestInvalidTolerance(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }
	fprime := func(x float64) float64 { return 2 * x }

	if _, err := Bisection(f, 0, 2, 0); !errors.Is(err, numeric.ErrInvalidTolerance) {
		t.Errorf("expected ErrInvalidTolerance from bisection, got %v", err)
	}
	if _, err := Newton(f, fprime, 1, -1e-9); !errors.Is(err, numeric.ErrInvalidTolerance) {
		t.Errorf("expected ErrInvalidTolerance from newton, got %v", err)
	}
}

func TestBisectionSqrt2(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }

	root, err := Bisection(f, 0, 2, 1e-9)
	if err != nil {
		t.Fatalf("bisection failed: %v", err)
	}
	if math.Abs(root-math.Sqrt2) > 1e-9 {
		t.Errorf("expected %.12f, got %.12f", math.Sqrt2, root)
	}
}

func TestBisectionExactMidpoint(t *testing.T) {
	f := func(x float64) float64 { return x }

	root, err := Bisection(f, -1, 1, 1e-12)
	if err != nil {
		t.Fatalf("bisection failed: %v", err)
	}
	if root != 0 {
		t.Errorf("expected exact root 0, got %g", root)
	}
}

func TestBisectionInvalidBracket(t *testing.T) {
	f := func(x float64) float64 { return x*x + 1 }

	_, err := Bisection(f, 0, 2, 1e-9)
	if !errors.Is(err, numeric.ErrInvalidBracket) {
		t.Errorf("expected ErrInvalidBracket for same-sign endpoints, got %v", err)
	}

	// Same sign at both ends of a function that does have roots elsewhere.
	g := func(x float64) float64 { return x*x - 2 }
	_, err = Bisection(g, 2, 3, 1e-9)
	if !errors.Is(err, numeric.ErrInvalidBracket) {
		t.Errorf("expected ErrInvalidBracket, got %v", err)
	}
}

func TestBisectionTracer(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }

	iterations := 0
	root, err := Bisection(f, 0, 2, 1e-9,
		WithTracer(numeric.TracerFunc(func(step int, values map[string]float64) {
			iterations++
		})))
	if err != nil {
		t.Fatalf("bisection failed: %v", err)
	}
	if iterations == 0 {
		t.Error("tracer saw no iterations")
	}

	plain, err := Bisection(f, 0, 2, 1e-9)
	if err != nil {
		t.Fatalf("bisection failed: %v", err)
	}
	if root != plain {
		t.Errorf("tracing changed result: %.16f vs %.16f", root, plain)
	}
}

func TestNewtonSqrt2(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }
	fprime := func(x float64) float64 { return 2 * x }

	root, err := Newton(f, fprime, 1, 1e-9)
	if err != nil {
		t.Fatalf("newton failed: %v", err)
	}
	if math.Abs(root-math.Sqrt2) > 1e-9 {
		t.Errorf("expected %.12f, got %.12f", math.Sqrt2, root)
	}
}

func TestNewtonZeroDerivative(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }
	fprime := func(x float64) float64 { return 2 * x }

	_, err := Newton(f, fprime, 0, 1e-9)
	if !errors.Is(err, numeric.ErrZeroDerivative) {
		t.Errorf("expected ErrZeroDerivative starting at a flat point, got %v", err)
	}
}

func TestNewtonNonConvergence(t *testing.T) {
	// x^(1/3) makes Newton diverge: each update overshoots to -2x.
	f := func(x float64) float64 { return math.Cbrt(x) }
	fprime := func(x float64) float64 { return 1 / (3 * math.Pow(math.Abs(x), 2.0/3.0)) }

	_, err := Newton(f, fprime, 1, 1e-12, WithMaxIter(20))
	if !errors.Is(err, numeric.ErrNonConvergence) {
		t.Errorf("expected ErrNonConvergence, got %v", err)
	}
}

func TestNewtonMaxIterOption(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }
	fprime := func(x float64) float64 { return 2 * x }

	// One iteration from x0=1 lands on 1.5, not yet within tolerance.
	_, err := Newton(f, fprime, 1, 1e-9, WithMaxIter(1))
	if !errors.Is(err, numeric.ErrNonConvergence) {
		t.Errorf("expected ErrNonConvergence with maxIter=1, got %v", err)
	}
}

func TestSearchThenBisect(t *testing.T) {
	f := func(x float64) float64 { return math.Cos(x) - x }

	bracket, found, err := IncrementalSearch(f, 0, 2, 0.25)
	if err != nil || !found {
		t.Fatalf("no bracket: found=%v err=%v", found, err)
	}

	root, err := Bisection(f, bracket.X1, bracket.X2, 1e-10)
	if err != nil {
		t.Fatalf("bisection failed: %v", err)
	}
	if math.Abs(f(root)) > 1e-9 {
		t.Errorf("residual too large at %.12f: %g", root, f(root))
	}
}
