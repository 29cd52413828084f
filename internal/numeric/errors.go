package numeric

import "errors"

// Domain errors shared by the solver packages. All are recoverable by the
// caller; no routine panics or propagates NaN/Inf in place of one of these.
var (
	// ErrInvalidBracket indicates f(a) and f(b) do not have opposite signs.
	ErrInvalidBracket = errors.New("numeric: endpoints do not bracket a root")

	// ErrSingularMatrix indicates a zero or numerically negligible pivot.
	ErrSingularMatrix = errors.New("numeric: matrix is singular or nearly singular")

	// ErrZeroDerivative indicates the derivative vanished at an iterate.
	ErrZeroDerivative = errors.New("numeric: derivative is zero at iterate")

	// ErrNonConvergence indicates the iteration bound was exceeded.
	ErrNonConvergence = errors.New("numeric: iteration limit reached before convergence")

	// ErrInvalidStepCount indicates a non-positive step or iteration count.
	ErrInvalidStepCount = errors.New("numeric: step count must be positive")

	// ErrInvalidStep indicates a non-positive scan increment.
	ErrInvalidStep = errors.New("numeric: increment must be positive")

	// ErrInvalidTolerance indicates a non-positive convergence tolerance.
	ErrInvalidTolerance = errors.New("numeric: tolerance must be positive")

	// ErrDimensionMismatch indicates incompatible matrix/vector dimensions.
	ErrDimensionMismatch = errors.New("numeric: dimension mismatch")

	// ErrZeroVector indicates a vector that must be nonzero is zero.
	ErrZeroVector = errors.New("numeric: vector is zero")
)
