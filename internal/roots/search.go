package roots

import "github.com/san-kum/numlab/internal/numeric"

// Bracket is an interval (X1, X2) across which f changes sign, hence
// containing a root.
type Bracket struct {
	X1, X2 float64
}

// IncrementalSearch scans forward from a in steps of dx for the bounds of
// the smallest root of f inside (a, b). It returns found = false once the
// scan has passed b without detecting a sign change. dx must be positive.
func IncrementalSearch(f numeric.Func, a, b, dx float64) (bracket Bracket, found bool, err error) {
	if dx <= 0 {
		return Bracket{}, false, numeric.ErrInvalidStep
	}

	x1 := a
	x2 := x1 + dx
	f1 := f(x1)
	f2 := f(x2)

	for f1*f2 > 0 {
		if x1 >= b {
			return Bracket{}, false, nil
		}
		x1 = x2
		x2 = x1 + dx
		f1 = f2
		f2 = f(x2)
	}

	return Bracket{X1: x1, X2: x2}, true, nil
}
