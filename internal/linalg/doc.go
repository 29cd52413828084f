// Package linalg implements dense linear-system solving by Gaussian
// elimination, with or without partial pivoting, and the power method
// for a dominant eigenpair.
//
// Solve copies its inputs; SolveInPlace mutates the augmented matrix it
// is given and owns it for the duration of the call. A zero or
// numerically negligible pivot fails with ErrSingularMatrix instead of
// dividing through and propagating NaN/Inf.
package linalg
