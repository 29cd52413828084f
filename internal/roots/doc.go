// Package roots implements one-dimensional root finding: incremental
// sign-change search, bisection, and Newton-Raphson.
//
// Bisection and Newton are bounded iterations; neither recurses, and both
// fail with a typed error instead of returning a silently wrong value.
// The incremental search reports "no bracket found" through an explicit
// boolean, never a sentinel value.
package roots
