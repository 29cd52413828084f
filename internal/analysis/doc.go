// Package analysis runs convergence studies over the fixed-step
// integrators: terminal error against a closed-form solution across a
// sweep of step counts, and the observed order of accuracy derived from
// error ratios at doubling resolution.
package analysis
