// Package problems is the built-in catalog of example problems the CLI,
// presets and tests select by name: initial value problems with known
// closed-form solutions, root-finding targets with derivatives, linear
// systems, and eigenvalue problems.
package problems
