// Package eval computes the truth value of a formula tree under an
// assignment of truth values to its variables.
//
// Evaluation is plain structural recursion over [ir.Node]; formulas are never
// turned back into text or executed.
package eval
