// Package table builds truth tables.
//
// [Build] is the entry point for presentation layers: it takes the raw text
// of a formula and returns every row of its truth table, or a single error.
// A table never comes back partially filled.
//
// The header of a table is the variable names in alphabetical order followed
// by the text of each column: parenthesized groups, negated variables and
// the full formula, as reported by [parse.Expr.Columns].
package table
