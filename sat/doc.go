// Package sat answers questions about a formula as a whole without building
// its truth table.
//
// Satisfiability, validity and equivalence are decided with the gini SAT
// solver: the formula is built as an and-inverter circuit, converted to CNF
// and solved under an assumption. Model counting uses a binary decision
// diagram from rudd, where each variable is one BDD level in alphabetical
// order.
//
// Both agree with the truth table: a formula is a tautology exactly when
// every row is true, and [Count] equals the number of true rows.
package sat
