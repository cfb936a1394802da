// Package token splits propositional formulas into typed tokens.
//
// # Alphabet
//
// Variables are the single letters p, q, r, s, t and z. The letter v is
// reserved for disjunction and is never a variable. Uppercase letters are
// not recognized; callers that want case folding lowercase the input first.
//
// # Connectives
//
//	¬ ~     negation
//	∧ ^     conjunction
//	v ∨     disjunction
//	→       implication
//	↔       biconditional
//	( )     grouping
//
// Whitespace (space, tab, carriage return, newline) separates tokens and is
// otherwise ignored. Any other character makes [Tokenize] fail with a
// [*MalformedErr] carrying the offending position.
package token
