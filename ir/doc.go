// Package ir provides the tree representation of propositional formulas.
//
// # Node Structure
//
// A Node is a recursive tagged union. The Type field selects which fields
// are meaningful:
//
//   - LiteralType: Var names the variable, Values is empty
//   - NotType: Values holds the single operand
//   - AndType, OrType, ImpliesType, IffType: Values holds left and right
//
// Nodes own their children exclusively, so a formula is always a tree.
// Nodes built by the constructors in this package are treated as immutable:
// nothing in this module modifies a node after it has been returned, and
// callers must not either.
//
// # Creating Nodes
//
//	p := ir.Lit('p')
//	q := ir.Lit('q')
//	f := ir.Implies(ir.And(p, q), ir.Not(p))
//	f.String() // "p∧q→¬p"
//
// # Related Packages
//
//   - github.com/andresjuar/FCC-Toolkit-ASE/parse - build nodes from text
//   - github.com/andresjuar/FCC-Toolkit-ASE/eval - evaluate nodes
package ir
