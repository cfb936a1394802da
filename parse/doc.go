// Package parse builds formula trees from text.
//
// The grammar, from loosest to tightest binding:
//
//	Iff      := Implies ( '↔' Implies )*
//	Implies  := Or ( '→' Or )*
//	Or       := And ( 'v' And )*
//	And      := Unary ( '∧' Unary )*
//	Unary    := '¬' Unary | Primary
//	Primary  := Variable | '(' Iff ')'
//
// All binary connectives associate to the left.
//
// Besides the tree, [Parse] reports the subexpressions that a truth table
// shows as columns: every parenthesized group (in order of its closing
// parenthesis), every negation applied directly to a variable (in order of
// occurrence), the whole formula, and finally each variable. Entries are
// keyed by their exact source text; a text seen before is not repeated.
package parse
