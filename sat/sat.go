package sat

import (
	"slices"

	"github.com/andresjuar/FCC-Toolkit-ASE/debug"
	"github.com/andresjuar/FCC-Toolkit-ASE/eval"
	"github.com/andresjuar/FCC-Toolkit-ASE/ir"
	"github.com/andresjuar/FCC-Toolkit-ASE/token"
)

type Class int

const (
	Contingent Class = iota
	Tautology
	Contradiction
)

func (c Class) String() string {
	switch c {
	case Contingent:
		return "contingent"
	case Tautology:
		return "tautology"
	case Contradiction:
		return "contradiction"
	}
	return "<invalid>"
}

// Satisfy returns an assignment over the formula's variables that makes it
// true, if one exists.
func Satisfy(n *ir.Node) (eval.Assignment, bool) {
	b := newCircuit()
	f := b.build(n)
	model, ok := b.solve(f, n.Vars())
	if debug.Sat() {
		debug.Logf("sat %s: %t %s\n", n, ok, model)
	}
	return model, ok
}

// Falsify returns an assignment that makes the formula false, if one exists.
func Falsify(n *ir.Node) (eval.Assignment, bool) {
	b := newCircuit()
	f := b.build(n)
	return b.solve(f.Not(), n.Vars())
}

func Classify(n *ir.Node) Class {
	if _, ok := Satisfy(n); !ok {
		return Contradiction
	}
	if _, ok := Falsify(n); !ok {
		return Tautology
	}
	return Contingent
}

// Equivalent reports whether a and b agree under every assignment. When they
// do not, it returns an assignment over the variables of both on which they
// differ.
func Equivalent(a, b *ir.Node) (bool, eval.Assignment) {
	c := newCircuit()
	la := c.build(a)
	lb := c.build(b)
	differ := c.c.Ors(c.c.Ands(la, lb.Not()), c.c.Ands(la.Not(), lb))
	model, ok := c.solve(differ, union(a.Vars(), b.Vars()))
	if debug.Sat() {
		debug.Logf("equiv %s, %s: %t %s\n", a, b, !ok, model)
	}
	return !ok, model
}

func union(a, b []token.Variable) []token.Variable {
	res := slices.Concat(a, b)
	slices.Sort(res)
	return slices.Compact(res)
}
