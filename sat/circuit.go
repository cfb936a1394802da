package sat

import (
	"fmt"

	"github.com/andresjuar/FCC-Toolkit-ASE/eval"
	"github.com/andresjuar/FCC-Toolkit-ASE/ir"
	"github.com/andresjuar/FCC-Toolkit-ASE/token"

	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
)

// circuit translates formula trees to literals of one logic.C so that
// variables shared between formulas map to the same literal.
type circuit struct {
	c    *logic.C
	vars map[token.Variable]z.Lit
}

func newCircuit() *circuit {
	return &circuit{
		c:    logic.NewC(),
		vars: make(map[token.Variable]z.Lit),
	}
}

func (b *circuit) build(n *ir.Node) z.Lit {
	switch n.Type {
	case ir.LiteralType:
		return b.getVar(n.Var)
	case ir.NotType:
		return b.build(n.Operand()).Not()
	}
	l := b.build(n.Left())
	r := b.build(n.Right())
	switch n.Type {
	case ir.AndType:
		return b.c.Ands(l, r)
	case ir.OrType:
		return b.c.Ors(l, r)
	case ir.ImpliesType:
		return b.c.Ors(l.Not(), r)
	case ir.IffType:
		// (l ∧ r) ∨ (¬l ∧ ¬r)
		return b.c.Ors(b.c.Ands(l, r), b.c.Ands(l.Not(), r.Not()))
	}
	panic(fmt.Sprintf("unsupported node type %s", n.Type))
}

func (b *circuit) getVar(v token.Variable) z.Lit {
	if lit, ok := b.vars[v]; ok {
		return lit
	}
	lit := b.c.Lit()
	b.vars[v] = lit
	return lit
}

// solve checks whether f can be made true and, if so, returns the values the
// solver picked for vars.
func (b *circuit) solve(f z.Lit, vars []token.Variable) (eval.Assignment, bool) {
	g := gini.New()
	b.c.ToCnf(g)
	// mention every variable so the solver reports a value even for those
	// the circuit simplified away
	for _, v := range vars {
		lit := b.getVar(v)
		g.Add(lit)
		g.Add(lit.Not())
		g.Add(0)
	}
	g.Assume(f)
	if g.Solve() != 1 {
		return nil, false
	}
	model := make(eval.Assignment, len(vars))
	for _, v := range vars {
		model[v] = g.Value(b.getVar(v))
	}
	return model, true
}
