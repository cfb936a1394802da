package sat

import (
	"fmt"
	"math/big"

	"github.com/andresjuar/FCC-Toolkit-ASE/eval"
	"github.com/andresjuar/FCC-Toolkit-ASE/ir"
	"github.com/andresjuar/FCC-Toolkit-ASE/token"

	"github.com/dalzilio/rudd"
)

// Count returns the number of assignments over vars that make n true. vars
// must include every variable of n; extra variables double the count.
func Count(n *ir.Node, vars []token.Variable) (*big.Int, error) {
	if len(vars) == 0 {
		return nil, fmt.Errorf("count needs at least one variable")
	}
	levels := make(map[token.Variable]int, len(vars))
	for i, v := range vars {
		levels[v] = i
	}
	for _, v := range n.Vars() {
		if _, ok := levels[v]; !ok {
			return nil, &eval.UnboundErr{Var: v}
		}
	}
	bdd, err := rudd.New(len(vars))
	if err != nil {
		return nil, err
	}
	root := buildBDD(bdd, levels, n)
	return bdd.Satcount(root), nil
}

func buildBDD(bdd *rudd.BDD, levels map[token.Variable]int, n *ir.Node) rudd.Node {
	switch n.Type {
	case ir.LiteralType:
		return bdd.Ithvar(levels[n.Var])
	case ir.NotType:
		return bdd.Not(buildBDD(bdd, levels, n.Operand()))
	}
	l := buildBDD(bdd, levels, n.Left())
	r := buildBDD(bdd, levels, n.Right())
	switch n.Type {
	case ir.AndType:
		return bdd.And(l, r)
	case ir.OrType:
		return bdd.Or(l, r)
	case ir.ImpliesType:
		return bdd.Or(bdd.Not(l), r)
	case ir.IffType:
		return bdd.Or(bdd.And(l, r), bdd.And(bdd.Not(l), bdd.Not(r)))
	}
	panic(fmt.Sprintf("unsupported node type %s", n.Type))
}

// CountOwn counts over the formula's own variables.
func CountOwn(n *ir.Node) (*big.Int, error) {
	return Count(n, n.Vars())
}
