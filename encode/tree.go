package encode

import (
	"github.com/andresjuar/FCC-Toolkit-ASE/ir"

	"github.com/disiqueira/gotree"
)

// Tree draws a formula as an indented tree, one connective or variable per
// line with the subformula it heads.
func Tree(n *ir.Node) string {
	root := gotree.New(label(n))
	addChildren(root, n)
	return root.Print()
}

func addChildren(t gotree.Tree, n *ir.Node) {
	for _, c := range n.Values {
		addChildren(t.Add(label(c)), c)
	}
}

func label(n *ir.Node) string {
	if n.Type == ir.LiteralType {
		return n.Var.String()
	}
	return n.Type.Glyph() + "  " + n.String()
}
