package ir

import (
	"fmt"
	"slices"
	"strings"

	"github.com/andresjuar/FCC-Toolkit-ASE/token"
)

type Node struct {
	Type   Type
	Var    token.Variable
	Values []*Node
}

func Lit(v token.Variable) *Node {
	return &Node{Type: LiteralType, Var: v}
}

func Not(a *Node) *Node {
	return &Node{Type: NotType, Values: []*Node{a}}
}

func And(a, b *Node) *Node     { return Binary(AndType, a, b) }
func Or(a, b *Node) *Node      { return Binary(OrType, a, b) }
func Implies(a, b *Node) *Node { return Binary(ImpliesType, a, b) }
func Iff(a, b *Node) *Node     { return Binary(IffType, a, b) }

func Binary(t Type, a, b *Node) *Node {
	if !t.IsBinary() {
		panic(fmt.Sprintf("%s is not a binary connective", t))
	}
	return &Node{Type: t, Values: []*Node{a, b}}
}

// Operand is the child of a NotType node.
func (y *Node) Operand() *Node {
	return y.Values[0]
}

func (y *Node) Left() *Node {
	return y.Values[0]
}

func (y *Node) Right() *Node {
	return y.Values[1]
}

// Visit walks the tree in pre-order. Returning false from f skips the
// children of the node just visited.
func (y *Node) Visit(f func(*Node) bool) {
	if !f(y) {
		return
	}
	for _, c := range y.Values {
		c.Visit(f)
	}
}

// Vars returns the distinct variables in the tree in alphabetical order.
func (y *Node) Vars() []token.Variable {
	seen := map[token.Variable]bool{}
	res := []token.Variable{}
	y.Visit(func(n *Node) bool {
		if n.Type == LiteralType && !seen[n.Var] {
			seen[n.Var] = true
			res = append(res, n.Var)
		}
		return true
	})
	slices.Sort(res)
	return res
}

func (y *Node) Equal(o *Node) bool {
	if y == nil || o == nil {
		return y == o
	}
	if y.Type != o.Type || y.Var != o.Var || len(y.Values) != len(o.Values) {
		return false
	}
	for i := range y.Values {
		if !y.Values[i].Equal(o.Values[i]) {
			return false
		}
	}
	return true
}

func (y *Node) Size() int {
	n := 0
	y.Visit(func(*Node) bool {
		n++
		return true
	})
	return n
}

func (y *Node) Depth() int {
	d := 0
	for _, c := range y.Values {
		d = max(d, c.Depth())
	}
	return d + 1
}

// String renders the formula with the fewest parentheses that preserve its
// structure under the standard precedence and left associativity.
func (y *Node) String() string {
	buf := &strings.Builder{}
	y.write(buf)
	return buf.String()
}

func (y *Node) write(buf *strings.Builder) {
	switch {
	case y.Type == LiteralType:
		buf.WriteString(y.Var.String())
	case y.Type == NotType:
		buf.WriteString(y.Type.Glyph())
		writeOperand(buf, y.Operand(), y.Operand().Type.IsBinary())
	default:
		p := y.Type.Precedence()
		writeOperand(buf, y.Left(), y.Left().Type.Precedence() < p)
		buf.WriteString(y.Type.Glyph())
		writeOperand(buf, y.Right(), y.Right().Type.Precedence() <= p)
	}
}

func writeOperand(buf *strings.Builder, y *Node, paren bool) {
	if paren {
		buf.WriteByte('(')
	}
	y.write(buf)
	if paren {
		buf.WriteByte(')')
	}
}
