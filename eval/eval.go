package eval

import (
	"errors"
	"fmt"

	"github.com/andresjuar/FCC-Toolkit-ASE/debug"
	"github.com/andresjuar/FCC-Toolkit-ASE/ir"
	"github.com/andresjuar/FCC-Toolkit-ASE/token"
)

// ErrUnbound is matched by errors reporting a variable missing from an
// assignment. Given a well formed table it indicates a bug, not bad input.
var ErrUnbound = errors.New("unbound variable")

type UnboundErr struct {
	Var token.Variable
}

func (e *UnboundErr) Error() string {
	return fmt.Sprintf("%s %q", ErrUnbound, e.Var.String())
}

func (e *UnboundErr) Unwrap() error {
	return ErrUnbound
}

func Eval(n *ir.Node, a Assignment) (bool, error) {
	switch n.Type {
	case ir.LiteralType:
		b, ok := a[n.Var]
		if !ok {
			return false, &UnboundErr{Var: n.Var}
		}
		return b, nil
	case ir.NotType:
		b, err := Eval(n.Operand(), a)
		if err != nil {
			return false, err
		}
		return !b, nil
	}
	if !n.Type.IsBinary() {
		return false, fmt.Errorf("cannot evaluate node type %s", n.Type)
	}
	l, err := Eval(n.Left(), a)
	if err != nil {
		return false, err
	}
	r, err := Eval(n.Right(), a)
	if err != nil {
		return false, err
	}
	res := Apply(n.Type, l, r)
	if debug.Eval() {
		debug.Logf("eval %s under %s = %t\n", n, a, res)
	}
	return res, nil
}

// Apply computes a binary connective.
func Apply(t ir.Type, l, r bool) bool {
	switch t {
	case ir.AndType:
		return l && r
	case ir.OrType:
		return l || r
	case ir.ImpliesType:
		return !l || r
	case ir.IffType:
		return l == r
	}
	panic(fmt.Sprintf("%s is not a binary connective", t))
}

// All evaluates each node under a, in order.
func All(nodes []*ir.Node, a Assignment) ([]bool, error) {
	res := make([]bool, len(nodes))
	for i, n := range nodes {
		b, err := Eval(n, a)
		if err != nil {
			return nil, err
		}
		res[i] = b
	}
	return res, nil
}
