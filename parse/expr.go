package parse

import (
	"github.com/andresjuar/FCC-Toolkit-ASE/ir"
	"github.com/andresjuar/FCC-Toolkit-ASE/token"
)

type SubexprKind int

const (
	GroupKind SubexprKind = iota
	NegationKind
	FullKind
	VariableKind
)

func (k SubexprKind) String() string {
	switch k {
	case GroupKind:
		return "group"
	case NegationKind:
		return "negation"
	case FullKind:
		return "full"
	case VariableKind:
		return "variable"
	}
	return "<invalid>"
}

// Subexpr pairs the source text of a subexpression with its tree.
type Subexpr struct {
	Text string
	Node *ir.Node
	Kind SubexprKind
}

// Expr is the result of parsing one formula.
type Expr struct {
	Source   string
	Root     *ir.Node
	Subexprs []Subexpr
	Vars     []token.Variable
}

// Columns returns the subexpressions other than bare variables, in order.
func (e *Expr) Columns() []Subexpr {
	res := make([]Subexpr, 0, len(e.Subexprs))
	for _, s := range e.Subexprs {
		if s.Kind == VariableKind {
			continue
		}
		res = append(res, s)
	}
	return res
}

// Lookup finds a subexpression by its exact text.
func (e *Expr) Lookup(text string) (Subexpr, bool) {
	for _, s := range e.Subexprs {
		if s.Text == text {
			return s, true
		}
	}
	return Subexpr{}, false
}

type subexprSet struct {
	seen map[string]bool
	list []Subexpr
}

func (s *subexprSet) add(sub Subexpr) {
	if s.seen == nil {
		s.seen = map[string]bool{}
	}
	if s.seen[sub.Text] {
		return
	}
	s.seen[sub.Text] = true
	s.list = append(s.list, sub)
}
