package table

import (
	"errors"
	"fmt"
	"strings"

	"github.com/andresjuar/FCC-Toolkit-ASE/assign"
	"github.com/andresjuar/FCC-Toolkit-ASE/debug"
	"github.com/andresjuar/FCC-Toolkit-ASE/eval"
	"github.com/andresjuar/FCC-Toolkit-ASE/ir"
	"github.com/andresjuar/FCC-Toolkit-ASE/parse"
	"github.com/andresjuar/FCC-Toolkit-ASE/token"

	"golang.org/x/sync/errgroup"
)

// ErrEmptyExpression reports input without any variable to enumerate.
var ErrEmptyExpression = errors.New("empty expression")

type Row struct {
	Index      int
	Assignment eval.Assignment
	Values     []bool
}

type Table struct {
	Expr    *parse.Expr
	Vars    []token.Variable
	Columns []parse.Subexpr
	Rows    []Row
}

// Build parses raw, after trimming and lowercasing it, and evaluates every
// column under every assignment of its variables.
func Build(raw string, opts ...BuildOption) (*Table, error) {
	bo := &buildOpts{}
	for _, opt := range opts {
		opt(bo)
	}
	src := []byte(strings.ToLower(strings.TrimSpace(raw)))
	toks, err := token.Tokenize(nil, src)
	if err != nil {
		return nil, err
	}
	if !hasVar(toks) {
		return nil, ErrEmptyExpression
	}
	expr, err := parse.FromTokens(src, toks, bo.parseOpts...)
	if err != nil {
		return nil, err
	}
	return FromExpr(expr, opts...)
}

// FromExpr builds the table of an already parsed formula.
func FromExpr(expr *parse.Expr, opts ...BuildOption) (*Table, error) {
	bo := &buildOpts{}
	for _, opt := range opts {
		opt(bo)
	}
	if len(expr.Vars) == 0 {
		return nil, ErrEmptyExpression
	}
	asgs, err := assign.Enumerate(expr.Vars)
	if err != nil {
		return nil, err
	}
	t := &Table{
		Expr:    expr,
		Vars:    expr.Vars,
		Columns: expr.Columns(),
		Rows:    make([]Row, len(asgs)),
	}
	nodes := make([]*ir.Node, len(t.Columns))
	for i := range t.Columns {
		nodes[i] = t.Columns[i].Node
	}
	if bo.parallel < 2 {
		for i, a := range asgs {
			if err := t.fill(i, a, nodes); err != nil {
				return nil, err
			}
		}
	} else {
		var g errgroup.Group
		g.SetLimit(bo.parallel)
		for i, a := range asgs {
			g.Go(func() error {
				return t.fill(i, a, nodes)
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}
	if debug.Table() {
		debug.Logf("table %q: %d vars, %d columns, %d rows\n", expr.Source, len(t.Vars), len(t.Columns), len(t.Rows))
	}
	return t, nil
}

func (t *Table) fill(i int, a eval.Assignment, nodes []*ir.Node) error {
	vals, err := eval.All(nodes, a)
	if err != nil {
		return fmt.Errorf("row %d (%s): %w", i, a, err)
	}
	t.Rows[i] = Row{Index: i, Assignment: a, Values: vals}
	return nil
}

func hasVar(toks []token.Token) bool {
	for i := range toks {
		if toks[i].Type == token.TVar {
			return true
		}
	}
	return false
}

// Header is the variable names followed by the column texts.
func (t *Table) Header() []string {
	res := make([]string, 0, len(t.Vars)+len(t.Columns))
	for _, v := range t.Vars {
		res = append(res, v.String())
	}
	for _, c := range t.Columns {
		res = append(res, c.Text)
	}
	return res
}

// Cells returns row i as the header lays it out.
func (t *Table) Cells(i int) []bool {
	row := &t.Rows[i]
	res := make([]bool, 0, len(t.Vars)+len(row.Values))
	for _, v := range t.Vars {
		res = append(res, row.Assignment[v])
	}
	return append(res, row.Values...)
}

// ResultIndex is the position of the full formula among the columns.
func (t *Table) ResultIndex() int {
	for i := range t.Columns {
		if t.Columns[i].Kind == parse.FullKind {
			return i
		}
	}
	// the full text coincides with an earlier group, as in "((p))"
	full := strings.TrimSpace(t.Expr.Source)
	for i := range t.Columns {
		if t.Columns[i].Text == full {
			return i
		}
	}
	return len(t.Columns) - 1
}

// Result is the value of the full formula in row i.
func (t *Table) Result(i int) bool {
	return t.Rows[i].Values[t.ResultIndex()]
}

// Column returns the values of the column with the given text.
func (t *Table) Column(text string) ([]bool, bool) {
	for j := range t.Columns {
		if t.Columns[j].Text != text {
			continue
		}
		res := make([]bool, len(t.Rows))
		for i := range t.Rows {
			res[i] = t.Rows[i].Values[j]
		}
		return res, true
	}
	return nil, false
}

// Results returns the full formula's value in every row.
func (t *Table) Results() []bool {
	j := t.ResultIndex()
	res := make([]bool, len(t.Rows))
	for i := range t.Rows {
		res[i] = t.Rows[i].Values[j]
	}
	return res
}
