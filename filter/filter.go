// Package filter selects truth table rows with an expr-lang predicate.
//
// The predicate sees each variable of the table by name, the full formula's
// value as value, the row index as row and the column values, in header
// order after the variables, as cols:
//
//	value && !p
//	row >= 4 || cols[0]
package filter

import (
	"fmt"

	"github.com/andresjuar/FCC-Toolkit-ASE/table"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

type Filter struct {
	src string
	prg *vm.Program
	t   *table.Table
}

func Compile(src string, t *table.Table) (*Filter, error) {
	prg, err := expr.Compile(src, expr.Env(env(t, 0)), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("could not compile filter %q: %w", src, err)
	}
	return &Filter{src: src, prg: prg, t: t}, nil
}

func env(t *table.Table, i int) map[string]any {
	row := &t.Rows[i]
	res := make(map[string]any, len(t.Vars)+3)
	for _, v := range t.Vars {
		res[v.String()] = row.Assignment[v]
	}
	res["value"] = t.Result(i)
	res["row"] = row.Index
	res["cols"] = row.Values
	return res
}

// Match evaluates the predicate on row i.
func (f *Filter) Match(i int) (bool, error) {
	out, err := expr.Run(f.prg, env(f.t, i))
	if err != nil {
		return false, fmt.Errorf("filter %q on row %d: %w", f.src, i, err)
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("filter %q returned %T", f.src, out)
	}
	return b, nil
}

// Apply returns the matching rows in table order.
func (f *Filter) Apply() ([]table.Row, error) {
	res := []table.Row{}
	for i := range f.t.Rows {
		ok, err := f.Match(i)
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, f.t.Rows[i])
		}
	}
	return res, nil
}

func (f *Filter) String() string {
	return f.src
}
