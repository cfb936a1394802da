// Package libdiff compares the results of two truth tables.
package libdiff

import (
	"slices"
	"strings"

	"github.com/andresjuar/FCC-Toolkit-ASE/assign"
	"github.com/andresjuar/FCC-Toolkit-ASE/table"
	"github.com/andresjuar/FCC-Toolkit-ASE/token"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Lines renders the result column of t, one line per assignment over vars,
// which must include the variables of t.
func Lines(t *table.Table, vars []token.Variable) []string {
	N := assign.Count(len(vars))
	res := make([]string, N)
	for i := range N {
		a := assign.At(vars, i)
		v := "F"
		if t.Result(assign.Index(t.Vars, a)) {
			v = "V"
		}
		res[i] = a.String() + "  " + v
	}
	return res
}

// Diff aligns the rows of a and b over the union of their variables and
// diffs their results line by line. Lines only in a are prefixed with "-",
// lines only in b with "+". The boolean reports whether there was any
// difference.
func Diff(a, b *table.Table) (string, bool) {
	vars := slices.Concat(a.Vars, b.Vars)
	slices.Sort(vars)
	vars = slices.Compact(vars)
	from := strings.Join(Lines(a, vars), "\n") + "\n"
	to := strings.Join(Lines(b, vars), "\n") + "\n"

	dmp := diffpatch.New()
	fromChars, toChars, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffMain(fromChars, toChars, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	buf := &strings.Builder{}
	differ := false
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "- "
			differ = true
		case diffpatch.DiffInsert:
			prefix = "+ "
			differ = true
		}
		for _, ln := range strings.SplitAfter(d.Text, "\n") {
			if ln == "" {
				continue
			}
			buf.WriteString(prefix)
			buf.WriteString(ln)
		}
	}
	return buf.String(), differ
}
