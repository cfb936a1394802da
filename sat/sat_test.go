package sat

import (
	"testing"

	"github.com/andresjuar/FCC-Toolkit-ASE/eval"
	"github.com/andresjuar/FCC-Toolkit-ASE/parse"
	"github.com/andresjuar/FCC-Toolkit-ASE/table"
	"github.com/andresjuar/FCC-Toolkit-ASE/token"
)

type classifyTest struct {
	in   string
	want Class
}

func TestClassify(t *testing.T) {
	tests := []classifyTest{
		{in: "p", want: Contingent},
		{in: "p v ¬p", want: Tautology},
		{in: "p ∧ ¬p", want: Contradiction},
		{in: "(p→q) ↔ (¬p v q)", want: Tautology},
		{in: "(p→q) ∧ p ∧ ¬q", want: Contradiction},
		{in: "((p→q)∧(q→r))→(p→r)", want: Tautology},
		{in: "(p∧q)→r", want: Contingent},
		{in: "¬(p↔q) ↔ (p↔¬q)", want: Tautology},
	}
	for _, tt := range tests {
		if got := Classify(parse.MustParse(tt.in)); got != tt.want {
			t.Errorf("%q: got %s want %s", tt.in, got, tt.want)
		}
	}
}

func TestWitnesses(t *testing.T) {
	for _, in := range []string{"p∧¬q", "(p↔q)∧r", "z→(t∧¬s)", "p v ¬p"} {
		n := parse.MustParse(in)
		model, ok := Satisfy(n)
		if !ok {
			t.Errorf("%q should be satisfiable", in)
			continue
		}
		if v, err := eval.Eval(n, model); err != nil || !v {
			t.Errorf("%q: model %s does not satisfy (%v)", in, model, err)
		}
	}
	n := parse.MustParse("p→q")
	model, ok := Falsify(n)
	if !ok || !model['p'] || model['q'] {
		t.Errorf("p→q falsified only by p=1 q=0, got %s", model)
	}
	if _, ok := Falsify(parse.MustParse("p v ¬p")); ok {
		t.Errorf("tautology falsified")
	}
}

func TestEquivalent(t *testing.T) {
	ok, _ := Equivalent(parse.MustParse("p → q"), parse.MustParse("¬p v q"))
	if !ok {
		t.Errorf("p→q should equal ¬pvq")
	}
	ok, _ = Equivalent(parse.MustParse("¬(p∧q)"), parse.MustParse("¬p v ¬q"))
	if !ok {
		t.Errorf("de morgan failed")
	}
	a, b := parse.MustParse("p → q"), parse.MustParse("q → p")
	ok, model := Equivalent(a, b)
	if ok {
		t.Fatalf("p→q should differ from q→p")
	}
	va, _ := eval.Eval(a, model)
	vb, _ := eval.Eval(b, model)
	if va == vb {
		t.Errorf("counterexample %s does not separate them", model)
	}
	ok, model = Equivalent(parse.MustParse("p"), parse.MustParse("p∧(qvr)"))
	if ok || len(model) != 3 {
		t.Errorf("got %t %s", ok, model)
	}
}

func TestCount(t *testing.T) {
	for _, in := range []string{"p", "p∧q", "pvqvr", "(p∧q)→r", "p↔q", "p∧¬p", "pv¬p", "¬(s→t)∧(zvp)"} {
		tab, err := table.Build(in)
		if err != nil {
			t.Fatal(err)
		}
		want := 0
		for _, b := range tab.Results() {
			if b {
				want++
			}
		}
		got, err := CountOwn(tab.Expr.Root)
		if err != nil {
			t.Fatal(err)
		}
		if got.Int64() != int64(want) {
			t.Errorf("%q: count %s want %d", in, got, want)
		}
		class := Classify(tab.Expr.Root)
		switch {
		case want == len(tab.Rows) && class != Tautology:
			t.Errorf("%q: all rows true but %s", in, class)
		case want == 0 && class != Contradiction:
			t.Errorf("%q: no rows true but %s", in, class)
		}
	}
}

func TestCountExtraVars(t *testing.T) {
	got, err := Count(parse.MustParse("p"), []token.Variable{'p', 'q'})
	if err != nil {
		t.Fatal(err)
	}
	if got.Int64() != 2 {
		t.Errorf("p over p,q: %s want 2", got)
	}
	if _, err := Count(parse.MustParse("pvq"), []token.Variable{'p'}); err == nil {
		t.Errorf("missing variable accepted")
	}
}
