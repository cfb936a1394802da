package encode

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/andresjuar/FCC-Toolkit-ASE/format"
	"github.com/andresjuar/FCC-Toolkit-ASE/parse"
	"github.com/andresjuar/FCC-Toolkit-ASE/table"
	"github.com/google/go-cmp/cmp"
)

func build(t *testing.T, in string) *table.Table {
	t.Helper()
	tab, err := table.Build(in)
	if err != nil {
		t.Fatal(err)
	}
	return tab
}

func TestEncodeCSV(t *testing.T) {
	got := MustString(build(t, "(p∧q)→r"), EncodeFormat(format.CSVFormat))
	want := strings.Join([]string{
		"p,q,r,(p∧q),(p∧q)→r",
		"F,F,F,F,V",
		"F,F,V,F,V",
		"F,V,F,F,V",
		"F,V,V,F,V",
		"V,F,F,F,V",
		"V,F,V,F,V",
		"V,V,F,V,F",
		"V,V,V,V,V",
	}, "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestEncodeSymbolsAndRows(t *testing.T) {
	tab := build(t, "p v q")
	got := MustString(tab,
		EncodeFormat(format.CSVFormat),
		EncodeSymbols("1", "0"),
		EncodeRows(tab.Rows[1:2]),
		EncodeColors(NewColors()))
	if got != "p,q,p v q\n0,1,1" {
		t.Errorf("got %q", got)
	}
}

func TestEncodeText(t *testing.T) {
	for _, f := range []format.Format{format.TextFormat, format.MarkdownFormat} {
		got := MustString(build(t, "¬p ∧ q"), EncodeFormat(f))
		for _, want := range []string{"¬p", "¬p ∧ q", "V", "F"} {
			if !strings.Contains(got, want) {
				t.Errorf("%s output lacks %q:\n%s", f, want, got)
			}
		}
		if n := strings.Count(got, "\n") + 1; n < 5 {
			t.Errorf("%s output has only %d lines:\n%s", f, n, got)
		}
	}
}

func TestEncodeJSON(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(build(t, "p → q"), buf, EncodeFormat(format.JSONFormat)); err != nil {
		t.Fatal(err)
	}
	doc := &Doc{}
	if err := json.Unmarshal(buf.Bytes(), doc); err != nil {
		t.Fatal(err)
	}
	want := &Doc{
		Expression: "p → q",
		Variables:  []string{"p", "q"},
		Header:     []string{"p", "q", "p → q"},
		Rows: []DocRow{
			{Index: 0, Values: []bool{false, false, true}, Result: true},
			{Index: 1, Values: []bool{false, true, true}, Result: true},
			{Index: 2, Values: []bool{true, false, false}, Result: false},
			{Index: 3, Values: []bool{true, true, true}, Result: true},
		},
	}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestEncodeYAML(t *testing.T) {
	got := MustString(build(t, "p"), EncodeFormat(format.YAMLFormat))
	for _, want := range []string{"expression: p", "header:", "rows:", "result: true"} {
		if !strings.Contains(got, want) {
			t.Errorf("yaml lacks %q:\n%s", want, got)
		}
	}
}

func TestEncodeBadFormat(t *testing.T) {
	if err := Encode(build(t, "p"), bytes.NewBuffer(nil), EncodeFormat(format.Format(99))); err == nil {
		t.Errorf("expected error")
	}
}

func TestTree(t *testing.T) {
	got := Tree(parse.MustParse("(p∧q)→¬r"))
	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines:\n%s", len(lines), got)
	}
	if lines[0] != "→  p∧q→¬r" {
		t.Errorf("root line %q", lines[0])
	}
	for _, want := range []string{"∧  p∧q", "¬  ¬r"} {
		if !strings.Contains(got, want) {
			t.Errorf("tree lacks %q:\n%s", want, got)
		}
	}
}
