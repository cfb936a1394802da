package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/andresjuar/FCC-Toolkit-ASE/eval"
	"github.com/andresjuar/FCC-Toolkit-ASE/format"

	"github.com/google/go-cmp/cmp"
	"github.com/scott-cotton/cli"
)

func csvConfig() *MainConfig {
	f := format.CSVFormat
	return &MainConfig{Format: &f, NoColor: true}
}

func TestInput(t *testing.T) {
	got, err := input([]string{"p", "∧", "q"}, strings.NewReader("ignored"))
	if err != nil {
		t.Fatal(err)
	}
	if got != "p ∧ q" {
		t.Errorf("got %q", got)
	}
	got, err = input([]string{"-"}, strings.NewReader("  p → q\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got != "p → q" {
		t.Errorf("got %q", got)
	}
	if _, err := input(nil, strings.NewReader(" \n\t")); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("empty input: got %v", err)
	}
}

func TestWriteTable(t *testing.T) {
	cfg := &TableConfig{MainConfig: csvConfig(), Where: "value"}
	buf := bytes.NewBuffer(nil)
	if err := writeTable(cfg, buf, "P → Q"); err != nil {
		t.Fatal(err)
	}
	want := "p,q,p → q\nF,F,V\nF,V,V\nV,V,V\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestWriteTableParallelSymbols(t *testing.T) {
	cfg := &TableConfig{MainConfig: csvConfig(), Parallel: 4, NoNeg: true}
	cfg.Symbols = "1/0"
	buf := bytes.NewBuffer(nil)
	if err := writeTable(cfg, buf, "¬p ∧ q"); err != nil {
		t.Fatal(err)
	}
	want := "p,q,¬p ∧ q\n0,0,0\n0,1,1\n1,0,0\n1,1,0\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestWriteTableErrors(t *testing.T) {
	tests := []struct {
		src string
		err error
	}{
		{src: "p ∧", err: ErrExpression},
		{src: "(p ∨ q", err: ErrExpression},
		{src: "p & q", err: ErrExpression},
		{src: "p q", err: ErrExpression},
		{src: "()", err: cli.ErrUsage},
	}
	for _, tt := range tests {
		cfg := &TableConfig{MainConfig: csvConfig()}
		err := writeTable(cfg, bytes.NewBuffer(nil), tt.src)
		if !errors.Is(err, tt.err) {
			t.Errorf("%q: got %v want %v", tt.src, err, tt.err)
		}
	}
	cfg := &TableConfig{MainConfig: csvConfig(), Where: "value +"}
	if err := writeTable(cfg, bytes.NewBuffer(nil), "p"); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("bad filter: got %v", err)
	}
	cfg = &TableConfig{MainConfig: csvConfig()}
	cfg.Symbols = "VV"
	if err := writeTable(cfg, bytes.NewBuffer(nil), "p"); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("bad symbols: got %v", err)
	}
}

func TestWriteClass(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{src: "p ∨ ¬p", want: "pv¬p: tautology (2 of 2 assignments)\n"},
		{src: "p ∧ ¬p", want: "p∧¬p: contradiction (0 of 2 assignments)\n"},
		{src: "p → q", want: "p→q: contingent (3 of 4 assignments)\n"},
	}
	for _, tt := range tests {
		buf := bytes.NewBuffer(nil)
		if err := writeClass(&ClassifyConfig{MainConfig: csvConfig()}, buf, tt.src); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(tt.want, buf.String()); diff != "" {
			t.Errorf("%q (-want +got):\n%s", tt.src, diff)
		}
	}
}

func TestWriteClassWitness(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	cfg := &ClassifyConfig{MainConfig: csvConfig(), Witness: true}
	if err := writeClass(cfg, buf, "p ∧ q"); err != nil {
		t.Fatal(err)
	}
	want := "p∧q: contingent (1 of 4 assignments)\nsatisfied by: p=1 q=1\n"
	if got := buf.String(); !strings.HasPrefix(got, want) || !strings.Contains(got, "falsified by: ") {
		t.Errorf("got %q", got)
	}
}

func TestWriteEquiv(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	same, err := writeEquiv(&EquivConfig{MainConfig: csvConfig()}, buf, "p → q", "¬p ∨ q")
	if err != nil {
		t.Fatal(err)
	}
	if !same {
		t.Errorf("expected equivalence: %s", buf)
	}
	if got := buf.String(); got != "p→q ≡ ¬pvq\n" {
		t.Errorf("got %q", got)
	}

	buf.Reset()
	same, err = writeEquiv(&EquivConfig{MainConfig: csvConfig(), Diff: true}, buf, "p", "p ∧ q")
	if err != nil {
		t.Fatal(err)
	}
	if same {
		t.Errorf("p and p∧q reported equivalent")
	}
	got := buf.String()
	for _, want := range []string{"p ≢ p∧q: differ at p=1 q=0", "- p=1 q=0  V", "+ p=1 q=0  F", "  p=1 q=1  V"} {
		if !strings.Contains(got, want) {
			t.Errorf("output lacks %q:\n%s", want, got)
		}
	}
}

func TestWriteTree(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := writeTree(buf, "¬(p ∨ q)"); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	if !strings.HasPrefix(got, "¬  ¬(pvq)\n") || !strings.Contains(got, "v  pvq") {
		t.Errorf("got:\n%s", got)
	}
	if err := writeTree(buf, "¬"); !errors.Is(err, ErrExpression) {
		t.Errorf("got %v", err)
	}
}

func TestParseAssignment(t *testing.T) {
	got, err := parseAssignment([]string{"p=1", "Q=false", "z=t"})
	if err != nil {
		t.Fatal(err)
	}
	want := eval.Assignment{'p': true, 'q': false, 'z': true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	for _, bad := range []string{"p", "x=1", "p=2"} {
		if _, err := parseAssignment([]string{bad}); !errors.Is(err, cli.ErrUsage) {
			t.Errorf("%q: got %v", bad, err)
		}
	}
}

func TestWriteEval(t *testing.T) {
	cfg := &EvalConfig{MainConfig: csvConfig()}
	buf := bytes.NewBuffer(nil)
	if err := writeEval(cfg, buf, "p → q", eval.Assignment{'p': true, 'q': false}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "F\n" {
		t.Errorf("got %q", buf)
	}
	err := writeEval(cfg, buf, "p → q", eval.Assignment{'p': true})
	if !errors.Is(err, eval.ErrUnbound) {
		t.Errorf("got %v", err)
	}
}
