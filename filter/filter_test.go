package filter

import (
	"testing"

	"github.com/andresjuar/FCC-Toolkit-ASE/table"
	"github.com/google/go-cmp/cmp"
)

type filterTest struct {
	in, where string
	rows      []int
}

func TestApply(t *testing.T) {
	tests := []filterTest{
		{in: "p∧q", where: "value", rows: []int{3}},
		{in: "p∧q", where: "!value", rows: []int{0, 1, 2}},
		{in: "(p∧q)→r", where: "!value", rows: []int{6}},
		{in: "(p∧q)→r", where: "cols[0] && r", rows: []int{7}},
		{in: "p→q", where: "p && value", rows: []int{3}},
		{in: "pvq", where: "row >= 2", rows: []int{2, 3}},
		{in: "z", where: "true", rows: []int{0, 1}},
		{in: "z", where: "false", rows: []int{}},
	}
	for _, tt := range tests {
		tab, err := table.Build(tt.in)
		if err != nil {
			t.Fatal(err)
		}
		f, err := Compile(tt.where, tab)
		if err != nil {
			t.Errorf("%q where %q: %v", tt.in, tt.where, err)
			continue
		}
		rows, err := f.Apply()
		if err != nil {
			t.Errorf("%q where %q: %v", tt.in, tt.where, err)
			continue
		}
		got := []int{}
		for _, r := range rows {
			got = append(got, r.Index)
		}
		if diff := cmp.Diff(tt.rows, got); diff != "" {
			t.Errorf("%q where %q (-want +got):\n%s", tt.in, tt.where, diff)
		}
	}
}

func TestCompileErrors(t *testing.T) {
	tab, err := table.Build("p∧q")
	if err != nil {
		t.Fatal(err)
	}
	for _, where := range []string{"r", "row + 1", "value &&"} {
		if _, err := Compile(where, tab); err == nil {
			t.Errorf("%q should not compile", where)
		}
	}
}
