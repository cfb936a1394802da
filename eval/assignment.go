package eval

import (
	"slices"
	"strings"

	"github.com/andresjuar/FCC-Toolkit-ASE/token"
)

// Assignment gives each variable in scope a truth value.
type Assignment map[token.Variable]bool

// Vars returns the bound variables in alphabetical order.
func (a Assignment) Vars() []token.Variable {
	res := make([]token.Variable, 0, len(a))
	for v := range a {
		res = append(res, v)
	}
	slices.Sort(res)
	return res
}

// Env converts a to a map keyed by variable name.
func (a Assignment) Env() map[string]bool {
	res := make(map[string]bool, len(a))
	for v, b := range a {
		res[v.String()] = b
	}
	return res
}

// String renders a as "p=1 q=0" in variable order.
func (a Assignment) String() string {
	parts := []string{}
	for _, v := range a.Vars() {
		b := "0"
		if a[v] {
			b = "1"
		}
		parts = append(parts, v.String()+"="+b)
	}
	return strings.Join(parts, " ")
}
