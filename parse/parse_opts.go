package parse

import (
	"github.com/andresjuar/FCC-Toolkit-ASE/ir"
	"github.com/andresjuar/FCC-Toolkit-ASE/token"
)

type parseOpts struct {
	positions     map[*ir.Node]*token.Pos
	skipNegations bool
	skipGroups    bool
}

type ParseOption func(*parseOpts)

// ParsePositions records in m the source position where each node of the
// resulting tree begins.
func ParsePositions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}

// SkipNegations omits negated variables from the subexpressions.
func SkipNegations() ParseOption {
	return func(o *parseOpts) { o.skipNegations = true }
}

// SkipGroups omits parenthesized groups from the subexpressions.
func SkipGroups() ParseOption {
	return func(o *parseOpts) { o.skipGroups = true }
}
