package ir

import "github.com/andresjuar/FCC-Toolkit-ASE/token"

type Type int

const (
	LiteralType Type = iota
	NotType
	AndType
	OrType
	ImpliesType
	IffType
)

func Types() []Type {
	return []Type{LiteralType, NotType, AndType, OrType, ImpliesType, IffType}
}

func (t Type) String() string {
	switch t {
	case LiteralType:
		return "Literal"
	case NotType:
		return "Not"
	case AndType:
		return "And"
	case OrType:
		return "Or"
	case ImpliesType:
		return "Implies"
	case IffType:
		return "Iff"
	default:
		return "<invalid>"
	}
}

func (t Type) IsBinary() bool {
	return t >= AndType && t <= IffType
}

// Glyph is the connective symbol used when rendering t.
func (t Type) Glyph() string {
	switch t {
	case NotType:
		return "¬"
	case AndType:
		return "∧"
	case OrType:
		return "v"
	case ImpliesType:
		return "→"
	case IffType:
		return "↔"
	}
	return ""
}

// Precedence orders binding strength, higher binds tighter.
func (t Type) Precedence() int {
	switch t {
	case LiteralType:
		return 6
	case NotType:
		return 5
	case AndType:
		return 4
	case OrType:
		return 3
	case ImpliesType:
		return 2
	case IffType:
		return 1
	}
	return 0
}

// FromToken maps a binary connective token to its node type.
func FromToken(tt token.TokenType) (Type, bool) {
	t, ok := map[token.TokenType]Type{
		token.TAnd:     AndType,
		token.TOr:      OrType,
		token.TImplies: ImpliesType,
		token.TIff:     IffType,
	}[tt]
	return t, ok
}
