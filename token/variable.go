package token

import "strings"

// Alphabet lists every letter usable as a variable, in canonical order.
const Alphabet = "pqrstz"

// MaxVars is the number of distinct variables a formula can mention.
const MaxVars = len(Alphabet)

type Variable byte

func (v Variable) String() string {
	return string(rune(v))
}

func (v Variable) Valid() bool {
	return IsVariable(rune(v))
}

func IsVariable(r rune) bool {
	return r < 0x80 && strings.IndexByte(Alphabet, byte(r)) != -1
}

// ParseVariable accepts a one letter name from the alphabet.
func ParseVariable(s string) (Variable, bool) {
	if len(s) != 1 || !IsVariable(rune(s[0])) {
		return 0, false
	}
	return Variable(s[0]), true
}
