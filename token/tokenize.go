package token

import (
	"fmt"
	"unicode/utf8"
)

// glyphs maps every connective and grouping glyph to its token type.
var glyphs = map[rune]TokenType{
	'¬': TNot,
	'~': TNot,
	'∧': TAnd,
	'^': TAnd,
	'v': TOr,
	'∨': TOr,
	'→': TImplies,
	'↔': TIff,
	'(': TLParen,
	')': TRParen,
}

// Tokenize appends the tokens of src to dst in source order.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	posDoc := NewPosDoc(src)
	i := 0
	n := len(src)
	for i < n {
		r, sz := utf8.DecodeRune(src[i:])
		switch {
		case r == utf8.RuneError && sz <= 1:
			return nil, UnexpectedErr("invalid utf-8 byte", posDoc.Pos(i))
		case r == '\n':
			posDoc.nl(i)
		case r == ' ' || r == '\t' || r == '\r':
		case IsVariable(r):
			dst = append(dst, Token{
				Type:  TVar,
				Pos:   posDoc.Pos(i),
				Bytes: src[i : i+sz],
			})
		default:
			tt, ok := glyphs[r]
			if !ok {
				return nil, UnexpectedErr(fmt.Sprintf("character %q", r), posDoc.Pos(i))
			}
			dst = append(dst, Token{
				Type:  tt,
				Pos:   posDoc.Pos(i),
				Bytes: src[i : i+sz],
			})
		}
		i += sz
	}
	return dst, nil
}

// EndPos returns the position just past the last byte of src, sharing the
// line information of toks when there are any.
func EndPos(toks []Token, src []byte) *Pos {
	if len(toks) == 0 {
		return NewPosDoc(src).end()
	}
	return toks[len(toks)-1].Pos.D.end()
}
