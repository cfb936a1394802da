package token

import (
	"errors"
	"fmt"
)

type TokenType int

const (
	TVar TokenType = iota
	TNot
	TAnd
	TOr
	TImplies
	TIff
	TLParen
	TRParen
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TVar:     "TVar",
		TNot:     "TNot",
		TAnd:     "TAnd",
		TOr:      "TOr",
		TImplies: "TImplies",
		TIff:     "TIff",
		TLParen:  "TLParen",
		TRParen:  "TRParen",
	}[t]
}

// IsBinary reports whether t is one of the binary connectives.
func (t TokenType) IsBinary() bool {
	switch t {
	case TAnd, TOr, TImplies, TIff:
		return true
	}
	return false
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

// Var returns the variable named by a TVar token.
func (t *Token) Var() Variable {
	return Variable(t.Bytes[0])
}

// End is the byte offset just past the token.
func (t *Token) End() int {
	return t.Pos.I + len(t.Bytes)
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

func (t *Token) String() string {
	return string(t.Bytes)
}

// ErrMalformed is matched by every tokenizer and parser rejection.
var ErrMalformed = errors.New("malformed expression")

type MalformedErr struct {
	Err error
	Pos Pos
}

func (e *MalformedErr) Unwrap() []error {
	return []error{e.Err, ErrMalformed}
}

func NewMalformedErr(e error, p *Pos) *MalformedErr {
	return &MalformedErr{Err: e, Pos: *p}
}

func (e *MalformedErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

// Reason is the error text without position information.
func (e *MalformedErr) Reason() string {
	return e.Err.Error()
}

func ExpectedErr(what string, p *Pos) error {
	return NewMalformedErr(fmt.Errorf("expected %s", what), p)
}
func UnexpectedErr(what string, p *Pos) error {
	return NewMalformedErr(fmt.Errorf("unexpected %s", what), p)
}
