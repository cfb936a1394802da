package parse

import (
	"fmt"
	"strings"

	"github.com/andresjuar/FCC-Toolkit-ASE/debug"
	"github.com/andresjuar/FCC-Toolkit-ASE/ir"
	"github.com/andresjuar/FCC-Toolkit-ASE/token"
)

type parser struct {
	src  []byte
	toks []token.Token
	i    int
	opts *parseOpts

	groups []Subexpr
	negs   []Subexpr
}

// Parse parses a complete formula. Every token must be consumed; leftover
// input is an error rather than being dropped.
func Parse(src []byte, opts ...ParseOption) (*Expr, error) {
	toks, err := token.Tokenize(nil, src)
	if err != nil {
		return nil, err
	}
	return FromTokens(src, toks, opts...)
}

// FromTokens is Parse for callers that already tokenized src.
func FromTokens(src []byte, toks []token.Token, opts ...ParseOption) (*Expr, error) {
	if debug.Tokens() {
		for i := range toks {
			debug.Logf("token %d: %s\n", i, toks[i].Info())
		}
	}
	p := &parser{src: src, toks: toks, opts: &parseOpts{}}
	for _, opt := range opts {
		opt(p.opts)
	}
	root, _, err := p.parseIff()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok != nil {
		if tok.Type == token.TRParen {
			return nil, token.UnexpectedErr("')' without matching '('", tok.Pos)
		}
		return nil, token.ExpectedErr(fmt.Sprintf("connective before %q", tok.String()), tok.Pos)
	}
	expr := p.result(root)
	if debug.Parse() {
		debug.Logf("parsed %q as %s with %d subexpressions\n", expr.Source, root, len(expr.Subexprs))
	}
	return expr, nil
}

// MustParse is Parse for formulas known to be well formed.
func MustParse(s string) *ir.Node {
	e, err := Parse([]byte(s))
	if err != nil {
		panic(err)
	}
	return e.Root
}

func (p *parser) result(root *ir.Node) *Expr {
	set := &subexprSet{}
	if !p.opts.skipGroups {
		for _, g := range p.groups {
			set.add(g)
		}
	}
	if !p.opts.skipNegations {
		for _, n := range p.negs {
			set.add(n)
		}
	}
	src := string(p.src)
	set.add(Subexpr{Text: strings.TrimSpace(src), Node: root, Kind: FullKind})
	vars := root.Vars()
	for _, v := range vars {
		set.add(Subexpr{Text: v.String(), Node: ir.Lit(v), Kind: VariableKind})
	}
	return &Expr{
		Source:   src,
		Root:     root,
		Subexprs: set.list,
		Vars:     vars,
	}
}

func (p *parser) peek() *token.Token {
	if p.i >= len(p.toks) {
		return nil
	}
	return &p.toks[p.i]
}

func (p *parser) next() *token.Token {
	tok := p.peek()
	if tok != nil {
		p.i++
	}
	return tok
}

func (p *parser) endPos() *token.Pos {
	return token.EndPos(p.toks, p.src)
}

func (p *parser) mark(n *ir.Node, pos *token.Pos) {
	if p.opts.positions != nil {
		p.opts.positions[n] = pos
	}
}

func (p *parser) parseIff() (*ir.Node, *token.Pos, error) {
	return p.parseBinary(token.TIff, p.parseImplies)
}

func (p *parser) parseImplies() (*ir.Node, *token.Pos, error) {
	return p.parseBinary(token.TImplies, p.parseOr)
}

func (p *parser) parseOr() (*ir.Node, *token.Pos, error) {
	return p.parseBinary(token.TOr, p.parseAnd)
}

func (p *parser) parseAnd() (*ir.Node, *token.Pos, error) {
	return p.parseBinary(token.TAnd, p.parseUnary)
}

// parseBinary parses a left associative chain of operands joined by tt.
func (p *parser) parseBinary(tt token.TokenType, operand func() (*ir.Node, *token.Pos, error)) (*ir.Node, *token.Pos, error) {
	left, start, err := operand()
	if err != nil {
		return nil, nil, err
	}
	typ, _ := ir.FromToken(tt)
	for {
		tok := p.peek()
		if tok == nil || tok.Type != tt {
			return left, start, nil
		}
		p.i++
		right, _, err := operand()
		if err != nil {
			return nil, nil, err
		}
		left = ir.Binary(typ, left, right)
		p.mark(left, start)
	}
}

func (p *parser) parseUnary() (*ir.Node, *token.Pos, error) {
	tok := p.peek()
	if tok == nil || tok.Type != token.TNot {
		return p.parsePrimary()
	}
	p.i++
	if nxt := p.peek(); nxt != nil && nxt.Type == token.TVar {
		p.i++
		lit := ir.Lit(nxt.Var())
		p.mark(lit, nxt.Pos)
		n := ir.Not(lit)
		p.mark(n, tok.Pos)
		p.negs = append(p.negs, Subexpr{
			Text: string(p.src[tok.Pos.I:nxt.End()]),
			Node: n,
			Kind: NegationKind,
		})
		return n, tok.Pos, nil
	}
	operand, _, err := p.parseUnary()
	if err != nil {
		return nil, nil, err
	}
	n := ir.Not(operand)
	p.mark(n, tok.Pos)
	return n, tok.Pos, nil
}

func (p *parser) parsePrimary() (*ir.Node, *token.Pos, error) {
	tok := p.next()
	if tok == nil {
		return nil, nil, token.ExpectedErr("operand", p.endPos())
	}
	switch tok.Type {
	case token.TVar:
		n := ir.Lit(tok.Var())
		p.mark(n, tok.Pos)
		return n, tok.Pos, nil
	case token.TLParen:
		inner, _, err := p.parseIff()
		if err != nil {
			return nil, nil, err
		}
		closing := p.next()
		if closing == nil {
			return nil, nil, token.ExpectedErr(fmt.Sprintf("')' to close '(' at offset %d", tok.Pos.I), p.endPos())
		}
		if closing.Type != token.TRParen {
			return nil, nil, token.ExpectedErr(fmt.Sprintf("')', found %q", closing.String()), closing.Pos)
		}
		p.groups = append(p.groups, Subexpr{
			Text: string(p.src[tok.Pos.I:closing.End()]),
			Node: inner,
			Kind: GroupKind,
		})
		return inner, tok.Pos, nil
	default:
		return nil, nil, token.ExpectedErr(fmt.Sprintf("operand, found %q", tok.String()), tok.Pos)
	}
}
