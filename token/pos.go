package token

import (
	"fmt"
	"sort"
	"strconv"
	"unicode/utf8"
)

// PosDoc tracks the source and its line breaks so that byte offsets can be
// reported as line and column.
type PosDoc struct {
	d []byte
	n []int
}

func NewPosDoc(d []byte) *PosDoc {
	return &PosDoc{d: d}
}

func (p *PosDoc) nl(i int) {
	if len(p.n) > 0 && p.n[len(p.n)-1] == i {
		return
	}
	if i >= len(p.d) || p.d[i] != '\n' {
		panic("newline bookkeeping out of sync")
	}
	p.n = append(p.n, i)
}

// LineCol returns the zero based line and the rune column of byte offset
// off.
func (p *PosDoc) LineCol(off int) (int, int) {
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	start := 0
	if di > 0 {
		start = p.n[di-1] + 1
	}
	end := min(off, len(p.d))
	if start > end {
		return di, 0
	}
	return di, utf8.RuneCount(p.d[start:end])
}

func (p *PosDoc) Pos(i int) *Pos {
	return &Pos{
		I: i,
		D: p,
	}
}

func (p *PosDoc) end() *Pos {
	return &Pos{
		I: len(p.d),
		D: p,
	}
}

type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
	if p.D == nil {
		return 0, p.I
	}
	return p.D.LineCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p Pos) String() string {
	var sample string
	if p.D != nil && len(p.D.d) > 0 {
		sample = string(p.D.d[runeStart(p.D.d, p.I-5):runeStart(p.D.d, p.I+5)])
	} else {
		sample = "?"
	}
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, p.Line(), p.Col())
}

// runeStart clamps i into d and backs it up to the start of a rune so that
// samples never split a multi-byte glyph.
func runeStart(d []byte, i int) int {
	i = max(0, min(i, len(d)))
	for i > 0 && i < len(d) && !utf8.RuneStart(d[i]) {
		i--
	}
	return i
}
