package encode

import (
	"github.com/fatih/color"
)

type ColorAttr int

const (
	TrueColor ColorAttr = iota
	FalseColor
	HeaderColor
	ResultColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			TrueColor:   color.GreenString,
			FalseColor:  color.RedString,
			HeaderColor: color.New(color.Bold).SprintfFunc(),
			ResultColor: color.RGB(128, 168, 196).Add(color.Bold).SprintfFunc(),
		},
	}
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(a ColorAttr, s string) string {
	if c == nil {
		return s
	}
	return c.Get(a)("%s", s)
}

func (c *Colors) Get(a ColorAttr) func(string, ...any) string {
	f := c.Map[a]
	if f == nil {
		return c.Default
	}
	return f
}
