package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/andresjuar/FCC-Toolkit-ASE/encode"
	"github.com/andresjuar/FCC-Toolkit-ASE/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool   `cli:"name=color desc='colour true and false cells'"`
	NoColor bool   `cli:"name=nocolor desc='never colour output'"`
	Symbols string `cli:"name=symbols desc='true/false cell symbols, default V/F'"`

	Format *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) symbols() (string, string, error) {
	if cfg.Symbols == "" {
		return "V", "F", nil
	}
	t, f, ok := strings.Cut(cfg.Symbols, "/")
	if !ok || t == "" || f == "" || t == f {
		return "", "", fmt.Errorf("%w: -symbols expects distinct T/F, got %q", cli.ErrUsage, cfg.Symbols)
	}
	return t, f, nil
}

func (cfg *MainConfig) encOpts(w io.Writer) ([]encode.EncodeOption, error) {
	t, f, err := cfg.symbols()
	if err != nil {
		return nil, err
	}
	res := []encode.EncodeOption{
		encode.EncodeSymbols(t, f),
	}
	if cfg.Format != nil {
		res = append(res, encode.EncodeFormat(*cfg.Format))
	}
	if cfg.NoColor || (cfg.Format != nil && !cfg.Format.IsTabular()) {
		return res, nil
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors())), nil
	}
	file, ok := w.(*os.File)
	if !ok {
		return res, nil
	}
	if isatty.IsTerminal(file.Fd()) && (cfg.Format == nil || *cfg.Format == format.TextFormat) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res, nil
}

type TableConfig struct {
	*MainConfig
	Where    string `cli:"name=where aliases=w desc='only rows matching an expr predicate such as value&&!p'"`
	Parallel int    `cli:"name=parallel aliases=j desc='evaluate rows on this many goroutines'"`
	NoNeg    bool   `cli:"name=noneg desc='omit negated variable columns'"`
	NoGroups bool   `cli:"name=nogroups desc='omit parenthesized group columns'"`

	Table *cli.Command
}

type ClassifyConfig struct {
	*MainConfig
	Witness bool `cli:"name=witness desc='show a satisfying and a falsifying assignment'"`

	Classify *cli.Command
}

type EquivConfig struct {
	*MainConfig
	Diff bool `cli:"name=diff desc='show the row by row diff of the results'"`

	Equiv *cli.Command
}

type TreeConfig struct {
	*MainConfig
	Tree *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Eval *cli.Command
}
