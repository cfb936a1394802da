package main

import (
	"fmt"
	"io"

	"github.com/andresjuar/FCC-Toolkit-ASE/encode"
	"github.com/andresjuar/FCC-Toolkit-ASE/filter"
	"github.com/andresjuar/FCC-Toolkit-ASE/parse"
	"github.com/andresjuar/FCC-Toolkit-ASE/table"

	"github.com/scott-cotton/cli"
)

func tableRun(cfg *TableConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Table.Parse(cc, args)
	if err != nil {
		return err
	}
	src, err := input(args, cc.In)
	if err != nil {
		return err
	}
	return writeTable(cfg, cc.Out, src)
}

func (cfg *TableConfig) buildOpts() []table.BuildOption {
	pOpts := []parse.ParseOption{}
	if cfg.NoNeg {
		pOpts = append(pOpts, parse.SkipNegations())
	}
	if cfg.NoGroups {
		pOpts = append(pOpts, parse.SkipGroups())
	}
	return []table.BuildOption{
		table.BuildParallel(cfg.Parallel),
		table.BuildParseOptions(pOpts...),
	}
}

func writeTable(cfg *TableConfig, w io.Writer, src string) error {
	if cfg.Parallel < 0 {
		return fmt.Errorf("%w: -parallel must not be negative", cli.ErrUsage)
	}
	t, err := buildTable(src, cfg.buildOpts()...)
	if err != nil {
		return err
	}
	opts, err := cfg.encOpts(w)
	if err != nil {
		return err
	}
	if cfg.Where != "" {
		f, err := filter.Compile(cfg.Where, t)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		rows, err := f.Apply()
		if err != nil {
			return err
		}
		opts = append(opts, encode.EncodeRows(rows))
	}
	return encode.Encode(t, w, opts...)
}
