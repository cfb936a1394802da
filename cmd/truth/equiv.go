package main

import (
	"fmt"
	"io"

	"github.com/andresjuar/FCC-Toolkit-ASE/libdiff"
	"github.com/andresjuar/FCC-Toolkit-ASE/sat"

	"github.com/scott-cotton/cli"
)

func equivRun(cfg *EquivConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Equiv.Parse(cc, args)
	if err != nil {
		cfg.Equiv.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: equiv requires 2 expressions, got %d", cli.ErrUsage, len(args))
	}
	same, err := writeEquiv(cfg, cc.Out, args[0], args[1])
	if err != nil {
		return err
	}
	if !same {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func writeEquiv(cfg *EquivConfig, w io.Writer, a, b string) (bool, error) {
	ea, err := parseExpr(a)
	if err != nil {
		return false, err
	}
	eb, err := parseExpr(b)
	if err != nil {
		return false, err
	}
	same, witness := sat.Equivalent(ea.Root, eb.Root)
	if same {
		fmt.Fprintf(w, "%s ≡ %s\n", ea.Root, eb.Root)
	} else {
		fmt.Fprintf(w, "%s ≢ %s: differ at %s\n", ea.Root, eb.Root, witness)
	}
	if !cfg.Diff {
		return same, nil
	}
	ta, err := buildTable(a)
	if err != nil {
		return false, err
	}
	tb, err := buildTable(b)
	if err != nil {
		return false, err
	}
	d, _ := libdiff.Diff(ta, tb)
	io.WriteString(w, d)
	return same, nil
}
