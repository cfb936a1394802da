package main

import (
	"fmt"
	"io"

	"github.com/andresjuar/FCC-Toolkit-ASE/sat"

	"github.com/scott-cotton/cli"
)

func classifyRun(cfg *ClassifyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Classify.Parse(cc, args)
	if err != nil {
		return err
	}
	src, err := input(args, cc.In)
	if err != nil {
		return err
	}
	return writeClass(cfg, cc.Out, src)
}

func writeClass(cfg *ClassifyConfig, w io.Writer, src string) error {
	e, err := parseExpr(src)
	if err != nil {
		return err
	}
	class := sat.Classify(e.Root)
	models, err := sat.CountOwn(e.Root)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s: %s (%s of %d assignments)\n", e.Root, class, models, 1<<len(e.Vars))
	if !cfg.Witness {
		return nil
	}
	if a, ok := sat.Satisfy(e.Root); ok {
		fmt.Fprintf(w, "satisfied by: %s\n", a)
	}
	if a, ok := sat.Falsify(e.Root); ok {
		fmt.Fprintf(w, "falsified by: %s\n", a)
	}
	return nil
}
