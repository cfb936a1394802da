package main

import (
	"io"

	"github.com/andresjuar/FCC-Toolkit-ASE/encode"

	"github.com/scott-cotton/cli"
)

func treeRun(cfg *TreeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tree.Parse(cc, args)
	if err != nil {
		return err
	}
	src, err := input(args, cc.In)
	if err != nil {
		return err
	}
	return writeTree(cc.Out, src)
}

func writeTree(w io.Writer, src string) error {
	e, err := parseExpr(src)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, encode.Tree(e.Root))
	return err
}
