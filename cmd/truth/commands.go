package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "f",
			Aliases:     []string{"format"},
			Description: "output format: text/t, markdown/md, csv/c, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.Format), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "truth").
		WithSynopsis("truth [opts] command [opts]").
		WithDescription("truth builds and inspects truth tables of propositional formulas.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return truthMain(cfg, cc, args)
		}).
		WithSubs(
			TableCommand(cfg),
			ClassifyCommand(cfg),
			EquivCommand(cfg),
			TreeCommand(cfg),
			EvalCommand(cfg))
}

func TableCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TableConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("table").
		WithAliases("t").
		WithSynopsis("table [-where pred] [expression]").
		WithDescription("print the truth table of an expression read from the arguments or stdin").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tableRun(cfg, cc, args)
		})
	cfg.Table = cmd
	return cmd
}

func ClassifyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ClassifyConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("classify").
		WithAliases("c", "cl").
		WithSynopsis("classify [-witness] [expression]").
		WithDescription("report whether an expression is a tautology, a contradiction or contingent").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return classifyRun(cfg, cc, args)
		})
	cfg.Classify = cmd
	return cmd
}

func EquivCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EquivConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("equiv").
		WithAliases("eq").
		WithSynopsis("equiv [-diff] <expression> <expression>").
		WithDescription("check whether two expressions are logically equivalent").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return equivRun(cfg, cc, args)
		})
	cfg.Equiv = cmd
	return cmd
}

func TreeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TreeConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("tree").
		WithSynopsis("tree [expression]").
		WithDescription("print the syntax tree of an expression").
		WithRun(func(cc *cli.Context, args []string) error {
			return treeRun(cfg, cc, args)
		})
	cfg.Tree = cmd
	return cmd
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("eval").
		WithAliases("e", "ev").
		WithSynopsis("eval <expression> [var=0|1]...").
		WithDescription("evaluate an expression under one assignment").
		WithRun(func(cc *cli.Context, args []string) error {
			return evalRun(cfg, cc, args)
		})
	cfg.Eval = cmd
	return cmd
}
