package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/andresjuar/FCC-Toolkit-ASE/eval"
	"github.com/andresjuar/FCC-Toolkit-ASE/token"

	"github.com/scott-cotton/cli"
)

func evalRun(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	a, err := parseAssignment(args[1:])
	if err != nil {
		return err
	}
	return writeEval(cfg, cc.Out, args[0], a)
}

// parseAssignment reads bindings of the form p=1, q=false.
func parseAssignment(args []string) (eval.Assignment, error) {
	res := eval.Assignment{}
	for _, arg := range args {
		name, val, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("%w: expected var=value, got %q", cli.ErrUsage, arg)
		}
		v, ok := token.ParseVariable(strings.ToLower(name))
		if !ok {
			return nil, fmt.Errorf("%w: %q is not a variable", cli.ErrUsage, name)
		}
		switch strings.ToLower(val) {
		case "1", "t", "v", "true":
			res[v] = true
		case "0", "f", "false":
			res[v] = false
		default:
			return nil, fmt.Errorf("%w: bad truth value %q for %s", cli.ErrUsage, val, v)
		}
	}
	return res, nil
}

func writeEval(cfg *EvalConfig, w io.Writer, src string, a eval.Assignment) error {
	e, err := parseExpr(src)
	if err != nil {
		return err
	}
	b, err := eval.Eval(e.Root, a)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	t, f, err := cfg.symbols()
	if err != nil {
		return err
	}
	res := f
	if b {
		res = t
	}
	_, err = fmt.Fprintf(w, "%s\n", res)
	return err
}
