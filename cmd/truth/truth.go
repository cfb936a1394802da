package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/andresjuar/FCC-Toolkit-ASE/debug"
	"github.com/andresjuar/FCC-Toolkit-ASE/parse"
	"github.com/andresjuar/FCC-Toolkit-ASE/table"

	"github.com/scott-cotton/cli"
)

// ErrExpression is what users see for any malformed expression. The
// detailed cause is only logged when TRUTH_DEBUG_ERRORS is set.
var ErrExpression = errors.New("error in logical expression: check the syntax")

func truthMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Color && cfg.NoColor {
		return fmt.Errorf("%w: -color and -nocolor are exclusive", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// input returns the expression given by args, or read from r when args is
// empty or a lone "-".
func input(args []string, r io.Reader) (string, error) {
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		d, err := io.ReadAll(r)
		if err != nil {
			return "", fmt.Errorf("error reading: %w", err)
		}
		args = []string{string(d)}
	}
	src := strings.TrimSpace(strings.Join(args, " "))
	if src == "" {
		return "", fmt.Errorf("%w: empty expression", cli.ErrUsage)
	}
	return src, nil
}

// expressionErr hides the cause of err behind ErrExpression.
func expressionErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, cli.ErrUsage) {
		return err
	}
	if debug.Errors() {
		debug.Logf("expression error: %v\n", err)
	}
	return ErrExpression
}

func buildTable(src string, opts ...table.BuildOption) (*table.Table, error) {
	t, err := table.Build(src, opts...)
	if errors.Is(err, table.ErrEmptyExpression) {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	if err != nil {
		return nil, expressionErr(err)
	}
	return t, nil
}

func parseExpr(src string, opts ...parse.ParseOption) (*parse.Expr, error) {
	e, err := parse.Parse([]byte(strings.ToLower(src)), opts...)
	if err != nil {
		return nil, expressionErr(err)
	}
	return e, nil
}
