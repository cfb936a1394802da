package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Tokens bool
	Parse  bool
	Eval   bool
	Table  bool
	Sat    bool
	Errors bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokens = boolEnv("TRUTH_DEBUG_TOKENS")
	d.Parse = boolEnv("TRUTH_DEBUG_PARSE")
	d.Eval = boolEnv("TRUTH_DEBUG_EVAL")
	d.Table = boolEnv("TRUTH_DEBUG_TABLE")
	d.Sat = boolEnv("TRUTH_DEBUG_SAT")
	d.Errors = boolEnv("TRUTH_DEBUG_ERRORS")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokens() bool {
	return d.Tokens
}
func Parse() bool {
	return d.Parse
}
func Eval() bool {
	return d.Eval
}
func Table() bool {
	return d.Table
}
func Sat() bool {
	return d.Sat
}
func Errors() bool {
	return d.Errors
}
