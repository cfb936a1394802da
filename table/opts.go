package table

import "github.com/andresjuar/FCC-Toolkit-ASE/parse"

type buildOpts struct {
	parallel  int
	parseOpts []parse.ParseOption
}

type BuildOption func(*buildOpts)

// BuildParallel evaluates rows on up to n goroutines. Values below 2 keep
// evaluation on the calling goroutine.
func BuildParallel(n int) BuildOption {
	return func(o *buildOpts) { o.parallel = n }
}

func BuildParseOptions(opts ...parse.ParseOption) BuildOption {
	return func(o *buildOpts) { o.parseOpts = append(o.parseOpts, opts...) }
}
