// Package assign enumerates the assignments of a variable set in canonical
// order.
//
// For sorted variables v0..v(n-1), assignment i gives vk the value of bit
// n-1-k of i, so v0 is the most significant bit. Row 0 is all false and row
// 2ⁿ-1 is all true.
package assign

import (
	"errors"
	"fmt"
	"slices"

	"github.com/andresjuar/FCC-Toolkit-ASE/eval"
	"github.com/andresjuar/FCC-Toolkit-ASE/token"
)

var ErrTooMany = errors.New("too many variables")

// Count is the number of assignments over n variables.
func Count(n int) int {
	return 1 << n
}

func check(vars []token.Variable) error {
	if len(vars) > token.MaxVars {
		return fmt.Errorf("%w: %d, at most %d", ErrTooMany, len(vars), token.MaxVars)
	}
	if !slices.IsSorted(vars) {
		return fmt.Errorf("variables %v are not sorted", vars)
	}
	for i := 1; i < len(vars); i++ {
		if vars[i] == vars[i-1] {
			return fmt.Errorf("duplicate variable %s", vars[i])
		}
	}
	return nil
}

// At returns assignment i over vars.
func At(vars []token.Variable, i int) eval.Assignment {
	n := len(vars)
	a := make(eval.Assignment, n)
	for k, v := range vars {
		a[v] = i&(1<<(n-1-k)) != 0
	}
	return a
}

// Index is the inverse of At.
func Index(vars []token.Variable, a eval.Assignment) int {
	n := len(vars)
	i := 0
	for k, v := range vars {
		if a[v] {
			i |= 1 << (n - 1 - k)
		}
	}
	return i
}

// Enumerate returns all assignments over vars, which must be sorted and
// distinct, in ascending index order.
func Enumerate(vars []token.Variable) ([]eval.Assignment, error) {
	if err := check(vars); err != nil {
		return nil, err
	}
	N := Count(len(vars))
	res := make([]eval.Assignment, N)
	for i := range N {
		res[i] = At(vars, i)
	}
	return res, nil
}
