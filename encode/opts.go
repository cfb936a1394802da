package encode

import (
	"github.com/andresjuar/FCC-Toolkit-ASE/format"
	"github.com/andresjuar/FCC-Toolkit-ASE/table"
)

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// EncodeSymbols sets the cell text for true and false in tabular formats.
func EncodeSymbols(t, f string) EncodeOption {
	return func(es *EncState) {
		es.trueSym = t
		es.falseSym = f
	}
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.colors = c }
}

// EncodeRows restricts output to rows, for example the result of a filter.
func EncodeRows(rows []table.Row) EncodeOption {
	return func(es *EncState) {
		es.rows = rows
		es.rowsSet = true
	}
}
