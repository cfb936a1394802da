package encode

import (
	"github.com/andresjuar/FCC-Toolkit-ASE/table"
)

// Doc is the structured form of a table used by JSON and YAML output.
// Values in each row line up with Header.
type Doc struct {
	Expression string   `json:"expression" yaml:"expression"`
	Variables  []string `json:"variables" yaml:"variables"`
	Header     []string `json:"header" yaml:"header"`
	Rows       []DocRow `json:"rows" yaml:"rows"`
}

type DocRow struct {
	Index  int    `json:"index" yaml:"index"`
	Values []bool `json:"values" yaml:"values"`
	Result bool   `json:"result" yaml:"result"`
}

func NewDoc(t *table.Table, rows []table.Row) *Doc {
	doc := &Doc{
		Expression: t.Expr.Source,
		Header:     t.Header(),
		Rows:       make([]DocRow, 0, len(rows)),
	}
	for _, v := range t.Vars {
		doc.Variables = append(doc.Variables, v.String())
	}
	for _, row := range rows {
		doc.Rows = append(doc.Rows, DocRow{
			Index:  row.Index,
			Values: t.Cells(row.Index),
			Result: t.Result(row.Index),
		})
	}
	return doc
}
