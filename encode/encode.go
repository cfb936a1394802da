package encode

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/andresjuar/FCC-Toolkit-ASE/format"
	"github.com/andresjuar/FCC-Toolkit-ASE/table"

	"github.com/goccy/go-yaml"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

type EncState struct {
	format   format.Format
	trueSym  string
	falseSym string
	colors   *Colors
	rows     []table.Row
	rowsSet  bool
}

func Encode(t *table.Table, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		trueSym:  "V",
		falseSym: "F",
	}
	for _, opt := range opts {
		opt(es)
	}
	if !es.rowsSet {
		es.rows = t.Rows
	}
	switch es.format {
	case format.TextFormat:
		return encodeGrid(t, tablewriter.NewTable(w, tablewriter.WithHeaderAutoFormat(tw.Off)), es)
	case format.MarkdownFormat:
		return encodeGrid(t, tablewriter.NewTable(w,
			tablewriter.WithRenderer(renderer.NewMarkdown()),
			tablewriter.WithHeaderAutoFormat(tw.Off)), es)
	case format.CSVFormat:
		return encodeCSV(t, w, es)
	case format.JSONFormat:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(NewDoc(t, es.rows))
	case format.YAMLFormat:
		d, err := yaml.Marshal(NewDoc(t, es.rows))
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	default:
		return fmt.Errorf("%w: %d", format.ErrBadFormat, es.format)
	}
}

func (es *EncState) symbol(b bool, result bool) string {
	s, a := es.falseSym, FalseColor
	if b {
		s, a = es.trueSym, TrueColor
	}
	if es.colors == nil {
		return s
	}
	s = es.colors.Color(a, s)
	if result {
		s = es.colors.Color(ResultColor, s)
	}
	return s
}

func (es *EncState) cells(t *table.Table, row *table.Row) []string {
	vals := t.Cells(row.Index)
	res := make([]string, len(vals))
	result := len(t.Vars) + t.ResultIndex()
	for i, b := range vals {
		res[i] = es.symbol(b, i == result)
	}
	return res
}

func encodeGrid(t *table.Table, tw *tablewriter.Table, es *EncState) error {
	header := t.Header()
	if es.colors != nil {
		for i := range header {
			header[i] = es.colors.Color(HeaderColor, header[i])
		}
	}
	tw.Header(header)
	for i := range es.rows {
		if err := tw.Append(es.cells(t, &es.rows[i])); err != nil {
			return err
		}
	}
	return tw.Render()
}

func encodeCSV(t *table.Table, w io.Writer, es *EncState) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header()); err != nil {
		return err
	}
	plain := *es
	plain.colors = nil
	for i := range es.rows {
		if err := cw.Write(plain.cells(t, &es.rows[i])); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func MustString(t *table.Table, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(t, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
