// Package encode renders truth tables.
//
// # Usage
//
//	tab, err := table.Build("(p∧q)→r")
//	err = encode.Encode(tab, os.Stdout)
//
//	// markdown with 1/0 cells
//	err = encode.Encode(tab, os.Stdout,
//	    encode.EncodeFormat(format.MarkdownFormat),
//	    encode.EncodeSymbols("1", "0"))
//
// Text and markdown go through tablewriter, CSV through encoding/csv, and
// JSON and YAML encode a [Doc].
//
// # Related Packages
//
//   - github.com/andresjuar/FCC-Toolkit-ASE/table - build tables
//   - github.com/andresjuar/FCC-Toolkit-ASE/format - output formats
package encode
