package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	TextFormat Format = iota
	MarkdownFormat
	CSVFormat
	JSONFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"t":        TextFormat,
		"text":     TextFormat,
		"m":        MarkdownFormat,
		"md":       MarkdownFormat,
		"markdown": MarkdownFormat,
		"c":        CSVFormat,
		"csv":      CSVFormat,
		"j":        JSONFormat,
		"json":     JSONFormat,
		"y":        YAMLFormat,
		"yaml":     YAMLFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case TextFormat:
		return []byte("text"), nil
	case MarkdownFormat:
		return []byte("markdown"), nil
	case CSVFormat:
		return []byte("csv"), nil
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// IsTabular reports whether f lays rows out as a grid of symbols rather
// than as a structured document.
func (f Format) IsTabular() bool {
	return f == TextFormat || f == MarkdownFormat || f == CSVFormat
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{TextFormat, MarkdownFormat, CSVFormat, JSONFormat, YAMLFormat}
}
