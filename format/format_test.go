package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats() {
		got, err := ParseFormat(f.String())
		if err != nil || got != f {
			t.Errorf("%s: got %v, %v", f, got, err)
		}
	}
	if f, _ := ParseFormat("md"); f != MarkdownFormat {
		t.Errorf("md -> %s", f)
	}
	if _, err := ParseFormat("html"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("html: %v", err)
	}
	var f Format
	if err := f.UnmarshalText([]byte("y")); err != nil || f != YAMLFormat {
		t.Errorf("unmarshal y: %v %s", err, f)
	}
	if !CSVFormat.IsTabular() || JSONFormat.IsTabular() {
		t.Errorf("IsTabular")
	}
}
