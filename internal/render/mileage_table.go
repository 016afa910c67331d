package render

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strconv"
	"unicode"
	"unicode/utf8"

	"mileage-service/internal/domain"

	"github.com/goccy/go-json"
)

// Output formats accepted by WriteMileageTable.
const (
	FormatJS   = "js"
	FormatGo   = "go"
	FormatJSON = "json"
)

// WriteMileageTable emits table as a source file exporting a single binding
// called name. Keys are written in sorted order so identical tables produce
// identical bytes.
func WriteMileageTable(w io.Writer, outputFormat, name string, table *domain.MileageTable) error {
	var (
		b   []byte
		err error
	)

	switch outputFormat {
	case FormatJS:
		b, err = jsModule(name, table)
	case FormatGo:
		b, err = goSource(name, table)
	case FormatJSON:
		b, err = jsonDocument(table)
	default:
		return &domain.ConfigError{Field: "OUTPUT_FORMAT", Reason: fmt.Sprintf("unknown format %q", outputFormat)}
	}
	if err != nil {
		return fmt.Errorf("render mileage table: %w", err)
	}

	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("render mileage table: write: %w", err)
	}

	return nil
}

func formatMiles(m float64) string {
	return strconv.FormatFloat(m, 'f', -1, 64)
}

func jsModule(name string, table *domain.MileageTable) ([]byte, error) {
	if !isIdentifier(name, true) {
		return nil, fmt.Errorf("invalid export name %q", name)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "export const %s = {\n", name)
	for _, k := range table.Keys() {
		fmt.Fprintf(&buf, "  %s: %s,\n", strconv.Quote(k), formatMiles(table.Miles(k)))
	}
	buf.WriteString("};\n")

	return buf.Bytes(), nil
}

func goSource(name string, table *domain.MileageTable) ([]byte, error) {
	if !isIdentifier(name, false) {
		return nil, fmt.Errorf("invalid variable name %q", name)
	}
	// Exported so other packages can read it.
	r, size := utf8.DecodeRuneInString(name)
	goName := string(unicode.ToUpper(r)) + name[size:]

	var buf bytes.Buffer
	buf.WriteString("// Code generated by mileagetable; DO NOT EDIT.\n\n")
	buf.WriteString("package mileage\n\n")
	fmt.Fprintf(&buf, "// %s maps \"A|B\" location pairs to driving miles.\n", goName)
	fmt.Fprintf(&buf, "var %s = map[string]float64{\n", goName)
	for _, k := range table.Keys() {
		fmt.Fprintf(&buf, "%s: %s,\n", strconv.Quote(k), formatMiles(table.Miles(k)))
	}
	buf.WriteString("}\n")

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gofmt generated source: %w", err)
	}
	return out, nil
}

func jsonDocument(table *domain.MileageTable) ([]byte, error) {
	b, err := json.MarshalIndent(table.Map(), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

// isIdentifier reports whether s is a valid JS (allowDollar) or Go identifier.
func isIdentifier(s string, allowDollar bool) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) || (allowDollar && r == '$') {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}
