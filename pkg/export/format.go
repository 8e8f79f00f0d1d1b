package export

import (
	"fmt"
	"strings"
)

// Format selects a report renderer.
type Format string

const (
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatHTML  Format = "html"
	FormatPDF   Format = "pdf"
)

// Formats lists the supported formats.
var Formats = []Format{FormatTable, FormatCSV, FormatJSON, FormatYAML, FormatHTML, FormatPDF}

// ParseFormat maps a flag or config value to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatTable:
		return FormatTable, nil
	case "yml":
		return FormatYAML, nil
	case "chart":
		return FormatHTML, nil
	case FormatCSV, FormatJSON, FormatYAML, FormatHTML, FormatPDF:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want one of %v)", s, Formats)
	}
}

// Binary reports whether the format should not be written to a terminal.
func (f Format) Binary() bool { return f == FormatPDF }

// Extension returns the usual file extension, including the dot.
func (f Format) Extension() string {
	switch f {
	case FormatTable:
		return ".txt"
	default:
		return "." + string(f)
	}
}
