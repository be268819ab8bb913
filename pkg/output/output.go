// Package output defines the writer contract shared by all report
// output formats and the format names the CLI accepts.
package output

import (
	"fmt"
	"strings"

	"github.com/nessdoc/nessdoc/pkg/report"
)

// Writer renders a grouped report into one output format.
// Writers buffer as needed; Close flushes and releases resources.
type Writer interface {
	// Write renders the report. Writers are single-shot: one report
	// per writer instance.
	Write(r *report.Report) error

	// Close finalizes the output.
	Close() error
}

// Format names an output format.
type Format string

const (
	// FormatDocx is the primary styled document report.
	FormatDocx Format = "docx"

	// FormatPDF is the same report rendered as PDF.
	FormatPDF Format = "pdf"

	// FormatCSV exports normalized findings as CSV rows.
	FormatCSV Format = "csv"

	// FormatJSON exports the grouped report as JSON.
	FormatJSON Format = "json"
)

// ReportFormats lists formats the generate subcommand accepts.
func ReportFormats() []Format {
	return []Format{FormatDocx, FormatPDF}
}

// ExportFormats lists formats the export subcommand accepts.
func ExportFormats() []Format {
	return []Format{FormatCSV, FormatJSON}
}

// ParseFormat resolves a user-supplied format name against allowed.
func ParseFormat(name string, allowed []Format) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, a := range allowed {
		if f == a {
			return f, nil
		}
	}
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = string(a)
	}
	return "", fmt.Errorf("output: unknown format %q (expected one of: %s)", name, strings.Join(names, ", "))
}
