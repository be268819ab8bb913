package writers

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/nessdoc/nessdoc/pkg/output"
	"github.com/nessdoc/nessdoc/pkg/report"
)

// Compile-time interface check.
var _ output.Writer = (*CSVWriter)(nil)

// UTF-8 BOM for Excel compatibility.
const utf8BOM = "\xEF\xBB\xBF"

// csvColumns are the export columns, one row per normalized finding,
// in original row order.
var csvColumns = []string{"host", "severity", "name", "description", "solution"}

// CSVOptions configures the CSV export writer.
type CSVOptions struct {
	// IncludeHeader includes a header row with column names.
	IncludeHeader bool

	// Delimiter sets the field delimiter character.
	// Default is comma when zero value.
	Delimiter rune

	// ExcelCompatible adds a UTF-8 BOM so Excel displays Unicode
	// finding text correctly.
	ExcelCompatible bool

	// SanitizeFormulas prevents CSV injection by prefixing cells
	// that start with = + - @ TAB or CR. Scan exports carry
	// attacker-influenced text (service banners, page titles), so
	// this is on for all CLI output.
	SanitizeFormulas bool
}

// CSVWriter exports normalized findings as CSV rows.
type CSVWriter struct {
	w    io.Writer
	cw   *csv.Writer
	opts CSVOptions
}

// NewCSVWriter creates a CSV export writer on w.
func NewCSVWriter(w io.Writer, opts CSVOptions) *CSVWriter {
	if opts.ExcelCompatible {
		_, _ = io.WriteString(w, utf8BOM)
	}
	cw := csv.NewWriter(w)
	if opts.Delimiter != 0 {
		cw.Comma = opts.Delimiter
	}
	return &CSVWriter{w: w, cw: cw, opts: opts}
}

// Write emits one row per normalized finding in original row order.
func (cw *CSVWriter) Write(r *report.Report) error {
	if cw.opts.IncludeHeader {
		if err := cw.cw.Write(csvColumns); err != nil {
			return fmt.Errorf("writers: csv header: %w", err)
		}
	}
	for _, f := range r.Findings {
		row := []string{f.Host, f.Severity.String(), f.Title, f.Description, f.Solution}
		if cw.opts.SanitizeFormulas {
			for i, cell := range row {
				row[i] = sanitizeForCSV(cell)
			}
		}
		if err := cw.cw.Write(row); err != nil {
			return fmt.Errorf("writers: csv row: %w", err)
		}
	}
	return nil
}

// Close flushes buffered rows.
func (cw *CSVWriter) Close() error {
	cw.cw.Flush()
	return cw.cw.Error()
}

// sanitizeForCSV prevents CSV injection by prefixing dangerous
// characters. This is a SECURITY feature to prevent formula execution
// in spreadsheets.
func sanitizeForCSV(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + s
	}
	return s
}
