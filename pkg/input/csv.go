// Package input loads scan-export CSV files and normalizes their rows
// into findings. Severity filtering and the HIGH→CRITICAL collapse
// happen here, at load time; everything downstream sees normalized
// data only.
package input

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nessdoc/nessdoc/pkg/finding"
)

// Sentinel errors for input failure modes.
// Callers should use errors.Is() to check for these.
var (
	// ErrMissingColumn indicates a required header is absent from
	// the CSV header row.
	ErrMissingColumn = errors.New("input: missing required column")

	// ErrEmptyInput indicates the file contained no header row.
	ErrEmptyInput = errors.New("input: empty input file")
)

// Required header names, case-sensitive, matching the Nessus CSV
// export. Extra columns are ignored; column positions are free.
var requiredColumns = []string{"Host", "Risk", "Name", "Description", "Solution"}

// LoadFindings reads the CSV file at path and returns normalized
// findings in row order. Rows whose Risk cell is empty or "none"
// (any casing) are dropped; "HIGH" severities collapse into CRITICAL.
func LoadFindings(path string) ([]finding.Finding, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: open %s: %w", path, err)
	}
	defer f.Close()

	findings, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("input: parse %s: %w", path, err)
	}
	return findings, nil
}

// Load reads CSV rows from r and returns normalized findings.
// Short rows are tolerated: missing trailing cells read as empty
// strings. Only severity is validated; malformed rows (missing host
// or title) pass through and render as blank text.
func Load(r io.Reader) ([]finding.Finding, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, err
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		if _, dup := cols[name]; !dup {
			cols[name] = i
		}
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	cell := func(row []string, name string) string {
		i := cols[name]
		if i >= len(row) {
			return ""
		}
		return row[i]
	}

	var findings []finding.Finding
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		sev, keep := finding.ParseSeverity(cell(row, "Risk"))
		if !keep {
			continue
		}
		findings = append(findings, finding.Finding{
			Host:        cell(row, "Host"),
			Severity:    sev,
			Title:       cell(row, "Name"),
			Description: cell(row, "Description"),
			Solution:    cell(row, "Solution"),
		})
	}
	return findings, nil
}
