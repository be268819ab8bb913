package writers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/nessdoc/nessdoc/pkg/finding"
	"github.com/nessdoc/nessdoc/pkg/output"
	"github.com/nessdoc/nessdoc/pkg/report"
)

// Compile-time interface check.
var _ output.Writer = (*JSONWriter)(nil)

// JSONOptions configures the JSON export writer.
type JSONOptions struct {
	// Pretty enables indented output.
	Pretty bool

	// IndentSize sets the number of spaces for indentation (default 2).
	IndentSize int
}

// JSONWriter exports the grouped report as a single JSON document:
// global counts plus hosts in first-seen order, each with its
// severity counts and findings in render order.
type JSONWriter struct {
	w    io.Writer
	opts JSONOptions
	doc  *jsonReport
}

type jsonReport struct {
	Total  int                      `json:"total"`
	Counts map[finding.Severity]int `json:"counts"`
	Hosts  []jsonHost               `json:"hosts"`
}

type jsonHost struct {
	Host     string                   `json:"host"`
	Total    int                      `json:"total"`
	Counts   map[finding.Severity]int `json:"counts"`
	Findings []finding.Finding        `json:"findings"`
}

// NewJSONWriter creates a JSON export writer on w. The document is
// buffered and written on Close.
func NewJSONWriter(w io.Writer, opts JSONOptions) *JSONWriter {
	if opts.IndentSize == 0 {
		opts.IndentSize = 2
	}
	return &JSONWriter{w: w, opts: opts}
}

// Write buffers the report for output on Close.
func (jw *JSONWriter) Write(r *report.Report) error {
	doc := &jsonReport{
		Total:  r.Total(),
		Counts: r.Counts(),
		Hosts:  make([]jsonHost, 0, len(r.Hosts)),
	}
	for _, hg := range r.Hosts {
		doc.Hosts = append(doc.Hosts, jsonHost{
			Host:     hg.Host,
			Total:    hg.Total,
			Counts:   hg.Counts(),
			Findings: hg.Findings(),
		})
	}
	jw.doc = doc
	return nil
}

// Close marshals and writes the buffered document.
func (jw *JSONWriter) Close() error {
	if jw.doc == nil {
		return nil
	}
	enc := json.NewEncoder(jw.w)
	if jw.opts.Pretty {
		indent := ""
		for i := 0; i < jw.opts.IndentSize; i++ {
			indent += " "
		}
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(jw.doc); err != nil {
		return fmt.Errorf("writers: encode json: %w", err)
	}
	return nil
}
