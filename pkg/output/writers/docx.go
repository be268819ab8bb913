// Package writers provides the report output writers: DOCX (primary),
// PDF, CSV, and JSON.
package writers

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nessdoc/nessdoc/pkg/chart"
	"github.com/nessdoc/nessdoc/pkg/docx"
	"github.com/nessdoc/nessdoc/pkg/finding"
	"github.com/nessdoc/nessdoc/pkg/output"
	"github.com/nessdoc/nessdoc/pkg/report"
)

// Compile-time interface check.
var _ output.Writer = (*DocxWriter)(nil)

// Remediation cell background.
const solutionFill = "9ACD32"

// Body font, matching the report template.
const reportFont = "Aptos"

// DocxConfig configures the DOCX report writer.
type DocxConfig struct {
	// OutputPath is where Close saves the document.
	OutputPath string

	// ExecutiveSummary replaces the placeholder summary text when
	// non-empty.
	ExecutiveSummary string
}

// DocxWriter renders the report into an opened template document.
// Sections are numbered 1 (statistics), 2 (executive summary), and
// 3 (vulnerabilities), with hosts as 3.N in first-seen order and
// severities as 3.N.i at their fixed index: CRITICAL=1, MEDIUM=2,
// LOW=3, whether or not earlier severities are present for the host.
type DocxWriter struct {
	doc   *docx.Document
	cfg   DocxConfig
	title cases.Caser
}

// NewDocxWriter returns a writer that renders into doc and saves to
// cfg.OutputPath on Close. The document should be a freshly opened
// template.
func NewDocxWriter(doc *docx.Document, cfg DocxConfig) *DocxWriter {
	return &DocxWriter{
		doc:   doc,
		cfg:   cfg,
		title: cases.Title(language.English),
	}
}

// Write renders the full report after the template content.
func (dw *DocxWriter) Write(r *report.Report) error {
	doc := dw.doc
	doc.AddPageBreak()

	doc.AddHeading("1. Statistics", 1)
	if err := dw.embedChart("Vulnerabilities by Severity", r.Counts()); err != nil {
		return fmt.Errorf("writers: statistics chart: %w", err)
	}
	doc.AddParagraph("\n", docx.RunStyle{})
	doc.AddPageBreak()

	doc.AddHeading("2. Executive Summary", 1)
	summary := dw.cfg.ExecutiveSummary
	if summary == "" {
		summary = "Add executive summary here..."
	}
	doc.AddParagraph(summary, docx.RunStyle{})
	doc.AddPageBreak()

	doc.AddHeading("3. Vulnerabilities and Remediations", 1)

	for n, hg := range r.Hosts {
		hostNum := n + 1
		doc.AddHeading(fmt.Sprintf("3.%d %s", hostNum, hg.Host), 2)

		chartTitle := fmt.Sprintf("%s - Vulnerabilities by Severity", hg.Host)
		if err := dw.embedChart(chartTitle, hg.Counts()); err != nil {
			return fmt.Errorf("writers: host %s chart: %w", hg.Host, err)
		}

		for i, sev := range finding.Ordered() {
			vulns := hg.BySeverity[sev]
			if len(vulns) == 0 {
				continue
			}
			label := dw.title.String(strings.ToLower(sev.String()))
			doc.AddHeading(fmt.Sprintf("3.%d.%d %s Vulnerabilities", hostNum, i+1, label), 3)

			for j, v := range vulns {
				doc.AddHeading(fmt.Sprintf("3.%d.%d.%d %s", hostNum, i+1, j+1, v.Title), 4)
				dw.addFindingBlock(v)
				doc.AddPageBreak()
			}
		}
	}
	return nil
}

// addFindingBlock emits the borderless 5-row block for one finding:
// shaded title, risk label, description, impact placeholder, and the
// remediation cell with its fixed accent background.
func (dw *DocxWriter) addFindingBlock(v finding.Finding) {
	tbl := dw.doc.AddTable(5, 1)

	title := tbl.Cell(0, 0)
	title.SetShading(v.Severity.Hex())
	title.AddParagraph(v.Title, docx.RunStyle{Bold: true, Size: 16, Color: "FFFFFF", Font: reportFont})

	tbl.Cell(1, 0).AddParagraph(fmt.Sprintf("Risk: %s", v.Severity), docx.RunStyle{Bold: true, Font: reportFont})

	desc := tbl.Cell(2, 0)
	desc.AddParagraph("Description:", docx.RunStyle{Bold: true, Font: reportFont})
	desc.AddParagraph(v.Description, docx.RunStyle{})

	impact := tbl.Cell(3, 0)
	impact.AddParagraph("Impact:", docx.RunStyle{Bold: true, Font: reportFont})
	impact.AddParagraph("Impact information not available.", docx.RunStyle{})

	sol := tbl.Cell(4, 0)
	sol.SetShading(solutionFill)
	sol.AddParagraph("Remediation:", docx.RunStyle{Bold: true, Font: reportFont})
	sol.AddParagraph(v.Solution, docx.RunStyle{})
}

// embedChart renders counts to a transient PNG, embeds it, and
// removes the file whether or not embedding succeeded.
func (dw *DocxWriter) embedChart(title string, counts map[finding.Severity]int) error {
	path, err := chart.New(title, counts).WriteTemp()
	if err != nil {
		return err
	}
	defer os.Remove(path)
	return dw.doc.AddImageFile(path)
}

// Close saves the rendered document to the configured output path.
func (dw *DocxWriter) Close() error {
	return dw.doc.SaveTo(dw.cfg.OutputPath)
}
