package writers

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	gofpdf "github.com/go-pdf/fpdf"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nessdoc/nessdoc/pkg/chart"
	"github.com/nessdoc/nessdoc/pkg/finding"
	"github.com/nessdoc/nessdoc/pkg/output"
	"github.com/nessdoc/nessdoc/pkg/report"
)

// Compile-time interface check.
var _ output.Writer = (*PDFWriter)(nil)

// PDFConfig configures the PDF report writer.
type PDFConfig struct {
	// Title is the report title (default: "Vulnerability Report").
	Title string

	// CompanyName appears under the title when set.
	CompanyName string

	// ExecutiveSummary replaces the placeholder summary text when
	// non-empty.
	ExecutiveSummary string
}

// PDFWriter renders the report as a PDF with the same section
// structure as the DOCX writer: statistics with a severity chart,
// executive summary, then per-host severity blocks.
type PDFWriter struct {
	w      io.Writer
	cfg    PDFConfig
	pdf    *gofpdf.Fpdf
	title  cases.Caser
	charts int
}

// NewPDFWriter creates a PDF writer streaming the finished document
// to w on Close.
func NewPDFWriter(w io.Writer, cfg PDFConfig) *PDFWriter {
	if cfg.Title == "" {
		cfg.Title = "Vulnerability Report"
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(cfg.Title, true)
	pdf.SetAutoPageBreak(true, 15)
	return &PDFWriter{w: w, cfg: cfg, pdf: pdf, title: cases.Title(language.English)}
}

// Write renders the full report.
func (pw *PDFWriter) Write(r *report.Report) error {
	pdf := pw.pdf

	// Cover.
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(30, 41, 59)
	pdf.Ln(60)
	pdf.CellFormat(0, 12, pw.cfg.Title, "", 1, "C", false, 0, "")
	if pw.cfg.CompanyName != "" {
		pdf.SetFont("Helvetica", "", 14)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(0, 10, pw.cfg.CompanyName, "", 1, "C", false, 0, "")
	}
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 8, fmt.Sprintf("%d findings across %d hosts", r.Total(), len(r.Hosts)), "", 1, "C", false, 0, "")

	// 1. Statistics.
	pdf.AddPage()
	pw.addSectionHeader("1. Statistics")
	pw.addCountsTable(r.Counts(), r.Total())
	if err := pw.embedChart("Vulnerabilities by Severity", r.Counts()); err != nil {
		return fmt.Errorf("writers: statistics chart: %w", err)
	}

	// 2. Executive Summary.
	pdf.AddPage()
	pw.addSectionHeader("2. Executive Summary")
	summary := pw.cfg.ExecutiveSummary
	if summary == "" {
		summary = "Add executive summary here..."
	}
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(60, 60, 60)
	pdf.MultiCell(0, 6, summary, "", "L", false)

	// 3. Vulnerabilities and Remediations.
	pdf.AddPage()
	pw.addSectionHeader("3. Vulnerabilities and Remediations")

	for n, hg := range r.Hosts {
		hostNum := n + 1
		if n > 0 {
			pdf.AddPage()
		}
		pdf.SetFont("Helvetica", "B", 14)
		pdf.SetTextColor(30, 41, 59)
		pdf.CellFormat(0, 10, fmt.Sprintf("3.%d %s", hostNum, hg.Host), "", 1, "L", false, 0, "")

		chartTitle := fmt.Sprintf("%s - Vulnerabilities by Severity", hg.Host)
		if err := pw.embedChart(chartTitle, hg.Counts()); err != nil {
			return fmt.Errorf("writers: host %s chart: %w", hg.Host, err)
		}

		for i, sev := range finding.Ordered() {
			vulns := hg.BySeverity[sev]
			if len(vulns) == 0 {
				continue
			}
			label := pw.title.String(strings.ToLower(sev.String()))
			pdf.SetFont("Helvetica", "B", 12)
			pdf.SetTextColor(30, 41, 59)
			pdf.CellFormat(0, 9, fmt.Sprintf("3.%d.%d %s Vulnerabilities", hostNum, i+1, label), "", 1, "L", false, 0, "")

			for j, v := range vulns {
				pw.addFindingBlock(hostNum, i+1, j+1, v)
			}
		}
	}
	return nil
}

// addSectionHeader renders a top-level numbered section heading.
func (pw *PDFWriter) addSectionHeader(text string) {
	pdf := pw.pdf
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(30, 41, 59)
	pdf.CellFormat(0, 10, text, "", 1, "L", false, 0, "")
	pdf.SetDrawColor(30, 41, 59)
	pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
	pdf.Ln(4)
}

// addCountsTable renders the global severity count table.
func (pw *PDFWriter) addCountsTable(counts map[finding.Severity]int, total int) {
	pdf := pw.pdf

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(30, 41, 59)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(60, 8, "Severity", "1", 0, "L", true, 0, "")
	pdf.CellFormat(30, 8, "Count", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, sev := range finding.Ordered() {
		cr, cg, cb := sev.RGB()
		pdf.SetTextColor(int(cr), int(cg), int(cb))
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(60, 7, sev.String(), "1", 0, "L", false, 0, "")
		pdf.SetTextColor(60, 60, 60)
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(30, 7, fmt.Sprintf("%d", counts[sev]), "1", 1, "C", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(60, 60, 60)
	pdf.CellFormat(60, 7, "Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 7, fmt.Sprintf("%d", total), "1", 1, "C", false, 0, "")
	pdf.Ln(5)
}

// addFindingBlock renders one finding with the severity-colored title
// bar and the accented remediation cell.
func (pw *PDFWriter) addFindingBlock(hostNum, sevNum, vulnNum int, v finding.Finding) {
	pdf := pw.pdf

	cr, cg, cb := v.Severity.RGB()
	pdf.SetFillColor(int(cr), int(cg), int(cb))
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.MultiCell(0, 8, fmt.Sprintf("3.%d.%d.%d %s", hostNum, sevNum, vulnNum, v.Title), "", "L", true)

	pdf.SetTextColor(60, 60, 60)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 7, fmt.Sprintf("Risk: %s", v.Severity), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, "Description:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, v.Description, "", "L", false)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, "Impact:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, "Impact information not available.", "", "L", false)

	pdf.SetFillColor(0x9A, 0xCD, 0x32)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, "Remediation:", "", 1, "L", true, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, v.Solution, "", "L", false)
	pdf.Ln(6)
}

// embedChart renders counts to an in-memory PNG and places it inline.
func (pw *PDFWriter) embedChart(title string, counts map[finding.Severity]int) error {
	var buf bytes.Buffer
	if err := chart.New(title, counts).Render(&buf); err != nil {
		return err
	}
	pw.charts++
	name := fmt.Sprintf("chart-%d", pw.charts)
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pw.pdf.RegisterImageOptionsReader(name, opts, &buf)
	// 512x320 px at 96 DPI is roughly 135x84 mm; centered on A4.
	pw.pdf.ImageOptions(name, 37, 0, 135, 84, true, opts, 0, "")
	if pw.pdf.Err() {
		return fmt.Errorf("writers: embed chart %q: %w", title, pw.pdf.Error())
	}
	pw.pdf.Ln(4)
	return nil
}

// Close writes the finished PDF to the underlying writer.
func (pw *PDFWriter) Close() error {
	return pw.pdf.Output(pw.w)
}
