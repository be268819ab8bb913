package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nessdoc/nessdoc/pkg/finding"
	"github.com/nessdoc/nessdoc/pkg/report"
)

// FormatSummary renders the per-host severity count table shown by
// the stats subcommand and after report generation. When color is
// false the table is plain text, suitable for piped output.
func FormatSummary(r *report.Report, color bool) string {
	paint := func(style lipgloss.Style, s string) string {
		if !color {
			return s
		}
		return style.Render(s)
	}

	var b strings.Builder

	hostWidth := len("HOST")
	for _, hg := range r.Hosts {
		if len(hg.Host) > hostWidth {
			hostWidth = len(hg.Host)
		}
	}

	header := fmt.Sprintf("%-*s  %9s  %9s  %9s  %7s", hostWidth, "HOST", "CRITICAL", "MEDIUM", "LOW", "TOTAL")
	b.WriteString(paint(HeaderStyle, header))
	b.WriteByte('\n')

	for _, hg := range r.Hosts {
		counts := hg.Counts()
		b.WriteString(fmt.Sprintf("%-*s", hostWidth, hg.Host))
		for _, sev := range finding.Ordered() {
			cell := fmt.Sprintf("%9d", counts[sev])
			if counts[sev] > 0 {
				cell = paint(SeverityStyle(sev), cell)
			}
			b.WriteString("  " + cell)
		}
		b.WriteString(fmt.Sprintf("  %7d", hg.Total))
		b.WriteByte('\n')
	}

	global := r.Counts()
	b.WriteString(fmt.Sprintf("%-*s", hostWidth, "TOTAL"))
	for _, sev := range finding.Ordered() {
		b.WriteString("  " + paint(ValueStyle, fmt.Sprintf("%9d", global[sev])))
	}
	b.WriteString(fmt.Sprintf("  %7d", r.Total()))
	b.WriteByte('\n')

	return b.String()
}
