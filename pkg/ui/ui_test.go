package ui

import (
	"strings"
	"testing"

	"github.com/nessdoc/nessdoc/pkg/finding"
	"github.com/nessdoc/nessdoc/pkg/report"
)

func TestFormatSummaryPlain(t *testing.T) {
	t.Parallel()

	r := report.Build([]finding.Finding{
		{Host: "192.168.1.10", Severity: finding.Critical, Title: "A"},
		{Host: "192.168.1.10", Severity: finding.Low, Title: "B"},
		{Host: "h2", Severity: finding.Medium, Title: "C"},
	})

	out := FormatSummary(r, false)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want header + 2 hosts + total", len(lines))
	}

	if !strings.Contains(lines[0], "HOST") || !strings.Contains(lines[0], "CRITICAL") {
		t.Errorf("header line missing columns: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "192.168.1.10") {
		t.Errorf("first host row should be first-seen host, got %q", lines[1])
	}
	if !strings.HasPrefix(lines[3], "TOTAL") {
		t.Errorf("last line should be the totals row, got %q", lines[3])
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("plain output must not contain ANSI escapes")
	}
}

func TestFormatSummaryTotalsRow(t *testing.T) {
	t.Parallel()

	r := report.Build([]finding.Finding{
		{Host: "h1", Severity: finding.Critical, Title: "A"},
		{Host: "h2", Severity: finding.Critical, Title: "B"},
	})

	out := FormatSummary(r, false)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	total := lines[len(lines)-1]
	if !strings.Contains(total, "2") {
		t.Errorf("totals row should aggregate across hosts: %q", total)
	}
}
