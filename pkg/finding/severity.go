package finding

import "strings"

// Severity is a normalized report severity. Values are uppercase
// strings matching the scan-export convention ("CRITICAL", "MEDIUM",
// "LOW"). Rows arrive with arbitrary casing and with "High" as a
// separate level; ParseSeverity folds both away.
type Severity string

const (
	// Critical covers both "critical" and "high" export rows.
	Critical Severity = "CRITICAL"

	// Medium represents moderate impact findings.
	Medium Severity = "MEDIUM"

	// Low represents limited impact findings.
	Low Severity = "LOW"
)

// ParseSeverity normalizes a raw severity cell from a scan export.
// The second return is false for rows the report excludes entirely:
// empty cells and "none" (any casing).
//
// "HIGH" collapses into Critical. Any other non-empty value is
// uppercased and passed through; such values survive loading but are
// not part of the fixed category set (see Known) and are skipped by
// charts and severity sections.
func ParseSeverity(raw string) (Severity, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.EqualFold(s, "none") {
		return "", false
	}
	up := strings.ToUpper(s)
	if up == "HIGH" {
		return Critical, true
	}
	return Severity(up), true
}

// Known reports whether s is one of the fixed report categories.
func (s Severity) Known() bool {
	switch s {
	case Critical, Medium, Low:
		return true
	}
	return false
}

// Score returns a numeric score for sorting and comparison.
// Critical=3, Medium=2, Low=1, anything else 0.
func (s Severity) Score() int {
	switch s {
	case Critical:
		return 3
	case Medium:
		return 2
	case Low:
		return 1
	default:
		return 0
	}
}

// String returns the severity as a string.
func (s Severity) String() string {
	return string(s)
}

// Ordered returns the fixed category set in presentation priority.
// Report sections, chart categories, and heading numbering all follow
// this order regardless of input order.
func Ordered() []Severity {
	return []Severity{Critical, Medium, Low}
}

// Hex returns the block background color for document rendering.
// Unrecognized severities get a neutral gray.
func (s Severity) Hex() string {
	switch s {
	case Critical:
		return "FF0000"
	case Medium:
		return "FFA500"
	case Low:
		return "FFFF00"
	default:
		return "D3D3D3"
	}
}

// RGB returns the chart bar color as 0-255 components.
func (s Severity) RGB() (r, g, b uint8) {
	switch s {
	case Critical:
		return 0xFF, 0x00, 0x00
	case Medium:
		return 0xFF, 0xA5, 0x00
	case Low:
		return 0xFF, 0xFF, 0x00
	default:
		return 0xD3, 0xD3, 0xD3
	}
}
