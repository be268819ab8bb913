package report

import "github.com/nessdoc/nessdoc/pkg/finding"

// HostGroup holds one host's findings bucketed by severity.
type HostGroup struct {
	// Host is the scanned asset identifier.
	Host string

	// BySeverity maps severity to findings in insertion order.
	BySeverity map[finding.Severity][]finding.Finding

	// Total is the number of findings for this host, including any
	// severities outside the fixed category set.
	Total int
}

// Counts returns this host's finding counts over the fixed category
// set. Missing categories count as zero.
func (hg *HostGroup) Counts() map[finding.Severity]int {
	counts := make(map[finding.Severity]int, 3)
	for _, sev := range finding.Ordered() {
		counts[sev] = len(hg.BySeverity[sev])
	}
	return counts
}

// Findings returns this host's findings in severity priority order,
// insertion order within each severity. Severities outside the fixed
// set are omitted, matching the rendered report.
func (hg *HostGroup) Findings() []finding.Finding {
	var out []finding.Finding
	for _, sev := range finding.Ordered() {
		out = append(out, hg.BySeverity[sev]...)
	}
	return out
}

// Report is the grouped view of one scan export: hosts in first-seen
// order, each with per-severity buckets.
type Report struct {
	// Findings holds every normalized row in original order.
	Findings []finding.Finding

	// Hosts holds one group per host, in first-seen order.
	Hosts []*HostGroup
}

// Build groups normalized findings by host, then by severity.
// One pass; stable within each bucket.
func Build(findings []finding.Finding) *Report {
	r := &Report{Findings: findings}
	index := make(map[string]*HostGroup)
	for _, f := range findings {
		hg, ok := index[f.Host]
		if !ok {
			hg = &HostGroup{
				Host:       f.Host,
				BySeverity: make(map[finding.Severity][]finding.Finding),
			}
			index[f.Host] = hg
			r.Hosts = append(r.Hosts, hg)
		}
		hg.BySeverity[f.Severity] = append(hg.BySeverity[f.Severity], f)
		hg.Total++
	}
	return r
}

// Counts returns global finding counts over the fixed category set.
// Missing categories count as zero.
func (r *Report) Counts() map[finding.Severity]int {
	return CountBySeverity(r.Findings)
}

// Total returns the number of findings after normalization.
func (r *Report) Total() int {
	return len(r.Findings)
}

// CountBySeverity counts findings over the fixed category set.
// Severities outside the set are not counted, matching chart scope.
func CountBySeverity(findings []finding.Finding) map[finding.Severity]int {
	counts := make(map[finding.Severity]int, 3)
	for _, sev := range finding.Ordered() {
		counts[sev] = 0
	}
	for _, f := range findings {
		if f.Severity.Known() {
			counts[f.Severity]++
		}
	}
	return counts
}
