package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nessdoc/nessdoc/pkg/finding"
)

func mk(host string, sev finding.Severity, title string) finding.Finding {
	return finding.Finding{Host: host, Severity: sev, Title: title}
}

func TestBuildGroupsByHostThenSeverity(t *testing.T) {
	t.Parallel()

	// The spec scenario: h1 gets CRITICAL (from High) and LOW,
	// h2 gets MEDIUM; h1 renders before h2.
	r := Build([]finding.Finding{
		mk("h1", finding.Critical, "A"),
		mk("h1", finding.Low, "B"),
		mk("h2", finding.Medium, "C"),
	})

	require.Len(t, r.Hosts, 2)
	assert.Equal(t, "h1", r.Hosts[0].Host)
	assert.Equal(t, "h2", r.Hosts[1].Host)

	h1 := r.Hosts[0]
	require.Len(t, h1.BySeverity[finding.Critical], 1)
	require.Len(t, h1.BySeverity[finding.Low], 1)
	assert.Equal(t, "A", h1.BySeverity[finding.Critical][0].Title)
	assert.Equal(t, "B", h1.BySeverity[finding.Low][0].Title)
	assert.Empty(t, h1.BySeverity[finding.Medium])

	h2 := r.Hosts[1]
	require.Len(t, h2.BySeverity[finding.Medium], 1)
	assert.Equal(t, "C", h2.BySeverity[finding.Medium][0].Title)
}

func TestBuildHostsKeepFirstSeenOrder(t *testing.T) {
	t.Parallel()

	r := Build([]finding.Finding{
		mk("zeta", finding.Low, "A"),
		mk("alpha", finding.Low, "B"),
		mk("zeta", finding.Low, "C"),
		mk("mid", finding.Low, "D"),
	})

	var hosts []string
	for _, hg := range r.Hosts {
		hosts = append(hosts, hg.Host)
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, hosts)
}

func TestBuildIsStableWithinBucket(t *testing.T) {
	t.Parallel()

	r := Build([]finding.Finding{
		mk("h1", finding.Critical, "first"),
		mk("h1", finding.Medium, "other"),
		mk("h1", finding.Critical, "second"),
		mk("h1", finding.Critical, "third"),
	})

	crit := r.Hosts[0].BySeverity[finding.Critical]
	require.Len(t, crit, 3)
	assert.Equal(t, "first", crit[0].Title)
	assert.Equal(t, "second", crit[1].Title)
	assert.Equal(t, "third", crit[2].Title)
}

func TestCountsSumToScopeTotal(t *testing.T) {
	t.Parallel()

	findings := []finding.Finding{
		mk("h1", finding.Critical, "A"),
		mk("h1", finding.Critical, "B"),
		mk("h1", finding.Medium, "C"),
		mk("h2", finding.Low, "D"),
	}
	r := Build(findings)

	global := r.Counts()
	sum := 0
	for _, sev := range finding.Ordered() {
		sum += global[sev]
	}
	assert.Equal(t, len(findings), sum, "global counts must sum to finding total")

	for _, hg := range r.Hosts {
		hostSum := 0
		for _, n := range hg.Counts() {
			hostSum += n
		}
		assert.Equal(t, hg.Total, hostSum, "host %s counts must sum to host total", hg.Host)
	}
}

func TestCountsZeroFillMissingCategories(t *testing.T) {
	t.Parallel()

	counts := CountBySeverity([]finding.Finding{mk("h1", finding.Low, "A")})
	assert.Equal(t, 0, counts[finding.Critical])
	assert.Equal(t, 0, counts[finding.Medium])
	assert.Equal(t, 1, counts[finding.Low])
}

func TestUnknownSeverityExcludedFromCounts(t *testing.T) {
	t.Parallel()

	r := Build([]finding.Finding{
		mk("h1", finding.Low, "A"),
		mk("h1", "INFO", "B"),
	})

	counts := r.Counts()
	assert.Equal(t, 1, counts[finding.Low])
	_, present := counts["INFO"]
	assert.False(t, present, "unknown severities stay out of chart counts")
	assert.Equal(t, 2, r.Hosts[0].Total, "but still count toward the host total")
}

func TestHostGroupFindingsFollowPriorityOrder(t *testing.T) {
	t.Parallel()

	r := Build([]finding.Finding{
		mk("h1", finding.Low, "low-1"),
		mk("h1", finding.Critical, "crit-1"),
		mk("h1", finding.Medium, "med-1"),
		mk("h1", finding.Critical, "crit-2"),
	})

	var titles []string
	for _, f := range r.Hosts[0].Findings() {
		titles = append(titles, f.Title)
	}
	assert.Equal(t, []string{"crit-1", "crit-2", "med-1", "low-1"}, titles)
}

func TestBuildEmptyInput(t *testing.T) {
	t.Parallel()

	r := Build(nil)
	assert.Zero(t, r.Total())
	assert.Empty(t, r.Hosts)

	counts := r.Counts()
	for _, sev := range finding.Ordered() {
		assert.Equal(t, 0, counts[sev])
	}
}
