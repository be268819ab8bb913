package input

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nessdoc/nessdoc/pkg/finding"
)

const sampleCSV = `Plugin ID,Host,Risk,Name,Description,Solution
10001,192.168.1.10,High,Apache RCE,Remote code execution in mod_foo.,Upgrade Apache.
10002,192.168.1.10,Low,Banner Disclosure,Server banner leaks version.,Hide the banner.
10003,192.168.1.10,None,Ping,Host responds to ICMP.,n/a
10004,192.168.1.20,Medium,Weak Ciphers,TLS accepts weak cipher suites.,Restrict cipher list.
10005,192.168.1.20,,Open Port,Port 8080 open.,n/a
`

func TestLoadNormalizesAndFilters(t *testing.T) {
	t.Parallel()

	findings, err := Load(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(findings) != 3 {
		t.Fatalf("got %d findings, want 3 (None and empty Risk rows dropped)", len(findings))
	}

	want := []finding.Finding{
		{Host: "192.168.1.10", Severity: finding.Critical, Title: "Apache RCE",
			Description: "Remote code execution in mod_foo.", Solution: "Upgrade Apache."},
		{Host: "192.168.1.10", Severity: finding.Low, Title: "Banner Disclosure",
			Description: "Server banner leaks version.", Solution: "Hide the banner."},
		{Host: "192.168.1.20", Severity: finding.Medium, Title: "Weak Ciphers",
			Description: "TLS accepts weak cipher suites.", Solution: "Restrict cipher list."},
	}
	for i, w := range want {
		if findings[i] != w {
			t.Errorf("finding %d = %+v, want %+v", i, findings[i], w)
		}
	}
}

func TestLoadHighCollapsesToCritical(t *testing.T) {
	t.Parallel()

	in := "Host,Risk,Name,Description,Solution\nh1,high,A,d,s\nh1,High,B,d,s\nh1,HIGH,C,d,s\n"
	findings, err := Load(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for _, f := range findings {
		if f.Severity != finding.Critical {
			t.Errorf("finding %q severity = %s, want CRITICAL", f.Title, f.Severity)
		}
	}
}

func TestLoadMissingColumn(t *testing.T) {
	t.Parallel()

	in := "Host,Risk,Name,Description\nh1,High,A,d\n"
	_, err := Load(strings.NewReader(in))
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("err = %v, want ErrMissingColumn", err)
	}
	if !strings.Contains(err.Error(), "Solution") {
		t.Errorf("error %q does not name the missing column", err)
	}
}

func TestLoadHeaderIsCaseSensitive(t *testing.T) {
	t.Parallel()

	in := "host,risk,name,description,solution\nh1,High,A,d,s\n"
	_, err := Load(strings.NewReader(in))
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("err = %v, want ErrMissingColumn for lowercase headers", err)
	}
}

func TestLoadEmptyInput(t *testing.T) {
	t.Parallel()

	_, err := Load(strings.NewReader(""))
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("err = %v, want ErrEmptyInput", err)
	}
}

func TestLoadShortRows(t *testing.T) {
	t.Parallel()

	in := "Host,Risk,Name,Description,Solution\nh1,High,A\n"
	findings, err := Load(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(findings) != 1 {
		t.Fatalf("got %d findings, want 1", len(findings))
	}
	f := findings[0]
	if f.Description != "" || f.Solution != "" {
		t.Errorf("missing cells should load as empty strings, got %+v", f)
	}
}

func TestLoadFindingsMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadFindings(filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want wrapped os.ErrNotExist", err)
	}
}

func TestLoadFindingsFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "scan.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	findings, err := LoadFindings(path)
	if err != nil {
		t.Fatalf("LoadFindings: %v", err)
	}
	if len(findings) != 3 {
		t.Fatalf("got %d findings, want 3", len(findings))
	}
}
