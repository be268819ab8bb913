package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nessdoc/nessdoc/pkg/output/writers"
	"github.com/nessdoc/nessdoc/pkg/report"
)

func generateFlags() (*flag.FlagSet, *string, *string) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	tpl := fs.String("template", "", "")
	out := fs.String("output", "", "")
	return fs, tpl, out
}

func TestParseInputFlagsBeforeInput(t *testing.T) {
	fs, tpl, out := generateFlags()

	in := parseInput(fs, []string{"-template", "corp.docx", "-output", "q3.docx", "scan.csv"})

	require.Equal(t, "scan.csv", in)
	require.Equal(t, "corp.docx", *tpl)
	require.Equal(t, "q3.docx", *out)
}

// Flags given after the input file must be honored, not silently
// dropped in favor of the defaults.
func TestParseInputFlagsAfterInput(t *testing.T) {
	fs, tpl, out := generateFlags()

	in := parseInput(fs, []string{"scan.csv", "--template", "corp.docx", "--output", "q3.docx"})

	require.Equal(t, "scan.csv", in)
	require.Equal(t, "corp.docx", *tpl)
	require.Equal(t, "q3.docx", *out)
}

func TestParseInputFlagsBothSides(t *testing.T) {
	fs, tpl, out := generateFlags()

	in := parseInput(fs, []string{"-template", "corp.docx", "scan.csv", "-output", "q3.docx"})

	require.Equal(t, "scan.csv", in)
	require.Equal(t, "corp.docx", *tpl)
	require.Equal(t, "q3.docx", *out)
}

func TestParseInputNoArguments(t *testing.T) {
	fs, _, _ := generateFlags()
	require.Equal(t, "", parseInput(fs, nil))
}

func TestSaveReportClosesOutputFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.json"))
	require.NoError(t, err)

	w := writers.NewJSONWriter(f, writers.JSONOptions{})
	require.NoError(t, w.Write(report.Build(nil)))
	require.NoError(t, saveReport(w, f))

	// Already closed by saveReport.
	require.Error(t, f.Close())
}

func TestSaveReportSurfacesWriteError(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.json"))
	require.NoError(t, err)

	w := writers.NewJSONWriter(f, writers.JSONOptions{})
	require.NoError(t, w.Write(report.Build(nil)))
	require.NoError(t, f.Close())

	require.Error(t, saveReport(w, f))
}
