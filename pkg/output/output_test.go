package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	f, err := ParseFormat("docx", ReportFormats())
	require.NoError(t, err)
	assert.Equal(t, FormatDocx, f)

	f, err = ParseFormat("  PDF ", ReportFormats())
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, f)
}

func TestParseFormatRejectsUnknown(t *testing.T) {
	t.Parallel()

	_, err := ParseFormat("html", ReportFormats())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "docx, pdf")

	// Formats are scoped per subcommand: docx is not an export format.
	_, err = ParseFormat("docx", ExportFormats())
	require.Error(t, err)
}
