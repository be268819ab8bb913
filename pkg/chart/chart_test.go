package chart

import (
	"bytes"
	"image/png"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nessdoc/nessdoc/pkg/finding"
)

func TestRenderProducesPNG(t *testing.T) {
	t.Parallel()

	c := New("Vulnerabilities by Severity", map[finding.Severity]int{
		finding.Critical: 4,
		finding.Medium:   2,
		finding.Low:      1,
	})

	var buf bytes.Buffer
	require.NoError(t, c.Render(&buf))

	cfg, err := png.DecodeConfig(&buf)
	require.NoError(t, err, "output must decode as PNG")
	assert.Equal(t, defaultWidth, cfg.Width)
	assert.Equal(t, defaultHeight, cfg.Height)
}

func TestRenderAllZeroCounts(t *testing.T) {
	t.Parallel()

	// A host can have findings only outside the fixed category set;
	// its chart still renders with three zero bars.
	c := New("empty-host - Vulnerabilities by Severity", map[finding.Severity]int{})

	var buf bytes.Buffer
	require.NoError(t, c.Render(&buf))

	_, err := png.DecodeConfig(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
}

func TestRenderCustomDimensions(t *testing.T) {
	t.Parallel()

	c := New("t", map[finding.Severity]int{finding.Low: 1})
	c.Width = 640
	c.Height = 400

	var buf bytes.Buffer
	require.NoError(t, c.Render(&buf))

	cfg, err := png.DecodeConfig(&buf)
	require.NoError(t, err)
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 400, cfg.Height)
}

func TestWriteTempCreatesAndLeavesFile(t *testing.T) {
	t.Parallel()

	c := New("t", map[finding.Severity]int{finding.Critical: 1})
	path, err := c.WriteTemp()
	require.NoError(t, err)
	defer os.Remove(path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = png.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err, "temp file must hold a decodable PNG")
}

func TestRenderDeterministicForSameCounts(t *testing.T) {
	t.Parallel()

	counts := map[finding.Severity]int{finding.Critical: 2, finding.Low: 5}

	var a, b bytes.Buffer
	require.NoError(t, New("t", counts).Render(&a))
	require.NoError(t, New("t", counts).Render(&b))
	assert.Equal(t, a.Bytes(), b.Bytes(), "same counts must render identical chart data")
}
