package utils

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatXDp(t *testing.T) {
	assert.Equal(t, "12.5", FormatXDp(12.5012, 2))
	assert.Equal(t, "3", FormatXDp(3.0, 2))
	assert.Equal(t, "0", FormatXDp(-0.0001, 2))
	assert.Equal(t, "0", FormatXDp(math.NaN(), 2))
	assert.Equal(t, "-7.25", FormatXDp(-7.25, 2))
}

func TestNextAvailableFilename(t *testing.T) {
	dir := t.TempDir()

	first := NextAvailableFilename(dir, "linechart", ".svg")
	assert.Equal(t, filepath.Join(dir, "linechart.svg"), first)
	require.NoError(t, os.WriteFile(first, []byte("x"), 0644))

	second := NextAvailableFilename(dir, "linechart", ".svg")
	assert.Equal(t, filepath.Join(dir, "linechart_1.svg"), second)
	require.NoError(t, os.WriteFile(second, []byte("x"), 0644))

	assert.Equal(t, filepath.Join(dir, "linechart_2.svg"), NextAvailableFilename(dir, "linechart", ".svg"))
}
