package cmd

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevels_ReportsStatusPerStream(t *testing.T) {
	// Given: threshold error
	out, _, err := executeRoot(t, nil, "levels", "--level", "error", "--color", "never")

	// Then: only error and the color streams are shown
	require.NoError(t, err)
	assert.Contains(t, out, "threshold: error (1)")
	assert.Regexp(t, regexp.MustCompile(`debug\s+3\s+suppressed`), out)
	assert.Regexp(t, regexp.MustCompile(`info\s+2\s+suppressed`), out)
	assert.Regexp(t, regexp.MustCompile(`error\s+1\s+shown`), out)
	assert.Regexp(t, regexp.MustCompile(`cyan\s+0\s+shown`), out)
}

func TestLevels_Off(t *testing.T) {
	out, _, err := executeRoot(t, nil, "levels", "--level", "off")

	require.NoError(t, err)
	assert.Contains(t, out, "threshold: off (-1)")
	assert.NotRegexp(t, regexp.MustCompile(`\sshown`), out)
}
