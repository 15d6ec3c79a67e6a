package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaffold_ExamplesFlag(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"scaffold", "--examples"})

	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), "Usage Examples:")
	assert.Contains(t, out.String(), "dirscope scaffold --game-name")
	assert.Contains(t, out.String(), "Directory Structure Overview:")
}
