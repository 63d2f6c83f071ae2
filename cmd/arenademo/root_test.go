package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDemo(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"--block-size", "65536"})

	require.NoError(t, rootCmd.Execute())

	out := buf.String()
	assert.Contains(t, out, `"blah blah blah" survives the release`)
	assert.Contains(t, out, "xs[999] = 999")
	assert.Contains(t, out, "used / ")
	assert.Contains(t, out, "reserved")
}
