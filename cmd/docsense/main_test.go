package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestAnalyzeCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trip.txt")
	require.NoError(t, os.WriteFile(path, []byte("John went to Paris. He works at Acme Corp. It was a great trip!"), 0644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"analyze", path,
		"--env", filepath.Join(dir, "missing.env"),
		"--surface", "all",
		"--log-level", "error",
	})
	require.NoError(t, rootCmd.Execute())

	body := out.String()
	assert.Equal(t, int64(14), gjson.Get(body, "wordCount").Int())
	assert.Equal(t, "positive", gjson.Get(body, "sentiment.label").String())
	assert.Equal(t, int64(63), gjson.Get(body, "characterCount").Int())
	assert.True(t, gjson.Get(body, "summary").Exists())
}

func TestAnalyzeCommandRejectsUnsupportedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.html")
	require.NoError(t, os.WriteFile(path, []byte("<p>hello</p>"), 0644))

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"analyze", path, "--env", filepath.Join(dir, "missing.env")})
	assert.Error(t, rootCmd.Execute())
}
