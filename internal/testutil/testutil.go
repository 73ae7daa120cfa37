package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/stretchr/testify/require"

	"github.com/geocine/pandoc-jekyll/internal/document"
)

// TestdataDir returns the absolute path of the shared testdata directory
func TestdataDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "testdata")
}

// Fixture reads a file from the shared testdata directory
func Fixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(TestdataDir(), name))
	require.NoError(t, err)
	return data
}

// MustParse parses a document fixture or fails the test
func MustParse(t *testing.T, data string) *document.Document {
	t.Helper()
	doc, err := document.Parse([]byte(data))
	require.NoError(t, err)
	return doc
}

// JSONEqual fails the test unless expected and actual hold the same JSON
// value. Object key order is ignored.
func JSONEqual(t *testing.T, expected, actual string) {
	t.Helper()
	require.True(t, jsonpatch.Equal([]byte(expected), []byte(actual)),
		"JSON differs\nexpected: %s\nactual:   %s", expected, actual)
}

// WriteFile writes content to a file in the test directory
func WriteFile(t *testing.T, dir, path, content string) string {
	t.Helper()
	fullPath := filepath.Join(dir, path)
	require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0755))
	require.NoError(t, os.WriteFile(fullPath, []byte(content), 0644))
	return fullPath
}
