package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteTempFile writes content to name inside a per-test directory and returns its path.
func WriteTempFile(t *testing.T, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, content, 0600)
	require.NoError(t, err, "failed to create test file")

	return path
}
