// pkg/fileops/append_test.go

package fileops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendLineCreatesAndAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "passwords.txt")

	require.NoError(t, AppendLine(path, "first-password"))
	require.NoError(t, AppendLine(path, "second-password"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first-password\nsecond-password\n", string(raw))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestAppendLineUnwritablePath(t *testing.T) {
	err := AppendLine(filepath.Join(t.TempDir(), "no", "such", "dir", "f.txt"), "pw")
	assert.Error(t, err)
}

func TestAppendLinePermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0o500))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o700) })

	err := AppendLine(filepath.Join(dir, "f.txt"), "pw")
	assert.Error(t, err)
}
