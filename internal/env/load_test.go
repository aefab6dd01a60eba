package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSetsVariables(t *testing.T) {
	t.Setenv("ENVTEST_A", "")
	os.Unsetenv("ENVTEST_A")
	t.Setenv("ENVTEST_B", "")
	os.Unsetenv("ENVTEST_B")

	path := writeEnv(t, "ENVTEST_A=hello\n\n# comment\nENVTEST_B=\"quoted value\"\n")
	n, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "hello", os.Getenv("ENVTEST_A"))
	assert.Equal(t, "quoted value", os.Getenv("ENVTEST_B"))
}

func TestLoadExportPrefix(t *testing.T) {
	t.Setenv("ENVTEST_EXPORT", "")
	os.Unsetenv("ENVTEST_EXPORT")

	path := writeEnv(t, "export ENVTEST_EXPORT=yes\n")
	n, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "yes", os.Getenv("ENVTEST_EXPORT"))
}

func TestLoadDoesNotOverwriteEnvironment(t *testing.T) {
	t.Setenv("ENVTEST_KEEP", "real")

	path := writeEnv(t, "ENVTEST_KEEP=file\n")
	n, err := Load(path)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, "real", os.Getenv("ENVTEST_KEEP"))
}

func TestLoadSkipsMalformedLines(t *testing.T) {
	t.Setenv("ENVTEST_OK", "")
	os.Unsetenv("ENVTEST_OK")

	path := writeEnv(t, "=nokey\nnoequals\nENVTEST_OK=1\n")
	n, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	n, err := Load(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Zero(t, n)
}
