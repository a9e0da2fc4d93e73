package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useLocalStore points the configuration at a temporary local store with a
// default bucket and returns the bucket directory.
func useLocalStore(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("APP_ENV", "")
	t.Setenv("STORAGE_DRIVER", "local")
	t.Setenv("STORAGE_ENDPOINT", root)
	t.Setenv("STORAGE_PUBLIC_ENDPOINT", "https://cdn.example.com")
	t.Setenv("STORAGE_ACCESS_KEY_ID", "key")
	t.Setenv("STORAGE_SECRET_ACCESS_KEY", "secret")
	t.Setenv("STORAGE_BUCKET", "assets")
	t.Setenv("LOG_LEVEL", "error")
	return filepath.Join(root, "assets")
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetIn(bytes.NewBufferString(stdin))
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	return out.String(), err
}

func TestPutAndDelete(t *testing.T) {
	dir := useLocalStore(t)

	file := filepath.Join(t.TempDir(), "a.txt")
	require.NoError(t, os.WriteFile(file, []byte("from file"), 0o644))

	out, err := run(t, "", "put", "--file", file, "--stdin=false", "--bucket", "", "--key", "docs/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "Succeeded\n", out)
	assert.FileExists(t, filepath.Join(dir, "docs", "a.txt"))

	out, err = run(t, "from stdin", "put", "--file", "", "--stdin", "--bucket", "assets", "--key", "b.txt")
	require.NoError(t, err)
	assert.Equal(t, "Succeeded\n", out)
	content, err := os.ReadFile(filepath.Join(dir, "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "from stdin", string(content))

	out, err = run(t, "", "delete", "--bucket", "", "--key", "b.txt")
	require.NoError(t, err)
	assert.Equal(t, "Succeeded\n", out)

	out, err = run(t, "", "delete", "--bucket", "", "--key", "b.txt")
	assert.ErrorIs(t, err, errFailed)
	assert.Equal(t, "Failed : NotFound\n", out)
}

func TestPut_SourceFlags(t *testing.T) {
	useLocalStore(t)

	_, err := run(t, "", "put", "--file", "", "--stdin=false", "--bucket", "", "--key", "a.txt")
	assert.ErrorContains(t, err, "exactly one of --file or --stdin")
}
