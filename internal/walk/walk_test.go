package walk

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		p := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte("test content"), 0644))
	}
}

func TestListRecursive(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "b.txt", "a/x.txt", "a/c/y.txt")

	got, err := ListRecursive(root)
	require.NoError(t, err)

	prefix := filepath.ToSlash(root)
	assert.Equal(t, []string{
		prefix + "/a",
		prefix + "/a/c",
		prefix + "/a/c/y.txt",
		prefix + "/a/x.txt",
		prefix + "/b.txt",
	}, got)
}

func TestListRecursive_SymlinkedRoot(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "real/a.txt", "real/sub/b.txt")
	if err := os.Symlink(filepath.Join(root, "real"), filepath.Join(root, "link")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	got, err := ListRecursive(filepath.Join(root, "link"))
	require.NoError(t, err)

	prefix := filepath.ToSlash(root) + "/link"
	assert.Equal(t, []string{
		prefix + "/a.txt",
		prefix + "/sub",
		prefix + "/sub/b.txt",
	}, got)
}

func TestListRecursive_CurrentDir(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "foo.json", "sub/bar.json")
	t.Chdir(root)

	got, err := ListRecursive(".")
	require.NoError(t, err)
	assert.Equal(t, []string{"foo.json", "sub", "sub/bar.json"}, got)
}

func TestListRecursive_Unreadable(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "file.txt")

	tests := []struct {
		name string
		path string
		kind Kind
	}{
		{name: "missing", path: filepath.Join(root, "missing"), kind: KindNotExist},
		{name: "not a directory", path: filepath.Join(root, "file.txt"), kind: KindNotDir},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ListRecursive(tt.path)
			assert.Nil(t, got)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnreadable))

			var re *ReadError
			require.True(t, errors.As(err, &re))
			assert.Equal(t, tt.kind, re.Kind)
			assert.Equal(t, tt.path, re.Path)
		})
	}
}

func TestReadError_Unwrap(t *testing.T) {
	_, err := ListRecursive(filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "not exist")
}
