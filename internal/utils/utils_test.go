package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "src"), ExpandTilde("~/src"))
	assert.Equal(t, "/abs/path", ExpandTilde("/abs/path"))
	assert.Equal(t, "rel", ExpandTilde("rel"))
}

func TestSplitPatterns(t *testing.T) {
	got := SplitPatterns([]string{"a,b", " c ", "", "d,,e"})
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, got)
	assert.Nil(t, SplitPatterns(nil))
}

func TestWriteList(t *testing.T) {
	paths := []string{"a.go", "b/c.go"}

	tests := []struct {
		format string
		want   string
	}{
		{"text", "a.go\nb/c.go\n"},
		{"", "a.go\nb/c.go\n"},
		{"null", "a.go\x00b/c.go\x00"},
		{"yaml", "- a.go\n- b/c.go\n"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteList(&buf, paths, tt.format))
			assert.Equal(t, tt.want, buf.String())
		})
	}

	var buf bytes.Buffer
	require.NoError(t, WriteList(&buf, nil, "yaml"))
	assert.Equal(t, "[]\n", buf.String())

	assert.Error(t, WriteList(&buf, paths, "csv"))
}
