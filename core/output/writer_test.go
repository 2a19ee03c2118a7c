package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilename(t *testing.T) {
	tests := []struct {
		name    string
		product string
		want    string
	}{
		{"plain", "Latitude 3550", "Latitude 3550_spec"},
		{"keeps hyphen underscore", "XPS-13_Plus", "XPS-13_Plus_spec"},
		{"drops punctuation", "Model X (2024): 15.6\"", "Model X 2024 156_spec"},
		{"drops slashes", "a/b\\c", "abc_spec"},
		{"keeps accented letters", "Précision 3680 Gerät", "Précision 3680 Gerät_spec"},
		{"drops symbols not letters", "Dell™ Latitude®", "Dell Latitude_spec"},
		{"empty", "", "_spec"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Filename(tt.product))
		})
	}
}

func TestWriterCreatesDirectoryAndFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sheets")

	w, err := New(dir)
	require.NoError(t, err)

	path, err := w.Write("Latitude 3550 Base Configuration", []byte("%PDF-stub"), ".pdf")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Latitude 3550 Base Configuration_spec.pdf"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-stub", string(data))
}

func TestWriterDefaultsOutputDir(t *testing.T) {
	t.Chdir(t.TempDir())

	w, err := New("")
	require.NoError(t, err)
	assert.Equal(t, "output", w.OutputDir)

	info, err := os.Stat("output")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
