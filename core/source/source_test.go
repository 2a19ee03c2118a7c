package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pricelist.md")
	content := "| Model X Base Configuration | |\n| NaN | Intel Core i7 |\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := New().Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := New().Load(context.Background(), filepath.Join(t.TempDir(), "nope.md"))
	assert.Error(t, err)
}

func TestLoadRemoteMarkdown(t *testing.T) {
	content := "| Model X Base Configuration | |\n| NaN | $999 |\n"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.Write([]byte(content))
	}))
	defer srv.Close()

	got, err := New().Load(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestLoadRemoteHTMLConvertsToMarkdown(t *testing.T) {
	page := `<!DOCTYPE html>
<html><head><title>Price List</title><script>alert(1)</script></head>
<body>
<nav>Home | Products</nav>
<main>
<table>
<tr><th>Configuration</th><th>Details</th></tr>
<tr><td>Model X Base Configuration</td><td></td></tr>
<tr><td>NaN</td><td>Intel Core i7 processor</td></tr>
</table>
</main>
<footer>Copyright</footer>
</body></html>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(page))
	}))
	defer srv.Close()

	got, err := New().Load(context.Background(), srv.URL)
	require.NoError(t, err)

	// Table rows survive as pipe-delimited markdown; noise does not.
	assert.Contains(t, got, "|")
	assert.Contains(t, got, "Model X Base Configuration")
	assert.Contains(t, got, "Intel Core i7 processor")
	assert.NotContains(t, got, "alert(1)")
	assert.NotContains(t, got, "<table>")
	assert.NotContains(t, strings.ToLower(got), "copyright")
}

func TestLoadRemoteErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := New().Load(context.Background(), srv.URL)
	assert.Error(t, err)
}

func TestIsURL(t *testing.T) {
	assert.True(t, isURL("https://example.com/pricelist"))
	assert.True(t, isURL("http://example.com"))
	assert.False(t, isURL("pricelist.md"))
	assert.False(t, isURL("./relative/path.md"))
}
