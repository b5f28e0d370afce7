package fetch

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchWritesFile(t *testing.T) {
	content := "# code-reviewer\n\nReview the diff.\n"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/agents/code-reviewer.md", r.URL.Path)
		assert.Equal(t, "promptkit-installer", r.Header.Get("User-Agent"))
		w.Write([]byte(content))
	}))
	defer server.Close()

	c := New(server.URL, WithHTTPClient(server.Client()))

	dest := filepath.Join(t.TempDir(), "agents", "code-reviewer.md")
	require.NoError(t, c.Fetch("agents/code-reviewer.md", dest))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}

func TestFetchNotFoundLeavesNothing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	c := New(server.URL, WithHTTPClient(server.Client()))

	dir := t.TempDir()
	dest := filepath.Join(dir, "debugger.md")
	err := c.Fetch("agents/debugger.md", dest)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries, "no file or partial may remain after a failed fetch")
}

func TestFetchTruncatedBodyLeavesNothing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Declare more bytes than are sent so the client sees a short read.
		w.Header().Set("Content-Length", "4096")
		w.Write([]byte("partial content"))
	}))
	defer server.Close()

	c := New(server.URL, WithHTTPClient(server.Client()))

	dir := t.TempDir()
	dest := filepath.Join(dir, "debugger.md")
	err := c.Fetch("agents/debugger.md", dest)
	require.Error(t, err)

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries, "truncated download must not leave a partial file")
}

func TestFetchBytes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("version: \"1.0.0\""))
	}))
	defer server.Close()

	c := New(server.URL, WithHTTPClient(server.Client()))

	data, err := c.FetchBytes("catalog.yaml")
	require.NoError(t, err)
	assert.Equal(t, "version: \"1.0.0\"", string(data))
}

func TestFetchBytesServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	c := New(server.URL, WithHTTPClient(server.Client()))

	_, err := c.FetchBytes("catalog.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestBaseURLTrailingSlash(t *testing.T) {
	c := New("https://example.com/base/")
	assert.Equal(t, "https://example.com/base", c.BaseURL())
}
