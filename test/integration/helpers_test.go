//go:build integration

package integration_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv holds the isolated directories and catalog server for one test.
type testEnv struct {
	TargetDir string // PROMPTKIT_TARGET — where items get installed
	ConfigDir string // catalog cache location
	Server    *httptest.Server
	Requests  []string // paths requested from the catalog server
}

// setupTestEnv creates isolated temp directories and a catalog file server
// seeded with content for every path in seed. Unknown paths return 404.
func setupTestEnv(t *testing.T, seed map[string]string) *testEnv {
	t.Helper()

	env := &testEnv{
		TargetDir: t.TempDir(),
		ConfigDir: t.TempDir(),
	}

	env.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		env.Requests = append(env.Requests, r.URL.Path)
		body, ok := seed[strings.TrimPrefix(r.URL.Path, "/")]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(body))
	}))
	t.Cleanup(env.Server.Close)

	t.Setenv("PROMPTKIT_TARGET", env.TargetDir)

	return env
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file %s: %v", path, err)
	}
}

func assertNoFile(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected %s to be absent, stat err = %v", path, err)
	}
}

func assertFileContent(t *testing.T, path, want string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if string(data) != want {
		t.Errorf("%s content = %q, want %q", filepath.Base(path), string(data), want)
	}
}
