package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tacogips/depot/internal/app"
	"github.com/tacogips/depot/internal/config"
	"github.com/tacogips/depot/internal/shell"
)

// loadFixtureConfig reads a fixture configuration, points its root at a
// fresh temp directory and loads it through the file loader.
func loadFixtureConfig(t *testing.T, fixtureName string) (*config.Config, string) {
	t.Helper()

	fixture, err := filepath.Abs(filepath.Join("../fixtures/config", fixtureName))
	if err != nil {
		t.Fatalf("failed to get fixture path: %v", err)
	}
	data, err := os.ReadFile(fixture)
	if err != nil {
		t.Fatalf("failed to read fixture: %v", err)
	}

	tempDir := t.TempDir()
	root := filepath.Join(tempDir, "depot")
	path := filepath.Join(tempDir, fixtureName)
	content := strings.ReplaceAll(string(data), "__ROOT__", root)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := config.NewLoader().Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	return cfg, root
}

// newSession returns a session running commands through the real shell,
// with stdout captured.
func newSession(t *testing.T, cfg *config.Config) (*app.Session, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer
	s, err := app.NewSession(cfg, app.SessionOptions{
		Runner: &shell.ExecRunner{Stdout: &out, Stderr: os.Stderr},
		Stdout: &out,
	})
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	return s, &out
}

// touch creates the file at root/rel along with its parents.
func touch(t *testing.T, root, rel string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
