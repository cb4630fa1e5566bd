package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tacogips/depot/internal/build"
	"github.com/tacogips/depot/internal/logging"
)

const testConfigTemplate = `{
  // comments are allowed
  "core": { "root": "ROOT" },
  "parse": { "default": { "scheme": "https", "host": "github.com" } },
  "resolve": { "path": "${DEPOT_REMOTE_HOST}${DEPOT_REMOTE_PATH}" },
  "subcommands": {
    "get": {
      "command": "echo get $DEPOT_LOCAL_PATH",
      "overloads": { "work": { "command": ["shell", "exit 3"] } }
    },
    "move": {
      "command": ["shell", "echo move $DEPOT_SOURCE_LOCAL_PATH $DEPOT_LOCAL_PATH"]
    }
  },
  "overloads": [
    { "name": "work", "patterns": [["starts-with", "git@work.example.com:"]] }
  ]
}`

// writeConfig writes a configuration rooted at a fresh directory and
// returns the config path and the root.
func writeConfig(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	root := filepath.Join(dir, "depot")
	path := filepath.Join(dir, "depot.jsonc")
	content := strings.Replace(testConfigTemplate, "ROOT", root, 1)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path, root
}

// execute runs the CLI with fresh flag state.
func execute(t *testing.T, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	globalConfig, globalDebug, globalResetEnv, globalNoColor, globalQuiet = "", false, false, false, false
	resolveTemplate = ""
	moveResolveSource = false
	listFields = nil
	versionShort, versionJSON = false, false
	configInitForce, configInitYes, configInitPath = false, false, ""

	var out, errOut bytes.Buffer
	code = run(context.Background(), args, &out, &errOut)
	return out.String(), errOut.String(), code
}

func TestRootCommand(t *testing.T) {
	cfg, root := writeConfig(t)

	out, errOut, code := execute(t, "-c", cfg, "root")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, errOut)
	}
	if out != root+"\n" {
		t.Errorf("root output = %q, want %q", out, root+"\n")
	}
}

func TestResolveCommand(t *testing.T) {
	cfg, root := writeConfig(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "short address",
			args: []string{"resolve", "owner/repo"},
			want: root + "/github.com/owner/repo",
		},
		{
			name: "scp address",
			args: []string{"resolve", "git@gitlab.com:owner/repo.git"},
			want: root + "/gitlab.com/owner/repo.git",
		},
		{
			name: "template flag",
			args: []string{"resolve", "-t", "x/${DEPOT_REMOTE_FILENAME_WITHOUT_EXTENSION}", "owner/repo.git"},
			want: root + "/x/repo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut, code := execute(t, append([]string{"-c", cfg}, tt.args...)...)
			if code != 0 {
				t.Fatalf("exit code = %d, stderr: %s", code, errOut)
			}
			if got := strings.TrimSpace(out); got != tt.want {
				t.Errorf("resolve = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetCommand(t *testing.T) {
	cfg, root := writeConfig(t)

	out, errOut, code := execute(t, "-e", "-c", cfg, "get", "owner/repo")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, errOut)
	}
	want := "get " + root + "/github.com/owner/repo\n"
	if out != want {
		t.Errorf("get output = %q, want %q", out, want)
	}
}

func TestGetPropagatesExitCode(t *testing.T) {
	cfg, _ := writeConfig(t)

	_, errOut, code := execute(t, "-e", "-c", cfg, "get", "git@work.example.com:team/repo.git")
	if code != 3 {
		t.Errorf("exit code = %d, want 3", code)
	}
	if errOut != "" {
		t.Errorf("a propagated exit code should print nothing, got: %s", errOut)
	}
}

func TestCreateNotSupported(t *testing.T) {
	cfg, _ := writeConfig(t)

	out, _, code := execute(t, "-c", cfg, "create", "owner/repo")
	if code != 255 {
		t.Errorf("exit code = %d, want 255", code)
	}
	if out != "not supported\n" {
		t.Errorf("output = %q, want %q", out, "not supported\n")
	}
}

func TestMoveCommand(t *testing.T) {
	cfg, root := writeConfig(t)

	out, errOut, code := execute(t, "-e", "-c", cfg, "move", "./old", "owner/repo")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, errOut)
	}
	want := "move ./old " + root + "/github.com/owner/repo\n"
	if out != want {
		t.Errorf("move output = %q, want %q", out, want)
	}

	out, errOut, code = execute(t, "-e", "-c", cfg, "move", "-r", "owner/old", "owner/new")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, errOut)
	}
	want = "move " + root + "/github.com/owner/old " + root + "/github.com/owner/new\n"
	if out != want {
		t.Errorf("move -r output = %q, want %q", out, want)
	}
}

func TestListCommand(t *testing.T) {
	cfg, root := writeConfig(t)
	for _, p := range []string{"github.com/a/one/.git", "gitlab.com/b/two/.git", "github.com/a/plain"} {
		if err := os.MkdirAll(filepath.Join(root, p), 0755); err != nil {
			t.Fatal(err)
		}
	}

	out, errOut, code := execute(t, "-c", cfg, "list")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, errOut)
	}
	if want := "github.com/a/one\ngitlab.com/b/two\n"; out != want {
		t.Errorf("list output = %q, want %q", out, want)
	}

	out, _, code = execute(t, "-c", cfg, "list", "-f", "path,full-path")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	first := strings.SplitN(out, "\n", 2)[0]
	if want := "github.com/a/one\t" + filepath.Join(root, "github.com/a/one"); first != want {
		t.Errorf("first row = %q, want %q", first, want)
	}

	_, errOut, code = execute(t, "-c", cfg, "list", "-f", "nope")
	if code != 1 || !strings.Contains(errOut, "Error:") {
		t.Errorf("unknown field: code = %d, stderr = %q", code, errOut)
	}
}

func TestGetOverloadCommand(t *testing.T) {
	cfg, _ := writeConfig(t)

	out, _, code := execute(t, "-c", cfg, "get-overload", "git@work.example.com:team/repo.git")
	if code != 0 || out != "work\n" {
		t.Errorf("get-overload = (%q, %d), want (\"work\\n\", 0)", out, code)
	}

	out, _, code = execute(t, "-c", cfg, "get-overload", "owner/repo")
	if code != 0 || out != "(no overload)\n" {
		t.Errorf("get-overload = (%q, %d), want (\"(no overload)\\n\", 0)", out, code)
	}
}

func TestExternalCommand(t *testing.T) {
	cfg, root := writeConfig(t)
	bin := t.TempDir()
	script := "#!/bin/sh\necho \"hello $DEPOT_ROOT_PATH $1\"\nexit 7\n"
	if err := os.WriteFile(filepath.Join(bin, "depot-hello"), []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))

	// Flags after the command name belong to the plugin.
	out, errOut, code := execute(t, "-e", "-c", cfg, "hello", "--world")
	if code != 7 {
		t.Errorf("exit code = %d, want 7 (stderr: %s)", code, errOut)
	}
	if want := "hello " + root + " --world\n"; out != want {
		t.Errorf("plugin output = %q, want %q", out, want)
	}
}

func TestUnknownCommand(t *testing.T) {
	cfg, _ := writeConfig(t)

	_, errOut, code := execute(t, "-c", cfg, "no-such-depot-command")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(errOut, "unknown command") {
		t.Errorf("stderr should mention the unknown command, got: %s", errOut)
	}
}

func TestMissingConfig(t *testing.T) {
	_, errOut, code := execute(t, "-c", filepath.Join(t.TempDir(), "missing.json"), "root")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(errOut, "Error:") {
		t.Errorf("stderr should carry the error, got: %s", errOut)
	}
	if !strings.Contains(errOut, "depot config init") {
		t.Errorf("stderr should suggest config init, got: %s", errOut)
	}
}

func TestInvalidConfigHasNoInitHint(t *testing.T) {
	path := filepath.Join(t.TempDir(), "depot.json")
	if err := os.WriteFile(path, []byte("{ not json"), 0644); err != nil {
		t.Fatal(err)
	}

	_, errOut, code := execute(t, "-c", path, "root")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if strings.Contains(errOut, "config init") {
		t.Errorf("a broken file is not a missing one, got: %s", errOut)
	}
}

func TestDebugLogsFatalError(t *testing.T) {
	defer logging.SetDebug(false)
	missing := filepath.Join(t.TempDir(), "missing.json")

	_, errOut, code := execute(t, "-c", missing, "root")
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if strings.Contains(errOut, "command failed") {
		t.Errorf("fatal error should not be logged without --debug, got: %s", errOut)
	}

	_, errOut, code = execute(t, "--debug", "-c", missing, "root")
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(errOut, "command failed") {
		t.Errorf("--debug should log the fatal error, got: %s", errOut)
	}
	if !strings.Contains(errOut, "Error:") {
		t.Errorf("the error line is still printed with --debug, got: %s", errOut)
	}
}

func TestConfigInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "depot.yaml")

	out, errOut, code := execute(t, "config", "init", "--yes", "--path", path)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, errOut)
	}
	if !strings.Contains(out, "Wrote "+path) {
		t.Errorf("output should name the written file, got: %s", out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config not written: %v", err)
	}
	if !strings.Contains(string(data), "github.com") {
		t.Errorf("starter config should carry the default host, got:\n%s", data)
	}

	// The written file is a working configuration.
	out, errOut, code = execute(t, "-c", path, "get-overload", "owner/repo")
	if code != 0 || out != "(no overload)\n" {
		t.Errorf("starter config unusable: code = %d, out = %q, stderr = %s", code, out, errOut)
	}

	_, _, code = execute(t, "config", "init", "--yes", "--path", path)
	if code != 1 {
		t.Errorf("second init without --force: exit code = %d, want 1", code)
	}

	out, _, code = execute(t, "config", "init", "--yes", "--force", "--path", path)
	if code != 0 || !strings.Contains(out, "Overwrote") {
		t.Errorf("init --force: code = %d, out = %q", code, out)
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, code := execute(t, "version", "--short")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if got := strings.TrimSpace(out); got != build.Version() {
		t.Errorf("version --short = %q, want %q", got, build.Version())
	}

	out, _, _ = execute(t, "version", "--json")
	if !strings.Contains(out, `"version"`) {
		t.Errorf("version --json should be JSON, got: %s", out)
	}
}

func TestValidateAddress(t *testing.T) {
	if err := ValidateAddress("owner/repo"); err != nil {
		t.Errorf("ValidateAddress(owner/repo) = %v", err)
	}
	if err := ValidateAddress("  "); err == nil {
		t.Error("ValidateAddress should reject a blank address")
	}
}
