package shell

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func newTestRunner() (*ExecRunner, *bytes.Buffer) {
	var out bytes.Buffer
	return &ExecRunner{Stdout: &out, Stderr: &bytes.Buffer{}}, &out
}

func TestCompiledCommand(t *testing.T) {
	c := Default().Command("echo hi", []string{"A=1"})

	if c.Program != "/bin/sh" {
		t.Errorf("Program = %q", c.Program)
	}
	if len(c.Args) != 2 || c.Args[0] != "-c" || c.Args[1] != "echo hi" {
		t.Errorf("Args = %q", c.Args)
	}
	if got := c.String(); got != "/bin/sh -c 'echo hi'" {
		t.Errorf("String() = %q", got)
	}
}

func TestOutput(t *testing.T) {
	r, _ := newTestRunner()
	ctx := context.Background()

	code, out, err := r.Output(ctx, Default().Command("echo hello", nil))
	if err != nil || code != 0 {
		t.Fatalf("Output() = %d, %v", code, err)
	}
	if string(out) != "hello\n" {
		t.Errorf("stdout = %q", out)
	}

	code, _, err = r.Output(ctx, Default().Command("exit 3", nil))
	if err != nil {
		t.Fatalf("non-zero exit must not be an error: %v", err)
	}
	if code != 3 {
		t.Errorf("code = %d, want 3", code)
	}
}

func TestOutputEnvironment(t *testing.T) {
	t.Setenv("DEPOT_SHELL_TEST_LEAK", "leaked")
	r, _ := newTestRunner()

	_, out, err := r.Output(context.Background(),
		Default().Command(`printf '%s|%s' "$DEPOT_LOCAL_PATH" "$DEPOT_SHELL_TEST_LEAK"`, []string{"DEPOT_LOCAL_PATH=/x"}))
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "/x|" {
		t.Errorf("child saw %q, want only the exported environment", out)
	}
}

func TestRun(t *testing.T) {
	r, out := newTestRunner()

	code, err := r.Run(context.Background(), Default().Command("echo attached; exit 4", nil))
	if err != nil {
		t.Fatal(err)
	}
	if code != 4 {
		t.Errorf("code = %d, want 4", code)
	}
	if !strings.Contains(out.String(), "attached") {
		t.Errorf("stdout not forwarded: %q", out.String())
	}
}

func TestStartFailure(t *testing.T) {
	r, _ := newTestRunner()
	c := (&Compiled{Program: "/nonexistent/shell"}).Command("true", nil)

	_, err := r.Run(context.Background(), c)
	var execErr *ExecError
	if !errors.As(err, &execErr) {
		t.Fatalf("expected *ExecError, got %T (%v)", err, err)
	}
	if execErr.Command.Program != "/nonexistent/shell" {
		t.Errorf("ExecError.Command = %+v", execErr.Command)
	}
}

func TestExecutor(t *testing.T) {
	r, out := newTestRunner()
	e := NewExecutor(nil, r)

	if e.Shell().Program != DefaultProgram {
		t.Errorf("nil shell should default to %s, got %s", DefaultProgram, e.Shell().Program)
	}

	code, stdout, err := e.Output(context.Background(), `echo "$GREETING"`, []string{"GREETING=hi"})
	if err != nil || code != 0 || string(stdout) != "hi\n" {
		t.Errorf("Output() = %d, %q, %v", code, stdout, err)
	}

	code, err = e.RunProgram(context.Background(), "/bin/sh", []string{"-c", "echo direct; exit 5"}, nil)
	if err != nil || code != 5 {
		t.Errorf("RunProgram() = %d, %v", code, err)
	}
	if !strings.Contains(out.String(), "direct") {
		t.Errorf("stdout not forwarded: %q", out.String())
	}
}
