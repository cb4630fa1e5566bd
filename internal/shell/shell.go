// Package shell runs user-configured commands through a shell program.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/kballard/go-shellquote"

	"github.com/tacogips/depot/internal/logging"
)

// Default shell invocation when the configuration does not name one.
const (
	DefaultProgram = "/bin/sh"
	DefaultArg     = "-c"
)

// Command is a fully resolved process invocation.
type Command struct {
	// Program is the executable path or name.
	Program string
	// Args are passed after Program.
	Args []string
	// Env is the complete child environment.
	Env []string
}

// String renders the command line for logs.
func (c Command) String() string {
	return shellquote.Join(append([]string{c.Program}, c.Args...)...)
}

// Runner executes commands synchronously.
type Runner interface {
	// Output runs c, capturing its standard output.
	Output(ctx context.Context, c Command) (code int, stdout []byte, err error)
	// Run runs c with the runner's own standard streams attached.
	Run(ctx context.Context, c Command) (code int, err error)
}

// Compiled is a shell program with its leading arguments, ready to receive
// a command string.
type Compiled struct {
	Program string
	Args    []string
}

// Default returns the /bin/sh -c shell.
func Default() *Compiled {
	return &Compiled{Program: DefaultProgram, Args: []string{DefaultArg}}
}

// Command builds the invocation of command through the shell.
func (c *Compiled) Command(command string, env []string) Command {
	args := make([]string, 0, len(c.Args)+1)
	args = append(args, c.Args...)
	args = append(args, command)
	return Command{Program: c.Program, Args: args, Env: env}
}

// ExecRunner implements Runner with os/exec.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner returns a runner attached to the process's standard streams.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Output implements Runner.
func (r *ExecRunner) Output(ctx context.Context, c Command) (int, []byte, error) {
	logging.Debug("[shell] output: %s", c)
	cmd := r.command(ctx, c)
	cmd.Stdout = nil
	out, err := cmd.Output()
	code, err := exitCode(c, err)
	return code, out, err
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, c Command) (int, error) {
	logging.Debug("[shell] run: %s", c)
	cmd := r.command(ctx, c)
	return exitCode(c, cmd.Run())
}

func (r *ExecRunner) command(ctx context.Context, c Command) *exec.Cmd {
	cmd := exec.CommandContext(ctx, c.Program, c.Args...)
	// A nil Env would make the child inherit our whole environment.
	cmd.Env = c.Env
	if cmd.Env == nil {
		cmd.Env = []string{}
	}
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	return cmd
}

// exitCode maps a wait result to an exit code. Failing to start the
// process is an error; a non-zero exit is not.
func exitCode(c Command, err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			// Terminated by a signal.
			code = 1
		}
		logging.Debug("[shell] exit code %d: %s", code, c)
		return code, nil
	}
	return 0, &ExecError{Command: c, Cause: err}
}
