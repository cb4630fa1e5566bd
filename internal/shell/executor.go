package shell

import "context"

// Executor pairs the configured shell with a Runner so callers can run
// command strings directly.
type Executor struct {
	shell  *Compiled
	runner Runner
}

// NewExecutor returns an Executor. A nil shell means Default().
func NewExecutor(sh *Compiled, runner Runner) *Executor {
	if sh == nil {
		sh = Default()
	}
	return &Executor{shell: sh, runner: runner}
}

// Shell returns the compiled shell.
func (e *Executor) Shell() *Compiled {
	return e.shell
}

// Output runs command through the shell and captures its stdout.
func (e *Executor) Output(ctx context.Context, command string, env []string) (int, []byte, error) {
	return e.runner.Output(ctx, e.shell.Command(command, env))
}

// Run runs command through the shell with standard streams attached.
func (e *Executor) Run(ctx context.Context, command string, env []string) (int, error) {
	return e.runner.Run(ctx, e.shell.Command(command, env))
}

// RunProgram runs program directly, without the shell, with standard streams
// attached.
func (e *Executor) RunProgram(ctx context.Context, program string, args []string, env []string) (int, error) {
	return e.runner.Run(ctx, Command{Program: program, Args: args, Env: env})
}
