// Package shelltest provides a scripted shell.Runner for tests.
package shelltest

import (
	"context"
	"io"

	"github.com/tacogips/depot/internal/shell"
)

// Result is the scripted outcome of one command string.
type Result struct {
	Code   int
	Stdout string
	Err    error
}

// Runner records every command it is asked to run and answers from Results,
// keyed by the command string (the last argument). Unscripted commands exit 0
// with no output.
type Runner struct {
	Results map[string]Result
	// Out receives Stdout of commands executed with Run.
	Out   io.Writer
	Calls []shell.Command
}

// New returns a Runner with the given script.
func New(results map[string]Result) *Runner {
	if results == nil {
		results = map[string]Result{}
	}
	return &Runner{Results: results}
}

// Commands returns the command strings run so far, in order.
func (r *Runner) Commands() []string {
	out := make([]string, 0, len(r.Calls))
	for _, c := range r.Calls {
		out = append(out, commandString(c))
	}
	return out
}

// Output implements shell.Runner.
func (r *Runner) Output(_ context.Context, c shell.Command) (int, []byte, error) {
	res := r.record(c)
	if res.Err != nil {
		return 0, nil, res.Err
	}
	return res.Code, []byte(res.Stdout), nil
}

// Run implements shell.Runner.
func (r *Runner) Run(_ context.Context, c shell.Command) (int, error) {
	res := r.record(c)
	if res.Err != nil {
		return 0, res.Err
	}
	if r.Out != nil && res.Stdout != "" {
		io.WriteString(r.Out, res.Stdout)
	}
	return res.Code, nil
}

func (r *Runner) record(c shell.Command) Result {
	r.Calls = append(r.Calls, c)
	return r.Results[commandString(c)]
}

func commandString(c shell.Command) string {
	if len(c.Args) == 0 {
		return c.Program
	}
	return c.Args[len(c.Args)-1]
}
