// Package behavior runs the action configured for a subcommand.
package behavior

import (
	"context"
	"fmt"
	"io"

	"github.com/tacogips/depot/internal/logging"
	"github.com/tacogips/depot/internal/shell"
	"github.com/tacogips/depot/internal/store"
	"github.com/tacogips/depot/internal/template"
)

// NotSupportedCode is returned when a behavior is not configured.
const NotSupportedCode = 255

// Kind identifies a Behavior variant.
type Kind int

const (
	// NotSupported prints "not supported" and exits with NotSupportedCode.
	NotSupported Kind = iota
	// Template prints the expansion of Value.
	Template
	// ShellChain runs Commands in order with the terminal attached.
	ShellChain
	// Nop does nothing.
	Nop
)

// String returns the configuration name of the kind.
func (k Kind) String() string {
	switch k {
	case NotSupported:
		return "not-supported"
	case Template:
		return "template"
	case ShellChain:
		return "shell"
	case Nop:
		return "nop"
	default:
		return "unknown"
	}
}

// Behavior is an action with an exit code. The zero value is NotSupported.
type Behavior struct {
	Kind     Kind
	Value    string
	Commands []string
}

// NewTemplate returns a Template behavior.
func NewTemplate(tmpl string) Behavior {
	return Behavior{Kind: Template, Value: tmpl}
}

// NewShellChain returns a ShellChain behavior.
func NewShellChain(commands ...string) Behavior {
	return Behavior{Kind: ShellChain, Commands: commands}
}

// NewNop returns a Nop behavior.
func NewNop() Behavior {
	return Behavior{Kind: Nop}
}

// Execute performs b and returns its exit code. Printed output goes to out;
// shell commands write to the executor's own streams.
func Execute(ctx context.Context, b Behavior, exec *shell.Executor, s store.Store, out io.Writer) (int, error) {
	switch b.Kind {
	case NotSupported:
		fmt.Fprintln(out, "not supported")
		return NotSupportedCode, nil
	case Template:
		fmt.Fprintln(out, template.Expand(s, b.Value))
		return 0, nil
	case ShellChain:
		return runChain(ctx, exec, s, b.Commands)
	case Nop:
		return 0, nil
	default:
		return 1, fmt.Errorf("unknown behavior kind %d", b.Kind)
	}
}

func runChain(ctx context.Context, exec *shell.Executor, s store.Store, commands []string) (int, error) {
	env := s.Environ()
	code := 0
	for _, command := range commands {
		var err error
		code, err = exec.Run(ctx, command, env)
		if err != nil {
			return 1, err
		}
		if code != 0 {
			logging.Debug("[behavior] chain stopped at %q with exit code %d", command, code)
			return code, nil
		}
	}
	return code, nil
}

// Chain runs pre and, only when it exits 0, main.
func Chain(ctx context.Context, pre, main Behavior, exec *shell.Executor, s store.Store, out io.Writer) (int, error) {
	code, err := Execute(ctx, pre, exec, s, out)
	if err != nil || code != 0 {
		return code, err
	}
	return Execute(ctx, main, exec, s, out)
}
