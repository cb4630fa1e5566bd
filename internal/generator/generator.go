// Package generator produces string values from configuration rules: a
// literal, a template expansion, or the output of a chain of shell commands.
package generator

import (
	"context"
	"strings"
	"unicode"

	"github.com/tacogips/depot/internal/logging"
	"github.com/tacogips/depot/internal/shell"
	"github.com/tacogips/depot/internal/store"
	"github.com/tacogips/depot/internal/template"
)

// Kind identifies a Generator variant.
type Kind int

const (
	// Literal returns Value unchanged.
	Literal Kind = iota
	// Template expands Value with the template language.
	Template
	// ShellChain runs Commands in order and returns their combined stdout.
	ShellChain
)

// String returns the configuration name of the kind.
func (k Kind) String() string {
	switch k {
	case Literal:
		return "string"
	case Template:
		return "template"
	case ShellChain:
		return "shell"
	default:
		return "unknown"
	}
}

// Generator is a rule producing a string.
type Generator struct {
	Kind     Kind
	Value    string
	Commands []string
}

// NewLiteral returns a Literal generator.
func NewLiteral(value string) Generator {
	return Generator{Kind: Literal, Value: value}
}

// NewTemplate returns a Template generator.
func NewTemplate(tmpl string) Generator {
	return Generator{Kind: Template, Value: tmpl}
}

// NewShellChain returns a ShellChain generator.
func NewShellChain(commands ...string) Generator {
	return Generator{Kind: ShellChain, Commands: commands}
}

// IsZero reports whether g was never configured.
func (g Generator) IsZero() bool {
	return g.Kind == Literal && g.Value == "" && g.Commands == nil
}

// Expand produces the generator's value. ShellChain commands receive the
// store's environment; the chain stops after the first command that exits
// non-zero, and trailing whitespace is trimmed from the combined output.
func (g Generator) Expand(ctx context.Context, exec *shell.Executor, s store.Store) (string, error) {
	switch g.Kind {
	case Literal:
		return g.Value, nil
	case Template:
		return template.Expand(s, g.Value), nil
	case ShellChain:
		return expandShell(ctx, exec, s, g.Commands)
	default:
		return "", &Error{Kind: g.Kind, Message: "unknown generator kind"}
	}
}

func expandShell(ctx context.Context, exec *shell.Executor, s store.Store, commands []string) (string, error) {
	var buf strings.Builder
	env := s.Environ()

	for _, command := range commands {
		code, out, err := exec.Output(ctx, command, env)
		if err != nil {
			return "", &Error{Kind: ShellChain, Message: "command failed to start", Cause: err}
		}
		buf.Write(out)
		if code != 0 {
			logging.Debug("[generator] chain stopped at %q with exit code %d", command, code)
			break
		}
	}

	return strings.TrimRightFunc(buf.String(), unicode.IsSpace), nil
}
