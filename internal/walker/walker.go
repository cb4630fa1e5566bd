// Package walker enumerates project directories below the depot root.
//
// Every visited path is classified in order as excluded, project, directory,
// file or unknown. Excluded paths and projects are never descended into.
// Each project prints one row of field values. Failures on a single path are
// reported and the walk moves on to the next sibling.
package walker

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/tacogips/depot/internal/condition"
	"github.com/tacogips/depot/internal/generator"
	"github.com/tacogips/depot/internal/logging"
	"github.com/tacogips/depot/internal/pattern"
	"github.com/tacogips/depot/internal/shell"
	"github.com/tacogips/depot/internal/store"
)

// Field is a named column of a project row.
type Field struct {
	Name      string
	Generator generator.Generator
}

// Options configures a Walker.
type Options struct {
	// Fs is the filesystem to walk. Defaults to the OS filesystem.
	Fs afero.Fs
	// Root is the absolute directory to start from.
	Root string
	// Excludes are matched against root-relative slash paths.
	Excludes []pattern.Matcher
	// Condition classifies projects.
	Condition *condition.Compiled
	// Fields are evaluated for every project, in order.
	Fields []Field
	// Exec runs shell field generators.
	Exec *shell.Executor
	// Store receives the local path of each project before its fields are
	// generated.
	Store store.Store
	// Out receives project rows.
	Out io.Writer
	// ErrOut receives per-path errors. When nil they are logged as warnings.
	ErrOut io.Writer
}

// Walker walks a depot root.
type Walker struct {
	opts Options
}

// New creates a Walker.
func New(opts Options) *Walker {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Store == nil {
		opts.Store = store.New(false)
	}
	if opts.Exec == nil {
		opts.Exec = shell.NewExecutor(nil, shell.NewExecRunner())
	}
	return &Walker{opts: opts}
}

type kind int

const (
	kindExcluded kind = iota
	kindProject
	kindDirectory
	kindFile
)

// Walk visits the tree depth-first, children in name order. An error is
// returned only when the root itself cannot be classified or read, or when
// ctx is cancelled.
func (w *Walker) Walk(ctx context.Context) error {
	logging.DebugSection("Walk " + w.opts.Root)

	stack := []string{w.opts.Root}
	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		children, err := w.visit(ctx, p)
		if err != nil {
			if p == w.opts.Root {
				return err
			}
			w.report(err)
			continue
		}
		// Reverse so the first child is popped first.
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
	return nil
}

// visit classifies p and returns the paths to descend into.
func (w *Walker) visit(ctx context.Context, p string) ([]string, error) {
	rel, ok := condition.RelPath(w.opts.Root, p)
	if !ok {
		return nil, &PathError{Path: p, Message: "outside of root"}
	}

	k, err := w.classify(p, rel)
	if err != nil {
		return nil, err
	}

	switch k {
	case kindExcluded:
		logging.Debug("[walker] excluded %s", rel)
		return nil, nil
	case kindProject:
		w.project(ctx, p, rel)
		return nil, nil
	case kindDirectory:
		entries, err := afero.ReadDir(w.opts.Fs, p)
		if err != nil {
			return nil, &PathError{Path: p, Message: "cannot read directory", Cause: err}
		}
		children := make([]string, 0, len(entries))
		for _, e := range entries {
			children = append(children, filepath.Join(p, e.Name()))
		}
		return children, nil
	default:
		return nil, nil
	}
}

func (w *Walker) classify(p, rel string) (kind, error) {
	if pattern.MatchAny(w.opts.Excludes, rel) {
		return kindExcluded, nil
	}
	if w.opts.Condition != nil && w.opts.Condition.Match(w.opts.Fs, w.opts.Root, p) {
		return kindProject, nil
	}

	info, err := w.opts.Fs.Stat(p)
	if err != nil {
		return 0, &PathError{Path: p, Message: "unknown file type", Cause: err}
	}
	switch {
	case info.IsDir():
		return kindDirectory, nil
	case info.Mode().IsRegular():
		return kindFile, nil
	default:
		return 0, &PathError{Path: p, Message: fmt.Sprintf("unknown file type %s", info.Mode().Type())}
	}
}

func (w *Walker) project(ctx context.Context, p, rel string) {
	// "." only exists for pattern matching; the root's own rel path is empty.
	if rel == "." {
		rel = ""
	}
	store.SetLocalPath(w.opts.Store, p, rel)

	values := make([]string, 0, len(w.opts.Fields))
	for _, f := range w.opts.Fields {
		v, err := f.Generator.Expand(ctx, w.opts.Exec, w.opts.Store)
		if err != nil {
			w.report(&FieldError{Path: p, Field: f.Name, Cause: err})
			continue
		}
		values = append(values, v)
	}

	fmt.Fprintln(w.opts.Out, strings.Join(values, "\t"))
}

func (w *Walker) report(err error) {
	if w.opts.ErrOut == nil {
		logging.Warn("%v", err)
		return
	}
	fmt.Fprintln(w.opts.ErrOut, err)
}
