// Package condition decides whether a directory is a project.
package condition

import (
	"encoding/json"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/tacogips/depot/internal/logging"
	"github.com/tacogips/depot/internal/pattern"
)

// Mode selects how an Entry's pattern is applied.
type Mode int

const (
	// Parent is decisive when any direct child of the directory matches.
	Parent Mode = iota
	// Exact is decisive when the directory itself matches.
	Exact
	// Ignore vetoes the directory when it matches.
	Ignore
)

// String returns the configuration name of the mode.
func (m Mode) String() string {
	switch m {
	case Parent:
		return "parent"
	case Exact:
		return "exact"
	case Ignore:
		return "ignore"
	default:
		return "unknown"
	}
}

// ParseMode parses a mode name, ignoring case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "parent":
		return Parent, nil
	case "exact":
		return Exact, nil
	case "ignore":
		return Ignore, nil
	default:
		return 0, fmt.Errorf("unknown condition mode %q (expected parent, exact or ignore)", s)
	}
}

// UnmarshalJSON decodes a mode name.
func (m *Mode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("condition mode: %w", err)
	}
	v, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// UnmarshalYAML decodes a mode name.
func (m *Mode) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("condition mode: %w", err)
	}
	v, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Entry is one rule of a Condition.
type Entry struct {
	Mode    Mode            `json:"mode" yaml:"mode"`
	Pattern pattern.Pattern `json:"pattern" yaml:"pattern"`
}

// Condition is an ordered list of entries. The first decisive entry wins and
// a directory no entry decides on is not a project.
type Condition []Entry

// Default returns the condition used when none is configured: a directory
// containing a .git entry is a project.
func Default() Condition {
	return Condition{{Mode: Parent, Pattern: pattern.NewGlob("**/.git")}}
}

type compiledEntry struct {
	mode    Mode
	matcher pattern.Matcher
}

// Compiled is a Condition ready for matching.
type Compiled struct {
	entries []compiledEntry
}

// Compile compiles every entry pattern.
func Compile(c Condition) (*Compiled, error) {
	entries := make([]compiledEntry, 0, len(c))
	for _, e := range c {
		m, err := pattern.Compile(e.Pattern)
		if err != nil {
			return nil, err
		}
		entries = append(entries, compiledEntry{mode: e.Mode, matcher: m})
	}
	return &Compiled{entries: entries}, nil
}

// Match reports whether dir, a path under root on fs, is a project. Patterns
// are matched against slash-separated paths relative to root; root itself
// is ".".
func (c *Compiled) Match(fs afero.Fs, root, dir string) bool {
	rel, ok := RelPath(root, dir)
	if !ok {
		return false
	}

	for _, e := range c.entries {
		switch e.mode {
		case Parent:
			if c.matchChild(fs, dir, rel, e.matcher) {
				return true
			}
		case Exact:
			if e.matcher.Match(rel) {
				return true
			}
		case Ignore:
			if e.matcher.Match(rel) {
				return false
			}
		}
	}
	return false
}

func (c *Compiled) matchChild(fs afero.Fs, dir, rel string, m pattern.Matcher) bool {
	children, err := afero.ReadDir(fs, dir)
	if err != nil {
		logging.Debug("[condition] cannot read %s: %v", dir, err)
		return false
	}
	for _, child := range children {
		if m.Match(JoinRel(rel, child.Name())) {
			return true
		}
	}
	return false
}

// RelPath returns p relative to root in slash form. The second result is
// false when p is not under root.
func RelPath(root, p string) (string, bool) {
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return "", false
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", false
	}
	return rel, true
}

// JoinRel appends name to a root-relative slash path.
func JoinRel(rel, name string) string {
	if rel == "." || rel == "" {
		return name
	}
	return path.Join(rel, name)
}
