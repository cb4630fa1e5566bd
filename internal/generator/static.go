package generator

import (
	"github.com/tacogips/depot/internal/template"
)

// StaticKind identifies a Static variant.
type StaticKind int

const (
	// StaticLiteral returns Value unchanged.
	StaticLiteral StaticKind = iota
	// StaticTemplate expands Value with the template language.
	StaticTemplate
)

// Static is a generator that can be expanded without spawning processes.
// It is used where no shell exists yet, such as the shell settings themselves.
type Static struct {
	Kind  StaticKind
	Value string
}

// NewStaticLiteral returns a literal Static.
func NewStaticLiteral(value string) Static {
	return Static{Kind: StaticLiteral, Value: value}
}

// NewStaticTemplate returns a template Static.
func NewStaticTemplate(tmpl string) Static {
	return Static{Kind: StaticTemplate, Value: tmpl}
}

// Expand produces the value.
func (g Static) Expand(vars template.Lookup) string {
	if g.Kind == StaticTemplate {
		return template.Expand(vars, g.Value)
	}
	return g.Value
}

// Generator widens g to a Generator.
func (g Static) Generator() Generator {
	if g.Kind == StaticTemplate {
		return NewTemplate(g.Value)
	}
	return NewLiteral(g.Value)
}
