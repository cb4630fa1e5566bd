// Package template expands the small "$" language used in generator and
// behavior strings.
//
// Syntax:
//
//	$$              a literal '$'
//	${NAME}         value of NAME, empty when unset
//	$(FN ARG ...)   result of built-in function FN, empty on error
//
// Expansion never fails. An unterminated ${ or $( ends expansion and the
// rest of the input is dropped. A '$' followed by any other character is
// dropped and the character is kept.
package template

import (
	"strings"

	"github.com/tacogips/depot/internal/logging"
)

// Lookup resolves variable names during expansion.
type Lookup interface {
	// Get returns the value of key and whether it is set.
	Get(key string) (string, bool)
}

// MapLookup adapts a plain map to Lookup.
type MapLookup map[string]string

// Get implements Lookup.
func (m MapLookup) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Expand evaluates tmpl against vars.
func Expand(vars Lookup, tmpl string) string {
	var b strings.Builder
	rest := tmpl

	for len(rest) > 0 {
		idx := strings.IndexByte(rest, '$')
		if idx < 0 {
			b.WriteString(rest)
			break
		}
		b.WriteString(rest[:idx])
		rest = rest[idx+1:]
		if rest == "" {
			break
		}

		switch rest[0] {
		case '$':
			b.WriteByte('$')
			rest = rest[1:]
		case '{':
			name, after, ok := strings.Cut(rest[1:], "}")
			if !ok {
				return b.String()
			}
			if v, found := vars.Get(name); found {
				b.WriteString(v)
			}
			rest = after
		case '(':
			content, after, ok := strings.Cut(rest[1:], ")")
			if !ok {
				return b.String()
			}
			v, err := Call(vars, strings.Fields(content))
			if err != nil {
				logging.Debug("[template] $(%s): %v", content, err)
			} else {
				b.WriteString(v)
			}
			rest = after
		}
	}

	return b.String()
}
