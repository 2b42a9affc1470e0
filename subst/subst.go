// Package subst replaces {name} and {"literal"} placeholders in a string.
//
// A placeholder is everything between a '{' and the next '}'. Whitespace around the contents is
// ignored. When the contents are double quoted, the placeholder expands to the text between the
// quotes. Otherwise the contents are a parameter name and the placeholder expands to the value of
// that parameter or to the string "None" if no such parameter exists. The input is scanned once
// and substituted values are never scanned, so a value can safely contain braces.
package subst

import (
	"strings"

	"github.com/lyraproj/subst/api"
)

// Substitute returns a copy of input where all placeholders have been replaced. It never fails.
// Malformed placeholders are either copied verbatim (missing '}') or treated as names.
func Substitute(input string, params api.Parameters) string {
	if strings.IndexByte(input, '{') < 0 {
		return input
	}
	b := strings.Builder{}
	b.Grow(len(input))
	Scan(input, func(s Segment) bool {
		write(&b, s, params)
		return true
	})
	return b.String()
}

// SubstituteMap is like Substitute but uses a plain map as the parameters
func SubstituteMap(input string, params map[string]string) string {
	return Substitute(input, api.Map(params))
}

func write(b *strings.Builder, s Segment, params api.Parameters) {
	if s.Kind == TextSegment {
		b.WriteString(s.Text)
	} else {
		b.WriteString(Resolve(s.Text, params))
	}
}

// A Template is a scanned input that can be substituted many times. It is immutable and
// safe for concurrent use.
type Template struct {
	source   string
	segments []Segment
}

// Compile scans the given input and returns the resulting Template
func Compile(input string) *Template {
	t := &Template{source: input}
	Scan(input, func(s Segment) bool {
		t.segments = append(t.segments, s)
		return true
	})
	return t
}

// Substitute produces the same result as the package level Substitute function for the
// source of this template
func (t *Template) Substitute(params api.Parameters) string {
	b := strings.Builder{}
	b.Grow(len(t.source))
	for _, s := range t.segments {
		write(&b, s, params)
	}
	return b.String()
}

// Names returns the distinct parameter names used by the template in the order they first appear
func (t *Template) Names() []string {
	var names []string
	seen := make(map[string]bool)
	for _, s := range t.segments {
		if s.Kind != PlaceholderSegment {
			continue
		}
		if kind, name := Classify(s.Text); kind == Variable && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

// Missing returns the distinct parameter names used by the template that the given
// parameters cannot provide
func (t *Template) Missing(params api.Parameters) []string {
	var missing []string
	for _, name := range t.Names() {
		if params != nil {
			if _, ok := params.Get(name); ok {
				continue
			}
		}
		missing = append(missing, name)
	}
	return missing
}

// String returns the source of the template
func (t *Template) String() string {
	return t.source
}

// Names returns the distinct parameter names used in input in the order they first appear.
// Literal placeholders are not included.
func Names(input string) []string {
	return Compile(input).Names()
}

// Missing returns the distinct parameter names used in input that would expand to api.None
// with the given parameters
func Missing(input string, params api.Parameters) []string {
	return Compile(input).Missing(params)
}
