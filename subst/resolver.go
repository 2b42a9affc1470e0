package subst

import (
	"strings"

	"github.com/lyraproj/subst/api"
)

// Kind is the classification of a placeholder
type Kind int

const (
	// Variable is a placeholder that names a parameter
	Variable = Kind(iota)

	// Literal is a placeholder that contains a double quoted string
	Literal
)

// Classify trims the inner text of a placeholder and determines its Kind. The returned string is
// the name of a Variable or the text between the quotes of a Literal. No escape processing takes
// place, so a quote inside a literal is just a character.
func Classify(inner string) (Kind, string) {
	s := strings.TrimSpace(inner)
	if n := len(s); n >= 2 && s[0] == '"' && s[n-1] == '"' {
		return Literal, s[1 : n-1]
	}
	return Variable, s
}

// Resolve returns the text that should replace a placeholder with the given inner text. A variable
// that isn't found in the parameters resolves to api.None.
func Resolve(inner string, params api.Parameters) string {
	kind, s := Classify(inner)
	if kind == Literal {
		return s
	}
	if params != nil {
		if v, ok := params.Get(s); ok {
			return v
		}
	}
	return api.None
}
