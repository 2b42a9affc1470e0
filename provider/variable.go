package provider

import (
	"regexp"
	"strings"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/subst/api"
)

// varSplit splits on either ':' or '=' but not on '::', ':=', '=:' or '=='
var varSplit = regexp.MustCompile(`\A(.*?[^:=])[:=]([^:=].*)\z`)

// ParseVariable splits a command line variable given as key=value or key:value. The key is trimmed
// and the value is returned verbatim.
func ParseVariable(s string) (key, value string, err error) {
	m := varSplit.FindStringSubmatch(s)
	if m == nil {
		return ``, ``, api.Error(api.UnparsableVariable, issue.H{`variable`: s})
	}
	key = strings.TrimSpace(m[1])
	if key == `` {
		return ``, ``, api.Error(api.UnparsableVariable, issue.H{`variable`: s})
	}
	return key, m[2], nil
}

// ParseVariables parses all given variables into a map. When a key is repeated, the last
// value wins.
func ParseVariables(vs []string) (api.Map, error) {
	m := make(api.Map, len(vs))
	for _, s := range vs {
		k, v, err := ParseVariable(s)
		if err != nil {
			return nil, err
		}
		m[k] = v
	}
	return m, nil
}
