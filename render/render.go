// Package render writes substitution results in the formats understood by the CLI and the server.
package render

import (
	"encoding/json"
	"io"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/subst/api"
	"gopkg.in/yaml.v3"
)

// Name is the name of the option value that describes how to render output
type Name string

const (
	// YAML render output in YAML
	YAML = Name(`yaml`)
	// JSON render output in JSON
	JSON = Name(`json`)
	// Text render output as plain text
	Text = Name(`s`)
)

// A Result is the outcome of substituting one input
type Result struct {
	Input  string `json:"input" yaml:"input"`
	Output string `json:"output" yaml:"output"`
}

// Render writes results on out using the given rendering. Text writes each output followed by
// a newline. JSON and YAML write a single result as a string and multiple results as a list
// of input/output pairs.
func Render(renderAs Name, results []Result, out io.Writer) error {
	var err error
	switch renderAs {
	case Text, ``:
		for _, r := range results {
			if _, err = io.WriteString(out, r.Output+"\n"); err != nil {
				break
			}
		}
	case JSON:
		enc := json.NewEncoder(out)
		enc.SetEscapeHTML(false)
		err = enc.Encode(value(results))
	case YAML:
		var bs []byte
		if bs, err = yaml.Marshal(value(results)); err == nil {
			_, err = out.Write(bs)
		}
	default:
		err = api.Error(api.UnknownRendering, issue.H{`name`: string(renderAs)})
	}
	return err
}

func value(results []Result) interface{} {
	if len(results) == 1 {
		return results[0].Output
	}
	return results
}

// Names writes parameter names on out using the given rendering. Text writes one name per line.
// JSON and YAML write a list.
func Names(renderAs Name, names []string, out io.Writer) error {
	if names == nil {
		names = []string{}
	}
	var err error
	switch renderAs {
	case Text, ``:
		for _, n := range names {
			if _, err = io.WriteString(out, n+"\n"); err != nil {
				break
			}
		}
	case JSON:
		enc := json.NewEncoder(out)
		enc.SetEscapeHTML(false)
		err = enc.Encode(names)
	case YAML:
		var bs []byte
		if bs, err = yaml.Marshal(names); err == nil {
			_, err = out.Write(bs)
		}
	default:
		err = api.Error(api.UnknownRendering, issue.H{`name`: string(renderAs)})
	}
	return err
}
