// Package session contains the logic shared by the substitute command and the substitution server
package session

import (
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/subst/api"
	"github.com/lyraproj/subst/provider"
	"github.com/lyraproj/subst/render"
	"github.com/lyraproj/subst/subst"
)

// A CommandOptions contains the options given to the CLI substitute command or the server.
type CommandOptions struct {
	// Variables are key=value or key:value strings that become parameters
	Variables []string

	// VarPaths are paths or globs of JSON, YAML or TOML files containing parameters
	VarPaths []string

	// UseEnv makes the process environment a parameter source
	UseEnv bool

	// EnvPrefix is prepended to a parameter name when it is looked up in the environment
	EnvPrefix string

	// Strict turns a parameter that cannot be found into an error instead of "None"
	Strict bool

	// RenderAs is the name of the desired rendering
	RenderAs string
}

// CreateParameters creates the parameters described by the given options. Variables take
// precedence over variable files which in turn take precedence over the environment.
func CreateParameters(opts *CommandOptions, stdin io.Reader) (api.Parameters, error) {
	vars, err := provider.ParseVariables(opts.Variables)
	if err != nil {
		return nil, err
	}
	files, err := provider.LoadVarFiles(opts.VarPaths, stdin)
	if err != nil {
		return nil, err
	}
	params := api.Chain{vars, files}
	if opts.UseEnv {
		params = append(params, provider.Environment(opts.EnvPrefix))
	}
	hclog.Default().Named(`session`).Debug(`parameters created`,
		`variables`, len(vars), `from_files`, len(files), `env`, opts.UseEnv)
	return params, nil
}

// Substitute substitutes the template using the given parameters. When strict is true and
// the template uses parameters that cannot be found, an error naming them is returned.
func Substitute(t *subst.Template, params api.Parameters, strict bool) (string, error) {
	if strict {
		if missing := t.Missing(params); len(missing) > 0 {
			return ``, api.Error(api.MissingParameter, issue.H{`names`: missing})
		}
	}
	return t.Substitute(params), nil
}

// SubstituteAndRender substitutes all inputs and renders the result on the given io.Writer in
// accordance with the `RenderAs` option. Nothing is written if a substitution fails.
func SubstituteAndRender(params api.Parameters, opts *CommandOptions, inputs []string, out io.Writer) error {
	results := make([]render.Result, len(inputs))
	for i, input := range inputs {
		output, err := Substitute(subst.Compile(input), params, opts.Strict)
		if err != nil {
			return err
		}
		results[i] = render.Result{Input: input, Output: output}
	}
	return render.Render(render.Name(opts.RenderAs), results, out)
}

// ListAndRender renders the distinct parameter names used by all inputs in the order they first appear
func ListAndRender(opts *CommandOptions, inputs []string, out io.Writer) error {
	var names []string
	seen := make(map[string]bool)
	for _, input := range inputs {
		for _, n := range subst.Names(input) {
			if !seen[n] {
				seen[n] = true
				names = append(names, n)
			}
		}
	}
	return render.Names(render.Name(opts.RenderAs), names, out)
}
