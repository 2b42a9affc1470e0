package cli

import (
	"fmt"
	"io"
	"io/ioutil"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/subst/api"
	"github.com/lyraproj/subst/provider"
	"github.com/lyraproj/subst/session"
	"github.com/spf13/cobra"
)

var helpTemplate = `Description:
  {{rpad .Long 10}}

Usage:{{if .Runnable}}{{if .HasAvailableFlags}}
  {{appendIfNotPresent .UseLine "[flags]"}}{{else}}{{.UseLine}}{{end}}{{end}}{{if gt .Aliases 0}}

Aliases:
  {{.NameAndAliases}}{{end}}{{if .HasExample }}

Examples:
  {{ .Example }}{{end}}{{ if .HasAvailableSubCommands}}

Available Commands:{{range .Commands}}{{if .IsAvailableCommand}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{ if .HasAvailableLocalFlags}}

Flags:
{{.LocalFlags.FlagUsages | trimRightSpace}}{{end}}{{ if .HasAvailableInheritedFlags}}

Global Flags:
{{.InheritedFlags.FlagUsages | trimRightSpace}}{{end}}{{if .HasHelpSubCommands}}

Additional help topics:{{range .Commands}}{{if .IsHelpCommand}}
{{rpad .CommandPath .CommandPathPadding}} {{.Short}}{{end}}{{end}}{{end}}
`

var (
	cmdOpts   session.CommandOptions
	logLevel  string
	inputPath string
	listNames bool
)

// NewCommand creates the substitute Command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "substitute <text> [<text> ...]",
		Short: `Substitute - Replace {name} and {"literal"} placeholders in text`,
		Long: `Substitute - Replace {name} and {"literal"} placeholders in text.
    A {name} placeholder expands to the value of the parameter "name", or to None when no such
    parameter exists. A {"literal"} placeholder expands to the text between the quotes.`,
		Example: `substitute --var id=x 'some user string: {id}'
  substitute --vars params.yaml --file template.txt`,
		Version: fmt.Sprintf("%v", getVersion()),
		PreRun:  initialize,
		RunE:    cmdSubstitute,
		Args:    checkArgs,

		// main reports the error
		SilenceErrors: true}

	flags := cmd.Flags()
	flags.StringVar(&logLevel, `loglevel`, `error`,
		`error/warn/info/debug`)
	flags.StringArrayVar(&cmdOpts.Variables, `var`, nil,
		`a key:value or key=value that becomes a parameter`)
	flags.StringArrayVar(&cmdOpts.VarPaths, `vars`, nil,
		`path or glob of JSON, YAML or TOML files that contain key-value mappings to become parameters, - for stdin`)
	flags.BoolVar(&cmdOpts.UseEnv, `env`, false,
		`use environment variables as parameters`)
	flags.StringVar(&cmdOpts.EnvPrefix, `env-prefix`, ``,
		`prefix prepended to a parameter name when looking it up in the environment (implies --env)`)
	flags.BoolVar(&cmdOpts.Strict, `strict`, false,
		`fail instead of substituting None when a parameter is missing`)
	flags.StringVar(&cmdOpts.RenderAs, `render-as`, ``,
		`s/json/yaml: Specify the output format of the results; s means plain text`)
	flags.StringVar(&inputPath, `file`, ``,
		`read the text to substitute from a file, - for stdin`)
	flags.BoolVar(&listNames, `list`, false,
		`list the names of the parameters used by the text instead of substituting`)

	cmd.SetHelpTemplate(helpTemplate)
	return cmd
}

func checkArgs(cmd *cobra.Command, args []string) error {
	if inputPath != `` {
		return nil
	}
	return cobra.MinimumNArgs(1)(cmd, args)
}

func initialize(_ *cobra.Command, _ []string) {
	issue.IncludeStacktrace(logLevel == `debug`)
	hclog.DefaultOptions = &hclog.LoggerOptions{
		Name:  `substitute`,
		Level: hclog.LevelFromString(logLevel),
	}
}

func cmdSubstitute(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	if cmdOpts.EnvPrefix != `` {
		cmdOpts.UseEnv = true
	}

	inputs := args
	if inputPath != `` {
		text, err := readInput(cmd.InOrStdin())
		if err != nil {
			return err
		}
		inputs = append([]string{text}, args...)
	}

	if listNames {
		return session.ListAndRender(&cmdOpts, inputs, cmd.OutOrStdout())
	}

	params, err := session.CreateParameters(&cmdOpts, cmd.InOrStdin())
	if err != nil {
		return err
	}
	return session.SubstituteAndRender(params, &cmdOpts, inputs, cmd.OutOrStdout())
}

// readInput reads the text given with --file. A single trailing newline is dropped since
// the text rendering adds one.
func readInput(stdin io.Reader) (string, error) {
	var bs []byte
	var err error
	if inputPath == provider.Stdin {
		for _, vp := range cmdOpts.VarPaths {
			if vp == provider.Stdin {
				return ``, api.Error(api.StdinUsedTwice, nil)
			}
		}
		bs, err = ioutil.ReadAll(stdin)
	} else {
		bs, err = ioutil.ReadFile(inputPath)
	}
	if err != nil {
		return ``, api.Error(api.UnableToReadInput, issue.H{`path`: inputPath, `detail`: err.Error()})
	}
	s := string(bs)
	if strings.HasSuffix(s, "\r\n") {
		s = s[:len(s)-2]
	} else if strings.HasSuffix(s, "\n") {
		s = s[:len(s)-1]
	}
	return s, nil
}
