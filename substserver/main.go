// Command substserver starts a REST server that substitutes placeholders in text
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/hashicorp/go-hclog"
	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/subst/session"
	"github.com/spf13/cobra"
)

func main() {
	cmd := newCommand()
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

var (
	logLevel string
	addr     string
	cmdOpts  session.CommandOptions
	port     int
)

func newCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "substserver",
		Short: `Server - Start a substitution REST server`,
		Long: `Server - Start a REST server that replaces {name} and {"literal"} placeholders in text.
  Responds to POST and GET under the /substitute endpoint and to GET under the /names endpoint`,
		PreRun:        initialize,
		RunE:          startServer,
		SilenceErrors: true,
		Args:          cobra.NoArgs}

	flags := cmd.Flags()
	flags.StringVar(&logLevel, `loglevel`, `error`, `error/warn/info/debug`)
	flags.StringArrayVar(&cmdOpts.VarPaths, `vars`, nil,
		`path or glob of JSON, YAML or TOML files that contain key-value mappings to become parameters`)
	flags.StringArrayVar(&cmdOpts.Variables, `var`, nil,
		`a key:value or key=value that becomes a parameter`)
	flags.BoolVar(&cmdOpts.UseEnv, `env`, false, `use environment variables as parameters`)
	flags.StringVar(&cmdOpts.EnvPrefix, `env-prefix`, ``,
		`prefix prepended to a parameter name when looking it up in the environment (implies --env)`)
	flags.BoolVar(&cmdOpts.Strict, `strict`, false,
		`respond with 400 instead of substituting None when a parameter is missing`)
	flags.StringVar(&addr, `addr`, ``, `ip address to listen on`)
	flags.IntVar(&port, `port`, 8080, `port number to listen to`)
	return cmd
}

func initialize(_ *cobra.Command, _ []string) {
	issue.IncludeStacktrace(logLevel == `debug`)
	hclog.DefaultOptions = &hclog.LoggerOptions{
		Name:  `substserver`,
		Level: hclog.LevelFromString(logLevel),
	}
}

func startServer(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true
	if cmdOpts.EnvPrefix != `` {
		cmdOpts.UseEnv = true
	}
	params, err := session.CreateParameters(&cmdOpts, cmd.InOrStdin())
	if err != nil {
		return err
	}

	e := CreateRouter(params, cmdOpts.Strict)
	e.Logger.SetOutput(cmd.OutOrStdout())
	hclog.Default().Named(`server`).Info(`starting`, `addr`, addr, `port`, port)
	return e.Start(addr + `:` + strconv.Itoa(port))
}
