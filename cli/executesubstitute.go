package cli

import (
	"bytes"
	"io"

	"github.com/lyraproj/subst/session"
)

// ExecuteSubstitute runs the substitute command with the given arguments and returns what it wrote
// on stdout. It's primarily intended for testing purposes
func ExecuteSubstitute(args ...string) (output []byte, err error) {
	return ExecuteSubstituteWithInput(nil, args...)
}

// ExecuteSubstituteWithInput is like ExecuteSubstitute but lets the command read stdin from the given reader
func ExecuteSubstituteWithInput(stdin io.Reader, args ...string) (output []byte, err error) {
	cmdOpts = session.CommandOptions{}
	logLevel = ``
	inputPath = ``
	listNames = false

	cmd := NewCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	if stdin != nil {
		cmd.SetIn(stdin)
	}
	cmd.SetArgs(args)

	err = cmd.Execute()

	return buf.Bytes(), err
}
