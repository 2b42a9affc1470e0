package cli_test

import (
	"strings"
	"testing"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/subst/api"
	"github.com/lyraproj/subst/cli"
	"github.com/stretchr/testify/require"
)

func TestSubstitute_var(t *testing.T) {
	result, err := cli.ExecuteSubstitute(`--var`, `id=x`, `some user string: {id}`)
	require.NoError(t, err)
	require.Equal(t, "some user string: x\n", string(result))
}

func TestSubstitute_literal(t *testing.T) {
	result, err := cli.ExecuteSubstitute(`--var`, `id=x`, `some user string: {  "id"  }`)
	require.NoError(t, err)
	require.Equal(t, "some user string: id\n", string(result))
}

func TestSubstitute_missing(t *testing.T) {
	result, err := cli.ExecuteSubstitute(`some user string: {id}`)
	require.NoError(t, err)
	require.Equal(t, "some user string: None\n", string(result))
}

func TestSubstitute_multipleJSON(t *testing.T) {
	result, err := cli.ExecuteSubstitute(`--var`, `a:1`, `--render-as`, `json`, `{a}`, `{b}`)
	require.NoError(t, err)
	require.JSONEq(t, `[{"input":"{a}","output":"1"},{"input":"{b}","output":"None"}]`, string(result))
}

func TestSubstitute_file(t *testing.T) {
	result, err := cli.ExecuteSubstitute(`--vars`, `testdata/params.yaml`, `--file`, `testdata/letter.txt`)
	require.NoError(t, err)
	require.Equal(t, "Dear Ada,\nyour order 42 ships {soon}.\n", string(result))
}

func TestSubstitute_fileFromStdin(t *testing.T) {
	result, err := cli.ExecuteSubstituteWithInput(strings.NewReader("hi {who}\n"), `--var`, `who=you`, `--file`, `-`)
	require.NoError(t, err)
	require.Equal(t, "hi you\n", string(result))
}

func TestSubstitute_varsFromStdin(t *testing.T) {
	result, err := cli.ExecuteSubstituteWithInput(strings.NewReader(`who: stdin`), `--vars`, `-`, `hi {who}`)
	require.NoError(t, err)
	require.Equal(t, "hi stdin\n", string(result))
}

func TestSubstitute_stdinTwice(t *testing.T) {
	_, err := cli.ExecuteSubstituteWithInput(strings.NewReader(``), `--vars`, `-`, `--file`, `-`)
	require.Error(t, err)
	require.Equal(t, issue.Code(api.StdinUsedTwice), err.(issue.Reported).Code())
}

func TestSubstitute_strict(t *testing.T) {
	result, err := cli.ExecuteSubstitute(`--strict`, `{a} {"b"}`)
	require.Error(t, err)
	require.Contains(t, err.Error(), `[a]`)
	require.Empty(t, result)
}

func TestSubstitute_list(t *testing.T) {
	result, err := cli.ExecuteSubstitute(`--list`, `--file`, `testdata/letter.txt`, `{extra}`)
	require.NoError(t, err)
	require.Equal(t, "name\norder\nextra\n", string(result))
}

func TestSubstitute_env(t *testing.T) {
	t.Setenv(`CLI_TEST_who`, `env`)
	result, err := cli.ExecuteSubstitute(`--env-prefix`, `CLI_TEST_`, `hi {who}`)
	require.NoError(t, err)
	require.Equal(t, "hi env\n", string(result))
}

func TestSubstitute_badVar(t *testing.T) {
	_, err := cli.ExecuteSubstitute(`--var`, `novalue`, `{a}`)
	require.Error(t, err)
	require.Contains(t, err.Error(), `unable to parse variable 'novalue'`)
}

func TestSubstitute_noArgs(t *testing.T) {
	_, err := cli.ExecuteSubstitute()
	require.Error(t, err)
}

func TestSubstitute_unknownRendering(t *testing.T) {
	_, err := cli.ExecuteSubstitute(`--render-as`, `binary`, `{a}`)
	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown rendering 'binary'`)
}

func TestSubstitute_missingFile(t *testing.T) {
	_, err := cli.ExecuteSubstitute(`--file`, `testdata/nonexistent.txt`)
	require.Error(t, err)
	require.Equal(t, issue.Code(api.UnableToReadInput), err.(issue.Reported).Code())
	require.Contains(t, err.Error(), `unable to read input file 'testdata/nonexistent.txt'`)
}
