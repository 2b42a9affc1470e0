package api

import (
	"fmt"
	"strings"

	"github.com/lyraproj/issue/issue"
)

const (
	JSONNotHash         = `SUBST_JSON_NOT_HASH`
	MissingParameter    = `SUBST_MISSING_PARAMETER`
	NoVarFiles          = `SUBST_NO_VAR_FILES`
	StdinUsedTwice      = `SUBST_STDIN_USED_TWICE`
	UnableToReadInput   = `SUBST_UNABLE_TO_READ_INPUT`
	UnableToReadVarFile = `SUBST_UNABLE_TO_READ_VAR_FILE`
	UnknownRendering    = `SUBST_UNKNOWN_RENDERING`
	UnparsableVariable  = `SUBST_UNPARSABLE_VARIABLE`
	UnparsableVarFile   = `SUBST_UNPARSABLE_VAR_FILE`
	YamlNotHash         = `SUBST_YAML_NOT_HASH`
)

func joinNames(v interface{}) string {
	if names, ok := v.([]string); ok {
		return strings.Join(names, `, `)
	}
	return fmt.Sprintf("%v", v)
}

func init() {
	issue.Hard(JSONNotHash, `file '%{path}' does not contain a JSON object`)

	issue.Hard2(MissingParameter, `no value found for parameter(s) [%{names}]`, issue.HF{`names`: joinNames})

	issue.Hard(NoVarFiles, `no variable files matched '%{pattern}'`)

	issue.Hard(StdinUsedTwice, `standard input can be used for either the input text or the variables, not both`)

	issue.Hard(UnableToReadInput, `unable to read input file '%{path}': %{detail}`)

	issue.Hard(UnableToReadVarFile, `unable to read variable file '%{path}': %{detail}`)

	issue.Hard(UnknownRendering, `unknown rendering '%{name}'`)

	issue.Hard(UnparsableVariable, `unable to parse variable '%{variable}'`)

	issue.Hard(UnparsableVarFile, `unable to parse variable file '%{path}': %{detail}`)

	issue.Hard(YamlNotHash, `file '%{path}' does not contain a YAML hash`)
}

// Error creates an issue.Reported with error severity for the given code and arguments
func Error(code issue.Code, args issue.H) issue.Reported {
	return issue.NewReported(code, issue.SeverityError, args, nil)
}
