package api_test

import (
	"fmt"
	"testing"

	"github.com/lyraproj/subst/api"
	"github.com/stretchr/testify/require"
)

func ExampleChain() {
	params := api.Chain{api.Map{`a`: `from first`}, api.Map{`a`: `from second`, `b`: `from second`}}
	a, _ := params.Get(`a`)
	b, _ := params.Get(`b`)
	_, found := params.Get(`c`)
	fmt.Println(a, `|`, b, `|`, found)
	// Output: from first | from second | false
}

func TestMap_nil(t *testing.T) {
	var m api.Map
	_, ok := m.Get(`a`)
	require.False(t, ok)
}

func TestMap_emptyValueIsFound(t *testing.T) {
	v, ok := api.Map{`a`: ``}.Get(`a`)
	require.True(t, ok)
	require.Equal(t, ``, v)
}

func TestChain_emptyValueStops(t *testing.T) {
	v, ok := api.Chain{api.Map{`a`: ``}, api.Map{`a`: `later`}}.Get(`a`)
	require.True(t, ok)
	require.Equal(t, ``, v)
}

func TestChain_skipsNil(t *testing.T) {
	v, ok := api.Chain{nil, api.Func(func(name string) (string, bool) { return name + `!`, true })}.Get(`x`)
	require.True(t, ok)
	require.Equal(t, `x!`, v)
}

func TestChain_empty(t *testing.T) {
	_, ok := api.Chain{}.Get(`x`)
	require.False(t, ok)
}

func TestError(t *testing.T) {
	err := api.Error(api.NoVarFiles, map[string]interface{}{`pattern`: `*.yaml`})
	require.Equal(t, `SUBST_NO_VAR_FILES`, string(err.Code()))
	require.Contains(t, err.Error(), `no variable files matched '*.yaml'`)
}
