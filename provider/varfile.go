package provider

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/bmatcuk/doublestar"
	"github.com/hashicorp/go-hclog"
	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/subst/api"
	"gopkg.in/yaml.v3"
)

// Stdin is the path that denotes that variables are read from standard input
const Stdin = `-`

// LoadVarFile reads a file that contains a mapping of variable names to values. The format is
// determined by the file extension: ".json" is JSON, ".toml" is TOML and anything else, including
// Stdin, is YAML. Values that aren't strings are converted using fmt, except arrays and maps which
// are converted to JSON.
func LoadVarFile(path string, stdin io.Reader) (api.Map, error) {
	var bs []byte
	var err error
	if path == Stdin {
		bs, err = ioutil.ReadAll(stdin)
	} else {
		bs, err = ioutil.ReadFile(path)
	}
	if err != nil {
		return nil, api.Error(api.UnableToReadVarFile, issue.H{`path`: path, `detail`: err.Error()})
	}
	if len(bytes.TrimSpace(bs)) == 0 {
		return api.Map{}, nil
	}

	var data map[string]interface{}
	switch strings.ToLower(filepath.Ext(path)) {
	case `.json`:
		var v interface{}
		dec := json.NewDecoder(bytes.NewReader(bs))
		dec.UseNumber()
		if err = dec.Decode(&v); err != nil {
			return nil, api.Error(api.UnparsableVarFile, issue.H{`path`: path, `detail`: err.Error()})
		}
		var ok bool
		if data, ok = v.(map[string]interface{}); !ok {
			return nil, api.Error(api.JSONNotHash, issue.H{`path`: path})
		}
	case `.toml`:
		data = make(map[string]interface{})
		if _, err = toml.Decode(string(bs), &data); err != nil {
			return nil, api.Error(api.UnparsableVarFile, issue.H{`path`: path, `detail`: err.Error()})
		}
	default:
		var v interface{}
		if err = yaml.Unmarshal(bs, &v); err != nil {
			return nil, api.Error(api.UnparsableVarFile, issue.H{`path`: path, `detail`: err.Error()})
		}
		sv, ok := stringKeys(v).(map[string]interface{})
		if !ok {
			return nil, api.Error(api.YamlNotHash, issue.H{`path`: path})
		}
		data = sv
	}

	m := make(api.Map, len(data))
	for k, v := range data {
		m[k] = toString(v)
	}
	hclog.Default().Named(`provider`).Debug(`loaded variables`, `path`, path, `count`, len(m))
	return m, nil
}

// LoadVarFiles loads and merges all variable files that match the given patterns. Patterns may use
// doublestar globs. A pattern without glob characters is used as a path as is. Files are merged in the
// order given and, for a glob, in lexical order. Later files override earlier ones.
func LoadVarFiles(patterns []string, stdin io.Reader) (api.Map, error) {
	result := api.Map{}
	stdinUsed := false
	for _, pattern := range patterns {
		if pattern == Stdin {
			if stdinUsed {
				return nil, api.Error(api.StdinUsedTwice, nil)
			}
			stdinUsed = true
		}
		paths := []string{pattern}
		if pattern != Stdin && hasGlobMeta(pattern) {
			matches, err := doublestar.Glob(pattern)
			if err != nil {
				return nil, api.Error(api.UnableToReadVarFile, issue.H{`path`: pattern, `detail`: err.Error()})
			}
			if len(matches) == 0 {
				return nil, api.Error(api.NoVarFiles, issue.H{`pattern`: pattern})
			}
			sort.Strings(matches)
			paths = matches
		}
		for _, path := range paths {
			m, err := LoadVarFile(path, stdin)
			if err != nil {
				return nil, err
			}
			for k, v := range m {
				result[k] = v
			}
		}
	}
	return result, nil
}

func hasGlobMeta(pattern string) bool {
	return strings.ContainsAny(pattern, `*?[{`)
}

// stringKeys converts all map[interface{}]interface{} found in the given value into map[string]interface{}
func stringKeys(x interface{}) interface{} {
	switch x := x.(type) {
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(x))
		for k, v := range x {
			m[fmt.Sprint(k)] = stringKeys(v)
		}
		return m
	case map[string]interface{}:
		for k, v := range x {
			x[k] = stringKeys(v)
		}
	case []interface{}:
		for i, v := range x {
			x[i] = stringKeys(v)
		}
	}
	return x
}

// dateLayout is used for timestamps at midnight UTC, which is what a date without time decodes to
const dateLayout = `2006-01-02`

func toString(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return ``
	case string:
		return v
	case json.Number:
		return v.String()
	case time.Time:
		if v.Location() == time.UTC && v.Equal(v.Truncate(24*time.Hour)) {
			return v.Format(dateLayout)
		}
		return v.Format(time.RFC3339Nano)
	case map[string]interface{}, []interface{}, []map[string]interface{}:
		if bs, err := json.Marshal(v); err == nil {
			return string(bs)
		}
	}
	return fmt.Sprint(v)
}
