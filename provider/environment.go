package provider

import (
	"os"

	"github.com/lyraproj/subst/api"
)

// Environment returns Parameters that look up names in the process environment. A non empty
// prefix is prepended to the name, so with prefix "APP_" the name "port" is found in the
// environment variable "APP_port".
func Environment(prefix string) api.Parameters {
	return api.Func(func(name string) (string, bool) {
		if name == `` {
			return ``, false
		}
		return os.LookupEnv(prefix + name)
	})
}
