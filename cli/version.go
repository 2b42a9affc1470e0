package cli

import "fmt"

var (
	// BuildTag set at build time, empty if not a tagged version
	BuildTag string
	// BuildTime set at build time
	BuildTime string
	// BuildSHA set at build time
	BuildSHA string
)

type version struct {
	tag  string
	time string
	sha  string
}

func getVersion() *version {
	tag := BuildTag
	if tag == `` {
		tag = `dirty`
	}
	return &version{tag: tag, time: BuildTime, sha: BuildSHA}
}

// String returns <Git SHA>-<Git Tag>, followed by the build time in parentheses when it is known
func (v *version) String() string {
	s := fmt.Sprintf(`%s-%s`, v.sha, v.tag)
	if v.time != `` {
		s += ` (` + v.time + `)`
	}
	return s
}
