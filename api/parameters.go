package api

// Parameters is the name to value lookup used when expanding variable placeholders. Implementations
// must be safe for concurrent reads.
type Parameters interface {
	// Get returns the value for the given name and true, or an empty string and false when the name
	// is unknown.
	Get(name string) (string, bool)
}

// Map is a Parameters backed by a Go map
type Map map[string]string

// Get returns the value for the given name
func (m Map) Get(name string) (value string, ok bool) {
	value, ok = m[name]
	return
}

// Func is a Parameters backed by a function
type Func func(name string) (string, bool)

// Get calls the function
func (f Func) Get(name string) (string, bool) {
	return f(name)
}

// Chain is a Parameters that consults its members in order. The first member that knows
// the name provides the value. Nil members are skipped.
type Chain []Parameters

// Get returns the first found value for the given name
func (c Chain) Get(name string) (string, bool) {
	for _, p := range c {
		if p == nil {
			continue
		}
		if v, ok := p.Get(name); ok {
			return v, true
		}
	}
	return ``, false
}
