// Package api contains interfaces and constants that are used throughout the subst code base
package api

// None is the text that a variable placeholder expands to when its name is not found
// in the parameters.
const None = `None`
