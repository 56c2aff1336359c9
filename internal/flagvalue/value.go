// Package flagvalue provides flag.Value implementations.
package flagvalue

import "flag"

// Getter is a constraint satisfied by pointers to types
// which implement flag.Getter.
type Getter[T any] interface {
	*T
	flag.Getter
}

// String is a plain string flag.Getter.
// Use it with [List] to accept repeated string flags.
//
//	var names []flagvalue.String
//	flag.Var(flagvalue.ListOf(&names), "name", ...)
type String string

var _ flag.Getter = (*String)(nil)

// Get returns the string.
func (s *String) Get() any { return string(*s) }

// String returns the string.
func (s *String) String() string { return string(*s) }

// Set receives a value for the flag.
func (s *String) Set(v string) error {
	*s = String(v)
	return nil
}

// Strings converts a list of String values into plain strings.
func Strings(vs []String) []string {
	if len(vs) == 0 {
		return nil
	}
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = string(v)
	}
	return out
}
