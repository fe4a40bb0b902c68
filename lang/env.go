package lang

import (
	"io"
	"os"
	"sort"
)

// Env is the variable environment: a single flat mutable mapping from
// variable name to the last value bound to it. There is no scope nesting;
// declaring the same name twice overwrites the prior binding.
//
// The driver owns one Env per interactive session or per file run and
// threads it through each top-level evaluation in sequence, so bindings
// made by one expression are visible to later ones.
//
// Env also carries the output sink used by print expressions, so callers
// (tests, the REPL) can capture printed output instead of writing to the
// process's standard output.
type Env struct {
	vars map[string]Value
	out  io.Writer
}

// EnvOption applies a configuration option to an Env.
type EnvOption func(*Env)

// WithOutput returns an option that redirects print output to w.
// If w is nil, print output is discarded.
func WithOutput(w io.Writer) EnvOption {
	return func(env *Env) {
		if w == nil {
			w = io.Discard
		}

		env.out = w
	}
}

// NewEnv creates an empty environment writing print output to standard
// output unless overridden with [WithOutput].
func NewEnv(opts ...EnvOption) *Env {
	env := &Env{
		vars: make(map[string]Value),
		out:  os.Stdout,
	}

	for _, opt := range opts {
		opt(env)
	}

	return env
}

// Define binds name to value, overwriting any prior binding.
func (env *Env) Define(name string, value Value) {
	env.vars[name] = value
}

// Lookup returns the value bound to name.
// Returns (zero, false) if the name is unbound.
func (env *Env) Lookup(name string) (Value, bool) {
	value, ok := env.vars[name]

	return value, ok
}

// Len returns the number of bound variables.
func (env *Env) Len() int {
	return len(env.vars)
}

// Names returns the bound variable names in sorted order.
// This is useful for code completion and introspection.
func (env *Env) Names() []string {
	names := make([]string, 0, len(env.vars))
	for name := range env.vars {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
