package lisp

import "io"

// Config is a function that configures a root environment before its stdin
// reader is created.
type Config func(env *LEnv)

// WithStdin returns a Config that makes the read builtin consume lines from
// r instead of the default, os.Stdin.
func WithStdin(r io.Reader) Config {
	return func(env *LEnv) {
		env.Stdin = r
	}
}
