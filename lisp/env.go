package lisp

import (
	"bufio"
	"io"
	"os"
)

// LEnv is an execution environment mapping names to bound values.  Variables
// and user-defined functions share the single namespace.  A root environment
// is created once per interpreter session with the prelude pre-bound; lambda
// invocations evaluate against a copy so a callee can shadow or overwrite
// bindings without affecting the caller.
type LEnv struct {
	Scope map[string]*LVal

	// Stdin is the line source used by the read builtin.  It defaults to
	// os.Stdin and can be replaced through WithStdin.
	Stdin io.Reader

	// stdin buffers Stdin and is created once per session, in NewEnv, so
	// every Copy shares it and input buffered by one copy stays visible to
	// the rest of the session.
	stdin *bufio.Reader
}

// NewEnv initializes and returns a new root environment with the prelude
// pre-bound.
func NewEnv(cfg ...Config) *LEnv {
	env := &LEnv{Scope: make(map[string]*LVal)}
	env.AddBuiltins()
	for _, fn := range cfg {
		fn(env)
	}
	in := env.Stdin
	if in == nil {
		in = os.Stdin
	}
	env.stdin = bufio.NewReader(in)
	return env
}

// Copy returns a new LEnv with a copy of env.Scope.  Bound values are copied
// on Put and Get so the scopes share no mutable state.
func (env *LEnv) Copy() *LEnv {
	if env == nil {
		return nil
	}
	cp := &LEnv{}
	*cp = *env
	cp.Scope = make(map[string]*LVal, len(env.Scope))
	for k, v := range env.Scope {
		cp.Scope[k] = v
	}
	return cp
}

// Get returns a copy of the value bound to k in env.
func (env *LEnv) Get(k string) (*LVal, bool) {
	v, ok := env.Scope[k]
	if !ok {
		return nil, false
	}
	return v.Copy(), true
}

// Put binds a copy of v to k in env, overwriting any prior binding.
func (env *LEnv) Put(k string, v *LVal) {
	env.Scope[k] = v.Copy()
}

// AddBuiltins binds the default prelude operations to their names in env.
func (env *LEnv) AddBuiltins() {
	for _, def := range langBuiltins {
		env.Scope[def.name] = Builtin(def.op)
	}
}

// reader returns the buffered line reader shared by every copy of the
// session's root environment.
func (env *LEnv) reader() *bufio.Reader {
	return env.stdin
}
