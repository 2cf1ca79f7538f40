// Package interpreter ties the three pipeline stages together into an
// interpreter session: lexical tokenizer, recursive-descent parser, and the
// tree-walking evaluator with its mutable environment.
package interpreter

import (
	"github.com/marcfrederick/rusht/lisp"
	"github.com/marcfrederick/rusht/parser"
	"github.com/marcfrederick/rusht/parser/lexer"
)

// Interpreter is an interpreter session.  A session owns a single root
// environment which persists across Eval calls, so definitions made by one
// expression are visible to the next.
type Interpreter struct {
	env *lisp.LEnv
}

// New returns an Interpreter with a fresh root environment pre-bound with
// the prelude.
func New(cfg ...lisp.Config) *Interpreter {
	return &Interpreter{env: lisp.NewEnv(cfg...)}
}

// Env returns the session's root environment.
func (in *Interpreter) Env() *lisp.LEnv {
	return in.env
}

// Eval runs source, a single whole expression, through the pipeline and
// returns the resulting value.
func (in *Interpreter) Eval(source string) (*lisp.LVal, error) {
	toks, err := lexer.Tokenize(source)
	if err != nil {
		return nil, err
	}
	expr, err := parser.Parse(toks)
	if err != nil {
		return nil, err
	}
	return in.env.Eval(expr)
}

// EvalProgram evaluates every top-level expression in source in order,
// stopping at the first failure.  The values of all expressions evaluated so
// far are returned alongside any error.
func (in *Interpreter) EvalProgram(source string) ([]*lisp.LVal, error) {
	toks, err := lexer.Tokenize(source)
	if err != nil {
		return nil, err
	}
	exprs, err := parser.ParseProgram(toks)
	if err != nil {
		return nil, err
	}
	vals := make([]*lisp.LVal, 0, len(exprs))
	for _, expr := range exprs {
		v, err := in.env.Eval(expr)
		if err != nil {
			return vals, err
		}
		vals = append(vals, v)
	}
	return vals, nil
}
