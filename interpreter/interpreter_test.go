package interpreter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcfrederick/rusht/lisp"
)

func TestEval(t *testing.T) {
	in := New()
	v, err := in.Eval("(+ 1 2 3)")
	require.NoError(t, err)
	assert.Equal(t, "6", v.String())
}

func TestEvalSessionPersistence(t *testing.T) {
	in := New()
	_, err := in.Eval("(def x 10)")
	require.NoError(t, err)
	_, err = in.Eval("(def add-x (func (n) (+ n x)))")
	require.NoError(t, err)

	v, err := in.Eval("(add-x 5)")
	require.NoError(t, err)
	assert.Equal(t, "15", v.String())
}

func TestEvalSessionIsolation(t *testing.T) {
	a := New()
	b := New()
	_, err := a.Eval("(def x 1)")
	require.NoError(t, err)

	_, err = b.Eval("(+ x 1)")
	require.Error(t, err)
	assert.Equal(t, lisp.ErrnoVariableNotDefined, lisp.GoErrno(err))
}

func TestEvalTerminate(t *testing.T) {
	in := New()
	_, err := in.Eval("(exit 2)")
	require.Error(t, err)
	term, ok := err.(*lisp.Terminate)
	require.Truef(t, ok, "unexpected error: %v", err)
	assert.Equal(t, 2, term.Status)
}

func TestEvalRead(t *testing.T) {
	in := New(lisp.WithStdin(strings.NewReader("42\n")))
	v, err := in.Eval(`(+ 1 (read))`)
	require.NoError(t, err)
	assert.Equal(t, "43", v.String())
}

func TestEvalReadInsideLambda(t *testing.T) {
	in := New(lisp.WithStdin(strings.NewReader("first\nsecond\n")))
	_, err := in.Eval("(def prompt (func () (read)))")
	require.NoError(t, err)

	// The lambda body runs against a copy of the root environment; a read
	// there must not swallow input destined for later top-level reads.
	v, err := in.Eval("(prompt)")
	require.NoError(t, err)
	assert.Equal(t, "first\n", v.Str)

	v, err = in.Eval("(read)")
	require.NoError(t, err)
	assert.Equal(t, "second\n", v.Str)
}

func TestEvalProgram(t *testing.T) {
	in := New()
	vals, err := in.EvalProgram("(def x 1) (def y 2) (+ x y)")
	require.NoError(t, err)
	require.Len(t, vals, 3)
	assert.Equal(t, "3", vals[2].String())
}

func TestEvalProgramStopsAtFirstError(t *testing.T) {
	in := New()
	vals, err := in.EvalProgram("(def x 1) (+ x oops) (def y 2)")
	require.Error(t, err)
	assert.Equal(t, lisp.ErrnoVariableNotDefined, lisp.GoErrno(err))
	require.Len(t, vals, 1)
	assert.Equal(t, "1", vals[0].String())

	// The failing expression did not prevent earlier definitions.
	_, ok := in.Env().Get("x")
	assert.True(t, ok)
	_, ok = in.Env().Get("y")
	assert.False(t, ok)
}

func TestEvalSyntaxError(t *testing.T) {
	in := New()
	_, err := in.Eval("(+ 1 2")
	require.Error(t, err)
	assert.Equal(t, lisp.ErrnoMissingClosingParenthesis, lisp.GoErrno(err))
}
