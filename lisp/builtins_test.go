package lisp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpString(t *testing.T) {
	assert.Equal(t, "+", OpAdd.String())
	assert.Equal(t, "read", OpRead.String())
	assert.Equal(t, "INVALID", OpInvalid.String())
	assert.Equal(t, "INVALID", numOps.String())
}

func TestOpApplyInvalid(t *testing.T) {
	env := NewEnv()
	_, err := OpInvalid.apply(env, nil)
	require.Error(t, err)
	assert.Equal(t, ErrnoFunctionNotDefined, GoErrno(err))
}

func TestFoldFloats(t *testing.T) {
	env := NewEnv()
	tests := []struct {
		fn   LBuiltin
		args []*LVal
		x    float64
	}{
		{builtinAdd, []*LVal{Number(1), Number(2), Number(3)}, 6},
		{builtinSub, []*LVal{Number(10), Number(2), Number(3)}, 5},
		{builtinMul, []*LVal{Number(2), Number(3), Number(4)}, 24},
		{builtinDiv, []*LVal{Number(12), Number(2), Number(3)}, 2},
		{builtinMod, []*LVal{Number(8), Number(3)}, 2},
		{builtinAdd, []*LVal{Bool(true), String("5")}, 6},
		{builtinAdd, []*LVal{Number(7)}, 7},
	}
	for i, test := range tests {
		v, err := test.fn(env, test.args)
		require.NoErrorf(t, err, "test %d", i)
		assert.Equalf(t, test.x, v.Num, "test %d", i)
	}

	_, err := builtinAdd(env, nil)
	require.Error(t, err)
	assert.Equal(t, ErrnoInvalidNumberOfArguments, GoErrno(err))

	_, err = builtinAdd(env, []*LVal{Bool(true), String("foo")})
	require.Error(t, err)
	assert.Equal(t, ErrnoUnexpectedType, GoErrno(err))
}

func TestNumEqEpsilon(t *testing.T) {
	env := NewEnv()
	v, err := builtinNumEq(env, []*LVal{Number(0.3), Number(0.1 + 0.2)})
	require.NoError(t, err)
	assert.True(t, v.Bool)

	v, err = builtinNumEq(env, []*LVal{Number(0.3), Number(0.30001)})
	require.NoError(t, err)
	assert.False(t, v.Bool)
}

func TestExit(t *testing.T) {
	env := NewEnv()
	tests := []struct {
		args   []*LVal
		status int
	}{
		{nil, 0},
		{[]*LVal{Number(1)}, 1},
		{[]*LVal{String("3")}, 3},
		{[]*LVal{Bool(true)}, 1},
	}
	for i, test := range tests {
		_, err := builtinExit(env, test.args)
		require.Errorf(t, err, "test %d", i)
		term, ok := err.(*Terminate)
		require.Truef(t, ok, "test %d: %v", i, err)
		assert.Equalf(t, test.status, term.Status, "test %d", i)
	}

	_, err := builtinExit(env, []*LVal{Number(1), Number(2)})
	require.Error(t, err)
	assert.Equal(t, ErrnoInvalidNumberOfArguments, GoErrno(err))
}

func TestRead(t *testing.T) {
	env := NewEnv(WithStdin(strings.NewReader("hello\nworld")))

	v, err := builtinRead(env, nil)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", v.Str)

	// The final line has no terminator but is still returned.
	v, err = builtinRead(env, nil)
	require.NoError(t, err)
	assert.Equal(t, "world", v.Str)

	// Input exhausted.
	_, err = builtinRead(env, nil)
	require.Error(t, err)
}

func TestReadSharedAcrossCopies(t *testing.T) {
	env := NewEnv(WithStdin(strings.NewReader("first\nsecond\n")))

	// A copied environment must consume from the same buffered reader as
	// the root, not buffer ahead into a private one.
	v, err := builtinRead(env.Copy(), nil)
	require.NoError(t, err)
	assert.Equal(t, "first\n", v.Str)

	v, err = builtinRead(env, nil)
	require.NoError(t, err)
	assert.Equal(t, "second\n", v.Str)
}
