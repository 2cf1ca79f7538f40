package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLValString(t *testing.T) {
	tests := []struct {
		v *LVal
		s string
	}{
		{Number(6), "6"},
		{Number(2.5), "2.5"},
		{Number(-0.125), "-0.125"},
		{String("foo"), `"foo"`},
		{Symbol("foo"), "foo"},
		{Bool(true), "true"},
		{List(nil), "()"},
		{List([]*LVal{Symbol("+"), Number(1), Number(2)}), "(+ 1 2)"},
		{Builtin(OpAdd), "<builtin ``+''>"},
		{
			Lambda([]string{"n"}, List([]*LVal{Symbol("+"), Symbol("n"), Number(1)})),
			"λ (n) -> (+ n 1)",
		},
		{Lambda(nil, Number(1)), "λ () -> 1"},
	}
	for i, test := range tests {
		assert.Equalf(t, test.s, test.v.String(), "test %d", i)
	}
}

func TestLValEqual(t *testing.T) {
	tests := []struct {
		a, b  *LVal
		equal bool
	}{
		{Number(4), Number(4), true},
		{Number(4), Number(3), false},
		{Number(4), String("4"), false},
		{String("a"), String("a"), true},
		{String("a"), Symbol("a"), false},
		{Bool(true), Bool(true), true},
		{Bool(true), Bool(false), false},
		{List(nil), List(nil), true},
		{
			List([]*LVal{Number(1), Number(2)}),
			List([]*LVal{Number(1), Number(2)}),
			true,
		},
		{
			List([]*LVal{Number(1)}),
			List([]*LVal{Number(1), Number(2)}),
			false,
		},
		{Builtin(OpAdd), Builtin(OpAdd), true},
		{Builtin(OpAdd), Builtin(OpSub), false},
		{
			Lambda([]string{"x"}, Symbol("x")),
			Lambda([]string{"x"}, Symbol("x")),
			true,
		},
		{
			Lambda([]string{"x"}, Symbol("x")),
			Lambda([]string{"y"}, Symbol("x")),
			false,
		},
	}
	for i, test := range tests {
		assert.Equalf(t, test.equal, test.a.Equal(test.b), "test %d: %s == %s", i, test.a, test.b)
	}
}

func TestLValCopy(t *testing.T) {
	v := List([]*LVal{Number(1), List([]*LVal{Number(2)})})
	cp := v.Copy()
	assert.True(t, v.Equal(cp))

	// Mutating the copy must not reach back into the original.
	cp.Cells[0].Num = 99
	cp.Cells[1].Cells[0].Num = 99
	assert.Equal(t, 1.0, v.Cells[0].Num)
	assert.Equal(t, 2.0, v.Cells[1].Cells[0].Num)
}

func TestLTypeString(t *testing.T) {
	assert.Equal(t, "number", LNumber.String())
	assert.Equal(t, "function", LFun.String())
	assert.Equal(t, "lambda", LLambda.String())
	assert.Equal(t, "INVALID", LInvalid.String())
	assert.Equal(t, "INVALID", numLTypes.String())
}
