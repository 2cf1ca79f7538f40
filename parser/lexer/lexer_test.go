package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcfrederick/rusht/lisp"
	"github.com/marcfrederick/rusht/parser/token"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		source string
		toks   []*token.Token
	}{
		{"", nil},
		{"   \t\n", nil},
		{"()", []*token.Token{token.Paren('('), token.Paren(')')}},
		{"42", []*token.Token{token.Num("42", 42)}},
		{"4.25", []*token.Token{token.Num("4.25", 4.25)}},
		{`"hello world"`, []*token.Token{token.Str("hello world")}},
		{`""`, []*token.Token{token.Str("")}},
		{"true false", []*token.Token{token.Bool(true), token.Bool(false)}},
		{"foo-bar", []*token.Token{token.Symbol("foo-bar")}},
		{"+", []*token.Token{token.Symbol("+")}},
		{"(+ 1 2)", []*token.Token{
			token.Paren('('),
			token.Symbol("+"),
			token.Num("1", 1),
			token.Num("2", 2),
			token.Paren(')'),
		}},
		{"(concat \"a\" sym)", []*token.Token{
			token.Paren('('),
			token.Symbol("concat"),
			token.Str("a"),
			token.Symbol("sym"),
			token.Paren(')'),
		}},
		// Parens terminate a word without intervening whitespace.
		{"(foo)", []*token.Token{
			token.Paren('('),
			token.Symbol("foo"),
			token.Paren(')'),
		}},
	}
	for i, test := range tests {
		toks, err := Tokenize(test.source)
		require.NoErrorf(t, err, "test %d: %q", i, test.source)
		assert.Equalf(t, test.toks, toks, "test %d: %q", i, test.source)
	}
}

func TestTokenizeInvalidNumber(t *testing.T) {
	tests := []struct {
		source string
		text   string
	}{
		{"1.2.3", "1.2.3"},
		{"(+ 1 2..5)", "2..5"},
	}
	for i, test := range tests {
		_, err := Tokenize(test.source)
		require.Errorf(t, err, "test %d: %q", i, test.source)
		assert.Equalf(t, lisp.ErrnoInvalidNumberLiteral, lisp.GoErrno(err), "test %d: %q", i, test.source)
		assert.Containsf(t, err.Error(), test.text, "test %d: %q", i, test.source)
	}
}

func TestTokenizeUnterminatedString(t *testing.T) {
	// An unterminated string consumes the remainder of the input.
	toks, err := Tokenize(`"abc`)
	require.NoError(t, err)
	assert.Equal(t, []*token.Token{token.Str("abc")}, toks)
}
