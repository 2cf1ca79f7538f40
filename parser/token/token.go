package token

import "strconv"

// Token is a single lexical unit produced by the lexer.  Tokens are never
// mutated after creation.  NUM tokens carry their parsed value in Num and
// BOOL tokens carry theirs in Bool; every token retains its source text in
// Text.
type Token struct {
	Type Type
	Text string
	Num  float64
	Bool bool
}

type Type uint

// Type constants used by the rusht lexer/parser.
const (
	INVALID Type = iota

	// Atomic expressions & literals
	NUM
	STRING
	SYMBOL
	BOOL

	// Delimiters
	PAREN_L
	PAREN_R

	numTokenTypes
)

func (typ Type) String() string {
	typeStrings := [numTokenTypes]string{
		INVALID: "invalid",
		NUM:     "number",
		STRING:  "string",
		SYMBOL:  "symbol",
		BOOL:    "bool",
		PAREN_L: "(",
		PAREN_R: ")",
	}
	if typ >= numTokenTypes {
		return typeStrings[INVALID]
	}
	return typeStrings[typ]
}

func (tok *Token) String() string {
	switch tok.Type {
	case NUM:
		return strconv.FormatFloat(tok.Num, 'f', -1, 64)
	case BOOL:
		return strconv.FormatBool(tok.Bool)
	default:
		return tok.Text
	}
}

// Paren returns a delimiter token for c.  Runes other than '(' and ')' yield
// an INVALID token.
func Paren(c rune) *Token {
	switch c {
	case '(':
		return &Token{Type: PAREN_L, Text: "("}
	case ')':
		return &Token{Type: PAREN_R, Text: ")"}
	}
	return &Token{Type: INVALID, Text: string(c)}
}

// Num returns a NUM token holding the parsed value x.
func Num(text string, x float64) *Token {
	return &Token{Type: NUM, Text: text, Num: x}
}

// Str returns a STRING token whose content is s, without the surrounding
// quotation marks.
func Str(s string) *Token {
	return &Token{Type: STRING, Text: s}
}

// Symbol returns a SYMBOL token for the identifier s.
func Symbol(s string) *Token {
	return &Token{Type: SYMBOL, Text: s}
}

// Bool returns a BOOL token.
func Bool(b bool) *Token {
	return &Token{Type: BOOL, Text: strconv.FormatBool(b), Bool: b}
}
