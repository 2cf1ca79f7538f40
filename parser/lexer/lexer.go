package lexer

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/marcfrederick/rusht/lisp"
	"github.com/marcfrederick/rusht/parser/token"
)

// Lexer scans source text into a flat token sequence with one rune of
// lookahead.  The whole source is tokenized eagerly; streaming input is not
// supported.
type Lexer struct {
	src string
	pos int // byte offset of the next unread rune
}

// New returns a Lexer reading from source.
func New(source string) *Lexer {
	return &Lexer{src: source}
}

// Tokenize scans source left to right and returns the token sequence it
// contains.  The only failure condition is a malformed numeric literal.
func Tokenize(source string) ([]*token.Token, error) {
	lex := New(source)
	var toks []*token.Token
	for {
		c, ok := lex.peek()
		if !ok {
			return toks, nil
		}
		switch {
		case c == '(' || c == ')':
			lex.next()
			toks = append(toks, token.Paren(c))
		case isDigit(c):
			tok, err := lex.readNumber()
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
		case c == '"':
			toks = append(toks, lex.readString())
		case unicode.IsSpace(c):
			lex.next()
		default:
			toks = append(toks, lex.readWord())
		}
	}
}

// readNumber scans a run of digits and period characters.  The run is parsed
// as a 64-bit float; text like `1.2.3` is a hard error with no recovery.
func (lex *Lexer) readNumber() (*token.Token, error) {
	var val strings.Builder
	for {
		c, ok := lex.peek()
		if !ok || (!isDigit(c) && c != '.') {
			break
		}
		val.WriteRune(lex.next())
	}
	text := val.String()
	x, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, lisp.NameError(lisp.ErrnoInvalidNumberLiteral, text)
	}
	return token.Num(text, x), nil
}

// readString scans a string literal running from the opening quotation mark
// to the next one.  The closing quote is consumed without validation; an
// unterminated string consumes the remainder of the input as content.
func (lex *Lexer) readString() *token.Token {
	lex.next() // opening quote
	var val strings.Builder
	for {
		c, ok := lex.peek()
		if !ok {
			break
		}
		lex.next()
		if c == '"' {
			break
		}
		val.WriteRune(c)
	}
	return token.Str(val.String())
}

// readWord scans a run of non-whitespace, non-paren runes and returns either
// a BOOL token for the literals true/false or a SYMBOL token.
func (lex *Lexer) readWord() *token.Token {
	var val strings.Builder
	for {
		c, ok := lex.peek()
		if !ok || unicode.IsSpace(c) || c == '(' || c == ')' {
			break
		}
		val.WriteRune(lex.next())
	}
	switch text := val.String(); text {
	case "true":
		return token.Bool(true)
	case "false":
		return token.Bool(false)
	default:
		return token.Symbol(text)
	}
}

func (lex *Lexer) peek() (rune, bool) {
	if lex.pos >= len(lex.src) {
		return 0, false
	}
	c, _ := utf8.DecodeRuneInString(lex.src[lex.pos:])
	return c, true
}

func (lex *Lexer) next() rune {
	c, n := utf8.DecodeRuneInString(lex.src[lex.pos:])
	lex.pos += n
	return c
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}
