// Package parser builds expression trees from token sequences using
// recursive descent.  Parenthesis matching is the single structural
// invariant: for every opening token there must be exactly one matching
// closing token, determined purely by nesting depth.
package parser

import (
	"github.com/marcfrederick/rusht/lisp"
	"github.com/marcfrederick/rusht/parser/lexer"
	"github.com/marcfrederick/rusht/parser/token"
)

// Parser is a recursive-descent parser over a peekable token cursor.
type Parser struct {
	toks []*token.Token
	pos  int
}

// New initializes and returns a new Parser reading from toks.
func New(toks []*token.Token) *Parser {
	return &Parser{toks: toks}
}

// Parse returns the single expression at the front of toks.
func Parse(toks []*token.Token) (*lisp.LVal, error) {
	return New(toks).ParseExpression()
}

// ParseProgram parses every top-level expression in toks.
func ParseProgram(toks []*token.Token) ([]*lisp.LVal, error) {
	p := New(toks)
	var exprs []*lisp.LVal
	for p.peek() != nil {
		expr, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	if len(exprs) == 0 {
		return nil, lisp.NewError(lisp.ErrnoUnexpectedEndOfTokenStream)
	}
	return exprs, nil
}

// ParseString tokenizes source and parses the single expression it contains.
func ParseString(source string) (*lisp.LVal, error) {
	toks, err := lexer.Tokenize(source)
	if err != nil {
		return nil, err
	}
	return Parse(toks)
}

// ParseExpression parses the next expression from the token cursor.
func (p *Parser) ParseExpression() (*lisp.LVal, error) {
	tok := p.next()
	if tok == nil {
		return nil, lisp.NewError(lisp.ErrnoUnexpectedEndOfTokenStream)
	}
	switch tok.Type {
	case token.PAREN_L:
		return p.parseList()
	case token.PAREN_R:
		return nil, lisp.NewError(lisp.ErrnoUnexpectedClosingParenthesis)
	case token.NUM:
		return lisp.Number(tok.Num), nil
	case token.STRING:
		return lisp.String(tok.Text), nil
	case token.SYMBOL:
		return lisp.Symbol(tok.Text), nil
	case token.BOOL:
		return lisp.Bool(tok.Bool), nil
	default:
		return nil, lisp.NewError(lisp.ErrnoUnexpectedType)
	}
}

// parseList parses list children until the matching closing parenthesis,
// which is consumed.
func (p *Parser) parseList() (*lisp.LVal, error) {
	var cells []*lisp.LVal
	for {
		tok := p.peek()
		if tok == nil {
			return nil, lisp.NewError(lisp.ErrnoMissingClosingParenthesis)
		}
		if tok.Type == token.PAREN_R {
			p.next()
			return lisp.List(cells), nil
		}
		expr, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		cells = append(cells, expr)
	}
}

func (p *Parser) next() *token.Token {
	tok := p.peek()
	if tok != nil {
		p.pos++
	}
	return tok
}

func (p *Parser) peek() *token.Token {
	if p.pos >= len(p.toks) {
		return nil
	}
	return p.toks[p.pos]
}
