package rdparser

import (
	"io"

	"github.com/ryohji/ulisp/lisp"
	"github.com/ryohji/ulisp/parser/lexer"
	"github.com/ryohji/ulisp/parser/token"
)

// Parser is a recursive descent reader for the grammar
//
//	expr := SYMBOL | '(' expr* [ ':' expr ] ')'
//
// A list with a ':' tail is a dotted list whose final CDR is the tail
// expression.  The Parser never reads a token beyond the end of the
// expression it is parsing, so it can be driven by an interactive source.
type Parser struct {
	lex   *lexer.Lexer
	curr  *token.Token
	depth int
}

// New initializes and returns a new Parser that reads tokens from scanner.
func New(scanner *token.Scanner) *Parser {
	return &Parser{
		lex: lexer.New(scanner),
	}
}

// NewFromReader returns a Parser reading source text named name from r.
func NewFromReader(name string, r io.Reader) *Parser {
	return New(token.NewScanner(name, r))
}

// IsParsing returns true if p is in the middle of parsing a list.
func (p *Parser) IsParsing() bool {
	return p.depth > 0
}

// Token returns the token most recently read.
func (p *Parser) Token() *token.Token {
	return p.curr
}

// ParseProgram reads expressions until the input is exhausted.
func (p *Parser) ParseProgram() ([]lisp.LVal, error) {
	var exprs []lisp.LVal
	for {
		expr, err := p.ReadExpression()
		if lisp.IsErrno(err, lisp.ErrnoNoInput) {
			return exprs, nil
		}
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
}

// ReadExpression reads one expression.  If the input ends before any token
// is read ReadExpression returns an error with lisp.ErrnoNoInput.  If the
// input ends inside a list the error has lisp.ErrnoUnterminatedList.
//
// After an error the parser is ready to read a new expression starting at
// the token following the offending one.
func (p *Parser) ReadExpression() (lisp.LVal, error) {
	tok := p.readToken()
	if tok.Type == token.EOF {
		return lisp.Nil(), p.errorf(lisp.ErrnoNoInput, "No input.")
	}
	return p.parseExpression(tok)
}

// SkipLine discards input up to and including the next newline.  A REPL
// calls SkipLine after a syntax error so that reading resumes on a fresh
// line.
func (p *Parser) SkipLine() error {
	return p.lex.Scanner().SkipLine()
}

func (p *Parser) parseExpression(tok *token.Token) (lisp.LVal, error) {
	switch tok.Type {
	case token.SYMBOL:
		return lisp.Symbol(tok.Text), nil
	case token.PAREN_L:
		return p.parseList()
	case token.EOF:
		return lisp.Nil(), p.errorf(lisp.ErrnoUnterminatedList, "Unterminated list.")
	case token.ERROR:
		return lisp.Nil(), p.scanError(tok)
	default:
		return lisp.Nil(), p.errorf(lisp.ErrnoUnexpectedToken, "Unexpected token: %s", tok.Text)
	}
}

func (p *Parser) parseList() (lisp.LVal, error) {
	p.depth++
	defer func() { p.depth-- }()
	b := lisp.NewListBuilder()
	for {
		tok := p.readToken()
		switch tok.Type {
		case token.PAREN_R:
			return b.List(), nil
		case token.COLON:
			tail, err := p.parseDottedTail()
			if err != nil {
				return lisp.Nil(), err
			}
			b.Terminate(tail)
			return b.List(), nil
		default:
			x, err := p.parseExpression(tok)
			if err != nil {
				return lisp.Nil(), err
			}
			b.Append(x)
		}
	}
}

// parseDottedTail parses the expression following ':' and the closing
// parenthesis after it.
func (p *Parser) parseDottedTail() (lisp.LVal, error) {
	tok := p.readToken()
	switch tok.Type {
	case token.PAREN_R, token.COLON:
		return lisp.Nil(), p.errorf(lisp.ErrnoMalformedDottedTail, "Malformed dotted tail: %s", tok.Text)
	}
	tail, err := p.parseExpression(tok)
	if err != nil {
		return lisp.Nil(), err
	}
	tok = p.readToken()
	switch tok.Type {
	case token.PAREN_R:
		return tail, nil
	case token.EOF:
		return lisp.Nil(), p.errorf(lisp.ErrnoUnterminatedList, "Unterminated list.")
	case token.ERROR:
		return lisp.Nil(), p.scanError(tok)
	default:
		return lisp.Nil(), p.errorf(lisp.ErrnoMalformedDottedTail, "Malformed dotted tail: %s", tok.Text)
	}
}

func (p *Parser) readToken() *token.Token {
	p.curr = p.lex.NextToken()
	return p.curr
}

// scanError converts an ERROR token.  Escape errors become reader errors;
// failures of the underlying io.Reader are returned unchanged.
func (p *Parser) scanError(tok *token.Token) error {
	if esc, ok := tok.Err.(*lexer.EscapeError); ok {
		return &lisp.Error{
			Errno:   lisp.ErrnoMalformedEscape,
			Message: esc.Error(),
			Source:  esc.Source,
		}
	}
	return tok.Err
}

func (p *Parser) errorf(errno lisp.Errno, format string, v ...interface{}) error {
	err := lisp.Errorf(errno, format, v...)
	err.Source = p.curr.Source
	return err
}
