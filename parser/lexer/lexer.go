package lexer

import (
	"fmt"
	"io"
	"strings"

	"github.com/ryohji/ulisp/parser/token"
)

// Lexer splits source text into tokens.  A token is a maximal run of bytes
// other than whitespace and the delimiters ( ) and :, each of which is a
// token by itself.  A backslash makes the following whitespace, delimiter or
// backslash part of the current token.  A backslash followed by a newline
// continues the line: it separates tokens without adding text.
type Lexer struct {
	scanner *token.Scanner

	// readErr is a non-EOF error returned by the underlying reader.  It is
	// reported by every following call to NextToken.
	readErr error
}

func New(s *token.Scanner) *Lexer {
	lex := &Lexer{
		scanner: s,
	}
	return lex
}

// EscapeError is reported when a backslash precedes a byte that cannot be
// escaped.
type EscapeError struct {
	Char   byte
	Source *token.Location
}

func (err *EscapeError) Error() string {
	return fmt.Sprintf("Unknown escape character: %c", err.Char)
}

// Scanner returns the scanner tokens are read from.
func (lex *Lexer) Scanner() *token.Scanner {
	return lex.scanner
}

// NextToken scans and returns the next token.  At the end of input NextToken
// returns an EOF token.
func (lex *Lexer) NextToken() *token.Token {
	if lex.readErr != nil {
		return lex.emitError(lex.readErr, lex.scanner.Loc())
	}
	var text strings.Builder
	loc := lex.scanner.Loc()
	for {
		c, err := lex.scanner.Peek()
		if err != nil {
			if text.Len() > 0 && err == io.EOF {
				return lex.emit(token.SYMBOL, text.String(), loc)
			}
			return lex.emitError(err, loc)
		}
		switch c {
		case ' ', '\t', '\n':
			if text.Len() > 0 {
				return lex.emit(token.SYMBOL, text.String(), loc)
			}
			lex.scanner.Scan()
			loc = lex.scanner.Loc()
		case '(', ')', ':':
			if text.Len() > 0 {
				return lex.emit(token.SYMBOL, text.String(), loc)
			}
			lex.scanner.Scan()
			return lex.emit(delimiterType(c), string(c), loc)
		case '\\':
			escLoc := lex.scanner.Loc()
			lex.scanner.Scan()
			e, err := lex.scanner.Scan()
			if err != nil {
				if text.Len() > 0 && err == io.EOF {
					return lex.emit(token.SYMBOL, text.String(), loc)
				}
				return lex.emitError(err, loc)
			}
			switch e {
			case ' ', '\t', '\\', '(', ')', ':':
				text.WriteByte(e)
			case '\n':
				if text.Len() > 0 {
					return lex.emit(token.SYMBOL, text.String(), loc)
				}
				loc = lex.scanner.Loc()
			default:
				return lex.emitError(&EscapeError{Char: e, Source: escLoc}, escLoc)
			}
		default:
			lex.scanner.Scan()
			text.WriteByte(c)
		}
	}
}

func delimiterType(c byte) token.Type {
	switch c {
	case '(':
		return token.PAREN_L
	case ')':
		return token.PAREN_R
	default:
		return token.COLON
	}
}

func (lex *Lexer) emit(typ token.Type, text string, loc *token.Location) *token.Token {
	return &token.Token{
		Type:   typ,
		Text:   text,
		Source: loc,
	}
}

func (lex *Lexer) emitError(err error, loc *token.Location) *token.Token {
	if err == io.EOF {
		return lex.emit(token.EOF, "", loc)
	}
	if _, ok := err.(*EscapeError); !ok {
		lex.readErr = err
	}
	return &token.Token{
		Type:   token.ERROR,
		Text:   err.Error(),
		Source: loc,
		Err:    err,
	}
}
