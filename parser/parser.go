/*
Package parser reads ulisp source text.

	expr   := symbol | '(' expr* [ ':' expr ] ')'
	symbol := ( /[^\s():\\]/ | '\' /[ \t\\():]/ )+

Whitespace separates tokens.  A backslash followed by a newline is a line
continuation.  The symbol () reads as nil.
*/
package parser

import (
	"bytes"
	"io"
	"strings"

	"github.com/ryohji/ulisp/lisp"
	"github.com/ryohji/ulisp/parser/rdparser"
)

// Parse reads every expression in the source text named name from r.
func Parse(name string, r io.Reader) ([]lisp.LVal, error) {
	return rdparser.NewFromReader(name, r).ParseProgram()
}

// ParseString reads every expression in text.
func ParseString(text string) ([]lisp.LVal, error) {
	return Parse("<string>", strings.NewReader(text))
}

// ParseBytes reads every expression in text.
func ParseBytes(text []byte) ([]lisp.LVal, error) {
	return Parse("<bytes>", bytes.NewReader(text))
}

// ReadString reads the first expression in text.  ReadString returns an
// error with lisp.ErrnoNoInput if text contains no tokens.
func ReadString(text string) (lisp.LVal, error) {
	return rdparser.NewFromReader("<string>", strings.NewReader(text)).ReadExpression()
}
