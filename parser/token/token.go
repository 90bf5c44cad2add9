package token

import "fmt"

// Token is a lexical item produced by the lexer.
type Token struct {
	Type Type
	// Text is the token text with escapes resolved.  For ERROR tokens Text
	// holds the error message.
	Text   string
	Source *Location
	// Err is the error that produced an ERROR token, if any.
	Err error
}

type Type uint

// Type constants used for the ulisp lexer/parser.
const (
	INVALID Type = iota
	ERROR
	EOF

	SYMBOL

	// Delimiters
	PAREN_L
	PAREN_R
	COLON

	numTokenTypes
)

func (typ Type) String() string {
	typeStrings := [numTokenTypes]string{
		INVALID: "invalid",
		ERROR:   "error",
		EOF:     "EOF",
		SYMBOL:  "symbol",
		PAREN_L: "(",
		PAREN_R: ")",
		COLON:   ":",
	}
	if typ >= numTokenTypes {
		return typeStrings[INVALID]
	}
	return typeStrings[typ]
}

// Location is a position in source text.
type Location struct {
	File string
	Pos  int
	Line int // line number (starting at 1 when tracked)
	Col  int // line column number (starting at 1 when tracked)
}

func (loc *Location) String() string {
	switch {
	case loc.Line == 0:
		return fmt.Sprintf("%s[%d]", loc.File, loc.Pos)
	case loc.Col == 0:
		return fmt.Sprintf("%s:%d", loc.File, loc.Line)
	default:
		return fmt.Sprintf("%s:%d:%d", loc.File, loc.Line, loc.Col)
	}
}
