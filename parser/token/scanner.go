package token

import (
	"bufio"
	"io"
)

// Scanner reads source text one byte at a time and tracks the location of
// the next byte.  Every delimiter of the language is ASCII so symbol bytes,
// including multi-byte utf-8 sequences, pass through unchanged.
type Scanner struct {
	file string
	r    *bufio.Reader
	pos  int // byte offset of the next byte
	line int // line of the next byte
	col  int // column of the next byte
}

// NewScanner initializes and returns a new Scanner.
func NewScanner(file string, r io.Reader) *Scanner {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Scanner{
		file: file,
		r:    br,
		line: 1,
		col:  1,
	}
}

// Scan consumes and returns the next byte of input.  At the end of input Scan
// returns io.EOF.
func (s *Scanner) Scan() (byte, error) {
	c, err := s.r.ReadByte()
	if err != nil {
		return 0, err
	}
	s.pos++
	if c == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return c, nil
}

// Peek returns the next byte without consuming it.
func (s *Scanner) Peek() (byte, error) {
	b, err := s.r.Peek(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// SkipLine discards input up to and including the next newline.
func (s *Scanner) SkipLine() error {
	for {
		c, err := s.Scan()
		if err != nil {
			return err
		}
		if c == '\n' {
			return nil
		}
	}
}

// Loc returns a Location referencing the next byte to be scanned.
func (s *Scanner) Loc() *Location {
	return &Location{
		File: s.file,
		Pos:  s.pos,
		Line: s.line,
		Col:  s.col,
	}
}
