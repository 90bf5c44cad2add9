package token

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanner(t *testing.T) {
	s := NewScanner("test", strings.NewReader("ab\nc"))
	assert.Equal(t, "test:1:1", s.Loc().String())
	c, err := s.Peek()
	assert.NoError(t, err)
	assert.Equal(t, byte('a'), c)
	c, err = s.Scan()
	assert.NoError(t, err)
	assert.Equal(t, byte('a'), c)
	assert.Equal(t, "test:1:2", s.Loc().String())
	s.Scan()
	s.Scan()
	assert.Equal(t, &Location{File: "test", Pos: 3, Line: 2, Col: 1}, s.Loc())
	c, err = s.Scan()
	assert.NoError(t, err)
	assert.Equal(t, byte('c'), c)
	_, err = s.Peek()
	assert.Equal(t, io.EOF, err)
	_, err = s.Scan()
	assert.Equal(t, io.EOF, err)
}

func TestScanner_SkipLine(t *testing.T) {
	s := NewScanner("test", strings.NewReader("skipped text\nnext"))
	assert.NoError(t, s.SkipLine())
	c, _ := s.Peek()
	assert.Equal(t, byte('n'), c)
	assert.Equal(t, 2, s.Loc().Line)
	assert.Equal(t, io.EOF, s.SkipLine())
}

func TestLocation(t *testing.T) {
	assert.Equal(t, "f[3]", (&Location{File: "f", Pos: 3}).String())
	assert.Equal(t, "f:2", (&Location{File: "f", Line: 2}).String())
	assert.Equal(t, "f:2:5", (&Location{File: "f", Line: 2, Col: 5}).String())
}

func TestType(t *testing.T) {
	assert.Equal(t, "symbol", SYMBOL.String())
	assert.Equal(t, ":", COLON.String())
	assert.Equal(t, "invalid", Type(100).String())
}
