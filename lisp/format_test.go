package lisp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	a, b, x, y := Symbol("a"), Symbol("b"), Symbol("x"), Symbol("y")
	tests := []struct {
		v      LVal
		expect string
	}{
		{Nil(), "()"},
		{Symbol("hello"), "hello"},
		{Symbol("hello world"), "hello world"},
		{Expr(Symbol("ulisp")), "(ulisp)"},
		{Expr(Symbol("hello"), Symbol("world")), "(hello world)"},
		{Cons(Symbol("about"), Symbol("blank")), "(about : blank)"},
		{Expr(Cons(x, Symbol("1")), Cons(y, Symbol("2"))), "((x : 1) (y : 2))"},
		{ExprDotted(b, a, a), "(a a : b)"},
		{Expr(Nil(), Nil()), "(() ())"},
		{Cons(a, Expr(b)), "(a b)"},
		{Lambda(NewEnv(nil), Nil(), Nil()), "*applicable*"},
		{Expr(a, Lambda(NewEnv(nil), Nil(), Nil())), "(a *applicable*)"},
	}
	for i, test := range tests {
		assert.Equal(t, test.expect, Render(test.v), "test %d", i)
		assert.Equal(t, test.expect, test.v.String(), "test %d", i)
	}
}

func TestFormat_count(t *testing.T) {
	var buf bytes.Buffer
	n, err := Format(&buf, Expr(Symbol("a"), Cons(Symbol("b"), Symbol("c"))))
	assert.NoError(t, err)
	assert.Equal(t, "(a (b : c))", buf.String())
	assert.Equal(t, buf.Len(), n)
}
