package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNil(t *testing.T) {
	var zero LVal
	assert.True(t, IsNil(zero))
	assert.True(t, IsNil(Nil()))
	assert.True(t, IsNil(Symbol("")))
	assert.True(t, IsAtom(Nil()))
	assert.False(t, IsPair(Nil()))
	assert.False(t, IsNil(Symbol("nil")))
	assert.False(t, IsNil(Cons(Nil(), Nil())))
}

func TestSymbol(t *testing.T) {
	v := Symbol("hello")
	assert.True(t, IsAtom(v))
	name, ok := GetSymbol(v)
	if assert.True(t, ok) {
		assert.Equal(t, "hello", name)
	}
	_, ok = GetSymbol(Cons(v, Nil()))
	assert.False(t, ok)
	assert.Equal(t, "symbol", v.Type.String())
}

func TestClosure(t *testing.T) {
	env := NewEnv(nil)
	params := Expr(Symbol("x"))
	body := Expr(Symbol("x"))
	fn := Lambda(env, params, body)
	assert.False(t, IsAtom(fn))
	assert.False(t, IsPair(fn))
	c, ok := GetClosure(fn)
	if assert.True(t, ok) {
		assert.Same(t, env, c.Env)
		assert.True(t, Equal(params, c.Params))
		assert.True(t, Equal(body, c.Body))
	}
	_, ok = GetClosure(Symbol("x"))
	assert.False(t, ok)
}

func TestEqual(t *testing.T) {
	a := Expr(Symbol("a"), Expr(Symbol("b")), Nil())
	b := Expr(Symbol("a"), Expr(Symbol("b")), Nil())
	assert.True(t, Equal(a, b))
	assert.True(t, Equal(Symbol("x"), Symbol("x")))
	assert.False(t, Equal(Symbol("x"), Symbol("y")))
	assert.False(t, Equal(Nil(), Symbol("y")))
	assert.False(t, Equal(Expr(Symbol("a")), ExprDotted(Symbol("b"), Symbol("a"))))

	env := NewEnv(nil)
	f1 := Lambda(env, Nil(), Nil())
	f2 := Lambda(env, Nil(), Nil())
	assert.True(t, Equal(f1, f1))
	assert.False(t, Equal(f1, f2))
}
