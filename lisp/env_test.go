package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnv_root(t *testing.T) {
	env := NewEnv(nil)
	assert.Nil(t, env.Base())
	assert.Same(t, env, env.Root())
	assert.Equal(t, 0, env.Len())
	_, ok := env.Search("a")
	assert.False(t, ok)

	env.Define("a", Symbol("1"))
	v, ok := env.Search("a")
	if assert.True(t, ok) {
		assert.Equal(t, "1", v.Str)
	}
	assert.Panics(t, func() { env.Define("", Nil()) })
}

func TestEnv_shadowing(t *testing.T) {
	env := NewEnv(nil)
	env.Define("x", Symbol("A"))
	env.Define("x", Symbol("B"))
	assert.Equal(t, 2, env.Len())
	v, ok := env.Search("x")
	if assert.True(t, ok) {
		assert.Equal(t, "B", v.Str)
	}
}

func TestEnv_child(t *testing.T) {
	root := NewEnv(nil)
	root.Define("a", Symbol("1"))
	root.Define("b", Symbol("2"))
	env := NewEnv(root)
	assert.Same(t, root, env.Base())
	assert.Same(t, root, env.Root())
	assert.Same(t, root.Runtime, env.Runtime)
	assert.NotEqual(t, root.ID, env.ID)
	assert.Equal(t, 0, env.Len())

	env.Define("b", Symbol("3"))
	env.Define("c", Symbol("4"))
	v, ok := env.Search("a")
	if assert.True(t, ok) {
		assert.Equal(t, "1", v.Str)
	}
	v, ok = env.Search("b")
	if assert.True(t, ok) {
		assert.Equal(t, "3", v.Str)
	}
	v, ok = root.Search("b")
	if assert.True(t, ok) {
		assert.Equal(t, "2", v.Str)
	}
	_, ok = root.Search("c")
	assert.False(t, ok)
}

func TestEnv_rollback(t *testing.T) {
	env := NewEnv(nil)
	env.Define("x", Symbol("A"))
	mark := env.Checkpoint()
	env.Define("x", Symbol("B"))
	env.Define("y", Symbol("C"))
	env.Define("x", Symbol("D"))
	v, _ := env.Search("x")
	assert.Equal(t, "D", v.Str)

	env.Rollback(mark)
	assert.Equal(t, 1, env.Len())
	v, ok := env.Search("x")
	if assert.True(t, ok) {
		assert.Equal(t, "A", v.Str)
	}
	_, ok = env.Search("y")
	assert.False(t, ok)

	env.Rollback(env.Checkpoint())
	assert.Equal(t, 1, env.Len())
	assert.Panics(t, func() { env.Rollback(2) })
}
