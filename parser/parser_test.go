package parser

import (
	"testing"

	"github.com/ryohji/ulisp/lisp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseString(t *testing.T) {
	exprs, err := ParseString("(about : blank) hello\n()")
	require.NoError(t, err)
	var rendered []string
	for _, v := range exprs {
		rendered = append(rendered, lisp.Render(v))
	}
	assert.Equal(t, []string{"(about : blank)", "hello", "()"}, rendered)

	exprs, err = ParseBytes([]byte(`hello\ world`))
	require.NoError(t, err)
	if assert.Len(t, exprs, 1) {
		assert.Equal(t, "hello world", exprs[0].Str)
	}
}

func TestReadString(t *testing.T) {
	v, err := ReadString("(a b) c")
	require.NoError(t, err)
	assert.Equal(t, "(a b)", lisp.Render(v))

	_, err = ReadString(" ")
	assert.True(t, lisp.IsErrno(err, lisp.ErrnoNoInput))
}
