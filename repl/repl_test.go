package repl

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/ryohji/ulisp/lisp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEnv(t *testing.T, stderr io.Writer) *lisp.LEnv {
	t.Helper()
	env := lisp.NewEnv(nil)
	require.NoError(t, lisp.InitializeUserEnv(env, lisp.WithStderr(stderr)))
	return env
}

func TestRunStream(t *testing.T) {
	var stdout, stderr bytes.Buffer
	env := newEnv(t, &stderr)
	input := strings.Join([]string{
		"(set (quote x) (quote a))",
		"x",
		"(car ())",
		") junk (quote skipped)",
		`\q rest`,
		"(quote after) (atom x)",
		"(cons (set (quote x) (quote b)) y)",
		"x",
		"(a",
	}, "\n")
	err := RunStream(env, "test", strings.NewReader(input), &stdout)
	assert.NoError(t, err)
	assert.Equal(t, "a\na\nafter\nTrue\na\n", stdout.String())
	assert.Equal(t, strings.Join([]string{
		"`()` is not pair.",
		"Unexpected token: )",
		"Unknown escape character: q",
		"Value for symbol `y` not found.",
		"Unterminated list.",
		"",
	}, "\n"), stderr.String())
}

func TestRunStream_empty(t *testing.T) {
	var stdout, stderr bytes.Buffer
	env := newEnv(t, &stderr)
	assert.NoError(t, RunStream(env, "test", strings.NewReader(""), &stdout))
	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRunStream_syntaxErrorAtEnd(t *testing.T) {
	var stdout, stderr bytes.Buffer
	env := newEnv(t, &stderr)
	assert.NoError(t, RunStream(env, "test", strings.NewReader("a )"), &stdout))
	assert.Equal(t, "Value for symbol `a` not found.\nUnexpected token: )\n", stderr.String())
}

type failingReader struct{}

func (failingReader) Read(b []byte) (int, error) {
	return 0, errors.New("read failure")
}

func TestRunStream_readError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	env := newEnv(t, &stderr)
	err := RunStream(env, "test", failingReader{}, &stdout)
	assert.EqualError(t, err, "read failure")
}
