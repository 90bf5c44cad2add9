// Package ulisptest provides a table driven harness for testing ulisp
// evaluation.
package ulisptest

import (
	"bytes"
	"testing"

	"github.com/ryohji/ulisp/lisp"
	"github.com/ryohji/ulisp/parser"
)

// TestSequence is a sequence of lisp expressions which are evaluated sequentially
// by a lisp.LEnv.
type TestSequence []struct {
	Expr   string // a lisp expression
	Result string // the evaluated result, or the message of the error raised
}

// TestSuite is a set of named TestSequences
type TestSuite []struct {
	Name string
	TestSequence
}

// NewEnv returns an initialized root environment whose diagnostics are
// written to stderr.
func NewEnv(t testing.TB, stderr *bytes.Buffer, config ...lisp.Config) *lisp.LEnv {
	t.Helper()
	env := lisp.NewEnv(nil)
	config = append([]lisp.Config{lisp.WithStderr(stderr)}, config...)
	err := lisp.InitializeUserEnv(env, config...)
	if err != nil {
		t.Fatalf("Failed to initialize lisp environment: %v", err)
	}
	return env
}

// RunTestSuite runs each TestSequence in tests on isolated lisp.LEnvs.  When
// an expression fails the message written to the diagnostic stream must match
// the error message.
func RunTestSuite(t *testing.T, tests TestSuite) {
	for i, test := range tests {
		var stderr bytes.Buffer
		env := NewEnv(t, &stderr)
		for j, expr := range test.TestSequence {
			stderr.Reset()
			v, err := parser.ParseString(expr.Expr)
			if err != nil {
				result := err.Error()
				if result != expr.Result {
					t.Errorf("test %d %q: expr %d: parse error: %v", i, test.Name, j, err)
				}
				continue
			}
			if len(v) == 0 {
				t.Errorf("test %d %q: expr %d: no expression parsed", i, test.Name, j)
				continue
			}
			if len(v) != 1 {
				t.Errorf("test %d %q: expr %d: more than one expression parsed (%d)", i, test.Name, j, len(v))
				continue
			}
			var result string
			val, err := env.EvalTop(v[0])
			if err != nil {
				result = err.Error()
				if stderr.String() != result+"\n" {
					t.Errorf("test %d %q: expr %d: diagnostic %q does not match error %q", i, test.Name, j, stderr.String(), result)
				}
			} else {
				result = lisp.Render(val)
			}
			if result != expr.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)", i, test.Name, j, expr.Result, result)
			}
		}
	}
}
