package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/ryohji/ulisp/lisp"
	"github.com/ryohji/ulisp/parser/rdparser"
)

// DefaultPrompt is the prompt shown while no expression is pending.
const DefaultPrompt = "> "

// RunRepl runs an interactive session on the terminal.  Each complete
// expression is evaluated as a top-level expression and its value printed.
// Pressing Ctrl-C discards a partially entered expression.  The session ends
// at the end of input.
func RunRepl(prompt string, config ...lisp.Config) error {
	rl, err := readline.New(prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	env := lisp.NewEnv(nil)
	config = append([]lisp.Config{lisp.WithStderr(rl.Stderr())}, config...)
	err = lisp.InitializeUserEnv(env, config...)
	if err != nil {
		return err
	}

	lines := &lineReader{
		rl:         rl,
		prompt:     prompt,
		contPrompt: strings.Repeat(" ", len(prompt)), // prompt had better be ascii...
	}
	p := lines.newParser()
	for {
		expr, err := p.ReadExpression()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				p = lines.newParser()
				continue
			}
			if lisp.IsErrno(err, lisp.ErrnoNoInput) {
				return nil
			}
			if !isReadError(err) {
				return err
			}
			errln(env, err)
			if lines.eof {
				return nil
			}
			// The parser buffers the rest of the line.  Dropping it resumes
			// reading on the next line.
			p = lines.newParser()
			continue
		}
		result, err := env.EvalTop(expr)
		if err != nil {
			continue
		}
		fmt.Fprintln(rl.Stdout(), lisp.Render(result))
	}
}

// RunStream reads and evaluates every expression from r in env, writing each
// result to w.  Evaluation errors do not stop the stream.  After a syntax
// error the rest of the offending line is skipped.  RunStream returns nil at
// the end of input and only returns an error when r itself fails.
func RunStream(env *lisp.LEnv, name string, r io.Reader, w io.Writer) error {
	p := rdparser.NewFromReader(name, r)
	for {
		expr, err := p.ReadExpression()
		if err != nil {
			if lisp.IsErrno(err, lisp.ErrnoNoInput) {
				return nil
			}
			if !isReadError(err) {
				return err
			}
			errln(env, err)
			if lisp.IsErrno(err, lisp.ErrnoUnterminatedList) {
				return nil
			}
			err = p.SkipLine()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}
			continue
		}
		result, err := env.EvalTop(expr)
		if err != nil {
			continue
		}
		_, err = fmt.Fprintln(w, lisp.Render(result))
		if err != nil {
			return err
		}
	}
}

// IsTerminal returns true if standard input is attached to a terminal.
func IsTerminal() bool {
	return readline.DefaultIsTerminal()
}

func isReadError(err error) bool {
	errno, ok := lisp.ErrnoOf(err)
	return ok && errno.IsReadError()
}

func errln(env *lisp.LEnv, err error) {
	w := env.Runtime.Stderr
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintln(w, err)
}

// lineReader feeds the parser one line of terminal input at a time.  The
// prompt is chosen when a line is requested so a continuation prompt is
// shown while a list is open.
type lineReader struct {
	rl         *readline.Instance
	prompt     string
	contPrompt string
	parser     *rdparser.Parser
	buf        []byte
	eof        bool
}

func (lr *lineReader) newParser() *rdparser.Parser {
	lr.buf = nil
	lr.parser = rdparser.NewFromReader("stdin", lr)
	return lr.parser
}

func (lr *lineReader) Read(b []byte) (int, error) {
	if len(lr.buf) == 0 {
		if lr.eof {
			return 0, io.EOF
		}
		if lr.parser != nil && lr.parser.IsParsing() {
			lr.rl.SetPrompt(lr.contPrompt)
		} else {
			lr.rl.SetPrompt(lr.prompt)
		}
		line, err := lr.rl.Readline()
		if err == io.EOF {
			lr.eof = true
			return 0, io.EOF
		}
		if err != nil {
			return 0, err
		}
		lr.buf = append([]byte(line), '\n')
	}
	n := copy(b, lr.buf)
	lr.buf = lr.buf[n:]
	return n, nil
}
