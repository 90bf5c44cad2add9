package lisp

import (
	"errors"
	"fmt"

	"github.com/ryohji/ulisp/parser/token"
)

// Errno is an error code
type Errno int

// Possible Errno values
const (
	ErrnoPanic Errno = iota
	ErrnoNoInput
	ErrnoUnterminatedList
	ErrnoMalformedDottedTail
	ErrnoMalformedEscape
	ErrnoUnexpectedToken
	ErrnoUnboundSymbol
	ErrnoIllegalArgument
	ErrnoNotAPair
	ErrnoNotApplicable
	ErrnoStackOverflow
)

var errnoStrings = []string{
	ErrnoPanic:               "PANIC",
	ErrnoNoInput:             "no input",
	ErrnoUnterminatedList:    "unterminated list",
	ErrnoMalformedDottedTail: "malformed dotted tail",
	ErrnoMalformedEscape:     "malformed escape",
	ErrnoUnexpectedToken:     "unexpected token",
	ErrnoUnboundSymbol:       "unbound symbol",
	ErrnoIllegalArgument:     "illegal argument",
	ErrnoNotAPair:            "not a pair",
	ErrnoNotApplicable:       "not applicable",
	ErrnoStackOverflow:       "stack overflow",
}

func (n Errno) String() string {
	if n < 0 || int(n) >= len(errnoStrings) {
		return errnoStrings[ErrnoPanic]
	}
	return errnoStrings[n]
}

// IsReadError returns true if n is raised by the reader rather than the
// evaluator.
func (n Errno) IsReadError() bool {
	return ErrnoNoInput <= n && n <= ErrnoUnexpectedToken
}

// Error is the error type returned by the reader and the evaluator.  Errno
// identifies the kind of failure and Message holds the diagnostic text shown
// to users.
type Error struct {
	Errno   Errno
	Message string
	// Source is the location of the offending token for reader errors.
	Source *token.Location
	// Stack is a copy of the call stack at the point an evaluator error was
	// raised.
	Stack *CallStack
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Errorf returns an *Error with the given kind and a formatted message.
func Errorf(errno Errno, format string, v ...interface{}) *Error {
	return &Error{
		Errno:   errno,
		Message: fmt.Sprintf(format, v...),
	}
}

// ErrnoOf returns the Errno carried by err.  ErrnoOf returns false if err
// does not wrap an *Error.
func ErrnoOf(err error) (Errno, bool) {
	var lerr *Error
	if !errors.As(err, &lerr) {
		return ErrnoPanic, false
	}
	return lerr.Errno, true
}

// IsErrno returns true if err wraps an *Error of kind errno.
func IsErrno(err error, errno Errno) bool {
	n, ok := ErrnoOf(err)
	return ok && n == errno
}

// UnboundSymbolError is raised when name has no binding in scope.
func UnboundSymbolError(name string) *Error {
	return Errorf(ErrnoUnboundSymbol, "Value for symbol `%s` not found.", name)
}

// IllegalArgumentError is raised for a malformed special form operand list.
func IllegalArgumentError(v LVal) *Error {
	return Errorf(ErrnoIllegalArgument, "Illegal argument: %v", v)
}

// NotAPairError is raised when pair structure is required but v is an atom.
func NotAPairError(v LVal) *Error {
	return Errorf(ErrnoNotAPair, "`%v` is not pair.", v)
}

// NotApplicableError is raised when the operator of an application is not a
// closure.
func NotApplicableError(v LVal) *Error {
	return Errorf(ErrnoNotApplicable, "`%v` is not applicable.", v)
}

// ArityError is raised when parameter and argument lists differ in length.
func ArityError() *Error {
	return Errorf(ErrnoIllegalArgument, "List length mismatch.")
}
