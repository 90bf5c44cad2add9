package lisp

import (
	"fmt"
	"io"
)

// Config is a function that configures a root environment or its runtime.
type Config func(env *LEnv) error

// WithMaximumStackHeight returns a Config that will prevent an execution
// environment from nesting more than n function applications.  A value of
// zero removes the limit.
func WithMaximumStackHeight(n int) Config {
	return func(env *LEnv) error {
		if n < 0 {
			return fmt.Errorf("negative maximum stack height: %d", n)
		}
		env.Runtime.Stack.MaxHeight = n
		return nil
	}
}

// WithStderr returns a Config that makes environments write diagnostic
// messages to w instead of the default, os.Stderr.
func WithStderr(w io.Writer) Config {
	return func(env *LEnv) error {
		if w == nil {
			w = io.Discard
		}
		env.Runtime.Stderr = w
		return nil
	}
}

// WithBinding returns a Config that binds name to v in the root frame.
func WithBinding(name string, v LVal) Config {
	return func(env *LEnv) error {
		if name == "" {
			return fmt.Errorf("empty binding name")
		}
		env.Root().Define(name, v)
		return nil
	}
}

// InitializeUserEnv binds the symbol t to True in the root frame of env and
// then applies config in order.
func InitializeUserEnv(env *LEnv, config ...Config) error {
	env.Root().Define("t", Symbol("True"))
	for _, fn := range config {
		err := fn(env)
		if err != nil {
			return err
		}
	}
	return nil
}
