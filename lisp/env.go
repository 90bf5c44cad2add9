package lisp

import (
	"io"
	"os"
	"sync/atomic"
)

var envCount uint64

func getEnvID() uint {
	return uint(atomic.AddUint64(&envCount, 1))
}

// Runtime is state shared by every frame of an environment chain.
type Runtime struct {
	// Stderr receives diagnostic messages for evaluation errors.
	Stderr io.Writer
	Stack  *CallStack
}

// LEnv is one frame of a lexical environment.  A frame holds an append-only
// log of bindings and a link to the enclosing (base) frame.
type LEnv struct {
	ID      uint
	Runtime *Runtime
	base    *LEnv
	pairs   []binding
	index   map[string]int // name -> position of the newest binding in pairs
}

type binding struct {
	name  string
	value LVal
}

// NewEnv returns initializes and returns a new LEnv.  If base is nil a root
// environment with a fresh Runtime is returned.
func NewEnv(base *LEnv) *LEnv {
	var runtime *Runtime
	if base != nil {
		runtime = base.Runtime
	} else {
		runtime = &Runtime{
			Stderr: os.Stderr,
			Stack:  &CallStack{},
		}
	}
	return &LEnv{
		ID:      getEnvID(),
		Runtime: runtime,
		base:    base,
		index:   make(map[string]int),
	}
}

// Base returns the enclosing frame of env, or nil for a root environment.
func (env *LEnv) Base() *LEnv {
	return env.base
}

// Root returns the outermost frame of the chain containing env.
func (env *LEnv) Root() *LEnv {
	for env.base != nil {
		env = env.base
	}
	return env
}

// Len returns the number of bindings in env's own frame, including shadowed
// ones.
func (env *LEnv) Len() int {
	return len(env.pairs)
}

// Define appends a binding of name to v in env's own frame.  A previous
// binding of name in the frame is shadowed, not replaced.  Define panics if
// name is empty.
func (env *LEnv) Define(name string, v LVal) {
	if name == "" {
		panic("empty binding name")
	}
	env.index[name] = len(env.pairs)
	env.pairs = append(env.pairs, binding{name, v})
}

// Search returns the newest binding of name visible from env, looking in
// env's frame first and then each enclosing frame.  Search returns false if
// no frame in the chain binds name.
func (env *LEnv) Search(name string) (LVal, bool) {
	for ; env != nil; env = env.base {
		i, ok := env.index[name]
		if ok {
			return env.pairs[i].value, true
		}
	}
	return Nil(), false
}

// Checkpoint returns a mark that Rollback can use to discard bindings
// defined in env's frame after the call to Checkpoint.
func (env *LEnv) Checkpoint() int {
	return len(env.pairs)
}

// Rollback removes every binding appended to env's frame since mark was
// returned by Checkpoint.  Bindings shadowed by the removed ones become
// visible again.
func (env *LEnv) Rollback(mark int) {
	if mark < 0 || mark > len(env.pairs) {
		panic("invalid environment checkpoint")
	}
	for i := len(env.pairs) - 1; i >= mark; i-- {
		name := env.pairs[i].name
		if env.index[name] == i {
			delete(env.index, name)
			for j := i - 1; j >= 0; j-- {
				if env.pairs[j].name == name {
					env.index[name] = j
					break
				}
			}
		}
		env.pairs[i] = binding{}
	}
	env.pairs = env.pairs[:mark]
}
