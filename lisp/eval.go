package lisp

import "fmt"

// Eval evaluates v in the context (scope) of env and returns the resulting
// LVal.
//
// Nil evaluates to itself and any other symbol evaluates to its binding.  A
// pair whose head is the name of a special operator is evaluated by that
// operator.  Any other pair is a function application.  The first error
// aborts the whole evaluation; its message has already been written to
// env.Runtime.Stderr when Eval returns.
func (env *LEnv) Eval(v LVal) (LVal, error) {
	switch v.Type {
	case LSymbol:
		if v.Str == "" {
			return Nil(), nil
		}
		val, ok := env.Search(v.Str)
		if !ok {
			return Nil(), env.raise(UnboundSymbolError(v.Str))
		}
		return val, nil
	case LClosure:
		return v, nil
	}
	head := MustCons(v).CAR
	if head.Type == LSymbol {
		op, ok := specialOps[head.Str]
		if ok {
			return op(env, v)
		}
	}
	return env.apply(v)
}

// EvalTop evaluates v as a top-level expression.  When evaluation fails every
// binding v added to env's frame is removed, leaving env as it was before the
// call.
func (env *LEnv) EvalTop(v LVal) (LVal, error) {
	mark := env.Checkpoint()
	result, err := env.Eval(v)
	if err != nil {
		env.Rollback(mark)
		return Nil(), err
	}
	return result, nil
}

// raise records the call stack in err and writes its message to the
// diagnostic writer.
func (env *LEnv) raise(err *Error) error {
	if err.Stack == nil {
		err.Stack = env.Runtime.Stack.Copy()
	}
	fmt.Fprintln(env.Runtime.Stderr, err.Message)
	return err
}

// apply evaluates every element of form and calls the closure produced by
// its head with the remaining values.
func (env *LEnv) apply(form LVal) (LVal, error) {
	if _, ok := Len(form); !ok {
		return Nil(), env.raise(IllegalArgumentError(form))
	}
	data := MustCons(form)
	head, err := env.Eval(data.CAR)
	if err != nil {
		return Nil(), err
	}
	args := NewListBuilder()
	it := NewListIterator(data.CDR)
	for it.Next() {
		x, err := env.Eval(it.Value())
		if err != nil {
			return Nil(), err
		}
		args.Append(x)
	}
	fun, ok := GetClosure(head)
	if !ok {
		return Nil(), env.raise(NotApplicableError(head))
	}
	return env.Call(fun, args.List(), data.CAR)
}

// Call invokes fun with the list args.  A new frame chained to the
// environment captured by fun receives the parameter bindings and the body is
// evaluated in that frame.  The operator expression is recorded in the call
// stack for diagnostics.
func (env *LEnv) Call(fun *Closure, args LVal, operator LVal) (LVal, error) {
	frame := NewEnv(fun.Env)
	lerr := frame.bind(fun.Params, args)
	if lerr != nil {
		return Nil(), env.raise(lerr)
	}
	stack := env.Runtime.Stack
	err := stack.Push(CallFrame{Operator: Render(operator), EnvID: frame.ID})
	if err != nil {
		return Nil(), env.raise(err.(*Error))
	}
	defer stack.Pop()
	return frame.progn(fun.Body)
}

// bind pairs each parameter symbol with the corresponding argument.  A
// parameter list ending in a non-nil symbol binds that symbol to the
// remaining arguments.
func (env *LEnv) bind(params, args LVal) *Error {
	for {
		switch {
		case params.Type == LCons:
			if args.Type != LCons {
				return ArityError()
			}
			p, a := MustCons(params), MustCons(args)
			name, ok := GetSymbol(p.CAR)
			if !ok || name == "" {
				return IllegalArgumentError(p.CAR)
			}
			env.Define(name, a.CAR)
			params, args = p.CDR, a.CDR
		case IsNil(params):
			if !IsNil(args) {
				return ArityError()
			}
			return nil
		case params.Type == LSymbol:
			env.Define(params.Str, args)
			return nil
		default:
			return IllegalArgumentError(params)
		}
	}
}

// progn evaluates each form of body in sequence and returns the value of the
// last one.  An empty body evaluates to nil.
func (env *LEnv) progn(body LVal) (LVal, error) {
	result := Nil()
	it := NewListIterator(body)
	for it.Next() {
		var err error
		result, err = env.Eval(it.Value())
		if err != nil {
			return Nil(), err
		}
	}
	if it.Err() != nil {
		return Nil(), env.raise(IllegalArgumentError(body))
	}
	return result, nil
}
