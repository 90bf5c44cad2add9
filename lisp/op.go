package lisp

// specialOp evaluates a special form.  The operator receives the entire
// unevaluated form, including the operator symbol at its head.
type specialOp func(env *LEnv, form LVal) (LVal, error)

type langSpecialOp struct {
	name string
	fn   specialOp
}

var langSpecialOps = []langSpecialOp{
	{"quote", opQuote},
	{"cons", opCons},
	{"atom", opAtom},
	{"car", opCar},
	{"cdr", opCdr},
	{"set", opSet},
	{"cond", opCond},
	{"lambda", opLambda},
}

// specialOps is populated by init because the operators themselves call Eval.
var specialOps map[string]specialOp

func init() {
	specialOps = make(map[string]specialOp, len(langSpecialOps))
	for _, op := range langSpecialOps {
		specialOps[op.name] = op.fn
	}
}

// IsSpecialOp returns true if name is recognized as a special operator when
// it appears at the head of a form.  Such names can never be applied as
// ordinary functions.
func IsSpecialOp(name string) bool {
	_, ok := specialOps[name]
	return ok
}

// operands extracts exactly n operands from form, evaluating each one before
// looking for the next when eval is true.  A missing or surplus operand is
// reported against the list cell where the operand list went wrong:
//
//	(cons)        Illegal argument: (cons)
//	(cons x)      Illegal argument: (x)
func (env *LEnv) operands(form LVal, n int, eval bool) ([]LVal, error) {
	args := make([]LVal, n)
	cur := form
	for i := 0; i < n; i++ {
		next := MustCons(cur).CDR
		if next.Type != LCons {
			return nil, env.raise(IllegalArgumentError(cur))
		}
		cur = next
		args[i] = MustCons(cur).CAR
		if eval {
			v, err := env.Eval(args[i])
			if err != nil {
				return nil, err
			}
			args[i] = v
		}
	}
	if !IsNil(MustCons(cur).CDR) {
		return nil, env.raise(IllegalArgumentError(cur))
	}
	return args, nil
}

func opQuote(env *LEnv, form LVal) (LVal, error) {
	args, err := env.operands(form, 1, false)
	if err != nil {
		return Nil(), err
	}
	return args[0], nil
}

func opCons(env *LEnv, form LVal) (LVal, error) {
	args, err := env.operands(form, 2, true)
	if err != nil {
		return Nil(), err
	}
	return Cons(args[0], args[1]), nil
}

// opAtom answers a true atom test with the current binding of t rather than a
// constant, so (atom x) fails with an unbound symbol error where t is unbound.
func opAtom(env *LEnv, form LVal) (LVal, error) {
	args, err := env.operands(form, 1, true)
	if err != nil {
		return Nil(), err
	}
	if !IsAtom(args[0]) {
		return Nil(), nil
	}
	return env.Eval(Symbol("t"))
}

func opCar(env *LEnv, form LVal) (LVal, error) {
	args, err := env.operands(form, 1, true)
	if err != nil {
		return Nil(), err
	}
	car, ok := GetCAR(args[0])
	if !ok {
		return Nil(), env.raise(NotAPairError(args[0]))
	}
	return car, nil
}

func opCdr(env *LEnv, form LVal) (LVal, error) {
	args, err := env.operands(form, 1, true)
	if err != nil {
		return Nil(), err
	}
	cdr, ok := GetCDR(args[0])
	if !ok {
		return Nil(), env.raise(NotAPairError(args[0]))
	}
	return cdr, nil
}

func opSet(env *LEnv, form LVal) (LVal, error) {
	args, err := env.operands(form, 2, true)
	if err != nil {
		return Nil(), err
	}
	name, ok := GetSymbol(args[0])
	if !ok || name == "" {
		return Nil(), env.raise(IllegalArgumentError(form))
	}
	env.Define(name, args[1])
	return args[1], nil
}

// opCond evaluates the predicate of each branch in order.  The first branch
// with a non-nil predicate has its remaining forms evaluated in sequence; a
// branch with no forms after the predicate yields the predicate's value.
func opCond(env *LEnv, form LVal) (LVal, error) {
	branches := MustCons(form).CDR
	if IsNil(branches) {
		return Nil(), env.raise(IllegalArgumentError(form))
	}
	it := NewListIterator(branches)
	for it.Next() {
		test, ok := GetCAR(it.Value())
		if !ok {
			return Nil(), env.raise(NotAPairError(it.Value()))
		}
		pred, err := env.Eval(test)
		if err != nil {
			return Nil(), err
		}
		if IsNil(pred) {
			continue
		}
		body := MustCons(it.Value()).CDR
		if IsNil(body) {
			return pred, nil
		}
		return env.progn(body)
	}
	if it.Err() != nil {
		return Nil(), env.raise(IllegalArgumentError(form))
	}
	return Nil(), nil
}

func opLambda(env *LEnv, form LVal) (LVal, error) {
	rest := MustCons(form).CDR
	if rest.Type != LCons {
		return Nil(), env.raise(Errorf(ErrnoIllegalArgument, "No closure param exist: %v", form))
	}
	params := MustCons(rest).CAR
	if !IsNil(params) && params.Type != LCons {
		return Nil(), env.raise(Errorf(ErrnoIllegalArgument, "Closure parameter should be list: %v", form))
	}
	body := MustCons(rest).CDR
	if _, ok := Len(body); !ok {
		return Nil(), env.raise(IllegalArgumentError(form))
	}
	return Lambda(env, params, body), nil
}
