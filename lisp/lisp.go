package lisp

import "fmt"

// LType is the type of an LVal
type LType uint8

// Possible LType values
const (
	// LSymbol is a symbolic name.  The symbol with an empty name is nil, the
	// empty list.
	// Schema:
	// 	Str: symbol name
	LSymbol LType = iota
	// LCons is a pair of values.  Chains of LCons terminated by nil form
	// lists.
	// Schema:
	// 	Native: *ConsData
	LCons
	// LClosure is a function value produced by lambda.
	// Schema:
	// 	Native: *Closure
	LClosure
)

var ltypeStrings = []string{
	LSymbol:  "symbol",
	LCons:    "pair",
	LClosure: "closure",
}

func (t LType) String() string {
	if int(t) >= len(ltypeStrings) {
		return fmt.Sprintf("LType(%d)", uint8(t))
	}
	return ltypeStrings[t]
}

// ApplicableMarker is the printed representation of every closure.
const ApplicableMarker = "*applicable*"

// LVal is a lisp value.  The zero LVal is a valid nil value.
type LVal struct {
	Type   LType
	Str    string
	Native interface{}
}

// Closure is the data backing an LClosure value.  Env is the environment
// captured when the lambda expression was evaluated.
type Closure struct {
	Env    *LEnv
	Params LVal
	Body   LVal
}

// Nil returns the nil symbol.
func Nil() LVal {
	return LVal{}
}

// Symbol returns an LSymbol named s.  Symbol("") is nil.
func Symbol(s string) LVal {
	return LVal{
		Type: LSymbol,
		Str:  s,
	}
}

// Lambda returns a closure over env.
func Lambda(env *LEnv, params LVal, body LVal) LVal {
	return LVal{
		Type: LClosure,
		Native: &Closure{
			Env:    env,
			Params: params,
			Body:   body,
		},
	}
}

// GetClosure returns the closure data held by v.
// GetClosure returns false if v is not LClosure.
func GetClosure(v LVal) (*Closure, bool) {
	if v.Type != LClosure {
		return nil, false
	}
	return v.Native.(*Closure), true
}

// GetSymbol returns the name of symbol v.
// GetSymbol returns false if v is not LSymbol.
func GetSymbol(v LVal) (string, bool) {
	if v.Type != LSymbol {
		return "", false
	}
	return v.Str, true
}

// IsAtom returns true if v is a symbol.  Nil is an atom.
func IsAtom(v LVal) bool {
	return v.Type == LSymbol
}

// IsNil returns true if v is the symbol with no name.
func IsNil(v LVal) bool {
	return v.Type == LSymbol && v.Str == ""
}

// IsPair returns true if v is LCons.
func IsPair(v LVal) bool {
	return v.Type == LCons
}

// Equal returns true if v1 and v2 are structurally identical.  Closures are
// only equal to themselves.
func Equal(v1 LVal, v2 LVal) bool {
	for {
		if v1.Type != v2.Type {
			return false
		}
		switch v1.Type {
		case LSymbol:
			return v1.Str == v2.Str
		case LClosure:
			return v1.Native.(*Closure) == v2.Native.(*Closure)
		}
		c1 := v1.Native.(*ConsData)
		c2 := v2.Native.(*ConsData)
		if c1 == c2 {
			return true
		}
		if !Equal(c1.CAR, c2.CAR) {
			return false
		}
		v1, v2 = c1.CDR, c2.CDR
	}
}

func (v LVal) String() string {
	return Render(v)
}
