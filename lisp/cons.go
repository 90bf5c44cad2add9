package lisp

import "fmt"

// ConsData is the container that backs LCons values.
type ConsData struct {
	CAR LVal
	CDR LVal
}

// Cons returns a new LCons value from head and tail.  If tail is a list then
// Cons returns a list as well.
// 	(cons head tail)
func Cons(head, tail LVal) LVal {
	return LVal{
		Type:   LCons,
		Native: &ConsData{CAR: head, CDR: tail},
	}
}

// GetCAR returns the first element of pair v.
// GetCAR returns false if v is not LCons.
func GetCAR(v LVal) (LVal, bool) {
	if v.Type != LCons {
		return Nil(), false
	}
	return v.Native.(*ConsData).CAR, true
}

// GetCDR returns the second element of pair v.
// GetCDR returns false if v is not LCons.
func GetCDR(v LVal) (LVal, bool) {
	if v.Type != LCons {
		return Nil(), false
	}
	return v.Native.(*ConsData).CDR, true
}

// MustCons returns the ConsData backing v.
// MustCons panics if v is not LCons.
func MustCons(v LVal) *ConsData {
	if v.Type != LCons {
		panic(fmt.Sprintf("not a cons: %v", v.Type))
	}
	return v.Native.(*ConsData)
}

// Expr returns a proper list containing the elements of v.
func Expr(v ...LVal) LVal {
	return ExprDotted(Nil(), v...)
}

// ExprDotted returns a list containing the elements of v whose final CDR is
// tail instead of nil.  When v is empty ExprDotted returns tail.
func ExprDotted(tail LVal, v ...LVal) LVal {
	lis := tail
	for i := len(v) - 1; i >= 0; i-- {
		lis = Cons(v[i], lis)
	}
	return lis
}

// Len returns the number of pairs in the chain starting at v.  Len returns
// false if the chain is not terminated by nil.
func Len(v LVal) (int, bool) {
	n := 0
	for v.Type == LCons {
		v = v.Native.(*ConsData).CDR
		n++
	}
	return n, IsNil(v)
}

// SliceAll collects the list elements of v into a slice.  SliceAll returns
// false if v does not form a proper list.  The returned tail is the value
// terminating the chain.
func SliceAll(v LVal) (s []LVal, tail LVal, ok bool) {
	it := NewListIterator(v)
	for it.Next() {
		s = append(s, it.Value())
	}
	return s, it.Rest(), it.Err() == nil
}

// ListBuilder appends values to the end of a cons list.
type ListBuilder struct {
	front LVal
	back  *ConsData
}

// NewListBuilder returns an empty ListBuilder.
func NewListBuilder() *ListBuilder {
	return &ListBuilder{}
}

// List returns a cons list with the elements appended so far.  If Append is
// called after List the value returned by List will be modified.
func (b *ListBuilder) List() LVal {
	return b.front
}

// Append adds elements to the end of the cons list.
func (b *ListBuilder) Append(v ...LVal) {
	for i := range v {
		data := &ConsData{v[i], Nil()}
		cell := LVal{Type: LCons, Native: data}
		if b.back == nil {
			b.front = cell
		} else {
			b.back.CDR = cell
		}
		b.back = data
	}
}

// Terminate replaces the nil ending the list with tail, producing a dotted
// list.  If no elements were appended the list becomes tail itself.
func (b *ListBuilder) Terminate(tail LVal) {
	if b.back == nil {
		b.front = tail
		return
	}
	b.back.CDR = tail
}

// ListIterator iterates through cons lists
type ListIterator struct {
	v    LVal
	rest LVal
	err  error
}

// NewListIterator returns a ListIterator that will iterate through list v.
func NewListIterator(v LVal) *ListIterator {
	return &ListIterator{
		v:    Nil(),
		rest: v,
	}
}

// Value returns the iteration's current value.  Value will return nil if Next
// has not been called.
func (it *ListIterator) Value() LVal {
	return it.v
}

// Rest returns any items remaining to be iterated over
func (it *ListIterator) Rest() LVal {
	return it.rest
}

// Next advances the iterator to the next list element.  Next returns false if
// iteration terminated, either because the list had no more elements or
// because a non-list value was encountered.
func (it *ListIterator) Next() bool {
	if IsNil(it.rest) || it.err != nil {
		return false
	}
	if it.rest.Type != LCons {
		it.err = fmt.Errorf("not a list: %v", it.rest.Type)
		return false
	}
	data := it.rest.Native.(*ConsData)
	it.v = data.CAR
	it.rest = data.CDR
	return true
}

// Err returns a non-nil error if the iteration encountered a non-list value
// terminating the cons chain.
func (it *ListIterator) Err() error {
	return it.err
}
