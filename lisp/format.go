package lisp

import (
	"io"
	"strings"
)

// Format writes the canonical source representation of v to w.  Lists are
// written as space separated elements in parentheses.  A chain ending in a
// non-nil atom is written with a ": " separated tail, the same notation the
// reader accepts for dotted pairs.
//
//	()            nil
//	hello         symbol
//	(a b c)       proper list
//	(a b : c)     dotted list
//	*applicable*  closure
func Format(w io.Writer, v LVal) (int, error) {
	cw := &countingWriter{w: w}
	cw.format(v)
	return cw.n, cw.err
}

// Render returns the canonical source representation of v.
func Render(v LVal) string {
	var buf strings.Builder
	Format(&buf, v)
	return buf.String()
}

type countingWriter struct {
	w   io.Writer
	n   int
	err error
}

func (cw *countingWriter) writeString(s string) {
	if cw.err != nil {
		return
	}
	n, err := io.WriteString(cw.w, s)
	cw.n += n
	cw.err = err
}

func (cw *countingWriter) format(v LVal) {
	switch v.Type {
	case LSymbol:
		if v.Str == "" {
			cw.writeString("()")
			return
		}
		cw.writeString(v.Str)
	case LClosure:
		cw.writeString(ApplicableMarker)
	case LCons:
		cw.writeString("(")
		for {
			data := v.Native.(*ConsData)
			cw.format(data.CAR)
			v = data.CDR
			if v.Type == LCons {
				cw.writeString(" ")
				continue
			}
			if !IsNil(v) {
				cw.writeString(" : ")
				cw.format(v)
			}
			break
		}
		cw.writeString(")")
	}
}
