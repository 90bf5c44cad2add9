package ulisptest

import (
	"testing"
)

func TestErrors_rollback(t *testing.T) {
	tests := TestSuite{
		{"failed expressions leave no bindings", TestSequence{
			{"(set (quote x) (quote a))", "a"},
			{"(cons (set (quote x) (quote b)) undefined)", "Value for symbol `undefined` not found."},
			{"x", "a"},
			{"(cons (set (quote y) (quote b)) undefined)", "Value for symbol `undefined` not found."},
			{"y", "Value for symbol `y` not found."},
		}},
		{"the session continues after an error", TestSequence{
			{"(car ())", "`()` is not pair."},
			{"(set (quote z) (quote ok))", "ok"},
			{"z", "ok"},
		}},
	}
	RunTestSuite(t, tests)
}
