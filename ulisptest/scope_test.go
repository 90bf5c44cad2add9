package ulisptest

import (
	"testing"
)

func TestScope(t *testing.T) {
	tests := TestSuite{
		{"set in a call frame", TestSequence{
			{"(set (quote f) (lambda () (set (quote y) (quote inner))))", "*applicable*"},
			{"(f)", "inner"},
			{"y", "Value for symbol `y` not found."},
		}},
		{"parameters shadow globals", TestSequence{
			{"(set (quote x) (quote outer))", "outer"},
			{"((lambda (x) x) (quote inner))", "inner"},
			{"x", "outer"},
		}},
		{"lexical scope", TestSequence{
			{"(set (quote x) (quote global))", "global"},
			{"(set (quote getx) (lambda () x))", "*applicable*"},
			{"((lambda (x) (getx)) (quote local))", "global"},
		}},
		{"late binding of globals", TestSequence{
			{"(set (quote gety) (lambda () y))", "*applicable*"},
			{"(gety)", "Value for symbol `y` not found."},
			{"(set (quote y) (quote later))", "later"},
			{"(gety)", "later"},
		}},
		{"atom uses the binding of t", TestSequence{
			{"((lambda (t) (atom ())) (quote yes))", "yes"},
			{"(atom ())", "True"},
			{"(set (quote t) (quote yes))", "yes"},
			{"(atom ())", "yes"},
		}},
	}
	RunTestSuite(t, tests)
}
