// Package rushtest provides table-driven helpers for end-to-end interpreter
// tests that feed whole source strings through a session and compare the
// printed results.
package rushtest

import (
	"testing"

	"github.com/marcfrederick/rusht/interpreter"
)

// TestSequence is a sequence of expressions which are evaluated sequentially
// against a single interpreter session.
type TestSequence []struct {
	Expr   string // a rusht expression
	Result string // the printed result, ignored when Err is non-empty
	Err    string // the expected error description
}

// TestSuite is a set of named TestSequences
type TestSuite []struct {
	Name string
	TestSequence
}

// RunTestSuite runs each TestSequence in tests on an isolated session.
func RunTestSuite(t *testing.T, tests TestSuite) {
	for i, test := range tests {
		in := interpreter.New()
		for j, expr := range test.TestSequence {
			v, err := in.Eval(expr.Expr)
			if expr.Err != "" {
				if err == nil {
					t.Errorf("test %d %q: expr %d: expected error %q (got %s)", i, test.Name, j, expr.Err, v)
				} else if err.Error() != expr.Err {
					t.Errorf("test %d %q: expr %d: expected error %q (got %q)", i, test.Name, j, expr.Err, err)
				}
				continue
			}
			if err != nil {
				t.Errorf("test %d %q: expr %d: unexpected error: %v", i, test.Name, j, err)
				continue
			}
			if v.String() != expr.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)", i, test.Name, j, expr.Result, v)
			}
		}
	}
}
