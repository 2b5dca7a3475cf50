// Package lctest runs lc expressions against expected results for use in Go
// tests.
package lctest

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/luthersystems/lc/lisp"
	"github.com/luthersystems/lc/parser"
)

// TestSequence is a sequence of lisp expressions which are evaluated
// sequentially by a lisp.Runtime.  A fatal error is compared against Result
// by its message.
type TestSequence []struct {
	Expr   string // a lisp expression
	Result string // the canonical text of the result
	Output string // everything the expression prints
}

// TestSuite is a set of named TestSequences
type TestSuite []struct {
	Name string
	TestSequence
}

// Runner is a test runner.
type Runner struct {
	// Configs are applied to every runtime the Runner creates, after the
	// reader and stdout configuration.
	Configs []lisp.Config
}

// NewRuntime returns a runtime which prints to stdout.
func (r *Runner) NewRuntime(stdout *bytes.Buffer) (*lisp.Runtime, error) {
	configs := []lisp.Config{
		lisp.WithReader(parser.NewReader()),
		lisp.WithStdout(stdout),
	}
	configs = append(configs, r.Configs...)
	return lisp.New(configs...)
}

// RunTestSuite runs each TestSequence in tests on an isolated runtime.
func (r *Runner) RunTestSuite(t *testing.T, tests TestSuite) {
	for i, test := range tests {
		var out bytes.Buffer
		rt, err := r.NewRuntime(&out)
		if err != nil {
			t.Errorf("test %d %q: %v", i, test.Name, err)
			continue
		}
		for j, expr := range test.TestSequence {
			out.Reset()
			result := evalString(rt, "test", []byte(expr.Expr))
			if result != expr.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)", i, test.Name, j, expr.Result, result)
			}
			if out.String() != expr.Output {
				t.Errorf("test %d %q: expr %d: expected output %q (got %q)", i, test.Name, j, expr.Output, out.String())
			}
		}
	}
}

// RunTestFile evaluates the program at path and compares the canonical text
// of its value with result.
func (r *Runner) RunTestFile(t *testing.T, path string, result string) {
	source, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("Unable to read test file: %v", err)
		return
	}
	var out bytes.Buffer
	rt, err := r.NewRuntime(&out)
	if err != nil {
		t.Error(err)
		return
	}
	got := evalString(rt, filepath.Base(path), source)
	if got != result {
		t.Errorf("%s: expected result %s (got %s)", path, result, got)
		if out.Len() > 0 {
			t.Logf("%s: output:\n%s", path, out.String())
		}
	}
}

func evalString(rt *lisp.Runtime, name string, src []byte) string {
	v, err := rt.EvalSource(name, src)
	if err != nil {
		return err.Error()
	}
	return rt.Sprint(v)
}

// RunTestSuite runs tests with a default Runner.
func RunTestSuite(t *testing.T, tests TestSuite) {
	(&Runner{}).RunTestSuite(t, tests)
}
