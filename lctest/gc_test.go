package lctest

import (
	"testing"

	"github.com/luthersystems/lc/lisp"
)

var gcTests = TestSuite{
	{"reachable values survive", TestSequence{
		{"(= keep (list 1 2 3))", "(1 2 3)", ""},
		{"(< (gc) 0)", "()", ""},
		{"keep", "(1 2 3)", ""},
	}},
	{"garbage is freed", TestSequence{
		{"((~ () (= tmp (dict 1 2)) 0))", "0", ""},
		{"(> (gc) 0)", "1", ""},
		{"tmp", "()", ""},
	}},
}

var testFiles = []struct {
	path   string
	result string
}{
	{"testdata/fib.lc", "610"},
	{"testdata/lists.lc", "338350"},
	{"testdata/macros.lc", "(50 50)"},
}

func TestGC(t *testing.T) {
	RunTestSuite(t, gcTests)
}

func TestFiles(t *testing.T) {
	r := &Runner{}
	for _, test := range testFiles {
		r.RunTestFile(t, test.path, test.result)
	}
}

// Every suite must produce the same results when the collector runs as often
// as possible.  A value that is reachable but not rooted shows up as a stale
// reference error.
func TestMinimalThreshold(t *testing.T) {
	r := &Runner{Configs: []lisp.Config{lisp.WithGCThreshold(lisp.MinGCThreshold)}}
	for _, tests := range []TestSuite{evalTests, scopeTests, macroTests, dictTests} {
		r.RunTestSuite(t, tests)
	}
	for _, test := range testFiles {
		r.RunTestFile(t, test.path, test.result)
	}
}
