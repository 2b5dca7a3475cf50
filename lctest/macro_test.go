package lctest

import "testing"

var macroTests = TestSuite{
	{"two-phase", TestSequence{
		{"(= my-if (macro (c a b) (list 'if c a b)))", "<macro>", ""},
		{"(my-if 1 'yes 'no)", "yes", ""},
		{"(my-if () (print 'a) (print 'b))", "b", "b\n"},
		{"(= raw (macro (x) (list 'quote x)))", "<macro>", ""},
		{"(raw (+ 1 2))", "(+ 1 2)", ""},
	}},
	{"caller environment", TestSequence{
		{"(= setter (macro (name) (list '= name 10)))", "<macro>", ""},
		{"((~ () (setter q) q))", "10", ""},
		{"q", "()", ""},
	}},
	{"arguments", TestSequence{
		{"(= count-args (macro () (len $args)))", "<macro>", ""},
		{"(count-args a b c)", "3", ""},
		{"(= unless (macro (c body) (list 'if c () body)))", "<macro>", ""},
		{"(unless () 5)", "5", ""},
		{"(unless 1 5)", "()", ""},
	}},
}

func TestMacro(t *testing.T) {
	RunTestSuite(t, macroTests)
}
