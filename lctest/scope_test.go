package lctest

import "testing"

var scopeTests = TestSuite{
	{"assignment", TestSequence{
		{"(= x 1)", "1", ""},
		{"x", "1", ""},
		{"(= x (+ x 1))", "2", ""},
		{"x", "2", ""},
		{"(= 1 2)", "=: first argument is not a symbol: int", ""},
	}},
	{"lexical scope", TestSequence{
		{"(= add (~ (a b) (+ a b)))", "<closure>", ""},
		{"(add 4 5)", "9", ""},
		{"((~ (a b) (+ a b)) 4 5)", "9", ""},
		{"(= make-adder (~ (n) (~ (x) (+ x n))))", "<closure>", ""},
		{"(= add2 (make-adder 2))", "<closure>", ""},
		{"(add2 40)", "42", ""},
		{"n", "()", ""},
		{"(= n 1)", "1", ""},
		{"(= add5 (make-adder 5))", "<closure>", ""},
		{"(= n 100)", "100", ""},
		{"(add5 1)", "6", ""},
		{"(add2 1)", "3", ""},
	}},
	{"sibling isolation", TestSequence{
		{"((~ () (= local 1)))", "1", ""},
		{"local", "()", ""},
		{"(= f (~ () (= y 5) y))", "<closure>", ""},
		{"(= g (~ () y))", "<closure>", ""},
		{"(f)", "5", ""},
		{"(g)", "()", ""},
	}},
	{"ancestor mutation", TestSequence{
		{"(= counter 0)", "0", ""},
		{"(= inc (~ () (= counter (+ counter 1))))", "<closure>", ""},
		{"(inc)", "1", ""},
		{"(inc)", "2", ""},
		{"counter", "2", ""},
		{"(= make-counter (~ () (= c 0) (~ () (= c (+ c 1)))))", "<closure>", ""},
		{"(= c1 (make-counter))", "<closure>", ""},
		{"(= c2 (make-counter))", "<closure>", ""},
		{"(c1)", "1", ""},
		{"(c1)", "2", ""},
		{"(c2)", "1", ""},
		{"c", "()", ""},
	}},
	{"arguments", TestSequence{
		{"((~ (a b) b) 1)", "()", ""},
		{"((~ (a) $args) 1 2 3)", "(1 2 3)", ""},
		{"((~ args args) 1 2)", "(1 2)", ""},
		{"((~ () 1 2 3))", "3", ""},
		{"((~ ()))", "()", ""},
		{"((~ (a b) (list a b)) (= z 1) (= z 2))", "(1 2)", ""},
		{"z", "2", ""},
	}},
	{"recursion", TestSequence{
		{"(= fact (~ (n) (if (< n 2) 1 (* n (fact (- n 1))))))", "<closure>", ""},
		{"(fact 10)", "3628800", ""},
	}},
	{"environments", TestSequence{
		{"((~ () (get $parent '+)))", "<native +>", ""},
		{"((~ () (has $parent 'nosuch)))", "()", ""},
	}},
}

func TestScope(t *testing.T) {
	RunTestSuite(t, scopeTests)
}
