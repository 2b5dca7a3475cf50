package lctest

import "testing"

var evalTests = TestSuite{
	{"literals", TestSequence{
		{"42", "42", ""},
		{"0x10", "16", ""},
		{"-3", "-3", ""},
		{`"str"`, `"str"`, ""},
		{"()", "()", ""},
		{"'sym", "sym", ""},
		{":(a b)", "(a b)", ""},
		{"'(1 (2 3))", "(1 (2 3))", ""},
		{"(quote x)", "x", ""},
		{"''x", "(quote x)", ""},
		{"unbound", "()", ""},
	}},
	{"arithmetic", TestSequence{
		{"(+ 1 2)", "3", ""},
		{"(+)", "0", ""},
		{"(- 5)", "-5", ""},
		{"(- 10 3 2)", "5", ""},
		{"(*)", "1", ""},
		{"(* 2 3 4)", "24", ""},
		{"(/ 20 3)", "6", ""},
		{"(/ -7 2)", "-3", ""},
		{"(% 7 3)", "1", ""},
		{"(+ 1 (* 2 3))", "7", ""},
		{"(/ 1 0)", "/: division by zero", ""},
		{"(% 1 0)", "%: division by zero", ""},
		{`(+ 1 "a")`, "+: argument 1 is not an int: string", ""},
		{"(< 1 2)", "1", ""},
		{"(> 1 2)", "()", ""},
		{"(< 1)", "<: 2 arguments expected (got 1)", ""},
	}},
	{"lists", TestSequence{
		{"(list 1 2 3)", "(1 2 3)", ""},
		{"(list)", "()", ""},
		{"(cons 1 '(2))", "(1 2)", ""},
		{"(cons 1 2)", "cons: tail is not a list: int", ""},
		{"(head '(1 2))", "1", ""},
		{"(tail '(1 2))", "(2)", ""},
		{"(head ())", "()", ""},
		{"(tail ())", "()", ""},
		{"(head 1)", "head: expected pair but got int", ""},
		{"(nil? ())", "1", ""},
		{"(nil? '(1))", "()", ""},
		{"(len '(1 2 3))", "3", ""},
		{`(len "abcd")`, "4", ""},
		{"(len 5)", "len: argument has no length: int", ""},
		{"(last 1 2 3)", "3", ""},
		{"(last)", "()", ""},
	}},
	{"equality", TestSequence{
		{"(eq 1 1)", "1", ""},
		{`(eq "a" "a")`, "1", ""},
		{"(eq 'a 'a)", "1", ""},
		{"(eq '(1 (2)) '(1 (2)))", "1", ""},
		{`(eq 1 "1")`, "()", ""},
		{"(not ())", "1", ""},
		{"(not 0)", "()", ""},
	}},
	{"control", TestSequence{
		{"(if 1 2 3)", "2", ""},
		{"(if () 2 3)", "3", ""},
		{"(if () 2)", "()", ""},
		{"(if 0 'yes 'no)", "yes", ""},
		{"(switch () 1 (eq 1 1) 2 3)", "2", ""},
		{"(switch () 1 () 2 3)", "3", ""},
		{"(switch () 1)", "()", ""},
		{"(switch)", "()", ""},
		{"(or () 2 3)", "2", ""},
		{"(or)", "()", ""},
		{"(or () ())", "()", ""},
		{"(or 1 (print 'no))", "1", ""},
		{"(and 1 2 3)", "3", ""},
		{"(and 1 () 3)", "()", ""},
		{"(and () (print 'no))", "()", ""},
		{"(and)", "1", ""},
	}},
	{"callables", TestSequence{
		{"(1 2)", "not callable: 1", ""},
		{"+", "<native +>", ""},
		{"if", "<special if>", ""},
		{"(~ (x) x)", "<closure>", ""},
		{"(macro (x) x)", "<macro>", ""},
		{"(~ 1)", "~: invalid parameter list: int", ""},
		{"(~ (1) x)", "~: parameter is not a symbol: int", ""},
		{"(~)", "~: parameter list expected", ""},
	}},
	{"eval and read", TestSequence{
		{"(eval '(+ 1 2))", "3", ""},
		{`(read "(+ 1 2)")`, "(last (+ 1 2))", ""},
		{`(eval (read "(+ 1 2) (* 2 3)"))`, "6", ""},
		{`(read "(")`, "read:1:1: unterminated list", ""},
		{`(eval 'a (set (dict) 'a 41))`, "41", ""},
	}},
	{"print", TestSequence{
		{`(print 1 "a" 'b)`, "b", "1 \"a\" b\n"},
		{"(print)", "()", "\n"},
		{"(print '(1 (2)) (dict 'k 'v))", "(dict k v)", "(1 (2)) (dict k v)\n"},
	}},
	{"syntax errors", TestSequence{
		{"(+ 1", "test:1:1: unterminated list", ""},
		{"1 )", "test:1:3: unexpected ')'", ""},
		{`"open`, "test:1:1: unterminated string", ""},
	}},
}

func TestEval(t *testing.T) {
	RunTestSuite(t, evalTests)
}
