// Package parser implements the lc reader.
//
//	program := <form>*
//	form    := '(' <form>* ')' | <int> | <string> | <quote> | <symbol>
//	int     := '-'? <decimal digit>+ | '0x' <hex digit>+
//	string  := '"' <any byte except '"'>* '"'
//	quote   := ('\'' | ':') <form>
//	symbol  := <any byte except whitespace, '(' and ')'>+
//
// Whitespace separates forms and a '#' at the start of a token begins a
// comment that runs to the end of the line.  Strings are raw: there are no
// escape sequences.
package parser

import (
	"fmt"
	"math"
	"strconv"

	"github.com/luthersystems/lc/lisp"
)

// Result classifies the outcome of Parser.ReadForm.
type Result int

// Possible Result values
const (
	Form Result = iota
	CloseParen
	EndOfInput
)

var resultStrings = []string{
	Form:       "form",
	CloseParen: "close-paren",
	EndOfInput: "end-of-input",
}

func (r Result) String() string {
	if int(r) < 0 || int(r) >= len(resultStrings) {
		return "invalid"
	}
	return resultStrings[r]
}

type reader struct{}

// NewReader returns a lisp.Reader to use in a lisp.Runtime.
func NewReader() lisp.Reader {
	return reader{}
}

// Read implements lisp.Reader.
func (reader) Read(rt *lisp.Runtime, name string, src []byte) lisp.Ref {
	return New(rt, name, src).ParseProgram()
}

// Parse reads every form in src and returns them wrapped as (last ...).  A
// syntax error is returned as a *lisp.FatalError.
func Parse(rt *lisp.Runtime, name string, src []byte) (lisp.Ref, error) {
	return rt.Run(func() lisp.Ref {
		return New(rt, name, src).ParseProgram()
	})
}

// Parser is a recursive descent reader with one byte of lookahead.  Parser
// methods raise syntax errors as fatal errors and must be called within
// lisp.Runtime.Run.
type Parser struct {
	rt   *lisp.Runtime
	name string
	src  []byte
	pos  int
}

// New initializes and returns a new Parser that reads src.  The name is used
// in error locations.
func New(rt *lisp.Runtime, name string, src []byte) *Parser {
	return &Parser{
		rt:   rt,
		name: name,
		src:  src,
	}
}

// ParseProgram reads forms until the input is exhausted and returns the list
// (last f1 ... fn).  A stray close paren is fatal.  The returned list is not
// rooted.
func (p *Parser) ParseProgram() lisp.Ref {
	h := p.rt.StackHeight()
	b := p.rt.NewListBuilder()
	b.Append(p.rt.Symbol("last"))
	for {
		start := p.pos
		v, res := p.ReadForm()
		switch res {
		case EndOfInput:
			list := b.List()
			p.rt.PopTo(h)
			return list
		case CloseParen:
			p.fatalf(p.skipSpace(start), "unexpected ')'")
		}
		b.Append(v)
	}
}

// ReadForm reads the next form.  The returned Ref is only meaningful when the
// Result is Form and is not rooted.  Trailing whitespace and comments after
// the form are consumed.
func (p *Parser) ReadForm() (lisp.Ref, Result) {
	p.pos = p.skipSpace(p.pos)
	if p.pos >= len(p.src) {
		return 0, EndOfInput
	}
	start := p.pos
	var v lisp.Ref
	switch c := p.src[p.pos]; {
	case c == '(':
		p.pos++
		v = p.readList(start)
	case c == ')':
		p.pos++
		return 0, CloseParen
	case c == '"':
		v = p.readString()
	case c == '\'' || c == ':':
		p.pos++
		v = p.readQuote(start)
	case isDigit(c) || c == '-' && p.pos+1 < len(p.src) && isDigit(p.src[p.pos+1]):
		v = p.readInt()
	default:
		v = p.rt.Symbol(string(p.token()))
	}
	p.pos = p.skipSpace(p.pos)
	return v, Form
}

func (p *Parser) readList(start int) lisp.Ref {
	h := p.rt.StackHeight()
	b := p.rt.NewListBuilder()
	for {
		v, res := p.ReadForm()
		switch res {
		case EndOfInput:
			p.fatalf(start, "unterminated list")
		case CloseParen:
			list := b.List()
			p.rt.PopTo(h)
			return list
		}
		b.Append(v)
	}
}

func (p *Parser) readQuote(start int) lisp.Ref {
	v, res := p.ReadForm()
	if res != Form {
		p.fatalf(start, "quote is not followed by a form")
	}
	prev := p.rt.DisableCollection()
	defer p.rt.RestoreCollection(prev)
	return p.rt.Cons(p.rt.Symbol("quote"), p.rt.Cons(v, p.rt.Nil()))
}

func (p *Parser) readString() lisp.Ref {
	start := p.pos
	p.pos++
	for p.pos < len(p.src) && p.src[p.pos] != '"' {
		p.pos++
	}
	if p.pos >= len(p.src) {
		p.fatalf(start, "unterminated string")
	}
	s := string(p.src[start+1 : p.pos])
	p.pos++
	return p.rt.String(s)
}

func (p *Parser) readInt() lisp.Ref {
	start := p.pos
	tok := string(p.token())
	var x int64
	var err error
	if len(tok) > 2 && tok[0] == '0' && (tok[1] == 'x' || tok[1] == 'X') {
		var u uint64
		u, err = strconv.ParseUint(tok[2:], 16, 64)
		if err == nil && u > math.MaxInt64 {
			err = &strconv.NumError{Func: "ParseUint", Num: tok, Err: strconv.ErrRange}
		}
		x = int64(u)
	} else {
		x, err = strconv.ParseInt(tok, 10, 64)
	}
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			p.fatalf(start, "integer out of range: %s", tok)
		}
		p.fatalf(start, "invalid integer: %s", tok)
	}
	return p.rt.Int(x)
}

// token consumes bytes up to the next delimiter.
func (p *Parser) token() []byte {
	start := p.pos
	for p.pos < len(p.src) && !isDelim(p.src[p.pos]) {
		p.pos++
	}
	return p.src[start:p.pos]
}

// skipSpace returns the position of the first byte at or after pos which is
// not whitespace or part of a comment.
func (p *Parser) skipSpace(pos int) int {
	for pos < len(p.src) {
		switch p.src[pos] {
		case ' ', '\t', '\r', '\n':
			pos++
		case '#':
			for pos < len(p.src) && p.src[pos] != '\n' {
				pos++
			}
		default:
			return pos
		}
	}
	return pos
}

// Location returns the name:line:col location of byte offset pos.
func (p *Parser) Location(pos int) string {
	line, col := 1, 1
	for i := 0; i < pos && i < len(p.src); i++ {
		if p.src[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return fmt.Sprintf("%s:%d:%d", p.name, line, col)
}

func (p *Parser) fatalf(pos int, format string, v ...interface{}) {
	lisp.FatalAt(p.Location(pos), format, v...)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isDelim(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '(', ')':
		return true
	}
	return false
}

// Complete reports whether src contains no unterminated list or string.  It
// follows the reader's token rules, so '#' and '"' only start a comment or a
// string at a token boundary.  Complete does not otherwise validate src and
// is meant for deciding whether an interactive session should keep reading
// input.
func Complete(src []byte) bool {
	depth := 0
	inToken := false
	for i := 0; i < len(src); i++ {
		c := src[i]
		if isDelim(c) {
			inToken = false
			switch c {
			case '(':
				depth++
			case ')':
				depth--
			}
			continue
		}
		if inToken {
			continue
		}
		switch c {
		case '#':
			for i+1 < len(src) && src[i+1] != '\n' {
				i++
			}
		case '"':
			i++
			for i < len(src) && src[i] != '"' {
				i++
			}
			if i >= len(src) {
				return false
			}
		case '\'', ':':
			// a quote prefixes the next form
		default:
			inToken = true
		}
	}
	return depth <= 0
}
