// Package repl implements the interactive lc loop.
package repl

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/luthersystems/lc/lisp"
	"github.com/luthersystems/lc/parser"
)

// RunRepl reads expressions with readline and prints their values until
// EOF.  Input is buffered under a continuation prompt until every list and
// string is closed.  The first fatal error stops the loop and is returned.
func RunRepl(rt *lisp.Runtime, prompt string) error {
	rl, err := readline.New(prompt)
	if err != nil {
		return err
	}
	defer rl.Close()
	contPrompt := strings.Repeat(" ", len(prompt)) // prompt had better be ascii...

	var buf []byte
	for {
		line, err := rl.ReadSlice()
		if err == readline.ErrInterrupt {
			buf = nil
			rl.SetPrompt(prompt)
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if len(buf) != 0 {
			buf = append(buf, '\n')
		}
		buf = append(buf, line...)
		if !parser.Complete(buf) {
			rl.SetPrompt(contPrompt)
			continue
		}
		rl.SetPrompt(prompt)
		src := buf
		buf = nil
		if len(bytes.TrimSpace(src)) == 0 {
			continue
		}
		if err := Eval(rt, rl.Stdout(), "stdin", src); err != nil {
			return err
		}
	}
}

// Eval evaluates src and writes the canonical text of its value to w.
func Eval(rt *lisp.Runtime, w io.Writer, name string, src []byte) error {
	v, err := rt.EvalSource(name, src)
	if err != nil {
		return err
	}
	if err := rt.Format(w, v); err != nil {
		return err
	}
	_, err = fmt.Fprintln(w)
	return err
}

// RunStream evaluates everything read from r as one program and writes the
// value of its last form to w.
func RunStream(rt *lisp.Runtime, r io.Reader, w io.Writer) error {
	src, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return Eval(rt, w, "stdin", src)
}
