package lisp

import (
	"bytes"
	"io"
	"strconv"
)

// Format writes the canonical text form of v to w.
func (rt *Runtime) Format(w io.Writer, v Ref) error {
	var buf bytes.Buffer
	rt.format(&buf, v)
	_, err := w.Write(buf.Bytes())
	return err
}

// Sprint returns the canonical text form of v.
func (rt *Runtime) Sprint(v Ref) string {
	var buf bytes.Buffer
	rt.format(&buf, v)
	return buf.String()
}

func (rt *Runtime) format(buf *bytes.Buffer, v Ref) {
	p := &printer{rt: rt, buf: buf}
	p.print(v)
}

// printer tracks the dicts currently being printed so that a dict reachable
// from itself prints as <cycle>.
type printer struct {
	rt     *Runtime
	buf    *bytes.Buffer
	active map[Ref]bool
}

func (p *printer) print(v Ref) {
	o := p.rt.obj(v)
	switch o.typ {
	case LInt:
		p.buf.WriteString(strconv.FormatInt(o.num, 10))
	case LString:
		p.buf.WriteByte('"')
		p.buf.Write(o.bytes)
		p.buf.WriteByte('"')
	case LSymbol:
		p.buf.Write(o.bytes)
	case LPair:
		p.buf.WriteByte('(')
		for first := true; o.a != 0; o = p.rt.obj(o.b) {
			if !first {
				p.buf.WriteByte(' ')
			}
			first = false
			p.print(o.a)
		}
		p.buf.WriteByte(')')
	case LDict:
		if p.active[v] {
			p.buf.WriteString("<cycle>")
			return
		}
		if p.active == nil {
			p.active = make(map[Ref]bool)
		}
		p.active[v] = true
		p.buf.WriteString("(dict")
		o.dict.each(func(k, val Ref) {
			p.buf.WriteByte(' ')
			p.print(k)
			p.buf.WriteByte(' ')
			p.print(val)
		})
		p.buf.WriteByte(')')
		delete(p.active, v)
	case LNative:
		p.buf.WriteString("<native ")
		p.buf.WriteString(p.rt.ops[o.num].name)
		p.buf.WriteByte('>')
	case LSpecial:
		p.buf.WriteString("<special ")
		p.buf.WriteString(p.rt.ops[o.num].name)
		p.buf.WriteByte('>')
	case LClosure:
		p.buf.WriteString("<closure>")
	case LMacro:
		p.buf.WriteString("<macro>")
	default:
		p.buf.WriteString("<invalid>")
	}
}
