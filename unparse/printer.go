// Package unparse renders a borrowed syntax tree back into readable source
// text. One Printer/Renderer pair serves exactly one render call; the pair
// carries indentation and pending-line-break state that must not be shared
// between concurrent renders.
package unparse

import "strings"

const indentUnit = "    "

// Printer accumulates output text. It owns the indentation depth, a
// pending-indent flag raised after every line break, and the whitespace
// collapsing rules: a fresh line never starts with stray spaces, two
// rendering rules that both emit a separating space collapse to one, and
// the buffer never ends in more than two line breaks.
type Printer struct {
	buf     []byte
	indent  string
	pending bool
}

func NewPrinter() *Printer {
	return &Printer{}
}

// Write appends s. If a line break is pending, the current indentation is
// emitted first and any leading spaces of s are dropped. If the buffer
// already ends in a space, one leading space of s is dropped.
func (p *Printer) Write(s string) {
	if p.pending {
		p.buf = append(p.buf, p.indent...)
		p.pending = false
		s = strings.TrimLeft(s, " ")
	} else if p.endsWith(' ') && strings.HasPrefix(s, " ") {
		s = s[1:]
	}
	p.buf = append(p.buf, s...)
}

// LineBreak ends the current line. Repeated calls are idempotent: a buffer
// already ending in a line break gets no further one.
func (p *Printer) LineBreak() {
	if !p.endsWith('\n') {
		p.buf = append(p.buf, '\n')
	}
	p.pending = true
}

// DoubleBreak makes the buffer end in exactly one blank line.
func (p *Printer) DoubleBreak() {
	for p.trailingBreaks() < 2 {
		p.buf = append(p.buf, '\n')
	}
	p.pending = true
}

// Indented runs body with the indentation extended by one unit, restoring
// the previous indentation on every exit path.
func (p *Printer) Indented(body func()) {
	prev := p.indent
	p.indent = prev + indentUnit
	defer func() { p.indent = prev }()
	body()
}

// String returns the accumulated text.
func (p *Printer) String() string {
	return string(p.buf)
}

func (p *Printer) endsWith(b byte) bool {
	return len(p.buf) > 0 && p.buf[len(p.buf)-1] == b
}

func (p *Printer) trailingBreaks() int {
	n := 0
	for i := len(p.buf) - 1; i >= 0 && p.buf[i] == '\n'; i-- {
		n++
		if n == 2 {
			break
		}
	}
	return n
}
