package unparse

import (
	"github.com/dhamidi/astview/ast"
)

// renderBlock renders a block's children, one per line. Braces belong to
// the enclosing construct.
func (r *Renderer) renderBlock(b *ast.BlockStatement) {
	for _, s := range b.Statements {
		r.render(s)
		r.p.LineBreak()
	}
	r.p.LineBreak()
}

// renderBody renders a statement as the body of a braced construct. A
// block contributes its children; anything else becomes a single line.
func (r *Renderer) renderBody(s ast.Statement) {
	if s == nil {
		return
	}
	if b, ok := s.(*ast.BlockStatement); ok {
		r.renderBlock(b)
		return
	}
	r.render(s)
	r.p.LineBreak()
}

// renderGuard renders a control-statement guard with the in-control flag
// raised so tuples inside it parenthesize.
func (r *Renderer) renderGuard(b *ast.BooleanExpression) {
	prev := r.inControl
	r.inControl = true
	defer func() { r.inControl = prev }()
	if b != nil {
		r.render(b)
	}
}

func (r *Renderer) renderIf(s *ast.IfStatement) {
	r.p.Write("if (")
	r.renderGuard(s.Cond)
	r.p.Write(") {")
	r.p.LineBreak()
	r.p.Indented(func() {
		r.renderBody(s.Then)
	})
	r.p.Write("}")
	switch els := s.Else.(type) {
	case nil:
	case *ast.IfStatement:
		r.p.Write(" else ")
		r.renderIf(els)
	default:
		r.p.Write(" else {")
		r.p.LineBreak()
		r.p.Indented(func() {
			r.renderBody(els)
		})
		r.p.Write("}")
	}
}

func (r *Renderer) renderFor(s *ast.ForStatement) {
	r.p.Write("for (")
	prev := r.inControl
	r.inControl = true
	if s.Var != nil {
		if s.Var.Type != nil && !s.Var.Type.IsObject() {
			r.p.Write(typeName(s.Var.Type) + " ")
		}
		r.p.Write(s.Var.Name)
	}
	r.p.Write(" : ")
	r.render(s.Collection)
	r.inControl = prev
	r.p.Write(") {")
	r.p.LineBreak()
	r.p.Indented(func() {
		r.renderBody(s.Body)
	})
	r.p.Write("}")
}

func (r *Renderer) renderWhile(s *ast.WhileStatement) {
	r.p.Write("while (")
	r.renderGuard(s.Cond)
	r.p.Write(") {")
	r.p.LineBreak()
	r.p.Indented(func() {
		r.renderBody(s.Body)
	})
	r.p.Write("}")
}

func (r *Renderer) renderDoWhile(s *ast.DoWhileStatement) {
	r.p.Write("do {")
	r.p.LineBreak()
	r.p.Indented(func() {
		r.renderBody(s.Body)
	})
	r.p.Write("} while (")
	r.renderGuard(s.Cond)
	r.p.Write(")")
}

func (r *Renderer) renderSwitch(s *ast.SwitchStatement) {
	r.p.Write("switch (")
	prev := r.inControl
	r.inControl = true
	r.render(s.Expression)
	r.inControl = prev
	r.p.Write(") {")
	r.p.LineBreak()
	r.p.Indented(func() {
		for _, c := range s.Cases {
			r.renderCase(c)
		}
		if s.Default != nil {
			r.p.Write("default:")
			r.p.LineBreak()
			r.p.Indented(func() {
				r.renderBody(s.Default)
			})
		}
	})
	r.p.Write("}")
}

func (r *Renderer) renderCase(c *ast.CaseStatement) {
	r.p.Write("case ")
	r.render(c.Expression)
	r.p.Write(":")
	r.p.LineBreak()
	r.p.Indented(func() {
		r.renderBody(c.Code)
	})
}

func (r *Renderer) renderBreak(s *ast.BreakStatement) {
	r.p.Write("break")
	if s.Label != "" {
		r.p.Write(" " + s.Label)
	}
}

func (r *Renderer) renderContinue(s *ast.ContinueStatement) {
	r.p.Write("continue")
	if s.Label != "" {
		r.p.Write(" " + s.Label)
	}
}

func (r *Renderer) renderReturn(s *ast.ReturnStatement) {
	r.p.Write("return")
	if s.Expression != nil {
		r.p.Write(" ")
		r.render(s.Expression)
	}
}

func (r *Renderer) renderThrow(s *ast.ThrowStatement) {
	r.p.Write("throw ")
	r.render(s.Expression)
}

func (r *Renderer) renderTryCatch(s *ast.TryCatchStatement) {
	r.p.Write("try {")
	r.p.LineBreak()
	r.p.Indented(func() {
		r.renderBody(s.Try)
	})
	r.p.Write("}")
	for _, c := range s.Catches {
		r.p.Write(" catch (")
		if c.Variable != nil {
			r.p.Write(typeName(c.Variable.Type) + " " + c.Variable.Name)
		}
		r.p.Write(") {")
		r.p.LineBreak()
		r.p.Indented(func() {
			r.renderBody(c.Code)
		})
		r.p.Write("}")
	}
	// A finally clause is always emitted, empty when the source has
	// none.
	r.p.Write(" finally {")
	r.p.LineBreak()
	r.p.Indented(func() {
		r.renderBody(s.Finally)
	})
	r.p.Write("}")
}

func (r *Renderer) renderSynchronized(s *ast.SynchronizedStatement) {
	r.p.Write("synchronized (")
	r.render(s.Expression)
	r.p.Write(") {")
	r.p.LineBreak()
	r.p.Indented(func() {
		r.renderBody(s.Code)
	})
	r.p.Write("}")
}

func (r *Renderer) renderAssert(s *ast.AssertStatement) {
	r.p.Write("assert ")
	r.renderGuard(s.Cond)
	r.p.Write(" : ")
	if s.Message == nil {
		r.p.Write("null")
	} else {
		r.render(s.Message)
	}
}
