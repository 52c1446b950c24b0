package unparse

import (
	"fmt"
	"strings"

	"github.com/dhamidi/astview/ast"
)

func (r *Renderer) renderBinary(e *ast.BinaryExpression) {
	r.render(e.Left)
	r.p.Write(" " + e.Op + " ")
	r.render(e.Right)
	// The subscript operator's text carries the opening bracket only.
	if e.Op == "[" {
		r.p.Write("]")
	}
}

func (r *Renderer) renderDeclaration(e *ast.DeclarationExpression) {
	switch left := e.Left.(type) {
	case *ast.VariableExpression:
		r.p.Write(typeName(left.Type))
		r.p.Write(" " + left.Name)
	case *ast.TupleExpression:
		r.p.Write("def (")
		for i, x := range left.Expressions {
			if i > 0 {
				r.p.Write(", ")
			}
			r.render(x)
		}
		r.p.Write(")")
	default:
		r.render(e.Left)
	}
	r.p.Write(" " + e.Op + " ")
	r.render(e.Right)
}

func (r *Renderer) renderPrefix(e *ast.PrefixExpression) {
	r.p.Write(e.Op + "(")
	r.render(e.Expression)
	r.p.Write(")")
}

func (r *Renderer) renderPostfix(e *ast.PostfixExpression) {
	r.p.Write("(")
	r.render(e.Expression)
	r.p.Write(")" + e.Op)
}

func (r *Renderer) renderBoolean(e *ast.BooleanExpression) {
	r.p.Write(" ")
	r.render(e.Expression)
}

func (r *Renderer) renderUnary(op string, inner ast.Expression) {
	r.p.Write(op + "(")
	r.render(inner)
	r.p.Write(")")
}

func (r *Renderer) renderTernary(cond *ast.BooleanExpression, t, f ast.Expression) {
	if cond != nil {
		r.render(cond)
	}
	r.p.Write(" ? ")
	r.render(t)
	r.p.Write(" : ")
	r.render(f)
}

func (r *Renderer) renderMethodCall(e *ast.MethodCallExpression) {
	switch recv := e.Receiver.(type) {
	case nil:
	case *ast.VariableExpression:
		if !e.ImplicitThis && recv.Name != "this" {
			r.render(recv)
			r.p.Write(".")
		}
	default:
		if !e.ImplicitThis {
			r.render(recv)
			r.p.Write(".")
		}
	}
	if c, ok := e.Method.(*ast.ConstantExpression); ok {
		// Constant method names render unquoted.
		r.p.Write(fmt.Sprintf("%v", c.Value))
	} else if e.Method != nil {
		r.render(e.Method)
	}
	r.renderCallArguments(e.Arguments)
}

func (r *Renderer) renderStaticCall(e *ast.StaticMethodCallExpression) {
	owner := "this"
	if e.Owner != nil {
		owner = ast.SimpleName(e.Owner.Name)
	}
	r.p.Write(owner + "." + e.Method)
	if arg, ok := bareSingleArgument(e.Arguments); ok {
		r.p.Write(" ((")
		r.render(arg)
		r.p.Write("))")
		return
	}
	r.renderCallArguments(e.Arguments)
}

// bareSingleArgument reports a one-element argument list whose sole
// element is itself a variable or call, which needs extra parentheses to
// read unambiguously in a static call.
func bareSingleArgument(args ast.Expression) (ast.Expression, bool) {
	list, ok := args.(*ast.ArgumentListExpression)
	if !ok || len(list.Expressions) != 1 {
		return nil, false
	}
	switch list.Expressions[0].(type) {
	case *ast.VariableExpression, *ast.MethodCallExpression, *ast.StaticMethodCallExpression:
		return list.Expressions[0], true
	}
	return nil, false
}

func (r *Renderer) renderCtorCall(e *ast.ConstructorCallExpression) {
	r.p.Write("new " + typeName(e.Type))
	r.renderCallArguments(e.Arguments)
}

func (r *Renderer) renderCallArguments(args ast.Expression) {
	switch args := args.(type) {
	case nil:
		r.p.Write(" ()")
	case *ast.ArgumentListExpression:
		r.renderArgList(args.Expressions)
	case *ast.TupleExpression:
		r.renderArgList(args.Expressions)
	default:
		r.p.Write(" (")
		r.render(args)
		r.p.Write(")")
	}
}

func (r *Renderer) renderArgList(args []ast.Expression) {
	r.p.Write(" (")
	for i, a := range args {
		if i > 0 {
			r.p.Write(", ")
		}
		// A map literal among several arguments is parenthesized so it
		// cannot read as a block.
		if m, ok := a.(*ast.MapExpression); ok && len(args) > 1 {
			r.p.Write("(")
			r.renderMap(m)
			r.p.Write(")")
			continue
		}
		r.render(a)
	}
	r.p.Write(")")
}

func (r *Renderer) renderArray(e *ast.ArrayExpression) {
	name, depth := e.ElementType.Element()
	r.p.Write("new " + ast.SimpleName(name) + strings.Repeat("[]", depth) + "[")
	for i, s := range e.Sizes {
		if i > 0 {
			r.p.Write(", ")
		}
		r.render(s)
	}
	r.p.Write("]")
}

func (r *Renderer) renderCast(e *ast.CastExpression) {
	r.p.Write("((")
	r.render(e.Expression)
	r.p.Write(") as " + typeName(e.Type) + ")")
}

func (r *Renderer) renderClosure(e *ast.ClosureExpression) {
	r.p.Write("{ ")
	if len(e.Params) > 0 {
		for i, param := range e.Params {
			if i > 0 {
				r.p.Write(", ")
			}
			r.renderParam(param)
		}
		r.p.Write(" ->")
	}
	r.p.LineBreak()
	r.p.Indented(func() {
		r.renderBody(e.Code)
	})
	r.p.Write("}")
}

func (r *Renderer) renderConstant(c *ast.ConstantExpression) {
	if c.Value == nil {
		r.p.Write("null")
		return
	}
	if s, ok := c.Value.(string); ok {
		if c.Type != nil && c.Type.Name == "char" {
			r.p.Write("'" + s + "'")
			return
		}
		r.p.Write("'" + escapeString(s) + "'")
		return
	}
	r.p.Write(fmt.Sprintf("%v", c.Value))
}

// escapeString re-escapes the characters a single-quoted literal cannot
// hold verbatim.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "'", "\\'")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}

func (r *Renderer) renderList(e *ast.ListExpression) {
	r.p.Write("[")
	for i, x := range e.Expressions {
		if i > 0 {
			r.p.Write(", ")
		}
		r.render(x)
	}
	r.p.Write("]")
}

func (r *Renderer) renderMap(e *ast.MapExpression) {
	if len(e.Entries) == 0 {
		r.p.Write(":")
		return
	}
	for i, entry := range e.Entries {
		if i > 0 {
			r.p.Write(", ")
		}
		r.renderMapEntry(entry)
	}
}

func (r *Renderer) renderMapEntry(e *ast.MapEntryExpression) {
	r.render(e.Key)
	r.p.Write(": ")
	r.render(e.Value)
}

func (r *Renderer) renderRange(e *ast.RangeExpression) {
	r.p.Write("(")
	r.render(e.From)
	if e.Inclusive {
		r.p.Write("..")
	} else {
		r.p.Write("..<")
	}
	r.render(e.To)
	r.p.Write(")")
}

func (r *Renderer) renderProperty(e *ast.PropertyExpression) {
	r.render(e.Object)
	r.p.Write(".")
	if c, ok := e.Property.(*ast.ConstantExpression); ok {
		r.p.Write(fmt.Sprintf("%v", c.Value))
		return
	}
	r.render(e.Property)
}

func (r *Renderer) renderTuple(e *ast.TupleExpression) {
	if r.inControl {
		r.p.Write("(")
	}
	for i, x := range e.Expressions {
		if i > 0 {
			r.p.Write(", ")
		}
		r.render(x)
	}
	if r.inControl {
		r.p.Write(")")
	}
}

func (r *Renderer) renderMethodPointer(e *ast.MethodPointerExpression) {
	r.render(e.Object)
	r.p.Write(".&")
	if c, ok := e.Method.(*ast.ConstantExpression); ok {
		r.p.Write(fmt.Sprintf("%v", c.Value))
		return
	}
	r.render(e.Method)
}
