package unparse

import (
	"fmt"
	"strings"

	"github.com/dhamidi/astview/ast"
)

// Renderer walks a syntax tree and emits source text through a Printer.
// A Renderer serves a single render call; create a fresh one per tree.
type Renderer struct {
	p          *Printer
	classStack []string

	// inControl is raised while rendering the guard of a control
	// statement, where bare tuples need parenthesizing.
	inControl bool

	showScriptFreeForm bool
	showScriptClass    bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithScriptFreeForm controls whether top-level script statements are
// rendered outside any class. Default true.
func WithScriptFreeForm(show bool) Option {
	return func(r *Renderer) { r.showScriptFreeForm = show }
}

// WithScriptClass controls whether the synthetic script-holder class is
// rendered. Default true.
func WithScriptClass(show bool) Option {
	return func(r *Renderer) { r.showScriptClass = show }
}

func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		p:                  NewPrinter(),
		showScriptFreeForm: true,
		showScriptClass:    true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render renders a tree to source text using a fresh Renderer.
func Render(node ast.Node, opts ...Option) string {
	return NewRenderer(opts...).Render(node)
}

// Render renders node and returns the accumulated, newline-terminated
// text. Rendering never fails: nodes with no source-level form come out as
// marker comments.
func (r *Renderer) Render(node ast.Node) string {
	r.render(node)
	r.p.LineBreak()
	return r.p.String()
}

// render is the single dispatch point over the closed node set.
func (r *Renderer) render(n ast.Node) {
	switch n := n.(type) {
	case nil:
	case *ast.Module:
		r.renderModule(n)
	case *ast.Import:
		r.renderImport(n)
	case *ast.Class:
		r.renderClass(n)
	case *ast.Property:
		// A property is backed by a field and is rendered once, as
		// that field.
	case *ast.Field:
		r.renderField(n)
	case *ast.Method:
		r.renderMethod(n)
	case *ast.Parameter:
		r.renderParam(n)
	case *ast.Annotation:
		r.renderAnnotation(n)

	case *ast.BlockStatement:
		r.renderBlock(n)
	case *ast.ExpressionStatement:
		r.render(n.Expression)
	case *ast.IfStatement:
		r.renderIf(n)
	case *ast.ForStatement:
		r.renderFor(n)
	case *ast.WhileStatement:
		r.renderWhile(n)
	case *ast.DoWhileStatement:
		r.renderDoWhile(n)
	case *ast.SwitchStatement:
		r.renderSwitch(n)
	case *ast.CaseStatement:
		r.renderCase(n)
	case *ast.BreakStatement:
		r.renderBreak(n)
	case *ast.ContinueStatement:
		r.renderContinue(n)
	case *ast.ReturnStatement:
		r.renderReturn(n)
	case *ast.ThrowStatement:
		r.renderThrow(n)
	case *ast.TryCatchStatement:
		r.renderTryCatch(n)
	case *ast.SynchronizedStatement:
		r.renderSynchronized(n)
	case *ast.AssertStatement:
		r.renderAssert(n)
	case *ast.EmptyStatement:

	case *ast.BinaryExpression:
		r.renderBinary(n)
	case *ast.DeclarationExpression:
		r.renderDeclaration(n)
	case *ast.PrefixExpression:
		r.renderPrefix(n)
	case *ast.PostfixExpression:
		r.renderPostfix(n)
	case *ast.BooleanExpression:
		r.renderBoolean(n)
	case *ast.NotExpression:
		r.renderUnary("!", n.Expression)
	case *ast.UnaryMinusExpression:
		r.renderUnary("-", n.Expression)
	case *ast.UnaryPlusExpression:
		r.renderUnary("+", n.Expression)
	case *ast.BitwiseNegationExpression:
		r.renderUnary("~", n.Expression)
	case *ast.TernaryExpression:
		r.renderTernary(n.Cond, n.True, n.False)
	case *ast.ElvisExpression:
		r.renderTernary(n.Cond, n.True, n.False)
	case *ast.MethodCallExpression:
		r.renderMethodCall(n)
	case *ast.StaticMethodCallExpression:
		r.renderStaticCall(n)
	case *ast.ConstructorCallExpression:
		r.renderCtorCall(n)
	case *ast.ArrayExpression:
		r.renderArray(n)
	case *ast.CastExpression:
		r.renderCast(n)
	case *ast.ClosureExpression:
		r.renderClosure(n)
	case *ast.VariableExpression:
		r.p.Write(n.Name)
	case *ast.ConstantExpression:
		r.renderConstant(n)
	case *ast.GStringExpression:
		r.p.Write("\"" + n.Text + "\"")
	case *ast.ListExpression:
		r.renderList(n)
	case *ast.MapExpression:
		r.renderMap(n)
	case *ast.MapEntryExpression:
		r.renderMapEntry(n)
	case *ast.RangeExpression:
		r.renderRange(n)
	case *ast.PropertyExpression:
		r.renderProperty(n)
	case *ast.FieldExpression:
		if n.Field != nil {
			r.p.Write(n.Field.Name)
		}
	case *ast.ClassExpression:
		r.p.Write(typeName(n.Type))
	case *ast.TupleExpression:
		r.renderTuple(n)
	case *ast.ArgumentListExpression:
		r.renderArgList(n.Expressions)
	case *ast.SpreadExpression:
		r.p.Write("*")
		r.render(n.Expression)
	case *ast.MethodPointerExpression:
		r.renderMethodPointer(n)
	case *ast.BytecodeExpression:
		r.p.Write("/* BytecodeExpression */")
	default:
		r.p.Write(fmt.Sprintf("/* unrecognized node %T */", n))
	}
}

func (r *Renderer) renderModule(m *ast.Module) {
	if m.Package != "" {
		for _, a := range m.Annotations {
			r.renderAnnotation(a)
			r.p.LineBreak()
		}
		r.p.Write("package " + strings.TrimSuffix(m.Package, "."))
		r.p.DoubleBreak()
	}
	r.renderImports(m.StaticImports)
	r.renderImports(m.Imports)
	if r.showScriptFreeForm && m.Statements != nil && len(m.Statements.Statements) > 0 {
		r.renderBlock(m.Statements)
		r.p.DoubleBreak()
	}
	for _, c := range m.Classes {
		if c.Script && !r.showScriptClass {
			continue
		}
		r.renderClass(c)
	}
}

func (r *Renderer) renderImports(imports []*ast.Import) {
	if len(imports) == 0 {
		return
	}
	for _, imp := range imports {
		r.renderImport(imp)
		r.p.LineBreak()
	}
	r.p.DoubleBreak()
}

func (r *Renderer) renderImport(imp *ast.Import) {
	for _, a := range imp.Annotations {
		r.renderAnnotation(a)
		r.p.LineBreak()
	}
	r.p.Write("import ")
	if imp.Static {
		r.p.Write("static ")
	}
	r.p.Write(strings.TrimSuffix(imp.Path, "."))
}

func (r *Renderer) renderClass(c *ast.Class) {
	r.classStack = append(r.classStack, c.Name)
	defer func() { r.classStack = r.classStack[:len(r.classStack)-1] }()

	for _, a := range c.Annotations {
		r.renderAnnotation(a)
		r.p.LineBreak()
	}
	r.renderMods(c.Mods)
	r.p.Write("class " + c.Name)
	if len(c.Generics) > 0 {
		r.p.Write(genericsDecl(c.Generics))
	}
	if len(c.Interfaces) > 0 {
		names := make([]string, len(c.Interfaces))
		for i, ref := range c.Interfaces {
			names[i] = typeName(ref)
		}
		r.p.Write(" implements " + strings.Join(names, ", "))
	}
	// The superclass is always rendered, defaulting to the universal
	// base type, and keeps its plain name rather than the dynamic-type
	// keyword.
	r.p.Write(" extends " + superName(c))
	r.p.Write(" { ")
	r.p.LineBreak()
	r.p.Indented(func() {
		// Properties render as no-ops: each is rendered once, as its
		// backing field below.
		if len(c.Fields) > 0 {
			for _, f := range c.Fields {
				r.renderField(f)
				r.p.LineBreak()
			}
			r.p.DoubleBreak()
		}
		for _, m := range c.Constructors {
			r.renderMethod(m)
		}
		for _, m := range c.Methods {
			r.renderMethod(m)
		}
	})
	r.p.Write("}")
	r.p.LineBreak()
}

func superName(c *ast.Class) string {
	if c.SuperClass == nil {
		return ast.SimpleName(ast.ObjectClass)
	}
	name, depth := c.SuperClass.Element()
	return ast.SimpleName(name) + strings.Repeat("[]", depth)
}

func (r *Renderer) renderField(f *ast.Field) {
	for _, a := range f.Annotations {
		r.renderAnnotation(a)
		r.p.LineBreak()
	}
	r.renderMods(f.Mods)
	r.p.Write(typeName(f.Type))
	r.p.Write(" " + f.Name)
	// Only static final constants are initialized at the field site;
	// everything else is initialized inside generated constructors and
	// rendering it here would duplicate that.
	if init := constantInit(f); init != nil {
		r.p.Write(" = ")
		r.renderConstant(init)
	}
}

// constantInit returns the field's initializer when it is renderable at
// the declaration: the field is static final and the initializer is a
// constant of the declared type with a primitive or string kind.
func constantInit(f *ast.Field) *ast.ConstantExpression {
	if !f.Mods.Has(ast.ModStatic | ast.ModFinal) {
		return nil
	}
	c, ok := f.Init.(*ast.ConstantExpression)
	if !ok || c.Type == nil || f.Type == nil {
		return nil
	}
	if c.Type.Name != f.Type.Name {
		return nil
	}
	if !constantKinds[c.Type.Name] {
		return nil
	}
	return c
}

var constantKinds = map[string]bool{
	"byte":             true,
	"short":            true,
	"int":              true,
	"long":             true,
	"float":            true,
	"double":           true,
	"boolean":          true,
	"char":             true,
	"String":           true,
	"java.lang.String": true,
}

func (r *Renderer) renderMethod(m *ast.Method) {
	for _, a := range m.Annotations {
		r.renderAnnotation(a)
		r.p.LineBreak()
	}
	r.renderMods(m.Mods)
	switch {
	case m.IsStaticInit():
		// The "static" keyword was already written by the modifier
		// pass; the initializer itself is just its braces.
	case m.IsCtor():
		r.p.Write(r.enclosingClass())
		r.renderParams(m.Params)
	default:
		if len(m.Generics) > 0 {
			r.p.Write(genericsDecl(m.Generics) + " ")
		}
		r.p.Write(typeName(m.ReturnType))
		r.p.Write(" " + m.Name)
		r.renderParams(m.Params)
		if len(m.Exceptions) > 0 {
			names := make([]string, len(m.Exceptions))
			for i, ref := range m.Exceptions {
				names[i] = typeName(ref)
			}
			r.p.Write(" throws " + strings.Join(names, ", "))
		}
	}
	if m.Body == nil && !m.IsStaticInit() {
		r.p.LineBreak()
		r.p.DoubleBreak()
		return
	}
	r.p.Write(" {")
	r.p.LineBreak()
	r.p.Indented(func() {
		r.renderBody(m.Body)
	})
	r.p.Write("}")
	r.p.DoubleBreak()
}

func (r *Renderer) enclosingClass() string {
	if len(r.classStack) == 0 {
		return ""
	}
	return r.classStack[len(r.classStack)-1]
}

func (r *Renderer) renderParams(params []*ast.Parameter) {
	r.p.Write("(")
	for i, param := range params {
		if i > 0 {
			r.p.Write(", ")
		}
		r.renderParam(param)
	}
	r.p.Write(")")
}

func (r *Renderer) renderParam(param *ast.Parameter) {
	for _, a := range param.Annotations {
		r.renderAnnotation(a)
		r.p.Write(" ")
	}
	r.renderMods(param.Mods)
	r.p.Write(typeName(param.Type))
	r.p.Write(" " + param.Name)
	if param.Default != nil && !isNoValue(param.Default) {
		r.p.Write(" = ")
		r.render(param.Default)
	}
}

// isNoValue recognizes the front end's placeholder for "no default value":
// an untyped null constant.
func isNoValue(e ast.Expression) bool {
	c, ok := e.(*ast.ConstantExpression)
	return ok && c.Value == nil && c.Type == nil
}

func (r *Renderer) renderMods(m ast.Mods) {
	for _, word := range m.Words() {
		r.p.Write(word + " ")
	}
}

func (r *Renderer) renderAnnotation(a *ast.Annotation) {
	r.p.Write("@" + a.Name)
	if len(a.Members) == 0 {
		return
	}
	r.p.Write("(")
	for i, m := range a.Members {
		if i > 0 {
			r.p.Write(", ")
		}
		r.p.Write(m.Name + " = ")
		r.render(m.Value)
	}
	r.p.Write(")")
}

// genericsDecl renders a generic parameter list, with upper bounds joined
// by & and the lower bound only when present.
func genericsDecl(gs []*ast.GenericsType) string {
	parts := make([]string, len(gs))
	for i, g := range gs {
		s := g.Name
		if len(g.Upper) > 0 {
			names := make([]string, len(g.Upper))
			for j, ref := range g.Upper {
				names[j] = typeName(ref)
			}
			s += " extends " + strings.Join(names, " & ")
		}
		if g.Lower != nil {
			s += " super " + typeName(g.Lower)
		}
		parts[i] = s
	}
	return "<" + strings.Join(parts, ", ") + ">"
}

// typeName renders a type reference: descriptor-encoded arrays unwrap to
// Elem[] per dimension, the universal base type becomes the dynamic-type
// keyword, and everything else keeps its simple name plus generic
// arguments.
func typeName(ref *ast.ClassRef) string {
	if ref == nil {
		return "def"
	}
	name, depth := ref.Element()
	if depth > 0 {
		return ast.SimpleName(name) + strings.Repeat("[]", depth)
	}
	if ref.IsObject() {
		return "def"
	}
	s := ast.SimpleName(ref.Name)
	if len(ref.Generics) > 0 {
		s += genericsDecl(ref.Generics)
	}
	return s
}
