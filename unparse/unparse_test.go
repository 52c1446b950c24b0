package unparse

import (
	"strings"
	"testing"

	"github.com/dhamidi/astview/ast"
)

func ref(name string) *ast.ClassRef {
	return &ast.ClassRef{Name: name}
}

func v(name string) *ast.VariableExpression {
	return &ast.VariableExpression{Name: name}
}

func num(n int) *ast.ConstantExpression {
	return &ast.ConstantExpression{Value: n}
}

func boolOf(e ast.Expression) *ast.BooleanExpression {
	return &ast.BooleanExpression{Expression: e}
}

// call builds an implicit-this method call the way front ends shape them:
// the method name as a constant, the arguments as an argument list.
func call(name string, args ...ast.Expression) *ast.MethodCallExpression {
	return &ast.MethodCallExpression{
		Method:       &ast.ConstantExpression{Value: name},
		Arguments:    &ast.ArgumentListExpression{Expressions: args},
		ImplicitThis: true,
	}
}

func exprStmt(e ast.Expression) *ast.ExpressionStatement {
	return &ast.ExpressionStatement{Expression: e}
}

func block(stmts ...ast.Statement) *ast.BlockStatement {
	return &ast.BlockStatement{Statements: stmts}
}

func renderNode(t *testing.T, n ast.Node) string {
	t.Helper()
	return strings.TrimSuffix(Render(n), "\n")
}

func TestRenderExpressions(t *testing.T) {
	tests := []struct {
		name     string
		node     ast.Node
		expected string
	}{
		{
			name:     "variable",
			node:     v("x"),
			expected: "x",
		},
		{
			name:     "binary addition",
			node:     &ast.BinaryExpression{Left: v("a"), Op: "+", Right: v("b")},
			expected: "a + b",
		},
		{
			name:     "subscript closes its own bracket",
			node:     &ast.BinaryExpression{Left: v("a"), Op: "[", Right: num(0)},
			expected: "a [ 0]",
		},
		{
			name: "typed declaration",
			node: &ast.DeclarationExpression{
				Left:  &ast.VariableExpression{Name: "x", Type: ref("int")},
				Op:    "=",
				Right: num(5),
			},
			expected: "int x = 5",
		},
		{
			name: "untyped declaration",
			node: &ast.DeclarationExpression{
				Left:  v("x"),
				Op:    "=",
				Right: num(5),
			},
			expected: "def x = 5",
		},
		{
			name: "multiple assignment",
			node: &ast.DeclarationExpression{
				Left:  &ast.TupleExpression{Expressions: []ast.Expression{v("a"), v("b")}},
				Op:    "=",
				Right: &ast.ListExpression{Expressions: []ast.Expression{num(1), num(2)}},
			},
			expected: "def (a, b) = [1, 2]",
		},
		{
			name:     "prefix increment",
			node:     &ast.PrefixExpression{Op: "++", Expression: v("x")},
			expected: "++(x)",
		},
		{
			name:     "postfix increment",
			node:     &ast.PostfixExpression{Op: "++", Expression: v("x")},
			expected: "(x)++",
		},
		{
			name:     "not",
			node:     &ast.NotExpression{Expression: v("x")},
			expected: "!(x)",
		},
		{
			name:     "unary minus",
			node:     &ast.UnaryMinusExpression{Expression: v("x")},
			expected: "-(x)",
		},
		{
			name:     "unary plus",
			node:     &ast.UnaryPlusExpression{Expression: v("x")},
			expected: "+(x)",
		},
		{
			name:     "bitwise negation",
			node:     &ast.BitwiseNegationExpression{Expression: v("x")},
			expected: "~(x)",
		},
		{
			name:     "ternary",
			node:     &ast.TernaryExpression{Cond: boolOf(v("x")), True: v("a"), False: v("b")},
			expected: " x ? a : b",
		},
		{
			name:     "elvis",
			node:     &ast.ElvisExpression{Cond: boolOf(v("x")), True: v("x"), False: v("y")},
			expected: " x ? x : y",
		},
		{
			name:     "implicit this call",
			node:     call("run"),
			expected: "run ()",
		},
		{
			name: "explicit this receiver is dropped",
			node: &ast.MethodCallExpression{
				Receiver:  v("this"),
				Method:    &ast.ConstantExpression{Value: "run"},
				Arguments: &ast.ArgumentListExpression{},
			},
			expected: "run ()",
		},
		{
			name: "call on receiver",
			node: &ast.MethodCallExpression{
				Receiver:  v("obj"),
				Method:    &ast.ConstantExpression{Value: "run"},
				Arguments: &ast.ArgumentListExpression{},
			},
			expected: "obj.run ()",
		},
		{
			name:     "call with arguments",
			node:     call("max", v("a"), v("b")),
			expected: "max (a, b)",
		},
		{
			name: "static call",
			node: &ast.StaticMethodCallExpression{
				Owner:     ref("java.lang.Math"),
				Method:    "max",
				Arguments: &ast.ArgumentListExpression{Expressions: []ast.Expression{v("a"), v("b")}},
			},
			expected: "Math.max (a, b)",
		},
		{
			name: "static call with bare variable argument",
			node: &ast.StaticMethodCallExpression{
				Owner:     ref("java.lang.Math"),
				Method:    "abs",
				Arguments: &ast.ArgumentListExpression{Expressions: []ast.Expression{v("x")}},
			},
			expected: "Math.abs ((x))",
		},
		{
			name: "constructor call",
			node: &ast.ConstructorCallExpression{
				Type:      ref("com.example.Widget"),
				Arguments: &ast.ArgumentListExpression{},
			},
			expected: "new Widget ()",
		},
		{
			name:     "cast",
			node:     &ast.CastExpression{Expression: v("x"), Type: ref("int")},
			expected: "((x) as int)",
		},
		{
			name:     "interpolated string",
			node:     &ast.GStringExpression{Text: "hello $name"},
			expected: "\"hello $name\"",
		},
		{
			name:     "list",
			node:     &ast.ListExpression{Expressions: []ast.Expression{num(1), num(2)}},
			expected: "[1, 2]",
		},
		{
			name:     "empty map as sole argument",
			node:     call("f", &ast.MapExpression{}),
			expected: "f (:)",
		},
		{
			name: "map among several arguments is parenthesized",
			node: call("f",
				&ast.MapExpression{Entries: []*ast.MapEntryExpression{
					{Key: &ast.ConstantExpression{Value: "a"}, Value: num(1)},
				}},
				v("x"),
			),
			expected: "f (('a': 1), x)",
		},
		{
			name:     "inclusive range",
			node:     &ast.RangeExpression{From: num(1), To: num(5), Inclusive: true},
			expected: "(1..5)",
		},
		{
			name:     "exclusive range",
			node:     &ast.RangeExpression{From: num(1), To: num(5)},
			expected: "(1..<5)",
		},
		{
			name: "property access",
			node: &ast.PropertyExpression{
				Object:   v("this"),
				Property: &ast.ConstantExpression{Value: "name"},
			},
			expected: "this.name",
		},
		{
			name:     "spread",
			node:     &ast.SpreadExpression{Expression: &ast.ListExpression{Expressions: []ast.Expression{num(1), num(2)}}},
			expected: "*[1, 2]",
		},
		{
			name: "method pointer",
			node: &ast.MethodPointerExpression{
				Object: v("obj"),
				Method: &ast.ConstantExpression{Value: "run"},
			},
			expected: "obj.&run",
		},
		{
			name:     "string constant escapes quotes",
			node:     &ast.ConstantExpression{Value: "it's"},
			expected: "'it\\'s'",
		},
		{
			name:     "string constant escapes newlines",
			node:     &ast.ConstantExpression{Value: "a\nb"},
			expected: "'a\\nb'",
		},
		{
			name:     "char constant",
			node:     &ast.ConstantExpression{Value: "c", Type: ref("char")},
			expected: "'c'",
		},
		{
			name:     "null constant",
			node:     &ast.ConstantExpression{},
			expected: "null",
		},
		{
			name:     "boolean constant",
			node:     &ast.ConstantExpression{Value: true},
			expected: "true",
		},
		{
			name:     "class literal",
			node:     &ast.ClassExpression{Type: ref("java.util.List")},
			expected: "List",
		},
		{
			name:     "array creation",
			node:     &ast.ArrayExpression{ElementType: ref("int"), Sizes: []ast.Expression{num(3)}},
			expected: "new int[3]",
		},
		{
			name:     "array creation from descriptor type",
			node:     &ast.ArrayExpression{ElementType: ref("[I"), Sizes: []ast.Expression{num(2)}},
			expected: "new int[][2]",
		},
		{
			name:     "bare tuple",
			node:     &ast.TupleExpression{Expressions: []ast.Expression{v("a"), v("b")}},
			expected: "a, b",
		},
		{
			name:     "bytecode placeholder",
			node:     &ast.BytecodeExpression{},
			expected: "/* BytecodeExpression */",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderNode(t, tt.node); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestRenderClosure(t *testing.T) {
	tests := []struct {
		name     string
		node     *ast.ClosureExpression
		expected string
	}{
		{
			name:     "no parameters omits the arrow",
			node:     &ast.ClosureExpression{Code: block(exprStmt(call("a")))},
			expected: "{ \n    a ()\n}",
		},
		{
			name: "typed parameter",
			node: &ast.ClosureExpression{
				Params: []*ast.Parameter{{Name: "x", Type: ref("int")}},
				Code:   block(exprStmt(call("a"))),
			},
			expected: "{ int x ->\n    a ()\n}",
		},
		{
			name: "untyped parameter renders def",
			node: &ast.ClosureExpression{
				Params: []*ast.Parameter{{Name: "it"}},
				Code:   block(exprStmt(call("a"))),
			},
			expected: "{ def it ->\n    a ()\n}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderNode(t, tt.node); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestRenderStatements(t *testing.T) {
	tests := []struct {
		name     string
		node     ast.Statement
		expected string
	}{
		{
			name: "if else",
			node: &ast.IfStatement{
				Cond: boolOf(v("x")),
				Then: block(exprStmt(call("a"))),
				Else: block(exprStmt(call("b"))),
			},
			expected: "if ( x) {\n    a ()\n} else {\n    b ()\n}",
		},
		{
			name: "if without else",
			node: &ast.IfStatement{
				Cond: boolOf(v("x")),
				Then: block(exprStmt(call("a"))),
			},
			expected: "if ( x) {\n    a ()\n}",
		},
		{
			name: "else if chains on one line",
			node: &ast.IfStatement{
				Cond: boolOf(v("x")),
				Then: block(exprStmt(call("a"))),
				Else: &ast.IfStatement{
					Cond: boolOf(v("y")),
					Then: block(exprStmt(call("b"))),
				},
			},
			expected: "if ( x) {\n    a ()\n} else if ( y) {\n    b ()\n}",
		},
		{
			name: "while",
			node: &ast.WhileStatement{
				Cond: boolOf(v("x")),
				Body: block(exprStmt(call("a"))),
			},
			expected: "while ( x) {\n    a ()\n}",
		},
		{
			name: "do while",
			node: &ast.DoWhileStatement{
				Cond: boolOf(v("x")),
				Body: block(exprStmt(call("a"))),
			},
			expected: "do {\n    a ()\n} while ( x)",
		},
		{
			name: "for in with typed variable",
			node: &ast.ForStatement{
				Var:        &ast.Parameter{Name: "i", Type: ref("int")},
				Collection: v("xs"),
				Body:       block(exprStmt(call("a"))),
			},
			expected: "for (int i : xs) {\n    a ()\n}",
		},
		{
			name: "for in with untyped variable",
			node: &ast.ForStatement{
				Var:        &ast.Parameter{Name: "i"},
				Collection: v("xs"),
				Body:       block(exprStmt(call("a"))),
			},
			expected: "for (i : xs) {\n    a ()\n}",
		},
		{
			name: "tuple collection parenthesizes inside for",
			node: &ast.ForStatement{
				Var:        &ast.Parameter{Name: "i"},
				Collection: &ast.TupleExpression{Expressions: []ast.Expression{v("a"), v("b")}},
				Body:       block(exprStmt(call("f"))),
			},
			expected: "for (i : (a, b)) {\n    f ()\n}",
		},
		{
			name: "switch with default",
			node: &ast.SwitchStatement{
				Expression: v("x"),
				Cases: []*ast.CaseStatement{
					{Expression: num(1), Code: block(exprStmt(call("a")))},
				},
				Default: block(exprStmt(call("b"))),
			},
			expected: "switch (x) {\n    case 1:\n        a ()\n    default:\n        b ()\n}",
		},
		{
			name:     "break",
			node:     &ast.BreakStatement{},
			expected: "break",
		},
		{
			name:     "labeled break",
			node:     &ast.BreakStatement{Label: "outer"},
			expected: "break outer",
		},
		{
			name:     "labeled continue",
			node:     &ast.ContinueStatement{Label: "outer"},
			expected: "continue outer",
		},
		{
			name:     "bare return",
			node:     &ast.ReturnStatement{},
			expected: "return",
		},
		{
			name:     "return with value",
			node:     &ast.ReturnStatement{Expression: v("x")},
			expected: "return x",
		},
		{
			name:     "throw",
			node:     &ast.ThrowStatement{Expression: v("e")},
			expected: "throw e",
		},
		{
			name: "try catch always emits finally",
			node: &ast.TryCatchStatement{
				Try: block(exprStmt(call("a"))),
				Catches: []*ast.CatchStatement{
					{
						Variable: &ast.Parameter{Name: "e", Type: ref("java.lang.Exception")},
						Code:     block(exprStmt(call("b"))),
					},
				},
			},
			expected: "try {\n    a ()\n} catch (Exception e) {\n    b ()\n} finally {\n}",
		},
		{
			name: "try with explicit finally",
			node: &ast.TryCatchStatement{
				Try:     block(exprStmt(call("a"))),
				Finally: block(exprStmt(call("c"))),
			},
			expected: "try {\n    a ()\n} finally {\n    c ()\n}",
		},
		{
			name: "synchronized",
			node: &ast.SynchronizedStatement{
				Expression: v("lock"),
				Code:       block(exprStmt(call("a"))),
			},
			expected: "synchronized (lock) {\n    a ()\n}",
		},
		{
			name:     "assert without message",
			node:     &ast.AssertStatement{Cond: boolOf(v("x"))},
			expected: "assert x : null",
		},
		{
			name: "assert with message",
			node: &ast.AssertStatement{
				Cond:    boolOf(v("x")),
				Message: &ast.ConstantExpression{Value: "boom"},
			},
			expected: "assert x : 'boom'",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderNode(t, tt.node); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestRenderEmptyClass(t *testing.T) {
	m := &ast.Module{Classes: []*ast.Class{{Name: "Foo"}}}
	expected := "class Foo extends Object { \n}\n"
	if got := Render(m); got != expected {
		t.Errorf("got %q, want %q", got, expected)
	}
}

func TestRenderPackageAndImports(t *testing.T) {
	m := &ast.Module{
		Package: "com.example.",
		StaticImports: []*ast.Import{
			{Path: "java.lang.Math.max", Static: true},
		},
		Imports: []*ast.Import{
			{Path: "java.util.List"},
		},
		Classes: []*ast.Class{{Name: "Foo"}},
	}
	expected := "package com.example\n\n" +
		"import static java.lang.Math.max\n\n" +
		"import java.util.List\n\n" +
		"class Foo extends Object { \n}\n"
	if got := Render(m); got != expected {
		t.Errorf("got %q, want %q", got, expected)
	}
}

func TestRenderConstructorUsesClassName(t *testing.T) {
	m := &ast.Module{Classes: []*ast.Class{{
		Name: "Widget",
		Constructors: []*ast.Method{
			{Name: ast.CtorName, Body: block()},
		},
	}}}
	got := Render(m)
	if !strings.Contains(got, "Widget() {") {
		t.Errorf("constructor header missing, got %q", got)
	}
	if strings.Contains(got, ast.CtorName) {
		t.Errorf("synthetic constructor name leaked into output: %q", got)
	}
}

func TestRenderStaticInitializer(t *testing.T) {
	m := &ast.Module{Classes: []*ast.Class{{
		Name: "Init",
		Methods: []*ast.Method{
			{Name: ast.StaticInitName, Mods: ast.ModStatic, Body: block(exprStmt(call("setup")))},
		},
	}}}
	got := Render(m)
	if !strings.Contains(got, "static {\n") {
		t.Errorf("static initializer header missing, got %q", got)
	}
	if strings.Contains(got, ast.StaticInitName) {
		t.Errorf("synthetic initializer name leaked into output: %q", got)
	}
}

func TestRenderConstantField(t *testing.T) {
	m := &ast.Module{Classes: []*ast.Class{{
		Name: "Config",
		Fields: []*ast.Field{{
			Name: "X",
			Mods: ast.ModPublic | ast.ModStatic | ast.ModFinal,
			Type: ref("int"),
			Init: &ast.ConstantExpression{Value: 42, Type: ref("int")},
		}},
	}}}
	got := Render(m)
	if !strings.Contains(got, "final public static int X = 42") {
		t.Errorf("constant field missing, got %q", got)
	}
	if strings.Count(got, "42") != 1 {
		t.Errorf("initializer rendered more than once: %q", got)
	}
}

func TestFieldInitializerSuppression(t *testing.T) {
	tests := []struct {
		name  string
		field *ast.Field
	}{
		{
			name: "instance field",
			field: &ast.Field{
				Name: "x",
				Mods: ast.ModPrivate,
				Type: ref("int"),
				Init: &ast.ConstantExpression{Value: 5, Type: ref("int")},
			},
		},
		{
			name: "static but not final",
			field: &ast.Field{
				Name: "x",
				Mods: ast.ModStatic,
				Type: ref("int"),
				Init: &ast.ConstantExpression{Value: 5, Type: ref("int")},
			},
		},
		{
			name: "constant type does not match declared type",
			field: &ast.Field{
				Name: "x",
				Mods: ast.ModStatic | ast.ModFinal,
				Type: ref("long"),
				Init: &ast.ConstantExpression{Value: 5, Type: ref("int")},
			},
		},
		{
			name: "non constant initializer",
			field: &ast.Field{
				Name: "x",
				Mods: ast.ModStatic | ast.ModFinal,
				Type: ref("int"),
				Init: call("compute"),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &ast.Module{Classes: []*ast.Class{{Name: "C", Fields: []*ast.Field{tt.field}}}}
			if got := Render(m); strings.Contains(got, "=") {
				t.Errorf("initializer should be suppressed, got %q", got)
			}
		})
	}
}

func TestRenderStringConstantField(t *testing.T) {
	m := &ast.Module{Classes: []*ast.Class{{
		Name: "Config",
		Fields: []*ast.Field{{
			Name: "NAME",
			Mods: ast.ModStatic | ast.ModFinal,
			Type: ref("String"),
			Init: &ast.ConstantExpression{Value: "app", Type: ref("String")},
		}},
	}}}
	got := Render(m)
	if !strings.Contains(got, "final static String NAME = 'app'") {
		t.Errorf("string constant missing, got %q", got)
	}
}

func TestRenderSuperclass(t *testing.T) {
	tests := []struct {
		name     string
		class    *ast.Class
		expected string
	}{
		{
			name:     "default",
			class:    &ast.Class{Name: "A"},
			expected: "class A extends Object { ",
		},
		{
			name:     "explicit universal base keeps its name",
			class:    &ast.Class{Name: "A", SuperClass: ref(ast.ObjectClass)},
			expected: "class A extends Object { ",
		},
		{
			name:     "named superclass",
			class:    &ast.Class{Name: "A", SuperClass: ref("java.util.AbstractList")},
			expected: "class A extends AbstractList { ",
		},
		{
			name: "interfaces come before extends",
			class: &ast.Class{
				Name:       "A",
				Interfaces: []*ast.ClassRef{ref("java.io.Serializable"), ref("java.lang.Cloneable")},
			},
			expected: "class A implements Serializable, Cloneable extends Object { ",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(&ast.Module{Classes: []*ast.Class{tt.class}})
			if !strings.Contains(got, tt.expected) {
				t.Errorf("got %q, want it to contain %q", got, tt.expected)
			}
		})
	}
}

func TestRenderClassGenerics(t *testing.T) {
	m := &ast.Module{Classes: []*ast.Class{{
		Name: "Box",
		Generics: []*ast.GenericsType{
			{Name: "T", Upper: []*ast.ClassRef{ref("java.lang.Comparable")}},
		},
	}}}
	got := Render(m)
	if !strings.Contains(got, "class Box<T extends Comparable> extends Object { ") {
		t.Errorf("generics declaration missing, got %q", got)
	}
}

func TestRenderMethodSignatures(t *testing.T) {
	tests := []struct {
		name     string
		method   *ast.Method
		expected string
	}{
		{
			name: "throws clause",
			method: &ast.Method{
				Name:       "run",
				Mods:       ast.ModPublic,
				ReturnType: ref("void"),
				Exceptions: []*ast.ClassRef{ref("java.io.IOException")},
				Body:       block(),
			},
			expected: "public void run() throws IOException {",
		},
		{
			name: "generic method",
			method: &ast.Method{
				Name:       "id",
				Generics:   []*ast.GenericsType{{Name: "T"}},
				ReturnType: ref("T"),
				Params:     []*ast.Parameter{{Name: "x", Type: ref("T")}},
				Body:       block(),
			},
			expected: "<T> T id(T x) {",
		},
		{
			name: "dynamic return type",
			method: &ast.Method{
				Name:       "get",
				ReturnType: ref(ast.ObjectClass),
				Body:       block(),
			},
			expected: "def get() {",
		},
		{
			name: "parameter default value",
			method: &ast.Method{
				Name:       "greet",
				ReturnType: ref("void"),
				Params: []*ast.Parameter{
					{Name: "name", Type: ref("String"), Default: &ast.ConstantExpression{Value: "world"}},
				},
				Body: block(),
			},
			expected: "void greet(String name = 'world') {",
		},
		{
			name: "no value marker suppresses the default",
			method: &ast.Method{
				Name:       "greet",
				ReturnType: ref("void"),
				Params: []*ast.Parameter{
					{Name: "name", Type: ref("String"), Default: &ast.ConstantExpression{}},
				},
				Body: block(),
			},
			expected: "void greet(String name) {",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &ast.Module{Classes: []*ast.Class{{Name: "C", Methods: []*ast.Method{tt.method}}}}
			got := Render(m)
			if !strings.Contains(got, tt.expected) {
				t.Errorf("got %q, want it to contain %q", got, tt.expected)
			}
		})
	}
}

func TestRenderAbstractMethodHasNoBody(t *testing.T) {
	m := &ast.Module{Classes: []*ast.Class{{
		Name: "Base",
		Mods: ast.ModAbstract,
		Methods: []*ast.Method{
			{Name: "run", Mods: ast.ModAbstract | ast.ModPublic, ReturnType: ref("void")},
		},
	}}}
	got := Render(m)
	if !strings.Contains(got, "abstract public void run()\n") {
		t.Errorf("abstract method signature missing, got %q", got)
	}
	if strings.Contains(got, "run() {") {
		t.Errorf("abstract method must not get a body, got %q", got)
	}
}

func TestRenderAnnotations(t *testing.T) {
	m := &ast.Module{Classes: []*ast.Class{{
		Name: "User",
		Annotations: []*ast.Annotation{{
			Name: "Entity",
			Members: []*ast.AnnotationMember{
				{Name: "name", Value: &ast.ConstantExpression{Value: "users"}},
			},
		}},
		Methods: []*ast.Method{{
			Name:        "toString",
			Annotations: []*ast.Annotation{{Name: "Override"}},
			ReturnType:  ref("String"),
			Body:        block(),
		}},
	}}}
	got := Render(m)
	if !strings.Contains(got, "@Entity(name = 'users')\nclass User") {
		t.Errorf("class annotation missing, got %q", got)
	}
	if !strings.Contains(got, "@Override\n") {
		t.Errorf("method annotation missing, got %q", got)
	}
}

func TestRenderScriptStatements(t *testing.T) {
	m := &ast.Module{
		Statements: block(exprStmt(call("println", &ast.ConstantExpression{Value: "hi"}))),
		Classes: []*ast.Class{
			{Name: "script", Script: true},
			{Name: "Helper"},
		},
	}

	full := Render(m)
	if !strings.Contains(full, "println ('hi')") {
		t.Errorf("script statements missing, got %q", full)
	}
	if !strings.Contains(full, "class script") {
		t.Errorf("script class missing, got %q", full)
	}

	noScript := Render(m, WithScriptFreeForm(false))
	if strings.Contains(noScript, "println") {
		t.Errorf("script statements should be hidden, got %q", noScript)
	}

	noClass := Render(m, WithScriptClass(false))
	if strings.Contains(noClass, "class script") {
		t.Errorf("script class should be hidden, got %q", noClass)
	}
	if !strings.Contains(noClass, "class Helper") {
		t.Errorf("ordinary class must survive script filtering, got %q", noClass)
	}
}

func complexModule() *ast.Module {
	return &ast.Module{
		Package: "com.example",
		Imports: []*ast.Import{{Path: "java.util.List"}},
		Classes: []*ast.Class{{
			Name: "Service",
			Mods: ast.ModPublic,
			Fields: []*ast.Field{
				{
					Name: "LIMIT",
					Mods: ast.ModStatic | ast.ModFinal,
					Type: ref("int"),
					Init: &ast.ConstantExpression{Value: 10, Type: ref("int")},
				},
				{Name: "items", Mods: ast.ModPrivate, Type: ref("java.util.List")},
			},
			Constructors: []*ast.Method{
				{Name: ast.CtorName, Params: []*ast.Parameter{{Name: "items", Type: ref("java.util.List")}}, Body: block()},
			},
			Methods: []*ast.Method{{
				Name:       "process",
				Mods:       ast.ModPublic,
				ReturnType: ref("void"),
				Body: block(
					&ast.ForStatement{
						Var:        &ast.Parameter{Name: "item"},
						Collection: v("items"),
						Body: block(
							&ast.IfStatement{
								Cond: boolOf(&ast.BinaryExpression{Left: v("item"), Op: "!=", Right: &ast.ConstantExpression{}}),
								Then: block(exprStmt(call("handle", v("item")))),
							},
						),
					},
					&ast.ReturnStatement{},
				),
			}},
		}},
	}
}

func TestRenderDeterministic(t *testing.T) {
	m := complexModule()
	first := Render(m)
	second := Render(m)
	if first != second {
		t.Errorf("two renders of the same tree differ:\n%q\n%q", first, second)
	}
}

func TestRenderNeverTriplesLineBreaks(t *testing.T) {
	if got := Render(complexModule()); strings.Contains(got, "\n\n\n") {
		t.Errorf("output contains a triple line break: %q", got)
	}
}

func TestClassStackEmptyAfterRender(t *testing.T) {
	r := NewRenderer()
	r.Render(complexModule())
	if len(r.classStack) != 0 {
		t.Errorf("class stack not empty after render: %v", r.classStack)
	}
}

func TestRenderSurvivesJSONRoundTrip(t *testing.T) {
	m := complexModule()
	data, err := ast.EncodeModule(m)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := ast.DecodeModule(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got, want := Render(decoded), Render(m); got != want {
		t.Errorf("round trip changed output:\ngot  %q\nwant %q", got, want)
	}
}
