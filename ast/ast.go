// Package ast holds the syntax tree handed to astview by a front-end
// compiler. The tree is borrowed, never owned: astview only reads it, and
// every node here mirrors the shape the front end produces after whichever
// compilation phase it was stopped at. Constructors and static initializers
// arrive as methods carrying the front end's synthetic marker names.
package ast

// Node is implemented by every syntax tree node.
type Node interface {
	node()
}

// Statement is implemented by all statement nodes.
type Statement interface {
	Node
	stmt()
}

// Expression is implemented by all expression nodes.
type Expression interface {
	Node
	expr()
}

// Synthetic member names assigned by the front end. A constructor never
// keeps its class name in the tree; it is stored under CtorName and the
// unparser substitutes the enclosing class name back in.
const (
	CtorName       = "<init>"
	StaticInitName = "<clinit>"
)

// ObjectClass is the universal base type. Classes without an explicit
// superclass extend it, and type references naming it render as the
// dynamic-type keyword.
const ObjectClass = "java.lang.Object"

// Module is the root of one compilation unit: package, imports, top-level
// script statements and the classes declared (or generated) in it.
type Module struct {
	Package       string
	Annotations   []*Annotation
	Imports       []*Import
	StaticImports []*Import
	Statements    *BlockStatement
	Classes       []*Class
}

// Import is a single regular or static import. Path is the full dotted
// path, including a trailing member name for static imports and a trailing
// ".*" for star imports.
type Import struct {
	Annotations []*Annotation
	Path        string
	Static      bool
}

// Class is a class declaration. Script marks the synthetic holder class a
// front end wraps free-standing script statements in.
type Class struct {
	Name         string
	Annotations  []*Annotation
	Mods         Mods
	Generics     []*GenericsType
	SuperClass   *ClassRef
	Interfaces   []*ClassRef
	Properties   []*Property
	Fields       []*Field
	Constructors []*Method
	Methods      []*Method
	Script       bool
}

// Field is a field declaration. Init may be nil; whether a non-nil Init is
// actually rendered is the unparser's decision.
type Field struct {
	Name        string
	Annotations []*Annotation
	Mods        Mods
	Type        *ClassRef
	Init        Expression
}

// Property is a generated accessor pair backed by a field. The backing
// field also appears in the class's field list.
type Property struct {
	Field *Field
}

// Method is a method, constructor or static initializer, distinguished by
// Name (see CtorName, StaticInitName). Body is nil for abstract methods.
type Method struct {
	Name        string
	Annotations []*Annotation
	Mods        Mods
	Generics    []*GenericsType
	ReturnType  *ClassRef
	Params      []*Parameter
	Exceptions  []*ClassRef
	Body        Statement
}

// IsCtor reports whether the method is a constructor node.
func (m *Method) IsCtor() bool { return m.Name == CtorName }

// IsStaticInit reports whether the method is a static initializer block.
func (m *Method) IsStaticInit() bool { return m.Name == StaticInitName }

// Parameter is a method, constructor, closure or catch parameter.
// Default, when non-nil, is the declared default value.
type Parameter struct {
	Name        string
	Annotations []*Annotation
	Mods        Mods
	Type        *ClassRef
	Default     Expression
}

// Annotation is an annotation use site.
type Annotation struct {
	Name    string
	Members []*AnnotationMember
}

// AnnotationMember is one name/value pair inside an annotation.
type AnnotationMember struct {
	Name  string
	Value Expression
}

// GenericsType is a generic type parameter or argument: a name plus
// optional upper bounds and an optional lower bound.
type GenericsType struct {
	Name  string
	Upper []*ClassRef
	Lower *ClassRef
}

// ClassRef is a reference to a type. Name may be a plain or qualified
// source name, or a JVM-style descriptor such as "[I" or
// "[Ljava.lang.String;" for array types produced by later phases.
type ClassRef struct {
	Name     string
	Generics []*GenericsType
}

// IsObject reports whether the reference names the universal base type.
func (c *ClassRef) IsObject() bool {
	return c != nil && c.Name == ObjectClass
}

func (*Module) node()       {}
func (*Import) node()       {}
func (*Class) node()        {}
func (*Field) node()        {}
func (*Property) node()     {}
func (*Method) node()       {}
func (*Parameter) node()    {}
func (*Annotation) node()   {}
func (*GenericsType) node() {}
func (*ClassRef) node()     {}
