package ast

// BinaryExpression is left OP right. The operator is kept as its source
// text; the subscript operator arrives as "[" with the closing bracket
// implied.
type BinaryExpression struct {
	Left  Expression
	Op    string
	Right Expression
}

// DeclarationExpression declares one variable (or a tuple of them) with an
// initializer: def x = value.
type DeclarationExpression struct {
	Left  Expression
	Op    string
	Right Expression
}

// PrefixExpression is ++x or --x.
type PrefixExpression struct {
	Op         string
	Expression Expression
}

// PostfixExpression is x++ or x--.
type PostfixExpression struct {
	Expression Expression
	Op         string
}

// BooleanExpression wraps an expression used as a truth value, such as an
// if or while guard.
type BooleanExpression struct {
	Expression Expression
}

// NotExpression is !expr.
type NotExpression struct {
	Expression Expression
}

// UnaryMinusExpression is -expr.
type UnaryMinusExpression struct {
	Expression Expression
}

// UnaryPlusExpression is +expr.
type UnaryPlusExpression struct {
	Expression Expression
}

// BitwiseNegationExpression is ~expr.
type BitwiseNegationExpression struct {
	Expression Expression
}

// TernaryExpression is cond ? true : false.
type TernaryExpression struct {
	Cond  *BooleanExpression
	True  Expression
	False Expression
}

// ElvisExpression is the null-coalescing short form of the ternary. It
// keeps the ternary's shape so it can render through the same rule.
type ElvisExpression struct {
	Cond  *BooleanExpression
	True  Expression
	False Expression
}

// MethodCallExpression is receiver.method(args). ImplicitThis marks calls
// whose receiver was synthesized by the front end rather than written in
// source.
type MethodCallExpression struct {
	Receiver     Expression
	Method       Expression
	Arguments    Expression
	ImplicitThis bool
}

// StaticMethodCallExpression is Owner.method(args) resolved statically.
type StaticMethodCallExpression struct {
	Owner     *ClassRef
	Method    string
	Arguments Expression
}

// ConstructorCallExpression is new Type(args).
type ConstructorCallExpression struct {
	Type      *ClassRef
	Arguments Expression
}

// ArrayExpression is new ElementType[d1, d2].
type ArrayExpression struct {
	ElementType *ClassRef
	Sizes       []Expression
}

// CastExpression is (expr as Type).
type CastExpression struct {
	Type       *ClassRef
	Expression Expression
}

// ClosureExpression is a closure literal with optional parameters.
type ClosureExpression struct {
	Params []*Parameter
	Code   Statement
}

// VariableExpression references a variable. Type is nil for dynamically
// typed variables.
type VariableExpression struct {
	Name string
	Type *ClassRef
}

// ConstantExpression is a literal constant. Value is nil for null. Type,
// when present, is the literal's static type.
type ConstantExpression struct {
	Value any
	Type  *ClassRef
}

// GStringExpression is an interpolated string literal. Text is the
// verbatim interior including embedded ${...} expressions.
type GStringExpression struct {
	Text string
}

// ListExpression is a list literal.
type ListExpression struct {
	Expressions []Expression
}

// MapExpression is a map literal.
type MapExpression struct {
	Entries []*MapEntryExpression
}

// MapEntryExpression is one key: value pair of a map literal.
type MapEntryExpression struct {
	Key   Expression
	Value Expression
}

// RangeExpression is from..to, or from..<to when exclusive.
type RangeExpression struct {
	From      Expression
	To        Expression
	Inclusive bool
}

// PropertyExpression is object.property.
type PropertyExpression struct {
	Object   Expression
	Property Expression
}

// FieldExpression references a resolved field directly, as produced by
// later phases.
type FieldExpression struct {
	Field *Field
}

// ClassExpression references a class as a value.
type ClassExpression struct {
	Type *ClassRef
}

// TupleExpression is a bare sequence of expressions, such as the left side
// of a multiple assignment.
type TupleExpression struct {
	Expressions []Expression
}

// ArgumentListExpression is the argument tuple of a call.
type ArgumentListExpression struct {
	Expressions []Expression
}

// SpreadExpression is *expr.
type SpreadExpression struct {
	Expression Expression
}

// MethodPointerExpression is object.&method.
type MethodPointerExpression struct {
	Object Expression
	Method Expression
}

// BytecodeExpression is a synthetic node injected by late phases with no
// source-level form.
type BytecodeExpression struct{}

func (*BinaryExpression) node()           {}
func (*DeclarationExpression) node()      {}
func (*PrefixExpression) node()           {}
func (*PostfixExpression) node()          {}
func (*BooleanExpression) node()          {}
func (*NotExpression) node()              {}
func (*UnaryMinusExpression) node()       {}
func (*UnaryPlusExpression) node()        {}
func (*BitwiseNegationExpression) node()  {}
func (*TernaryExpression) node()          {}
func (*ElvisExpression) node()            {}
func (*MethodCallExpression) node()       {}
func (*StaticMethodCallExpression) node() {}
func (*ConstructorCallExpression) node()  {}
func (*ArrayExpression) node()            {}
func (*CastExpression) node()             {}
func (*ClosureExpression) node()          {}
func (*VariableExpression) node()         {}
func (*ConstantExpression) node()         {}
func (*GStringExpression) node()          {}
func (*ListExpression) node()             {}
func (*MapExpression) node()              {}
func (*MapEntryExpression) node()         {}
func (*RangeExpression) node()            {}
func (*PropertyExpression) node()         {}
func (*FieldExpression) node()            {}
func (*ClassExpression) node()            {}
func (*TupleExpression) node()            {}
func (*ArgumentListExpression) node()     {}
func (*SpreadExpression) node()           {}
func (*MethodPointerExpression) node()    {}
func (*BytecodeExpression) node()         {}

func (*BinaryExpression) expr()           {}
func (*DeclarationExpression) expr()      {}
func (*PrefixExpression) expr()           {}
func (*PostfixExpression) expr()          {}
func (*BooleanExpression) expr()          {}
func (*NotExpression) expr()              {}
func (*UnaryMinusExpression) expr()       {}
func (*UnaryPlusExpression) expr()        {}
func (*BitwiseNegationExpression) expr()  {}
func (*TernaryExpression) expr()          {}
func (*ElvisExpression) expr()            {}
func (*MethodCallExpression) expr()       {}
func (*StaticMethodCallExpression) expr() {}
func (*ConstructorCallExpression) expr()  {}
func (*ArrayExpression) expr()            {}
func (*CastExpression) expr()             {}
func (*ClosureExpression) expr()          {}
func (*VariableExpression) expr()         {}
func (*ConstantExpression) expr()         {}
func (*GStringExpression) expr()          {}
func (*ListExpression) expr()             {}
func (*MapExpression) expr()              {}
func (*MapEntryExpression) expr()         {}
func (*RangeExpression) expr()            {}
func (*PropertyExpression) expr()         {}
func (*FieldExpression) expr()            {}
func (*ClassExpression) expr()            {}
func (*TupleExpression) expr()            {}
func (*ArgumentListExpression) expr()     {}
func (*SpreadExpression) expr()           {}
func (*MethodPointerExpression) expr()    {}
func (*BytecodeExpression) expr()         {}
