package ast

// BlockStatement is a sequence of statements. Blocks carry no braces of
// their own; the enclosing construct decides how to frame them.
type BlockStatement struct {
	Statements []Statement
}

// ExpressionStatement wraps an expression used in statement position.
type ExpressionStatement struct {
	Expression Expression
}

// IfStatement is an if with an optional else branch. Else may itself be an
// *IfStatement, forming an else-if chain.
type IfStatement struct {
	Cond *BooleanExpression
	Then Statement
	Else Statement
}

// ForStatement iterates a collection: for (v : coll).
type ForStatement struct {
	Var        *Parameter
	Collection Expression
	Body       Statement
}

// WhileStatement is a while loop.
type WhileStatement struct {
	Cond *BooleanExpression
	Body Statement
}

// DoWhileStatement is a do/while loop.
type DoWhileStatement struct {
	Body Statement
	Cond *BooleanExpression
}

// SwitchStatement is a switch with its case blocks and an optional
// default block.
type SwitchStatement struct {
	Expression Expression
	Cases      []*CaseStatement
	Default    Statement
}

// CaseStatement is one case label and its code.
type CaseStatement struct {
	Expression Expression
	Code       Statement
}

// BreakStatement is a break, optionally labeled.
type BreakStatement struct {
	Label string
}

// ContinueStatement is a continue, optionally labeled.
type ContinueStatement struct {
	Label string
}

// ReturnStatement is a return with an optional value.
type ReturnStatement struct {
	Expression Expression
}

// ThrowStatement throws its expression.
type ThrowStatement struct {
	Expression Expression
}

// TryCatchStatement is a try block with catch clauses and an optional
// finally block.
type TryCatchStatement struct {
	Try     Statement
	Catches []*CatchStatement
	Finally Statement
}

// CatchStatement is one catch clause.
type CatchStatement struct {
	Variable *Parameter
	Code     Statement
}

// SynchronizedStatement is a synchronized block.
type SynchronizedStatement struct {
	Expression Expression
	Code       Statement
}

// AssertStatement is an assertion with an optional message expression.
type AssertStatement struct {
	Cond    *BooleanExpression
	Message Expression
}

// EmptyStatement is a statement with no effect and no rendering.
type EmptyStatement struct{}

func (*BlockStatement) node()        {}
func (*ExpressionStatement) node()   {}
func (*IfStatement) node()           {}
func (*ForStatement) node()          {}
func (*WhileStatement) node()        {}
func (*DoWhileStatement) node()      {}
func (*SwitchStatement) node()       {}
func (*CaseStatement) node()         {}
func (*BreakStatement) node()        {}
func (*ContinueStatement) node()     {}
func (*ReturnStatement) node()       {}
func (*ThrowStatement) node()        {}
func (*TryCatchStatement) node()     {}
func (*CatchStatement) node()        {}
func (*SynchronizedStatement) node() {}
func (*AssertStatement) node()       {}
func (*EmptyStatement) node()        {}

func (*BlockStatement) stmt()        {}
func (*ExpressionStatement) stmt()   {}
func (*IfStatement) stmt()           {}
func (*ForStatement) stmt()          {}
func (*WhileStatement) stmt()        {}
func (*DoWhileStatement) stmt()      {}
func (*SwitchStatement) stmt()       {}
func (*CaseStatement) stmt()         {}
func (*BreakStatement) stmt()        {}
func (*ContinueStatement) stmt()     {}
func (*ReturnStatement) stmt()       {}
func (*ThrowStatement) stmt()        {}
func (*TryCatchStatement) stmt()     {}
func (*CatchStatement) stmt()        {}
func (*SynchronizedStatement) stmt() {}
func (*AssertStatement) stmt()       {}
func (*EmptyStatement) stmt()        {}
