package ast

import (
	"encoding/json"
	"fmt"
)

// JSON tree interchange. A front end that lowers source to a chosen phase
// serializes the resulting tree with EncodeModule; astview reads it back
// with DecodeModule. Every node carries a "kind" discriminator; the rest of
// the envelope fields are populated per kind.

type jsonNode struct {
	Kind          string           `json:"kind"`
	Name          string           `json:"name,omitempty"`
	Package       string           `json:"package,omitempty"`
	Path          string           `json:"path,omitempty"`
	Static        bool             `json:"static,omitempty"`
	Script        bool             `json:"script,omitempty"`
	Mods          uint32           `json:"mods,omitempty"`
	Op            string           `json:"op,omitempty"`
	Label         string           `json:"label,omitempty"`
	Text          string           `json:"text,omitempty"`
	Value         any              `json:"value,omitempty"`
	Inclusive     bool             `json:"inclusive,omitempty"`
	ImplicitThis  bool             `json:"implicitThis,omitempty"`
	Type          *jsonClassRef    `json:"type,omitempty"`
	Super         *jsonClassRef    `json:"super,omitempty"`
	Owner         *jsonClassRef    `json:"owner,omitempty"`
	Interfaces    []*jsonClassRef  `json:"interfaces,omitempty"`
	Exceptions    []*jsonClassRef  `json:"exceptions,omitempty"`
	Generics      []*jsonGenerics  `json:"generics,omitempty"`
	Annotations   []*jsonAnnot     `json:"annotations,omitempty"`
	Params        []*jsonParam     `json:"params,omitempty"`
	Var           *jsonParam       `json:"var,omitempty"`
	Imports       []*jsonNode      `json:"imports,omitempty"`
	StaticImports []*jsonNode      `json:"staticImports,omitempty"`
	Classes       []*jsonNode      `json:"classes,omitempty"`
	Properties    []*jsonNode      `json:"properties,omitempty"`
	Fields        []*jsonNode      `json:"fields,omitempty"`
	Constructors  []*jsonNode      `json:"constructors,omitempty"`
	Methods       []*jsonNode      `json:"methods,omitempty"`
	Statements    []*jsonNode      `json:"statements,omitempty"`
	Body          *jsonNode        `json:"body,omitempty"`
	Code          *jsonNode        `json:"code,omitempty"`
	Init          *jsonNode        `json:"init,omitempty"`
	Cond          *jsonNode        `json:"cond,omitempty"`
	Then          *jsonNode        `json:"then,omitempty"`
	Else          *jsonNode        `json:"else,omitempty"`
	Try           *jsonNode        `json:"try,omitempty"`
	Catches       []*jsonNode      `json:"catches,omitempty"`
	Finally       *jsonNode        `json:"finally,omitempty"`
	Cases         []*jsonNode      `json:"cases,omitempty"`
	Default       *jsonNode        `json:"default,omitempty"`
	Expression    *jsonNode        `json:"expression,omitempty"`
	Collection    *jsonNode        `json:"collection,omitempty"`
	Message       *jsonNode        `json:"message,omitempty"`
	Left          *jsonNode        `json:"left,omitempty"`
	Right         *jsonNode        `json:"right,omitempty"`
	True          *jsonNode        `json:"true,omitempty"`
	False         *jsonNode        `json:"false,omitempty"`
	Receiver      *jsonNode        `json:"receiver,omitempty"`
	Method        *jsonNode        `json:"method,omitempty"`
	Arguments     *jsonNode        `json:"arguments,omitempty"`
	Object        *jsonNode        `json:"object,omitempty"`
	Property      *jsonNode        `json:"property,omitempty"`
	Key           *jsonNode        `json:"key,omitempty"`
	Entries       []*jsonNode      `json:"entries,omitempty"`
	Expressions   []*jsonNode      `json:"expressions,omitempty"`
	Sizes         []*jsonNode      `json:"sizes,omitempty"`
	From          *jsonNode        `json:"from,omitempty"`
	To            *jsonNode        `json:"to,omitempty"`
	Field         *jsonNode        `json:"field,omitempty"`
}

type jsonClassRef struct {
	Name     string          `json:"name"`
	Generics []*jsonGenerics `json:"generics,omitempty"`
}

type jsonGenerics struct {
	Name  string          `json:"name"`
	Upper []*jsonClassRef `json:"upper,omitempty"`
	Lower *jsonClassRef   `json:"lower,omitempty"`
}

type jsonAnnot struct {
	Name    string        `json:"name"`
	Members []*jsonMember `json:"members,omitempty"`
}

type jsonMember struct {
	Name  string    `json:"name"`
	Value *jsonNode `json:"value,omitempty"`
}

type jsonParam struct {
	Name        string        `json:"name"`
	Mods        uint32        `json:"mods,omitempty"`
	Annotations []*jsonAnnot  `json:"annotations,omitempty"`
	Type        *jsonClassRef `json:"type,omitempty"`
	Default     *jsonNode     `json:"default,omitempty"`
}

// EncodeModule serializes a tree as indented JSON.
func EncodeModule(m *Module) ([]byte, error) {
	return json.MarshalIndent(encodeNode(m), "", "  ")
}

// DecodeModule reads a tree previously produced by EncodeModule or by an
// external front end emitting the same interchange format.
func DecodeModule(data []byte) (*Module, error) {
	var jn jsonNode
	if err := json.Unmarshal(data, &jn); err != nil {
		return nil, fmt.Errorf("decode tree: %w", err)
	}
	n, err := decodeNode(&jn)
	if err != nil {
		return nil, err
	}
	m, ok := n.(*Module)
	if !ok {
		return nil, fmt.Errorf("decode tree: root is %s, expected Module", jn.Kind)
	}
	return m, nil
}

func encodeRef(c *ClassRef) *jsonClassRef {
	if c == nil {
		return nil
	}
	return &jsonClassRef{Name: c.Name, Generics: encodeGenerics(c.Generics)}
}

func encodeRefs(refs []*ClassRef) []*jsonClassRef {
	var out []*jsonClassRef
	for _, r := range refs {
		out = append(out, encodeRef(r))
	}
	return out
}

func encodeGenerics(gs []*GenericsType) []*jsonGenerics {
	var out []*jsonGenerics
	for _, g := range gs {
		out = append(out, &jsonGenerics{Name: g.Name, Upper: encodeRefs(g.Upper), Lower: encodeRef(g.Lower)})
	}
	return out
}

func encodeAnnots(as []*Annotation) []*jsonAnnot {
	var out []*jsonAnnot
	for _, a := range as {
		ja := &jsonAnnot{Name: a.Name}
		for _, m := range a.Members {
			ja.Members = append(ja.Members, &jsonMember{Name: m.Name, Value: encodeNode(m.Value)})
		}
		out = append(out, ja)
	}
	return out
}

func encodeParam(p *Parameter) *jsonParam {
	if p == nil {
		return nil
	}
	return &jsonParam{
		Name:        p.Name,
		Mods:        uint32(p.Mods),
		Annotations: encodeAnnots(p.Annotations),
		Type:        encodeRef(p.Type),
		Default:     encodeNode(p.Default),
	}
}

func encodeParams(ps []*Parameter) []*jsonParam {
	var out []*jsonParam
	for _, p := range ps {
		out = append(out, encodeParam(p))
	}
	return out
}

func encodeNodes[N Node](nodes []N) []*jsonNode {
	var out []*jsonNode
	for _, n := range nodes {
		out = append(out, encodeNode(n))
	}
	return out
}

func encodeBlock(b *BlockStatement) *jsonNode {
	if b == nil {
		return nil
	}
	return encodeNode(b)
}

func encodeField(f *Field) *jsonNode {
	if f == nil {
		return nil
	}
	return encodeNode(f)
}

func encodeBool(b *BooleanExpression) *jsonNode {
	if b == nil {
		return nil
	}
	return encodeNode(b)
}

func encodeNode(n Node) *jsonNode {
	switch n := n.(type) {
	case nil:
		return nil
	case *Module:
		return &jsonNode{
			Kind:          "Module",
			Package:       n.Package,
			Annotations:   encodeAnnots(n.Annotations),
			Imports:       encodeNodes(n.Imports),
			StaticImports: encodeNodes(n.StaticImports),
			Body:          encodeBlock(n.Statements),
			Classes:       encodeNodes(n.Classes),
		}
	case *Import:
		return &jsonNode{Kind: "Import", Path: n.Path, Static: n.Static, Annotations: encodeAnnots(n.Annotations)}
	case *Class:
		return &jsonNode{
			Kind:         "Class",
			Name:         n.Name,
			Annotations:  encodeAnnots(n.Annotations),
			Mods:         uint32(n.Mods),
			Generics:     encodeGenerics(n.Generics),
			Super:        encodeRef(n.SuperClass),
			Interfaces:   encodeRefs(n.Interfaces),
			Properties:   encodeNodes(n.Properties),
			Fields:       encodeNodes(n.Fields),
			Constructors: encodeNodes(n.Constructors),
			Methods:      encodeNodes(n.Methods),
			Script:       n.Script,
		}
	case *Property:
		return &jsonNode{Kind: "Property", Field: encodeField(n.Field)}
	case *Field:
		return &jsonNode{
			Kind:        "Field",
			Name:        n.Name,
			Annotations: encodeAnnots(n.Annotations),
			Mods:        uint32(n.Mods),
			Type:        encodeRef(n.Type),
			Init:        encodeNode(n.Init),
		}
	case *Method:
		return &jsonNode{
			Kind:        "Method",
			Name:        n.Name,
			Annotations: encodeAnnots(n.Annotations),
			Mods:        uint32(n.Mods),
			Generics:    encodeGenerics(n.Generics),
			Type:        encodeRef(n.ReturnType),
			Params:      encodeParams(n.Params),
			Exceptions:  encodeRefs(n.Exceptions),
			Body:        encodeNode(n.Body),
		}

	case *BlockStatement:
		return &jsonNode{Kind: "Block", Statements: encodeNodes(n.Statements)}
	case *ExpressionStatement:
		return &jsonNode{Kind: "ExpressionStatement", Expression: encodeNode(n.Expression)}
	case *IfStatement:
		return &jsonNode{Kind: "If", Cond: encodeBool(n.Cond), Then: encodeNode(n.Then), Else: encodeNode(n.Else)}
	case *ForStatement:
		return &jsonNode{Kind: "For", Var: encodeParam(n.Var), Collection: encodeNode(n.Collection), Body: encodeNode(n.Body)}
	case *WhileStatement:
		return &jsonNode{Kind: "While", Cond: encodeBool(n.Cond), Body: encodeNode(n.Body)}
	case *DoWhileStatement:
		return &jsonNode{Kind: "DoWhile", Cond: encodeBool(n.Cond), Body: encodeNode(n.Body)}
	case *SwitchStatement:
		return &jsonNode{Kind: "Switch", Expression: encodeNode(n.Expression), Cases: encodeNodes(n.Cases), Default: encodeNode(n.Default)}
	case *CaseStatement:
		return &jsonNode{Kind: "Case", Expression: encodeNode(n.Expression), Code: encodeNode(n.Code)}
	case *BreakStatement:
		return &jsonNode{Kind: "Break", Label: n.Label}
	case *ContinueStatement:
		return &jsonNode{Kind: "Continue", Label: n.Label}
	case *ReturnStatement:
		return &jsonNode{Kind: "Return", Expression: encodeNode(n.Expression)}
	case *ThrowStatement:
		return &jsonNode{Kind: "Throw", Expression: encodeNode(n.Expression)}
	case *TryCatchStatement:
		return &jsonNode{Kind: "TryCatch", Try: encodeNode(n.Try), Catches: encodeNodes(n.Catches), Finally: encodeNode(n.Finally)}
	case *CatchStatement:
		return &jsonNode{Kind: "Catch", Var: encodeParam(n.Variable), Code: encodeNode(n.Code)}
	case *SynchronizedStatement:
		return &jsonNode{Kind: "Synchronized", Expression: encodeNode(n.Expression), Code: encodeNode(n.Code)}
	case *AssertStatement:
		return &jsonNode{Kind: "Assert", Cond: encodeBool(n.Cond), Message: encodeNode(n.Message)}
	case *EmptyStatement:
		return &jsonNode{Kind: "Empty"}

	case *BinaryExpression:
		return &jsonNode{Kind: "Binary", Left: encodeNode(n.Left), Op: n.Op, Right: encodeNode(n.Right)}
	case *DeclarationExpression:
		return &jsonNode{Kind: "Declaration", Left: encodeNode(n.Left), Op: n.Op, Right: encodeNode(n.Right)}
	case *PrefixExpression:
		return &jsonNode{Kind: "Prefix", Op: n.Op, Expression: encodeNode(n.Expression)}
	case *PostfixExpression:
		return &jsonNode{Kind: "Postfix", Op: n.Op, Expression: encodeNode(n.Expression)}
	case *BooleanExpression:
		return &jsonNode{Kind: "Boolean", Expression: encodeNode(n.Expression)}
	case *NotExpression:
		return &jsonNode{Kind: "Not", Expression: encodeNode(n.Expression)}
	case *UnaryMinusExpression:
		return &jsonNode{Kind: "UnaryMinus", Expression: encodeNode(n.Expression)}
	case *UnaryPlusExpression:
		return &jsonNode{Kind: "UnaryPlus", Expression: encodeNode(n.Expression)}
	case *BitwiseNegationExpression:
		return &jsonNode{Kind: "BitwiseNegation", Expression: encodeNode(n.Expression)}
	case *TernaryExpression:
		return &jsonNode{Kind: "Ternary", Cond: encodeBool(n.Cond), True: encodeNode(n.True), False: encodeNode(n.False)}
	case *ElvisExpression:
		return &jsonNode{Kind: "Elvis", Cond: encodeBool(n.Cond), True: encodeNode(n.True), False: encodeNode(n.False)}
	case *MethodCallExpression:
		return &jsonNode{
			Kind:         "MethodCall",
			Receiver:     encodeNode(n.Receiver),
			Method:       encodeNode(n.Method),
			Arguments:    encodeNode(n.Arguments),
			ImplicitThis: n.ImplicitThis,
		}
	case *StaticMethodCallExpression:
		return &jsonNode{Kind: "StaticMethodCall", Owner: encodeRef(n.Owner), Name: n.Method, Arguments: encodeNode(n.Arguments)}
	case *ConstructorCallExpression:
		return &jsonNode{Kind: "ConstructorCall", Type: encodeRef(n.Type), Arguments: encodeNode(n.Arguments)}
	case *ArrayExpression:
		return &jsonNode{Kind: "Array", Type: encodeRef(n.ElementType), Sizes: encodeNodes(n.Sizes)}
	case *CastExpression:
		return &jsonNode{Kind: "Cast", Type: encodeRef(n.Type), Expression: encodeNode(n.Expression)}
	case *ClosureExpression:
		return &jsonNode{Kind: "Closure", Params: encodeParams(n.Params), Code: encodeNode(n.Code)}
	case *VariableExpression:
		return &jsonNode{Kind: "Variable", Name: n.Name, Type: encodeRef(n.Type)}
	case *ConstantExpression:
		return &jsonNode{Kind: "Constant", Value: n.Value, Type: encodeRef(n.Type)}
	case *GStringExpression:
		return &jsonNode{Kind: "GString", Text: n.Text}
	case *ListExpression:
		return &jsonNode{Kind: "List", Expressions: encodeNodes(n.Expressions)}
	case *MapExpression:
		return &jsonNode{Kind: "Map", Entries: encodeNodes(n.Entries)}
	case *MapEntryExpression:
		return &jsonNode{Kind: "MapEntry", Key: encodeNode(n.Key), Expression: encodeNode(n.Value)}
	case *RangeExpression:
		return &jsonNode{Kind: "Range", From: encodeNode(n.From), To: encodeNode(n.To), Inclusive: n.Inclusive}
	case *PropertyExpression:
		return &jsonNode{Kind: "PropertyAccess", Object: encodeNode(n.Object), Property: encodeNode(n.Property)}
	case *FieldExpression:
		return &jsonNode{Kind: "FieldAccess", Field: encodeField(n.Field)}
	case *ClassExpression:
		return &jsonNode{Kind: "ClassLiteral", Type: encodeRef(n.Type)}
	case *TupleExpression:
		return &jsonNode{Kind: "Tuple", Expressions: encodeNodes(n.Expressions)}
	case *ArgumentListExpression:
		return &jsonNode{Kind: "ArgumentList", Expressions: encodeNodes(n.Expressions)}
	case *SpreadExpression:
		return &jsonNode{Kind: "Spread", Expression: encodeNode(n.Expression)}
	case *MethodPointerExpression:
		return &jsonNode{Kind: "MethodPointer", Object: encodeNode(n.Object), Method: encodeNode(n.Method)}
	case *BytecodeExpression:
		return &jsonNode{Kind: "Bytecode"}
	default:
		return &jsonNode{Kind: "Bytecode"}
	}
}

func decodeRef(j *jsonClassRef) *ClassRef {
	if j == nil {
		return nil
	}
	return &ClassRef{Name: j.Name, Generics: decodeGenerics(j.Generics)}
}

func decodeRefs(js []*jsonClassRef) []*ClassRef {
	var out []*ClassRef
	for _, j := range js {
		out = append(out, decodeRef(j))
	}
	return out
}

func decodeGenerics(js []*jsonGenerics) []*GenericsType {
	var out []*GenericsType
	for _, j := range js {
		out = append(out, &GenericsType{Name: j.Name, Upper: decodeRefs(j.Upper), Lower: decodeRef(j.Lower)})
	}
	return out
}

func decodeAnnots(js []*jsonAnnot) ([]*Annotation, error) {
	var out []*Annotation
	for _, j := range js {
		a := &Annotation{Name: j.Name}
		for _, m := range j.Members {
			v, err := decodeExpr(m.Value)
			if err != nil {
				return nil, err
			}
			a.Members = append(a.Members, &AnnotationMember{Name: m.Name, Value: v})
		}
		out = append(out, a)
	}
	return out, nil
}

func decodeParam(j *jsonParam) (*Parameter, error) {
	if j == nil {
		return nil, nil
	}
	annots, err := decodeAnnots(j.Annotations)
	if err != nil {
		return nil, err
	}
	def, err := decodeExpr(j.Default)
	if err != nil {
		return nil, err
	}
	return &Parameter{
		Name:        j.Name,
		Mods:        Mods(j.Mods),
		Annotations: annots,
		Type:        decodeRef(j.Type),
		Default:     def,
	}, nil
}

func decodeParams(js []*jsonParam) ([]*Parameter, error) {
	var out []*Parameter
	for _, j := range js {
		p, err := decodeParam(j)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func decodeStmt(j *jsonNode) (Statement, error) {
	if j == nil {
		return nil, nil
	}
	n, err := decodeNode(j)
	if err != nil {
		return nil, err
	}
	s, ok := n.(Statement)
	if !ok {
		return nil, fmt.Errorf("decode tree: %s is not a statement", j.Kind)
	}
	return s, nil
}

func decodeStmts(js []*jsonNode) ([]Statement, error) {
	var out []Statement
	for _, j := range js {
		s, err := decodeStmt(j)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func decodeExpr(j *jsonNode) (Expression, error) {
	if j == nil {
		return nil, nil
	}
	n, err := decodeNode(j)
	if err != nil {
		return nil, err
	}
	e, ok := n.(Expression)
	if !ok {
		return nil, fmt.Errorf("decode tree: %s is not an expression", j.Kind)
	}
	return e, nil
}

func decodeExprs(js []*jsonNode) ([]Expression, error) {
	var out []Expression
	for _, j := range js {
		e, err := decodeExpr(j)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// decodeBool accepts either an explicit Boolean wrapper or a bare
// expression, wrapping the latter.
func decodeBool(j *jsonNode) (*BooleanExpression, error) {
	if j == nil {
		return nil, nil
	}
	e, err := decodeExpr(j)
	if err != nil {
		return nil, err
	}
	if b, ok := e.(*BooleanExpression); ok {
		return b, nil
	}
	return &BooleanExpression{Expression: e}, nil
}

func decodeBlock(j *jsonNode) (*BlockStatement, error) {
	if j == nil {
		return nil, nil
	}
	s, err := decodeStmt(j)
	if err != nil {
		return nil, err
	}
	if b, ok := s.(*BlockStatement); ok {
		return b, nil
	}
	return &BlockStatement{Statements: []Statement{s}}, nil
}

func decodeNode(j *jsonNode) (Node, error) {
	switch j.Kind {
	case "Module":
		annots, err := decodeAnnots(j.Annotations)
		if err != nil {
			return nil, err
		}
		m := &Module{Package: j.Package, Annotations: annots}
		for _, ji := range j.Imports {
			imp, err := decodeImport(ji)
			if err != nil {
				return nil, err
			}
			m.Imports = append(m.Imports, imp)
		}
		for _, ji := range j.StaticImports {
			imp, err := decodeImport(ji)
			if err != nil {
				return nil, err
			}
			m.StaticImports = append(m.StaticImports, imp)
		}
		if m.Statements, err = decodeBlock(j.Body); err != nil {
			return nil, err
		}
		for _, jc := range j.Classes {
			n, err := decodeNode(jc)
			if err != nil {
				return nil, err
			}
			c, ok := n.(*Class)
			if !ok {
				return nil, fmt.Errorf("decode tree: %s in class list", jc.Kind)
			}
			m.Classes = append(m.Classes, c)
		}
		return m, nil
	case "Import":
		return decodeImport(j)
	case "Class":
		annots, err := decodeAnnots(j.Annotations)
		if err != nil {
			return nil, err
		}
		c := &Class{
			Name:        j.Name,
			Annotations: annots,
			Mods:        Mods(j.Mods),
			Generics:    decodeGenerics(j.Generics),
			SuperClass:  decodeRef(j.Super),
			Interfaces:  decodeRefs(j.Interfaces),
			Script:      j.Script,
		}
		for _, jp := range j.Properties {
			n, err := decodeNode(jp)
			if err != nil {
				return nil, err
			}
			p, ok := n.(*Property)
			if !ok {
				return nil, fmt.Errorf("decode tree: %s in property list", jp.Kind)
			}
			c.Properties = append(c.Properties, p)
		}
		for _, jf := range j.Fields {
			n, err := decodeNode(jf)
			if err != nil {
				return nil, err
			}
			f, ok := n.(*Field)
			if !ok {
				return nil, fmt.Errorf("decode tree: %s in field list", jf.Kind)
			}
			c.Fields = append(c.Fields, f)
		}
		if c.Constructors, err = decodeMethods(j.Constructors); err != nil {
			return nil, err
		}
		if c.Methods, err = decodeMethods(j.Methods); err != nil {
			return nil, err
		}
		return c, nil
	case "Property":
		if j.Field == nil {
			return &Property{}, nil
		}
		n, err := decodeNode(j.Field)
		if err != nil {
			return nil, err
		}
		f, ok := n.(*Field)
		if !ok {
			return nil, fmt.Errorf("decode tree: property backed by %s", j.Field.Kind)
		}
		return &Property{Field: f}, nil
	case "Field":
		annots, err := decodeAnnots(j.Annotations)
		if err != nil {
			return nil, err
		}
		init, err := decodeExpr(j.Init)
		if err != nil {
			return nil, err
		}
		return &Field{
			Name:        j.Name,
			Annotations: annots,
			Mods:        Mods(j.Mods),
			Type:        decodeRef(j.Type),
			Init:        init,
		}, nil
	case "Method":
		annots, err := decodeAnnots(j.Annotations)
		if err != nil {
			return nil, err
		}
		params, err := decodeParams(j.Params)
		if err != nil {
			return nil, err
		}
		body, err := decodeStmt(j.Body)
		if err != nil {
			return nil, err
		}
		return &Method{
			Name:        j.Name,
			Annotations: annots,
			Mods:        Mods(j.Mods),
			Generics:    decodeGenerics(j.Generics),
			ReturnType:  decodeRef(j.Type),
			Params:      params,
			Exceptions:  decodeRefs(j.Exceptions),
			Body:        body,
		}, nil

	case "Block":
		stmts, err := decodeStmts(j.Statements)
		if err != nil {
			return nil, err
		}
		return &BlockStatement{Statements: stmts}, nil
	case "ExpressionStatement":
		e, err := decodeExpr(j.Expression)
		if err != nil {
			return nil, err
		}
		return &ExpressionStatement{Expression: e}, nil
	case "If":
		cond, err := decodeBool(j.Cond)
		if err != nil {
			return nil, err
		}
		then, err := decodeStmt(j.Then)
		if err != nil {
			return nil, err
		}
		els, err := decodeStmt(j.Else)
		if err != nil {
			return nil, err
		}
		return &IfStatement{Cond: cond, Then: then, Else: els}, nil
	case "For":
		v, err := decodeParam(j.Var)
		if err != nil {
			return nil, err
		}
		coll, err := decodeExpr(j.Collection)
		if err != nil {
			return nil, err
		}
		body, err := decodeStmt(j.Body)
		if err != nil {
			return nil, err
		}
		return &ForStatement{Var: v, Collection: coll, Body: body}, nil
	case "While":
		cond, err := decodeBool(j.Cond)
		if err != nil {
			return nil, err
		}
		body, err := decodeStmt(j.Body)
		if err != nil {
			return nil, err
		}
		return &WhileStatement{Cond: cond, Body: body}, nil
	case "DoWhile":
		cond, err := decodeBool(j.Cond)
		if err != nil {
			return nil, err
		}
		body, err := decodeStmt(j.Body)
		if err != nil {
			return nil, err
		}
		return &DoWhileStatement{Cond: cond, Body: body}, nil
	case "Switch":
		e, err := decodeExpr(j.Expression)
		if err != nil {
			return nil, err
		}
		s := &SwitchStatement{Expression: e}
		for _, jc := range j.Cases {
			n, err := decodeNode(jc)
			if err != nil {
				return nil, err
			}
			c, ok := n.(*CaseStatement)
			if !ok {
				return nil, fmt.Errorf("decode tree: %s in case list", jc.Kind)
			}
			s.Cases = append(s.Cases, c)
		}
		if s.Default, err = decodeStmt(j.Default); err != nil {
			return nil, err
		}
		return s, nil
	case "Case":
		e, err := decodeExpr(j.Expression)
		if err != nil {
			return nil, err
		}
		code, err := decodeStmt(j.Code)
		if err != nil {
			return nil, err
		}
		return &CaseStatement{Expression: e, Code: code}, nil
	case "Break":
		return &BreakStatement{Label: j.Label}, nil
	case "Continue":
		return &ContinueStatement{Label: j.Label}, nil
	case "Return":
		e, err := decodeExpr(j.Expression)
		if err != nil {
			return nil, err
		}
		return &ReturnStatement{Expression: e}, nil
	case "Throw":
		e, err := decodeExpr(j.Expression)
		if err != nil {
			return nil, err
		}
		return &ThrowStatement{Expression: e}, nil
	case "TryCatch":
		try, err := decodeStmt(j.Try)
		if err != nil {
			return nil, err
		}
		t := &TryCatchStatement{Try: try}
		for _, jc := range j.Catches {
			n, err := decodeNode(jc)
			if err != nil {
				return nil, err
			}
			c, ok := n.(*CatchStatement)
			if !ok {
				return nil, fmt.Errorf("decode tree: %s in catch list", jc.Kind)
			}
			t.Catches = append(t.Catches, c)
		}
		if t.Finally, err = decodeStmt(j.Finally); err != nil {
			return nil, err
		}
		return t, nil
	case "Catch":
		v, err := decodeParam(j.Var)
		if err != nil {
			return nil, err
		}
		code, err := decodeStmt(j.Code)
		if err != nil {
			return nil, err
		}
		return &CatchStatement{Variable: v, Code: code}, nil
	case "Synchronized":
		e, err := decodeExpr(j.Expression)
		if err != nil {
			return nil, err
		}
		code, err := decodeStmt(j.Code)
		if err != nil {
			return nil, err
		}
		return &SynchronizedStatement{Expression: e, Code: code}, nil
	case "Assert":
		cond, err := decodeBool(j.Cond)
		if err != nil {
			return nil, err
		}
		msg, err := decodeExpr(j.Message)
		if err != nil {
			return nil, err
		}
		return &AssertStatement{Cond: cond, Message: msg}, nil
	case "Empty":
		return &EmptyStatement{}, nil

	case "Binary":
		left, err := decodeExpr(j.Left)
		if err != nil {
			return nil, err
		}
		right, err := decodeExpr(j.Right)
		if err != nil {
			return nil, err
		}
		return &BinaryExpression{Left: left, Op: j.Op, Right: right}, nil
	case "Declaration":
		left, err := decodeExpr(j.Left)
		if err != nil {
			return nil, err
		}
		right, err := decodeExpr(j.Right)
		if err != nil {
			return nil, err
		}
		return &DeclarationExpression{Left: left, Op: j.Op, Right: right}, nil
	case "Prefix":
		e, err := decodeExpr(j.Expression)
		if err != nil {
			return nil, err
		}
		return &PrefixExpression{Op: j.Op, Expression: e}, nil
	case "Postfix":
		e, err := decodeExpr(j.Expression)
		if err != nil {
			return nil, err
		}
		return &PostfixExpression{Op: j.Op, Expression: e}, nil
	case "Boolean":
		e, err := decodeExpr(j.Expression)
		if err != nil {
			return nil, err
		}
		return &BooleanExpression{Expression: e}, nil
	case "Not":
		e, err := decodeExpr(j.Expression)
		if err != nil {
			return nil, err
		}
		return &NotExpression{Expression: e}, nil
	case "UnaryMinus":
		e, err := decodeExpr(j.Expression)
		if err != nil {
			return nil, err
		}
		return &UnaryMinusExpression{Expression: e}, nil
	case "UnaryPlus":
		e, err := decodeExpr(j.Expression)
		if err != nil {
			return nil, err
		}
		return &UnaryPlusExpression{Expression: e}, nil
	case "BitwiseNegation":
		e, err := decodeExpr(j.Expression)
		if err != nil {
			return nil, err
		}
		return &BitwiseNegationExpression{Expression: e}, nil
	case "Ternary":
		cond, err := decodeBool(j.Cond)
		if err != nil {
			return nil, err
		}
		t, err := decodeExpr(j.True)
		if err != nil {
			return nil, err
		}
		f, err := decodeExpr(j.False)
		if err != nil {
			return nil, err
		}
		return &TernaryExpression{Cond: cond, True: t, False: f}, nil
	case "Elvis":
		cond, err := decodeBool(j.Cond)
		if err != nil {
			return nil, err
		}
		t, err := decodeExpr(j.True)
		if err != nil {
			return nil, err
		}
		f, err := decodeExpr(j.False)
		if err != nil {
			return nil, err
		}
		return &ElvisExpression{Cond: cond, True: t, False: f}, nil
	case "MethodCall":
		recv, err := decodeExpr(j.Receiver)
		if err != nil {
			return nil, err
		}
		method, err := decodeExpr(j.Method)
		if err != nil {
			return nil, err
		}
		args, err := decodeExpr(j.Arguments)
		if err != nil {
			return nil, err
		}
		return &MethodCallExpression{Receiver: recv, Method: method, Arguments: args, ImplicitThis: j.ImplicitThis}, nil
	case "StaticMethodCall":
		args, err := decodeExpr(j.Arguments)
		if err != nil {
			return nil, err
		}
		return &StaticMethodCallExpression{Owner: decodeRef(j.Owner), Method: j.Name, Arguments: args}, nil
	case "ConstructorCall":
		args, err := decodeExpr(j.Arguments)
		if err != nil {
			return nil, err
		}
		return &ConstructorCallExpression{Type: decodeRef(j.Type), Arguments: args}, nil
	case "Array":
		sizes, err := decodeExprs(j.Sizes)
		if err != nil {
			return nil, err
		}
		return &ArrayExpression{ElementType: decodeRef(j.Type), Sizes: sizes}, nil
	case "Cast":
		e, err := decodeExpr(j.Expression)
		if err != nil {
			return nil, err
		}
		return &CastExpression{Type: decodeRef(j.Type), Expression: e}, nil
	case "Closure":
		params, err := decodeParams(j.Params)
		if err != nil {
			return nil, err
		}
		code, err := decodeStmt(j.Code)
		if err != nil {
			return nil, err
		}
		return &ClosureExpression{Params: params, Code: code}, nil
	case "Variable":
		return &VariableExpression{Name: j.Name, Type: decodeRef(j.Type)}, nil
	case "Constant":
		return &ConstantExpression{Value: j.Value, Type: decodeRef(j.Type)}, nil
	case "GString":
		return &GStringExpression{Text: j.Text}, nil
	case "List":
		exprs, err := decodeExprs(j.Expressions)
		if err != nil {
			return nil, err
		}
		return &ListExpression{Expressions: exprs}, nil
	case "Map":
		m := &MapExpression{}
		for _, je := range j.Entries {
			n, err := decodeNode(je)
			if err != nil {
				return nil, err
			}
			e, ok := n.(*MapEntryExpression)
			if !ok {
				return nil, fmt.Errorf("decode tree: %s in map entries", je.Kind)
			}
			m.Entries = append(m.Entries, e)
		}
		return m, nil
	case "MapEntry":
		key, err := decodeExpr(j.Key)
		if err != nil {
			return nil, err
		}
		value, err := decodeExpr(j.Expression)
		if err != nil {
			return nil, err
		}
		return &MapEntryExpression{Key: key, Value: value}, nil
	case "Range":
		from, err := decodeExpr(j.From)
		if err != nil {
			return nil, err
		}
		to, err := decodeExpr(j.To)
		if err != nil {
			return nil, err
		}
		return &RangeExpression{From: from, To: to, Inclusive: j.Inclusive}, nil
	case "PropertyAccess":
		obj, err := decodeExpr(j.Object)
		if err != nil {
			return nil, err
		}
		prop, err := decodeExpr(j.Property)
		if err != nil {
			return nil, err
		}
		return &PropertyExpression{Object: obj, Property: prop}, nil
	case "FieldAccess":
		if j.Field == nil {
			return &FieldExpression{}, nil
		}
		n, err := decodeNode(j.Field)
		if err != nil {
			return nil, err
		}
		f, ok := n.(*Field)
		if !ok {
			return nil, fmt.Errorf("decode tree: field access on %s", j.Field.Kind)
		}
		return &FieldExpression{Field: f}, nil
	case "ClassLiteral":
		return &ClassExpression{Type: decodeRef(j.Type)}, nil
	case "Tuple":
		exprs, err := decodeExprs(j.Expressions)
		if err != nil {
			return nil, err
		}
		return &TupleExpression{Expressions: exprs}, nil
	case "ArgumentList":
		exprs, err := decodeExprs(j.Expressions)
		if err != nil {
			return nil, err
		}
		return &ArgumentListExpression{Expressions: exprs}, nil
	case "Spread":
		e, err := decodeExpr(j.Expression)
		if err != nil {
			return nil, err
		}
		return &SpreadExpression{Expression: e}, nil
	case "MethodPointer":
		obj, err := decodeExpr(j.Object)
		if err != nil {
			return nil, err
		}
		method, err := decodeExpr(j.Method)
		if err != nil {
			return nil, err
		}
		return &MethodPointerExpression{Object: obj, Method: method}, nil
	case "Bytecode":
		return &BytecodeExpression{}, nil
	default:
		return nil, fmt.Errorf("decode tree: unknown node kind %q", j.Kind)
	}
}

func decodeImport(j *jsonNode) (*Import, error) {
	if j.Kind != "Import" {
		return nil, fmt.Errorf("decode tree: %s in import list", j.Kind)
	}
	annots, err := decodeAnnots(j.Annotations)
	if err != nil {
		return nil, err
	}
	return &Import{Annotations: annots, Path: j.Path, Static: j.Static}, nil
}

func decodeMethods(js []*jsonNode) ([]*Method, error) {
	var out []*Method
	for _, j := range js {
		n, err := decodeNode(j)
		if err != nil {
			return nil, err
		}
		m, ok := n.(*Method)
		if !ok {
			return nil, fmt.Errorf("decode tree: %s in method list", j.Kind)
		}
		out = append(out, m)
	}
	return out, nil
}
