package ast

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestDecodeModuleStructure(t *testing.T) {
	input := `{
		"kind": "Module",
		"package": "com.example",
		"imports": [{"kind": "Import", "path": "java.util.List"}],
		"staticImports": [{"kind": "Import", "path": "java.lang.Math.max", "static": true}],
		"classes": [{
			"kind": "Class",
			"name": "Foo",
			"mods": 1,
			"super": {"name": "java.lang.Object"},
			"fields": [{
				"kind": "Field",
				"name": "x",
				"mods": 2,
				"type": {"name": "int"},
				"init": {"kind": "Constant", "value": 5, "type": {"name": "int"}}
			}],
			"methods": [{
				"kind": "Method",
				"name": "run",
				"type": {"name": "void"},
				"body": {"kind": "Block", "statements": [
					{"kind": "Return"}
				]}
			}]
		}]
	}`
	m, err := DecodeModule([]byte(input))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if m.Package != "com.example" {
		t.Errorf("package = %q", m.Package)
	}
	if len(m.Imports) != 1 || m.Imports[0].Path != "java.util.List" {
		t.Errorf("imports = %+v", m.Imports)
	}
	if len(m.StaticImports) != 1 || !m.StaticImports[0].Static {
		t.Errorf("static imports = %+v", m.StaticImports)
	}
	if len(m.Classes) != 1 {
		t.Fatalf("classes = %+v", m.Classes)
	}
	c := m.Classes[0]
	if c.Name != "Foo" || !c.Mods.Has(ModPublic) {
		t.Errorf("class = %+v", c)
	}
	if c.SuperClass == nil || !c.SuperClass.IsObject() {
		t.Errorf("superclass = %+v", c.SuperClass)
	}
	if len(c.Fields) != 1 || !c.Fields[0].Mods.Has(ModPrivate) {
		t.Errorf("fields = %+v", c.Fields)
	}
	if len(c.Methods) != 1 || c.Methods[0].Body == nil {
		t.Errorf("methods = %+v", c.Methods)
	}
}

func TestDecodeModuleErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "malformed json",
			input: `{"kind": "Module",`,
		},
		{
			name:  "unknown kind",
			input: `{"kind": "Module", "classes": [{"kind": "Class", "name": "A", "methods": [{"kind": "Method", "body": {"kind": "Nonsense"}}]}]}`,
		},
		{
			name:  "root is not a module",
			input: `{"kind": "Class", "name": "A"}`,
		},
		{
			name:  "expression in statement position",
			input: `{"kind": "Module", "classes": [{"kind": "Class", "name": "A", "methods": [{"kind": "Method", "body": {"kind": "Variable", "name": "x"}}]}]}`,
		},
		{
			name:  "statement in expression position",
			input: `{"kind": "Module", "classes": [{"kind": "Class", "name": "A", "fields": [{"kind": "Field", "name": "x", "init": {"kind": "Return"}}]}]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeModule([]byte(tt.input)); err == nil {
				t.Error("expected an error")
			} else if !strings.Contains(err.Error(), "decode tree") {
				t.Errorf("unexpected error text: %v", err)
			}
		})
	}
}

func TestDecodeBareConditionGetsWrapped(t *testing.T) {
	input := `{"kind": "If",
		"cond": {"kind": "Variable", "name": "x"},
		"then": {"kind": "Block"}}`
	var jn jsonNode
	if err := json.Unmarshal([]byte(input), &jn); err != nil {
		t.Fatal(err)
	}
	n, err := decodeNode(&jn)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	s := n.(*IfStatement)
	if s.Cond == nil {
		t.Fatal("condition dropped")
	}
	if _, ok := s.Cond.Expression.(*VariableExpression); !ok {
		t.Errorf("wrapped condition = %+v", s.Cond.Expression)
	}
}

func TestDecodeSingleStatementBodyBecomesBlock(t *testing.T) {
	input := `{"kind": "Module",
		"body": {"kind": "ExpressionStatement", "expression": {"kind": "Variable", "name": "x"}}}`
	m, err := DecodeModule([]byte(input))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if m.Statements == nil || len(m.Statements.Statements) != 1 {
		t.Errorf("statements = %+v", m.Statements)
	}
}

func TestEncodeDecodeKeepsConstructorMarker(t *testing.T) {
	m := &Module{Classes: []*Class{{
		Name: "Widget",
		Constructors: []*Method{
			{Name: CtorName, Body: &BlockStatement{}},
		},
	}}}
	data, err := EncodeModule(m)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := DecodeModule(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	ctors := decoded.Classes[0].Constructors
	if len(ctors) != 1 || !ctors[0].IsCtor() {
		t.Errorf("constructors = %+v", ctors)
	}
}
