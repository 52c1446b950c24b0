package ast

import "testing"

func TestClassRefElement(t *testing.T) {
	tests := []struct {
		name     string
		ref      string
		expected string
		depth    int
	}{
		{
			name:     "plain name",
			ref:      "java.lang.String",
			expected: "java.lang.String",
			depth:    0,
		},
		{
			name:     "primitive array",
			ref:      "[I",
			expected: "int",
			depth:    1,
		},
		{
			name:     "double array",
			ref:      "[D",
			expected: "double",
			depth:    1,
		},
		{
			name:     "object array",
			ref:      "[Ljava.lang.String;",
			expected: "java.lang.String",
			depth:    1,
		},
		{
			name:     "nested object array",
			ref:      "[[Ljava.lang.String;",
			expected: "java.lang.String",
			depth:    2,
		},
		{
			name:     "slash separated descriptor",
			ref:      "[Ljava/util/List;",
			expected: "java.util.List",
			depth:    1,
		},
		{
			name:     "nested primitive array",
			ref:      "[[Z",
			expected: "boolean",
			depth:    2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, depth := (&ClassRef{Name: tt.ref}).Element()
			if name != tt.expected || depth != tt.depth {
				t.Errorf("got (%q, %d), want (%q, %d)", name, depth, tt.expected, tt.depth)
			}
		})
	}
}

func TestClassRefElementNil(t *testing.T) {
	var c *ClassRef
	if name, depth := c.Element(); name != "" || depth != 0 {
		t.Errorf("got (%q, %d), want empty", name, depth)
	}
}

func TestSimpleName(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"java.lang.String", "String"},
		{"String", "String"},
		{"com.example.outer.Inner", "Inner"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SimpleName(tt.in); got != tt.expected {
			t.Errorf("SimpleName(%q) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}

func TestClassRefIsObject(t *testing.T) {
	if !(&ClassRef{Name: ObjectClass}).IsObject() {
		t.Error("universal base type not recognized")
	}
	if (&ClassRef{Name: "java.lang.String"}).IsObject() {
		t.Error("String misreported as the universal base type")
	}
}
