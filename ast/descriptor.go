package ast

import "strings"

// Array types coming out of later compilation phases carry JVM descriptor
// names such as "[I" or "[Ljava.lang.String;". Element unwraps the
// descriptor into the element's source name and the array depth. Non-array
// names come back unchanged with depth 0.
func (c *ClassRef) Element() (name string, depth int) {
	if c == nil {
		return "", 0
	}
	name = c.Name
	for strings.HasPrefix(name, "[") {
		depth++
		name = name[1:]
	}
	if depth == 0 {
		return c.Name, 0
	}
	switch {
	case strings.HasPrefix(name, "L") && strings.HasSuffix(name, ";"):
		name = name[1 : len(name)-1]
	default:
		if base, ok := baseTypes[name]; ok {
			name = base
		}
	}
	return strings.ReplaceAll(name, "/", "."), depth
}

var baseTypes = map[string]string{
	"B": "byte",
	"C": "char",
	"D": "double",
	"F": "float",
	"I": "int",
	"J": "long",
	"S": "short",
	"Z": "boolean",
	"V": "void",
}

// SimpleName strips the package from a dotted source name.
func SimpleName(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return name
}
