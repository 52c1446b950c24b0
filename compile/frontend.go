package compile

import (
	"github.com/dhamidi/astview/ast"
)

// Options carries the render configuration handed through to the front
// end and the unparser.
type Options struct {
	// ShowScriptFreeForm includes top-level script statements outside
	// any class.
	ShowScriptFreeForm bool
	// ShowScriptClass includes the synthetic script-holder class.
	ShowScriptClass bool
	// Loader is an opaque resolution context for the front end. It only
	// affects how the front end resolves types, never the rendering.
	Loader any
}

// DefaultOptions returns the default configuration: both script views on.
func DefaultOptions() Options {
	return Options{ShowScriptFreeForm: true, ShowScriptClass: true}
}

// Frontend is the external compiler. It parses source, lowers the tree up
// to the requested phase and returns it. astview only reads the result.
type Frontend interface {
	Compile(source []byte, until Phase, opts Options) (*ast.Module, error)
}

// TreeFrontend reads trees in the JSON interchange format instead of
// compiling source. The producing compiler already stopped at whatever
// phase it serialized the tree at, so the requested phase is informational
// only.
type TreeFrontend struct{}

func (TreeFrontend) Compile(source []byte, until Phase, opts Options) (*ast.Module, error) {
	return ast.DecodeModule(source)
}
