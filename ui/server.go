// Package ui exposes astview over the Language Server Protocol so editors
// can ask "what does the compiler see" for a tree they hold open.
package ui

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/astview/compile"
)

const lsName = "astview"

// RenderCommand is the workspace/executeCommand name clients invoke with
// [uri, phase] arguments to get the unparsed source text back.
const RenderCommand = "astview.render"

type LSPServer struct {
	driver  *compile.Driver
	handler protocol.Handler
	server  *server.Server
	version string

	mu   sync.Mutex
	docs map[string][]byte
}

func NewLSPServer(driver *compile.Driver, version string) *LSPServer {
	ls := &LSPServer{
		driver:  driver,
		version: version,
		docs:    make(map[string][]byte),
	}

	ls.handler = protocol.Handler{
		Initialize:              ls.initialize,
		Initialized:             ls.initialized,
		Shutdown:                ls.shutdown,
		SetTrace:                ls.setTrace,
		TextDocumentDidOpen:     ls.textDocumentDidOpen,
		TextDocumentDidChange:   ls.textDocumentDidChange,
		TextDocumentDidClose:    ls.textDocumentDidClose,
		TextDocumentDidSave:     ls.textDocumentDidSave,
		WorkspaceExecuteCommand: ls.workspaceExecuteCommand,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *LSPServer) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *LSPServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}
	capabilities.ExecuteCommandProvider = &protocol.ExecuteCommandOptions{
		Commands: []string{RenderCommand},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *LSPServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *LSPServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *LSPServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	ls.updateDoc(params.TextDocument.URI, []byte(params.TextDocument.Text))
	return nil
}

func (ls *LSPServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		ls.updateDoc(params.TextDocument.URI, []byte(whole.Text))
	}
	return nil
}

func (ls *LSPServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	delete(ls.docs, params.TextDocument.URI)
	return nil
}

func (ls *LSPServer) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		ls.updateDoc(params.TextDocument.URI, []byte(*params.Text))
	}
	return nil
}

// workspaceExecuteCommand renders the tree held under a URI. The driver
// never fails; even a malformed tree comes back as diagnostic text.
func (ls *LSPServer) workspaceExecuteCommand(ctx *glsp.Context, params *protocol.ExecuteCommandParams) (any, error) {
	if params.Command != RenderCommand {
		return nil, fmt.Errorf("unknown command: %s", params.Command)
	}
	if len(params.Arguments) == 0 {
		return nil, fmt.Errorf("%s requires a document URI argument", RenderCommand)
	}
	uri, ok := params.Arguments[0].(string)
	if !ok {
		return nil, fmt.Errorf("%s: document URI must be a string", RenderCommand)
	}

	phase := compile.PhaseConversion
	if len(params.Arguments) > 1 {
		if name, ok := params.Arguments[1].(string); ok {
			parsed, err := compile.ParsePhase(name)
			if err != nil {
				return nil, err
			}
			phase = parsed
		}
	}

	content, err := ls.docContent(uri)
	if err != nil {
		return nil, err
	}

	result := ls.driver.Render(content, phase)
	return result.Text, nil
}

func (ls *LSPServer) updateDoc(uri string, content []byte) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	ls.docs[uri] = content
}

func (ls *LSPServer) docContent(uri string) ([]byte, error) {
	ls.mu.Lock()
	content, ok := ls.docs[uri]
	ls.mu.Unlock()
	if ok {
		return content, nil
	}
	path, err := uriToPath(uri)
	if err != nil {
		return nil, err
	}
	content, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return content, nil
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
