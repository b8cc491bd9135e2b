// Package lsp implements a Language Server Protocol server for treebank
// files: parse diagnostics while editing, and hover information showing
// the constituent under the cursor.
package lsp

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/treebank/config"
	"github.com/dhamidi/treebank/format"
	"github.com/dhamidi/treebank/ptb"
)

const lsName = "ptbtool"

// Server wires treebank parsing into an LSP server running on stdio.
type Server struct {
	handler protocol.Handler
	server  *server.Server
	version string
	cfg     config.Config
	log     commonlog.Logger

	mu   sync.Mutex
	docs map[protocol.DocumentUri][]*ptb.Node
}

func NewServer(version string, cfg config.Config) *Server {
	s := &Server{
		version: version,
		cfg:     cfg,
		log:     commonlog.GetLogger("ptbtool.lsp"),
		docs:    make(map[protocol.DocumentUri][]*ptb.Node),
	}

	s.handler = protocol.Handler{
		Initialize:            s.initialize,
		Initialized:           s.initialized,
		Shutdown:              s.shutdown,
		SetTrace:              s.setTrace,
		TextDocumentDidOpen:   s.textDocumentDidOpen,
		TextDocumentDidChange: s.textDocumentDidChange,
		TextDocumentDidClose:  s.textDocumentDidClose,
		TextDocumentDidSave:   s.textDocumentDidSave,
		TextDocumentHover:     s.textDocumentHover,
	}

	s.server = server.NewServer(&s.handler, lsName, false)

	return s
}

func (s *Server) RunStdio() error {
	return s.server.RunStdio()
}

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := s.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}
	capabilities.HoverProvider = true

	s.log.Infof("initialized %s %s", lsName, s.version)

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (s *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (s *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.validate(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		s.validate(ctx, params.TextDocument.URI, whole.Text)
	}
	return nil
}

func (s *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		s.validate(ctx, params.TextDocument.URI, *params.Text)
	}
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.mu.Lock()
	delete(s.docs, params.TextDocument.URI)
	s.mu.Unlock()

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

// validate reparses a document, stores its trees for hover lookup and
// publishes one diagnostic per failed tree.
func (s *Server) validate(ctx *glsp.Context, uri protocol.DocumentUri, text string) {
	if !s.cfg.IsTreebankFile(string(uri)) {
		return
	}

	trees, diagnostics := parseForDiagnostics(text)
	s.log.Debugf("%s: %d trees, %d diagnostics", uri, len(trees), len(diagnostics))

	s.mu.Lock()
	s.docs[uri] = trees
	s.mu.Unlock()

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func parseForDiagnostics(text string) ([]*ptb.Node, []protocol.Diagnostic) {
	var trees []*ptb.Node
	diagnostics := []protocol.Diagnostic{}

	p := ptb.NewParser(strings.NewReader(text))
	for {
		tree, err := p.Next()
		if err == io.EOF {
			return trees, diagnostics
		}
		if err != nil {
			diagnostics = append(diagnostics, errorDiagnostic(err))
			continue
		}
		trees = append(trees, tree)
	}
}

func errorDiagnostic(err error) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	source := lsName

	rng := protocol.Range{}
	if pos, ok := ptb.ErrorPosition(err); ok {
		rng.Start = protocol.Position{Line: uint32(pos.Line - 1), Character: uint32(pos.Column - 1)}
		rng.End = protocol.Position{Line: uint32(pos.Line - 1), Character: uint32(pos.Column)}
	}

	return protocol.Diagnostic{
		Range:    rng,
		Severity: &severity,
		Source:   &source,
		Message:  err.Error(),
	}
}

func (s *Server) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	s.mu.Lock()
	trees := s.docs[params.TextDocument.URI]
	s.mu.Unlock()

	line := int(params.Position.Line) + 1
	column := int(params.Position.Character) + 1

	node := nodeAt(trees, line, column)
	if node == nil {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: hoverText(node),
		},
		Range: sourceRange(node.Src),
	}, nil
}

// nodeAt finds the deepest node whose source span contains the cursor.
func nodeAt(trees []*ptb.Node, line, column int) *ptb.Node {
	for _, tree := range trees {
		if !tree.Src.Contains(line, column) {
			continue
		}
		node := tree
		for {
			deeper := false
			for _, child := range node.Children {
				if child.Src.Contains(line, column) {
					node = child
					deeper = true
					break
				}
			}
			if !deeper {
				return node
			}
		}
	}
	return nil
}

func hoverText(node *ptb.Node) string {
	var header string
	switch node.Kind {
	case ptb.KindTerminal:
		header = fmt.Sprintf("**%s** %s", node.Tag, node.Word)
	case ptb.KindWrapper:
		header = "*sentence wrapper*"
	default:
		sent := ptb.NewSentence(node)
		header = fmt.Sprintf("**%s** — %d words", node.Symbol.String(), sent.Len())
	}

	bracket := format.Bracket(node)
	if len(bracket) > 200 {
		bracket = bracket[:200] + "…"
	}
	return header + "\n\n```\n" + bracket + "\n```"
}

func sourceRange(src ptb.SourceSpan) *protocol.Range {
	return &protocol.Range{
		Start: protocol.Position{Line: uint32(src.Start.Line - 1), Character: uint32(src.Start.Column - 1)},
		End:   protocol.Position{Line: uint32(src.End.Line - 1), Character: uint32(src.End.Column - 1)},
	}
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
