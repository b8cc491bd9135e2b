package lsp

import (
	"strings"
	"testing"

	"github.com/dhamidi/treebank/config"
)

func TestParseForDiagnosticsClean(t *testing.T) {
	trees, diagnostics := parseForDiagnostics("(NN dog)\n(S (NN cat) (VBZ sits))")
	if len(trees) != 2 {
		t.Errorf("%d trees, want 2", len(trees))
	}
	if len(diagnostics) != 0 {
		t.Errorf("%d diagnostics, want 0: %v", len(diagnostics), diagnostics)
	}
}

func TestParseForDiagnosticsErrors(t *testing.T) {
	// A stray close paren, then a healthy tree: one diagnostic, one tree.
	trees, diagnostics := parseForDiagnostics(")\n(NN dog)")
	if len(trees) != 1 {
		t.Errorf("%d trees, want 1", len(trees))
	}
	if len(diagnostics) != 1 {
		t.Fatalf("%d diagnostics, want 1", len(diagnostics))
	}

	d := diagnostics[0]
	if d.Range.Start.Line != 0 || d.Range.Start.Character != 0 {
		t.Errorf("diagnostic at %v, want line 0 char 0", d.Range.Start)
	}
	if !strings.Contains(d.Message, "close paren") {
		t.Errorf("message = %q, want close paren mention", d.Message)
	}
}

func TestNodeAt(t *testing.T) {
	trees, diagnostics := parseForDiagnostics("(S (NP (NN dog))\n   (VP (VBZ barks)))")
	if len(diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diagnostics)
	}

	// Cursor on "dog" (line 1, column 12).
	node := nodeAt(trees, 1, 12)
	if node == nil {
		t.Fatal("no node at cursor")
	}
	if node.Word != "dog" {
		t.Errorf("node = %v, want terminal dog", node)
	}

	// Cursor on the VP open paren (line 2, column 4).
	node = nodeAt(trees, 2, 4)
	if node == nil || node.Symbol == nil || node.Symbol.Label != "VP" {
		t.Errorf("node = %v, want VP", node)
	}

	if nodeAt(trees, 40, 1) != nil {
		t.Error("expected no node far past the input")
	}
}

func TestHoverText(t *testing.T) {
	trees, _ := parseForDiagnostics("(S (NP (NN dog)) (VP (VBZ barks)))")
	text := hoverText(trees[0])
	if !strings.Contains(text, "**S**") || !strings.Contains(text, "2 words") {
		t.Errorf("hover text = %q", text)
	}
	if !strings.Contains(text, "(S (NP (NN dog)) (VP (VBZ barks)))") {
		t.Errorf("hover text missing bracket rendering: %q", text)
	}
}

func TestNewServer(t *testing.T) {
	s := NewServer("0.1.0", config.Default())
	if s.server == nil {
		t.Fatal("no underlying server")
	}
	if s.handler.TextDocumentHover == nil {
		t.Error("hover handler not registered")
	}
}
