package ptb

import "fmt"

// Position represents a location in a treebank source file.
type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	if p.File != "" {
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// SourceSpan is the region of source text a node was parsed from.
type SourceSpan struct {
	Start Position
	End   Position
}

// Contains reports whether the given line/column (1-based) falls inside
// the span. The end position is exclusive.
func (s SourceSpan) Contains(line, column int) bool {
	if line < s.Start.Line || line > s.End.Line {
		return false
	}
	if line == s.Start.Line && column < s.Start.Column {
		return false
	}
	if line == s.End.Line && column >= s.End.Column {
		return false
	}
	return true
}

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenOpen
	TokenClose
	TokenAtom
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:   "EOF",
	TokenOpen:  "(",
	TokenClose: ")",
	TokenAtom:  "Atom",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Token is a single lexical token: an open paren, a close paren, or an
// atom (any maximal run of non-whitespace, non-paren characters).
type Token struct {
	Kind    TokenKind
	Literal string
	Pos     Position
}

func (t Token) String() string {
	if t.Kind == TokenAtom {
		return fmt.Sprintf("%s Atom %q", t.Pos, t.Literal)
	}
	return fmt.Sprintf("%s %s", t.Pos, t.Kind)
}
