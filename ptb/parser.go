package ptb

import "io"

// Parser builds one tree per balanced top-level bracket group, using an
// explicit shift/reduce stack over the token stream. After a parse error
// the parser skips ahead to the next top-level open paren, so a
// malformed tree does not corrupt the trees that follow it.
type Parser struct {
	lex       *Lexer
	stack     []frame
	skipping  bool
	skipDepth int
}

// frame is one pending open bracket group: the position of its open
// paren plus every atom and finished child node seen inside it so far.
type frame struct {
	open  Position
	items []entry
}

// entry is either an atom (node == nil) or a reduced child node.
type entry struct {
	node *Node
	atom string
	pos  Position
}

// Option configures a Parser.
type Option func(*Parser)

// WithFile sets the file name used in token positions and errors.
func WithFile(file string) Option {
	return func(p *Parser) {
		p.lex.file = file
	}
}

// NewParser creates a parser reading bracketed trees from r.
func NewParser(r io.Reader, opts ...Option) *Parser {
	p := &Parser{lex: NewLexer(r, "")}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Next returns the next tree from the input, or io.EOF when the input is
// exhausted. Parse errors abort only the current tree; calling Next
// again resumes at the next top-level bracket group.
func (p *Parser) Next() (*Node, error) {
	for {
		tok, err := p.lex.NextToken()
		if err == io.EOF {
			if len(p.stack) > 0 {
				open := p.stack[0].open
				p.stack = nil
				return nil, &UnbalancedParenthesesError{Pos: open, Message: "unterminated open paren"}
			}
			return nil, io.EOF
		}
		if err != nil {
			return nil, err
		}

		if p.skipping && !p.skip(tok) {
			continue
		}

		switch tok.Kind {
		case TokenOpen:
			p.stack = append(p.stack, frame{open: tok.Pos})

		case TokenAtom:
			if len(p.stack) == 0 {
				return nil, &SyntaxError{Pos: tok.Pos, Message: "atom " + quote(tok.Literal) + " outside parentheses"}
			}
			top := &p.stack[len(p.stack)-1]
			top.items = append(top.items, entry{atom: tok.Literal, pos: tok.Pos})

		case TokenClose:
			if len(p.stack) == 0 {
				return nil, &UnbalancedParenthesesError{Pos: tok.Pos, Message: "unexpected close paren"}
			}
			f := p.stack[len(p.stack)-1]
			p.stack = p.stack[:len(p.stack)-1]

			node, err := p.reduce(f, tok.Pos)
			if err != nil {
				p.fail()
				return nil, err
			}
			if len(p.stack) == 0 {
				return node, nil
			}
			top := &p.stack[len(p.stack)-1]
			top.items = append(top.items, entry{node: node, pos: f.open})
		}
	}
}

// reduce turns a completed bracket group into a node. Exactly two atoms
// fuse into a terminal (tag first, then word, per the bracketing
// convention). Otherwise the leading atom decodes as the label and the
// remaining child nodes become the children; a group with no atom at all
// is the labelless wrapper and must contain exactly one child.
func (p *Parser) reduce(f frame, closePos Position) (*Node, error) {
	src := SourceSpan{Start: f.open, End: p.lex.Position()}

	if len(f.items) == 2 && f.items[0].node == nil && f.items[1].node == nil {
		t := NewTerminal(f.items[0].atom, f.items[1].atom)
		t.Src = src
		return t, nil
	}

	if len(f.items) == 0 {
		return nil, &SyntaxError{Pos: f.open, Message: "empty group"}
	}

	if f.items[0].node != nil {
		// Labelless group: every item must already be a node, and the
		// wrapper convention allows only a single child.
		for _, it := range f.items {
			if it.node == nil {
				return nil, &SyntaxError{Pos: it.pos, Message: "unexpected atom " + quote(it.atom) + " after child nodes"}
			}
		}
		if len(f.items) != 1 {
			return nil, &SyntaxError{Pos: f.open, Message: "labelless group must have exactly one child"}
		}
		w := &Node{Kind: KindWrapper, Children: []*Node{f.items[0].node}, Src: src}
		return w, nil
	}

	sym, err := ParseSymbol(f.items[0].atom)
	if err != nil {
		if malformed, ok := err.(*MalformedLabelError); ok {
			malformed.Pos = f.items[0].pos
		}
		return nil, err
	}

	children := make([]*Node, 0, len(f.items)-1)
	for _, it := range f.items[1:] {
		if it.node == nil {
			return nil, &SyntaxError{Pos: it.pos, Message: "unexpected atom " + quote(it.atom) + " among child nodes"}
		}
		children = append(children, it.node)
	}
	if len(children) == 0 {
		return nil, &SyntaxError{Pos: f.open, Message: "group " + quote(f.items[0].atom) + " has no children"}
	}

	n := NewNonTerminal(sym, children)
	n.Src = src
	return n, nil
}

// fail discards the current tree and arms resynchronization: tokens are
// skipped until the paren depth of the abandoned tree returns to zero.
func (p *Parser) fail() {
	p.skipDepth = len(p.stack)
	p.stack = nil
	p.skipping = p.skipDepth > 0
}

// skip consumes one token while resynchronizing. It reports whether tok
// should be processed normally (resynchronization finished before tok).
func (p *Parser) skip(tok Token) bool {
	switch tok.Kind {
	case TokenOpen:
		if p.skipDepth == 0 {
			p.skipping = false
			return true
		}
		p.skipDepth++
	case TokenClose:
		if p.skipDepth > 0 {
			p.skipDepth--
		}
		if p.skipDepth == 0 {
			p.skipping = false
		}
	}
	return false
}

func quote(s string) string {
	return "'" + s + "'"
}

// Parse reads every tree from r. It stops at the first parse error,
// returning the trees read so far together with the error.
func Parse(r io.Reader, opts ...Option) ([]*Node, error) {
	p := NewParser(r, opts...)
	var trees []*Node
	for {
		tree, err := p.Next()
		if err == io.EOF {
			return trees, nil
		}
		if err != nil {
			return trees, err
		}
		trees = append(trees, tree)
	}
}
