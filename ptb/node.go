package ptb

import "strings"

// EmptyTag marks a terminal as a structurally empty element (a trace,
// dropped subject, or similar phonologically absent material).
const EmptyTag = "-NONE-"

type NodeKind int

const (
	// KindTerminal is a leaf: a part-of-speech tag and a word.
	KindTerminal NodeKind = iota
	// KindNonTerminal is an internal node with a decoded label.
	KindNonTerminal
	// KindWrapper is the labelless outer group some corpora wrap a
	// sentence in, e.g. "( (S ...) )". It has exactly one child and is
	// transparent to every algorithm in this package.
	KindWrapper
)

var nodeKindNames = map[NodeKind]string{
	KindTerminal:    "Terminal",
	KindNonTerminal: "NonTerminal",
	KindWrapper:     "Wrapper",
}

func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Node is a single tree node. A tree owns its subtree exclusively: nodes
// are never shared between trees and carry no parent pointers.
type Node struct {
	Kind     NodeKind
	Symbol   *Symbol // non-terminals only
	Tag      string  // terminals only
	Word     string  // terminals only
	Children []*Node
	Src      SourceSpan
}

// NewTerminal creates a leaf node from a POS tag and a word.
func NewTerminal(tag, word string) *Node {
	return &Node{Kind: KindTerminal, Tag: tag, Word: word}
}

// NewNonTerminal creates an internal node. Children must be non-empty.
func NewNonTerminal(sym *Symbol, children []*Node) *Node {
	return &Node{Kind: KindNonTerminal, Symbol: sym, Children: children}
}

// IsEmptyElement reports whether n is a terminal tagged as an empty
// element.
func (n *Node) IsEmptyElement() bool {
	return n.Kind == KindTerminal && n.Tag == EmptyTag
}

// Unwrap strips labelless wrapper nodes, returning the first node that
// is not a wrapper.
func (n *Node) Unwrap() *Node {
	for n.Kind == KindWrapper {
		n = n.Children[0]
	}
	return n
}

// Label returns the node's decorated label: the re-serialized symbol for
// a non-terminal, the POS tag for a terminal, and "" for a wrapper.
func (n *Node) Label() string {
	switch n.Kind {
	case KindTerminal:
		return n.Tag
	case KindNonTerminal:
		return n.Symbol.String()
	default:
		return ""
	}
}

// FirstChildWithLabel returns the first direct child whose bare label
// matches, or nil.
func (n *Node) FirstChildWithLabel(label string) *Node {
	for _, child := range n.Children {
		switch child.Kind {
		case KindTerminal:
			if child.Tag == label {
				return child
			}
		case KindNonTerminal:
			if child.Symbol.Label == label {
				return child
			}
		}
	}
	return nil
}

func (n *Node) String() string {
	return n.stringIndent(0)
}

func (n *Node) stringIndent(indent int) string {
	prefix := strings.Repeat("  ", indent)

	var result string
	switch n.Kind {
	case KindTerminal:
		result = prefix + n.Tag + " " + n.Word + "\n"
	case KindNonTerminal:
		result = prefix + n.Symbol.String() + "\n"
	default:
		result = prefix + "()\n"
	}

	for _, child := range n.Children {
		result += child.stringIndent(indent + 1)
	}
	return result
}
