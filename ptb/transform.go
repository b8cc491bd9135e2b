package ptb

// Reserved dummy labels recognized by AddRoot.
const (
	DefaultRootLabel = "ROOT"
	TopLabel         = "TOP"
)

// RemoveEmptyElements deletes every terminal tagged -NONE- and, bottom
// up, every internal node whose children have all been deleted. The
// order of surviving siblings is preserved. If nothing survives, the
// result is nil together with ErrEmptyTree.
func RemoveEmptyElements(tree *Node) (*Node, error) {
	if tree == nil {
		return nil, ErrEmptyTree
	}
	Traverse(tree, nil, func(n *Node, s struct{}) struct{} {
		if len(n.Children) == 0 {
			return s
		}
		kept := n.Children[:0]
		for _, child := range n.Children {
			if !removed(child) {
				kept = append(kept, child)
			}
		}
		n.Children = kept
		return s
	}, struct{}{})

	if removed(tree) {
		return nil, ErrEmptyTree
	}
	return tree, nil
}

// removed reports whether a node no longer exists after empty-element
// removal: an empty terminal, or an internal node with no children left.
func removed(n *Node) bool {
	if n.Kind == KindTerminal {
		return n.Tag == EmptyTag
	}
	return len(n.Children) == 0
}

// SimplifyLabels strips tags, coindexes and gap indexes from every
// non-terminal, leaving only bare category labels. Terminal POS tags are
// not decomposed and are left untouched. Applying it twice is the same
// as applying it once.
func SimplifyLabels(tree *Node) *Node {
	Traverse(tree, func(n *Node, s struct{}) struct{} {
		if n.Kind == KindNonTerminal {
			n.Symbol.Simplify()
		}
		return s
	}, nil, struct{}{})
	return tree
}

// AddRoot puts the tree under a dummy root with the given label. A
// labelless wrapper is unwrapped first. If the outermost node is already
// labeled ROOT or TOP, only its label is replaced, so re-rooting is
// idempotent.
func AddRoot(tree *Node, label string) *Node {
	if tree == nil {
		return nil
	}
	t := tree.Unwrap()
	if t.Kind == KindNonTerminal && (t.Symbol.Label == DefaultRootLabel || t.Symbol.Label == TopLabel) {
		t.Symbol.Label = label
		return t
	}
	return NewNonTerminal(&Symbol{Label: label}, []*Node{t})
}
