package ptb

// Sentence pairs a parsed tree with its ordered terminal leaves, so that
// words and POS tags can be looked up without walking the tree again.
type Sentence struct {
	Tree   *Node
	leaves []*Node
}

// NewSentence collects the terminal leaves of tree in left-to-right
// order.
func NewSentence(tree *Node) *Sentence {
	leaves := Traverse(tree, func(n *Node, acc []*Node) []*Node {
		if n.Kind == KindTerminal {
			acc = append(acc, n)
		}
		return acc
	}, nil, nil)
	return &Sentence{Tree: tree, leaves: leaves}
}

// Terminals returns the leaves in order. Empty elements are included
// only when includeEmpty is set.
func (s *Sentence) Terminals(includeEmpty bool) []*Node {
	if includeEmpty {
		return s.leaves
	}
	var out []*Node
	for _, leaf := range s.leaves {
		if !leaf.IsEmptyElement() {
			out = append(out, leaf)
		}
	}
	return out
}

// Len is the number of words in the sentence, not counting empty
// elements.
func (s *Sentence) Len() int {
	n := 0
	for _, leaf := range s.leaves {
		if !leaf.IsEmptyElement() {
			n++
		}
	}
	return n
}

// Words returns the word of every non-empty terminal, in order.
func (s *Sentence) Words() []string {
	var out []string
	for _, leaf := range s.leaves {
		if !leaf.IsEmptyElement() {
			out = append(out, leaf.Word)
		}
	}
	return out
}

// Tags returns the POS tag of every non-empty terminal, in order.
func (s *Sentence) Tags() []string {
	var out []string
	for _, leaf := range s.leaves {
		if !leaf.IsEmptyElement() {
			out = append(out, leaf.Tag)
		}
	}
	return out
}
