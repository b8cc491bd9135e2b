package ptb

import (
	"strings"
	"testing"
)

func TestTraverseOrder(t *testing.T) {
	tree := parseOne(t, "(S (NP (DT the) (NN dog)) (VP (VBZ barks)))")

	var order []string
	Traverse(tree,
		func(n *Node, s struct{}) struct{} {
			order = append(order, "pre:"+n.Label())
			return s
		},
		func(n *Node, s struct{}) struct{} {
			order = append(order, "post:"+n.Label())
			return s
		},
		struct{}{})

	want := []string{
		"pre:S",
		"pre:NP", "pre:DT", "post:DT", "pre:NN", "post:NN", "post:NP",
		"pre:VP", "pre:VBZ", "post:VBZ", "post:VP",
		"post:S",
	}
	got := strings.Join(order, " ")
	if got != strings.Join(want, " ") {
		t.Errorf("traversal order:\n%s\nwant:\n%s", got, strings.Join(want, " "))
	}
}

func TestTraverseAccumulator(t *testing.T) {
	tree := parseOne(t, "(S (NP (DT the) (NN dog)) (VP (VBZ barks)))")

	words := Traverse(tree, func(n *Node, acc []string) []string {
		if n.Kind == KindTerminal {
			acc = append(acc, n.Word)
		}
		return acc
	}, nil, nil)

	want := "the dog barks"
	if got := strings.Join(words, " "); got != want {
		t.Errorf("words = %q, want %q", got, want)
	}
}

func TestTraverseNilNode(t *testing.T) {
	got := Traverse(nil, func(n *Node, acc int) int { return acc + 1 }, nil, 7)
	if got != 7 {
		t.Errorf("Traverse(nil) = %d, want 7", got)
	}
}

func TestTraverseNilHooks(t *testing.T) {
	tree := parseOne(t, "(NN dog)")
	got := Traverse(tree, nil, nil, 3)
	if got != 3 {
		t.Errorf("Traverse with nil hooks = %d, want 3", got)
	}
}
