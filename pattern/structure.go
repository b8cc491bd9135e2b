package pattern

import (
	"strings"

	"github.com/dhamidi/treebank/ptb"
)

// Structure reports the top-level structure of a tree in the form
// "LABEL => constituent ...": terminal children render as word/TAG,
// internal children as their label with any trailing coindex removed.
func Structure(tree *ptb.Node) (string, error) {
	return describe(tree, func(child *ptb.Node) string {
		if child.Kind == ptb.KindTerminal {
			return child.Word + "/" + child.Tag
		}
		return RemoveCoindex(child.Label())
	})
}

// Annotated is Structure with speech-report marking: an internal child
// whose head verb is a report verb renders as LABEL/verb.
func Annotated(tree *ptb.Node) (string, error) {
	return describe(tree, func(child *ptb.Node) string {
		if child.Kind == ptb.KindTerminal {
			return child.Word + "/" + child.Tag
		}
		label := RemoveCoindex(child.Label())
		if verb := HeadVerb(child); IsReportVerb(verb) {
			return label + "/" + verb
		}
		return label
	})
}

func describe(tree *ptb.Node, constituent func(*ptb.Node) string) (string, error) {
	root := tree.Unwrap()
	if root.Kind != ptb.KindNonTerminal {
		return "", ErrNoProduction
	}
	parts := make([]string, len(root.Children))
	for i, child := range root.Children {
		parts[i] = constituent(child.Unwrap())
	}
	return root.Label() + " => " + strings.Join(parts, " "), nil
}

// HeadVerb finds the word of the rightmost verb-headed constituent under
// n, descending only through children whose label starts with V. Returns
// "" when there is none.
func HeadVerb(n *ptb.Node) string {
	if n.Kind == ptb.KindTerminal {
		if strings.HasPrefix(n.Tag, "V") {
			return n.Word
		}
		return ""
	}

	verb := ""
	found := false
	for _, child := range n.Children {
		child = child.Unwrap()
		if strings.HasPrefix(child.Label(), "V") {
			verb = HeadVerb(child)
			found = true
		}
	}
	if found {
		return verb
	}
	return ""
}

var reportVerbs = map[string]bool{
	"say":       true,
	"says":      true,
	"said":      true,
	"announce":  true,
	"announces": true,
	"announced": true,
}

// IsReportVerb reports whether the word is a speech-report verb.
func IsReportVerb(word string) bool {
	return reportVerbs[word]
}
