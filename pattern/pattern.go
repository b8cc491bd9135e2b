// Package pattern extracts rewrite patterns from parsed treebank trees:
// the top-level production of a tree, with optional cleanup of function
// tags, quotes and leading conjunctions.
package pattern

import (
	"errors"
	"regexp"
	"strings"

	"github.com/dhamidi/treebank/ptb"
)

// ErrNoProduction is returned for trees whose root is a bare terminal;
// a production needs an internal node with children.
var ErrNoProduction = errors.New("tree has no top-level production")

// Options control how labels are cleaned up before reporting.
type Options struct {
	// SimplifyTags collapses labels like NP-SBJ-1 to their bare
	// category. When false, only a trailing coindex is removed.
	SimplifyTags bool
	// RemoveQuotes drops children tagged as quote marks.
	RemoveQuotes bool
	// RemoveInitialCC drops a leading coordinating conjunction, unless
	// it is immediately followed by punctuation.
	RemoveInitialCC bool
}

// Production is one rewrite pattern: a parent label and the labels of
// its direct children.
type Production struct {
	Parent   string
	Children []string
}

func (p Production) String() string {
	return p.Parent + " => " + strings.Join(p.Children, " ")
}

// Extract returns the top-level production of the tree. For terminal
// children the POS tag stands in as the label.
func Extract(tree *ptb.Node, opts Options) (Production, error) {
	root := tree.Unwrap()
	if root.Kind != ptb.KindNonTerminal {
		return Production{}, ErrNoProduction
	}

	var children []string
	for _, child := range root.Children {
		children = append(children, child.Unwrap().Label())
	}

	if opts.RemoveQuotes {
		var kept []string
		for _, label := range children {
			if label != "``" && label != "''" {
				kept = append(kept, label)
			}
		}
		children = kept
	}

	if opts.RemoveInitialCC && len(children) > 1 &&
		children[0] == "CC" && children[1] != "," && children[1] != ":" {
		children = children[1:]
	}

	clean := RemoveCoindex
	if opts.SimplifyTags {
		clean = SimplifyTag
	}

	out := make([]string, len(children))
	for i, label := range children {
		out[i] = clean(label)
	}
	return Production{Parent: clean(root.Label()), Children: out}, nil
}

var (
	coindexPat     = regexp.MustCompile(`-[0-9]+$`)
	simpleLabelPat = regexp.MustCompile(`^([A-Z]+)(-[A-Z]{3})*(-[0-9]+)?$`)
)

// RemoveCoindex strips a trailing coindex from a raw label string.
func RemoveCoindex(label string) string {
	return coindexPat.ReplaceAllString(label, "")
}

// SimplifyTag reduces a raw label of the shape CAT(-FNC)*(-N)? to its
// bare category. Labels of any other shape are returned unchanged.
func SimplifyTag(label string) string {
	if m := simpleLabelPat.FindStringSubmatch(label); m != nil {
		return m[1]
	}
	return label
}
