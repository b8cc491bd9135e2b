// Package format renders parsed treebank trees as bracketed text or
// JSON.
package format

import "github.com/dhamidi/treebank/ptb"

// Encoder writes a tree to some output representation.
type Encoder interface {
	Encode(tree *ptb.Node) error
}
