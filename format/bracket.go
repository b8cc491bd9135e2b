package format

import (
	"io"
	"strings"

	"github.com/dhamidi/treebank/ptb"
)

// BracketEncoder writes trees in the single-line bracketed convention,
// one tree per line.
type BracketEncoder struct {
	w io.Writer
}

func NewBracketEncoder(w io.Writer) *BracketEncoder {
	return &BracketEncoder{w: w}
}

func (e *BracketEncoder) Encode(tree *ptb.Node) error {
	_, err := io.WriteString(e.w, Bracket(tree)+"\n")
	return err
}

// Bracket renders a tree as bracketed text. A non-terminal renders as
// "(LABEL child child ...)" with its full decorated label, a terminal
// as "(TAG WORD)", and a labelless wrapper as its single child.
func Bracket(tree *ptb.Node) string {
	var b strings.Builder
	writeBracket(&b, tree)
	return b.String()
}

func writeBracket(b *strings.Builder, n *ptb.Node) {
	switch n.Kind {
	case ptb.KindTerminal:
		b.WriteByte('(')
		b.WriteString(n.Tag)
		b.WriteByte(' ')
		b.WriteString(n.Word)
		b.WriteByte(')')
	case ptb.KindWrapper:
		writeBracket(b, n.Unwrap())
	default:
		b.WriteByte('(')
		b.WriteString(n.Symbol.String())
		for _, child := range n.Children {
			b.WriteByte(' ')
			writeBracket(b, child)
		}
		b.WriteByte(')')
	}
}
