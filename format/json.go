package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/treebank/ptb"
)

// TreeJSONEncoder writes a tree as nested JSON, one object per node.
type TreeJSONEncoder struct {
	w io.Writer
}

func NewTreeJSONEncoder(w io.Writer) *TreeJSONEncoder {
	return &TreeJSONEncoder{w: w}
}

func (e *TreeJSONEncoder) Encode(tree *ptb.Node) error {
	text, err := json.MarshalIndent(nodeToJSON(tree), "", "  ")
	if err != nil {
		return err
	}
	text = append(text, '\n')
	_, err = e.w.Write(text)
	return err
}

type treeJSONNode struct {
	Kind     string          `json:"kind"`
	Label    string          `json:"label,omitempty"`
	Tags     []string        `json:"tags,omitempty"`
	Coindex  string          `json:"coindex,omitempty"`
	Parindex string          `json:"parindex,omitempty"`
	Tag      string          `json:"tag,omitempty"`
	Word     string          `json:"word,omitempty"`
	Children []*treeJSONNode `json:"children,omitempty"`
}

func nodeToJSON(n *ptb.Node) *treeJSONNode {
	// Wrappers are transparent here too.
	n = n.Unwrap()

	jn := &treeJSONNode{Kind: n.Kind.String()}

	switch n.Kind {
	case ptb.KindTerminal:
		jn.Tag = n.Tag
		jn.Word = n.Word
	case ptb.KindNonTerminal:
		jn.Label = n.Symbol.Label
		jn.Tags = n.Symbol.Tags
		jn.Coindex = n.Symbol.Coindex
		jn.Parindex = n.Symbol.Parindex
	}

	if len(n.Children) > 0 {
		jn.Children = make([]*treeJSONNode, len(n.Children))
		for i, child := range n.Children {
			jn.Children[i] = nodeToJSON(child)
		}
	}
	return jn
}

// SpanJSONEncoder writes span listings as a JSON array.
type SpanJSONEncoder struct {
	w io.Writer
}

func NewSpanJSONEncoder(w io.Writer) *SpanJSONEncoder {
	return &SpanJSONEncoder{w: w}
}

type spanJSON struct {
	Label string `json:"label"`
	Begin int    `json:"begin"`
	End   int    `json:"end"`
}

func (e *SpanJSONEncoder) Encode(spans []ptb.Span) error {
	out := make([]spanJSON, len(spans))
	for i, s := range spans {
		out[i] = spanJSON{Label: s.Label, Begin: s.Begin, End: s.End}
	}
	text, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	text = append(text, '\n')
	_, err = e.w.Write(text)
	return err
}
