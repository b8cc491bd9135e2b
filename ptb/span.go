package ptb

import (
	"fmt"
	"sort"
)

// Span is the half-open range [Begin, End) of terminal positions a node
// dominates, together with the node's decorated label. Begin == End
// marks a zero-width span: an empty element, or a node whose entire
// yield is empty elements.
type Span struct {
	Label string
	Begin int
	End   int
}

// IsEmpty reports whether the span covers no terminals.
func (s Span) IsEmpty() bool {
	return s.Begin == s.End
}

func (s Span) String() string {
	return fmt.Sprintf("('%s', %d, %d)", s.Label, s.Begin, s.End)
}

// spanState threads the running terminal counter through the walk. open
// holds, for every node whose subtree is still being visited, the index
// of its (not yet finished) span in spans.
type spanState struct {
	next  int
	open  []int
	spans []Span
}

// AllSpans computes one span per node, terminal and non-terminal alike.
// Labelless wrappers are transparent and contribute no span. Only
// terminals not tagged -NONE- advance the terminal counter; empty
// terminals yield zero-width spans at the current position.
//
// The result is not in tree order. It is sorted ascending by Begin;
// within one Begin, zero-width spans come first; within the same Begin
// and width class, longer spans come first. Spans are recorded in
// pre-order before the stable sort, so an ancestor always sorts strictly
// before its descendants when they share a Begin - plain post-order
// emission would not give that.
func AllSpans(tree *Node) []Span {
	st := Traverse(tree, openSpan, closeSpan, &spanState{})

	sort.SliceStable(st.spans, func(i, j int) bool {
		a, b := st.spans[i], st.spans[j]
		if a.Begin != b.Begin {
			return a.Begin < b.Begin
		}
		if a.IsEmpty() != b.IsEmpty() {
			return a.IsEmpty()
		}
		return a.End > b.End
	})

	return st.spans
}

func openSpan(n *Node, st *spanState) *spanState {
	if n.Kind == KindWrapper {
		return st
	}
	st.open = append(st.open, len(st.spans))
	st.spans = append(st.spans, Span{Label: n.Label(), Begin: st.next, End: -1})
	return st
}

func closeSpan(n *Node, st *spanState) *spanState {
	if n.Kind == KindWrapper {
		return st
	}
	if n.Kind == KindTerminal && n.Tag != EmptyTag {
		st.next++
	}
	idx := st.open[len(st.open)-1]
	st.open = st.open[:len(st.open)-1]
	st.spans[idx].End = st.next
	return st
}
