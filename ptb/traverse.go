package ptb

// Traverse walks the tree depth-first, left to right, threading a single
// accumulator through the whole walk. pre runs on a node before its
// children, post after them; either may be nil. Every transform and
// query in this package is a pair of hooks over this one walker.
func Traverse[S any](n *Node, pre, post func(*Node, S) S, state S) S {
	if n == nil {
		return state
	}
	if pre != nil {
		state = pre(n, state)
	}
	for _, child := range n.Children {
		state = Traverse(child, pre, post, state)
	}
	if post != nil {
		state = post(n, state)
	}
	return state
}
