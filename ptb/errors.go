package ptb

import (
	"errors"
	"fmt"
)

// ErrEmptyTree is returned by RemoveEmptyElements when every terminal in
// the tree was an empty element and nothing survives. Callers must check
// for it; there is no default tree to fall back to.
var ErrEmptyTree = errors.New("tree is empty after removing empty elements")

// UnbalancedParenthesesError reports a stray close paren or an open paren
// that is never closed. It aborts the current tree; the parser
// resynchronizes at the next top-level open paren.
type UnbalancedParenthesesError struct {
	Pos     Position
	Message string
}

func (e *UnbalancedParenthesesError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// MalformedLabelError reports an atom that cannot be decoded as a node
// label, either because it has no leading label region or because it
// carries a duplicate coindex or gap index.
type MalformedLabelError struct {
	Atom   string
	Pos    Position
	Reason string
}

func (e *MalformedLabelError) Error() string {
	if e.Pos != (Position{}) {
		return fmt.Sprintf("%s: malformed label %q: %s", e.Pos, e.Atom, e.Reason)
	}
	return fmt.Sprintf("malformed label %q: %s", e.Atom, e.Reason)
}

// SyntaxError reports a structurally invalid bracket group that is
// neither an unbalanced-paren nor a label problem: a bare atom outside
// any parens, an empty group, an anonymous group with more than one
// child, or an atom where only child nodes may appear.
type SyntaxError struct {
	Pos     Position
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// ErrorPosition extracts the source position from any of the parse error
// types. The second result is false for errors that carry no position.
func ErrorPosition(err error) (Position, bool) {
	var unbalanced *UnbalancedParenthesesError
	if errors.As(err, &unbalanced) {
		return unbalanced.Pos, true
	}
	var malformed *MalformedLabelError
	if errors.As(err, &malformed) {
		return malformed.Pos, malformed.Pos != Position{}
	}
	var syntax *SyntaxError
	if errors.As(err, &syntax) {
		return syntax.Pos, true
	}
	return Position{}, false
}
