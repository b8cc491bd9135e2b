package ptb

import (
	"strings"
	"testing"
)

func TestSentence(t *testing.T) {
	tree := parseOne(t, "(S (NP-SBJ (-NONE- *)) (VP (VBZ barks) (ADVP (RB loudly))))")
	sent := NewSentence(tree)

	if got := sent.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
	if got := strings.Join(sent.Words(), " "); got != "barks loudly" {
		t.Errorf("Words() = %q, want %q", got, "barks loudly")
	}
	if got := strings.Join(sent.Tags(), " "); got != "VBZ RB" {
		t.Errorf("Tags() = %q, want %q", got, "VBZ RB")
	}

	all := sent.Terminals(true)
	if len(all) != 3 || !all[0].IsEmptyElement() {
		t.Errorf("Terminals(true) = %v, want empty element first", all)
	}
	nonEmpty := sent.Terminals(false)
	if len(nonEmpty) != 2 {
		t.Errorf("Terminals(false): %d leaves, want 2", len(nonEmpty))
	}
}
