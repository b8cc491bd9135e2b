package pattern

import (
	"errors"
	"strings"
	"testing"

	"github.com/dhamidi/treebank/ptb"
)

func parseOne(t *testing.T, input string) *ptb.Node {
	t.Helper()
	trees, err := ptb.Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", input, err)
	}
	if len(trees) != 1 {
		t.Fatalf("Parse(%q): %d trees, want 1", input, len(trees))
	}
	return trees[0]
}

func TestExtract(t *testing.T) {
	tests := []struct {
		input string
		opts  Options
		want  string
	}{
		{
			"(S (NP-SBJ-1 (PRP it)) (VP (VBZ is)) (. .))",
			Options{},
			"S => NP-SBJ VP .",
		},
		{
			"(S (NP-SBJ-1 (PRP it)) (VP (VBZ is)) (. .))",
			Options{SimplifyTags: true},
			"S => NP VP .",
		},
		{
			"( (S (NP (NN dog)) (VP (VBZ barks))) )",
			Options{},
			"S => NP VP",
		},
		{
			"(S (`` ``) (NP (NN dog)) ('' '') (VP (VBZ barks)))",
			Options{RemoveQuotes: true},
			"S => NP VP",
		},
		{
			"(S (CC But) (NP (NN dog)) (VP (VBZ barks)))",
			Options{RemoveInitialCC: true},
			"S => NP VP",
		},
		// A CC followed by punctuation stays.
		{
			"(S (CC But) (, ,) (NP (NN dog)))",
			Options{RemoveInitialCC: true},
			"S => CC , NP",
		},
	}

	for _, tt := range tests {
		prod, err := Extract(parseOne(t, tt.input), tt.opts)
		if err != nil {
			t.Errorf("Extract(%q) error: %v", tt.input, err)
			continue
		}
		if got := prod.String(); got != tt.want {
			t.Errorf("Extract(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestExtractTerminalTree(t *testing.T) {
	_, err := Extract(parseOne(t, "(NN dog)"), Options{})
	if !errors.Is(err, ErrNoProduction) {
		t.Errorf("error = %v, want ErrNoProduction", err)
	}
}

func TestRemoveCoindex(t *testing.T) {
	tests := []struct{ in, want string }{
		{"NP-SBJ-1", "NP-SBJ"},
		{"NP-SBJ", "NP-SBJ"},
		{"S-TPC-12", "S-TPC"},
		{"-NONE-", "-NONE-"},
	}
	for _, tt := range tests {
		if got := RemoveCoindex(tt.in); got != tt.want {
			t.Errorf("RemoveCoindex(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSimplifyTag(t *testing.T) {
	tests := []struct{ in, want string }{
		{"NP-SBJ-1", "NP"},
		{"NP-SBJ", "NP"},
		{"NP", "NP"},
		{"WHNP-2=3", "WHNP-2=3"}, // gap indexes do not fit the simple shape
		{",", ","},
	}
	for _, tt := range tests {
		if got := SimplifyTag(tt.in); got != tt.want {
			t.Errorf("SimplifyTag(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStructure(t *testing.T) {
	tree := parseOne(t, "( (S (NP-SBJ-1 (NN dog)) (VP (VBZ barks)) (. .)) )")
	got, err := Structure(tree)
	if err != nil {
		t.Fatalf("Structure error: %v", err)
	}
	want := "S => NP-SBJ VP ./."
	if got != want {
		t.Errorf("Structure = %q, want %q", got, want)
	}
}

func TestHeadVerb(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"(VP (VBZ says))", "says"},
		{"(VP (VBD said) (SBAR (S (NP (NN x)))))", "said"},
		// The rightmost verb-headed child wins.
		{"(VP (VBZ has) (VP (VBN said)))", "said"},
		{"(NP (NN dog))", ""},
	}
	for _, tt := range tests {
		if got := HeadVerb(parseOne(t, tt.input)); got != tt.want {
			t.Errorf("HeadVerb(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestAnnotated(t *testing.T) {
	tree := parseOne(t, "(S (NP (NN company)) (VP (VBD said) (SBAR (S (NP (NN x))))) (. .))")
	got, err := Annotated(tree)
	if err != nil {
		t.Fatalf("Annotated error: %v", err)
	}
	want := "S => NP VP/said ./."
	if got != want {
		t.Errorf("Annotated = %q, want %q", got, want)
	}
}
