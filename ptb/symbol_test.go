package ptb

import (
	"errors"
	"testing"
)

func TestParseSymbol(t *testing.T) {
	tests := []struct {
		atom     string
		label    string
		tags     []string
		coindex  string
		parindex string
	}{
		{"NP", "NP", nil, "", ""},
		{"NP-SBJ", "NP", []string{"SBJ"}, "", ""},
		{"NP-SBJ-1", "NP", []string{"SBJ"}, "1", ""},
		{"S-TPC-1", "S", []string{"TPC"}, "1", ""},
		{"WHNP-2=3", "WHNP", nil, "2", "3"},
		{"NP-SBJ=2-1", "NP", []string{"SBJ"}, "1", "2"},
		{"PP-LOC-CLR", "PP", []string{"LOC", "CLR"}, "", ""},
		{"NP-SBJ-SBJ", "NP", []string{"SBJ", "SBJ"}, "", ""},
		{"ADVP-TMP-12", "ADVP", []string{"TMP"}, "12", ""},
		// The coindex marker is '-', the gap marker '='; their relative
		// order in the atom does not matter.
		{"NP-1-SBJ", "NP", []string{"SBJ"}, "1", ""},
		// Characters matching none of the patterns vanish silently.
		{"NP2", "NP", nil, "", ""},
		{"NP2-SBJ", "NP", []string{"SBJ"}, "", ""},
		// Non-digit, non-marker punctuation is part of the label run.
		{"PRT|ADVP", "PRT|ADVP", nil, "", ""},
		// A trailing bare '-' matches nothing.
		{"NP-", "NP", nil, "", ""},
		{"NP-SBJ-", "NP", []string{"SBJ"}, "", ""},
		{"NP=", "NP", nil, "", ""},
	}

	for _, tt := range tests {
		sym, err := ParseSymbol(tt.atom)
		if err != nil {
			t.Errorf("ParseSymbol(%q) error: %v", tt.atom, err)
			continue
		}
		if sym.Label != tt.label {
			t.Errorf("ParseSymbol(%q).Label = %q, want %q", tt.atom, sym.Label, tt.label)
		}
		if len(sym.Tags) != len(tt.tags) {
			t.Errorf("ParseSymbol(%q).Tags = %v, want %v", tt.atom, sym.Tags, tt.tags)
		} else {
			for i := range tt.tags {
				if sym.Tags[i] != tt.tags[i] {
					t.Errorf("ParseSymbol(%q).Tags = %v, want %v", tt.atom, sym.Tags, tt.tags)
					break
				}
			}
		}
		if sym.Coindex != tt.coindex {
			t.Errorf("ParseSymbol(%q).Coindex = %q, want %q", tt.atom, sym.Coindex, tt.coindex)
		}
		if sym.Parindex != tt.parindex {
			t.Errorf("ParseSymbol(%q).Parindex = %q, want %q", tt.atom, sym.Parindex, tt.parindex)
		}
	}
}

func TestParseSymbolErrors(t *testing.T) {
	tests := []string{
		"",
		"-NONE-",
		"123",
		"=2",
		"-1",
		"NP-1-2",   // duplicate coindex
		"NP=1=2",   // duplicate gap index
		"NP-1=2-3", // duplicate coindex around a gap index
	}

	for _, atom := range tests {
		_, err := ParseSymbol(atom)
		if err == nil {
			t.Errorf("ParseSymbol(%q): expected error, got none", atom)
			continue
		}
		var malformed *MalformedLabelError
		if !errors.As(err, &malformed) {
			t.Errorf("ParseSymbol(%q): error type %T, want *MalformedLabelError", atom, err)
		}
	}
}

func TestSymbolString(t *testing.T) {
	tests := []struct {
		atom string
		want string
	}{
		{"NP", "NP"},
		{"NP-SBJ-1", "NP-SBJ-1"},
		{"WHNP-2=3", "WHNP=3-2"},
		{"NP-1-SBJ", "NP-SBJ-1"},
		{"PP-LOC-CLR", "PP-LOC-CLR"},
	}

	for _, tt := range tests {
		sym, err := ParseSymbol(tt.atom)
		if err != nil {
			t.Fatalf("ParseSymbol(%q) error: %v", tt.atom, err)
		}
		if got := sym.String(); got != tt.want {
			t.Errorf("ParseSymbol(%q).String() = %q, want %q", tt.atom, got, tt.want)
		}
	}
}

func TestSymbolRoundTrip(t *testing.T) {
	atoms := []string{
		"NP", "NP-SBJ", "NP-SBJ-1", "WHNP-2=3", "S-TPC-1",
		"PP-LOC-CLR-2", "NP-SBJ=2-1", "ADVP-TMP",
	}

	for _, atom := range atoms {
		first, err := ParseSymbol(atom)
		if err != nil {
			t.Fatalf("ParseSymbol(%q) error: %v", atom, err)
		}
		second, err := ParseSymbol(first.String())
		if err != nil {
			t.Fatalf("ParseSymbol(%q) error: %v", first.String(), err)
		}
		if !first.Equal(second) {
			t.Errorf("round trip of %q: %+v != %+v", atom, first, second)
		}
	}
}

func TestSymbolSimplify(t *testing.T) {
	sym, err := ParseSymbol("NP-SBJ-1=2")
	if err != nil {
		t.Fatalf("ParseSymbol error: %v", err)
	}
	sym.Simplify()
	if sym.String() != "NP" {
		t.Errorf("after Simplify: %q, want %q", sym.String(), "NP")
	}
}
