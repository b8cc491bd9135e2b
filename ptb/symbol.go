package ptb

import "strings"

// Symbol is a decoded node label. A raw treebank label such as
// "NP-SBJ-1=2" carries a bare category ("NP"), grammatical-function tags
// ("SBJ"), a coindex ("1") linking the node to a trace or antecedent,
// and a gap index ("2") written with '='.
type Symbol struct {
	Label    string
	Tags     []string
	Coindex  string
	Parindex string
}

// ParseSymbol decodes a label atom. The atom is scanned left to right:
// the leading run of characters containing no digit, '=' or '-' is the
// bare label; each following -RUN of such characters is a tag; =DIGITS
// sets the gap index; -DIGITS sets the coindex. Characters fitting none
// of these patterns are skipped, matching the permissiveness of the
// treebank label grammar. A missing leading label or a second
// coindex/gap index is a MalformedLabelError.
func ParseSymbol(atom string) (*Symbol, error) {
	i := 0
	for i < len(atom) && !isLabelBreak(atom[i]) {
		i++
	}
	if i == 0 {
		return nil, &MalformedLabelError{Atom: atom, Reason: "no leading label"}
	}

	sym := &Symbol{Label: atom[:i]}
	for i < len(atom) {
		switch {
		case atom[i] == '-' && i+1 < len(atom) && isDigit(atom[i+1]):
			j := i + 1
			for j < len(atom) && isDigit(atom[j]) {
				j++
			}
			if sym.Coindex != "" {
				return nil, &MalformedLabelError{Atom: atom, Reason: "duplicate coindex"}
			}
			sym.Coindex = atom[i+1 : j]
			i = j
		case atom[i] == '-' && i+1 < len(atom) && !isLabelBreak(atom[i+1]):
			j := i + 1
			for j < len(atom) && !isLabelBreak(atom[j]) {
				j++
			}
			sym.Tags = append(sym.Tags, atom[i+1:j])
			i = j
		case atom[i] == '=' && i+1 < len(atom) && isDigit(atom[i+1]):
			j := i + 1
			for j < len(atom) && isDigit(atom[j]) {
				j++
			}
			if sym.Parindex != "" {
				return nil, &MalformedLabelError{Atom: atom, Reason: "duplicate gap index"}
			}
			sym.Parindex = atom[i+1 : j]
			i = j
		default:
			i++
		}
	}
	return sym, nil
}

// String re-serializes the symbol in canonical order: label, tags, gap
// index, coindex. Decoding the result yields an equal symbol, though the
// byte string may differ from the original when the original interleaved
// tags and indexes differently.
func (s *Symbol) String() string {
	var b strings.Builder
	b.WriteString(s.Label)
	for _, tag := range s.Tags {
		b.WriteByte('-')
		b.WriteString(tag)
	}
	if s.Parindex != "" {
		b.WriteByte('=')
		b.WriteString(s.Parindex)
	}
	if s.Coindex != "" {
		b.WriteByte('-')
		b.WriteString(s.Coindex)
	}
	return b.String()
}

// Simplify drops tags, coindex and gap index, leaving only the bare label.
func (s *Symbol) Simplify() {
	s.Tags = nil
	s.Coindex = ""
	s.Parindex = ""
}

// Equal reports whether two symbols have the same label, the same tags
// in the same order, and the same indexes.
func (s *Symbol) Equal(o *Symbol) bool {
	if s.Label != o.Label || s.Coindex != o.Coindex || s.Parindex != o.Parindex {
		return false
	}
	if len(s.Tags) != len(o.Tags) {
		return false
	}
	for i := range s.Tags {
		if s.Tags[i] != o.Tags[i] {
			return false
		}
	}
	return true
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// isLabelBreak reports whether ch terminates a label or tag run.
func isLabelBreak(ch byte) bool {
	return isDigit(ch) || ch == '=' || ch == '-'
}
