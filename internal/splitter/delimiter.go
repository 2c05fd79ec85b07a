package splitter

// DelimiterSet is the set of single-character separators active for one input.
type DelimiterSet []rune

// DefaultDelimiters returns a fresh set holding comma and newline.
func DefaultDelimiters() DelimiterSet {
	return DelimiterSet{',', '\n'}
}

// With returns a copy of the set extended by r. The receiver is never modified.
func (d DelimiterSet) With(r rune) DelimiterSet {
	out := make(DelimiterSet, len(d), len(d)+1)
	copy(out, d)
	if out.Contains(r) {
		return out
	}
	return append(out, r)
}

func (d DelimiterSet) Contains(r rune) bool {
	for _, c := range d {
		if c == r {
			return true
		}
	}
	return false
}

func (d DelimiterSet) Strings() []string {
	out := make([]string, len(d))
	for i, r := range d {
		out[i] = string(r)
	}
	return out
}
