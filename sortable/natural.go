package sortable

import "facette.io/natsort"

// NaturalString is a string key ordered the way people read numbered names:
// "file2" sorts before "file10". Strings that natural order considers tied
// (for example "img01" and "img1") fall back to byte order so the ordering stays total.
type NaturalString string

// Compile-time check that NaturalString implements Sortable[NaturalString].
var _ Sortable[NaturalString] = (*NaturalString)(nil)

// Equals returns true if both strings are byte-for-byte identical.
func (s NaturalString) Equals(other NaturalString) bool {
	return string(s) == string(other)
}

// LessThan returns true if s sorts before other in natural order.
func (s NaturalString) LessThan(other NaturalString) bool {
	if s == other {
		return false
	}

	// natsort.Compare answers "a precedes or ties b", so a tie shows up as true both ways.
	before := natsort.Compare(string(s), string(other))
	after := natsort.Compare(string(other), string(s))

	if before != after {
		return before
	}

	return string(s) < string(other)
}
