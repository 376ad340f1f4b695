package sortable

import "golang.org/x/text/cases"

// FoldedString is a case-insensitive string key. Two values are the same key when
// their Unicode case foldings match, so "Zurich", "ZURICH" and "zurich" collide.
// Ordering is the byte order of the folded forms.
//
// A map keeps the spelling of the first key inserted; later puts with another
// spelling only replace the value.
type FoldedString string

// Compile-time check that FoldedString implements Sortable[FoldedString].
var _ Sortable[FoldedString] = (*FoldedString)(nil)

// Fold returns the case-folded form used for comparisons.
func (s FoldedString) Fold() string {
	// Casers carry state, so each call gets its own.
	return cases.Fold().String(string(s))
}

// Equals returns true if both strings fold to the same value.
func (s FoldedString) Equals(other FoldedString) bool {
	return s.Fold() == other.Fold()
}

// LessThan returns true if the folded form of s sorts before the folded form of other.
func (s FoldedString) LessThan(other FoldedString) bool {
	return s.Fold() < other.Fold()
}
