package sortable

// Int is a sortable wrapper type for the built-in int type.
//
// To convert back to a regular int, use a type conversion:
//
//	var s sortable.Int = 42
//	regularInt := int(s)
type Int int

// Int64 is a sortable wrapper type for the built-in int64 type.
type Int64 int64

// Uint64 is a sortable wrapper type for the built-in uint64 type.
type Uint64 uint64

// Byte is a sortable wrapper type for the built-in byte type.
type Byte byte

// String is a sortable wrapper type for the built-in string type, ordered bytewise.
// See NaturalString and FoldedString for other string orderings.
type String string

// Compile-time checks that the built-in wrappers implement Sortable.
var (
	_ Sortable[Int]    = (*Int)(nil)
	_ Sortable[Int64]  = (*Int64)(nil)
	_ Sortable[Uint64] = (*Uint64)(nil)
	_ Sortable[Byte]   = (*Byte)(nil)
	_ Sortable[String] = (*String)(nil)
)

func (i Int) Equals(other Int) bool   { return i == other }
func (i Int) LessThan(other Int) bool { return i < other }

func (i Int64) Equals(other Int64) bool   { return i == other }
func (i Int64) LessThan(other Int64) bool { return i < other }

func (u Uint64) Equals(other Uint64) bool   { return u == other }
func (u Uint64) LessThan(other Uint64) bool { return u < other }

func (b Byte) Equals(other Byte) bool   { return b == other }
func (b Byte) LessThan(other Byte) bool { return b < other }

func (s String) Equals(other String) bool   { return s == other }
func (s String) LessThan(other String) bool { return s < other }
