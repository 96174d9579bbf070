package ordering

import "facette.io/natsort"

// Int is a sortable wrapper type for the built-in int type.
// It implements the Sortable[Int] interface, allowing integers to be used
// as elements in sorted collections without supplying a Less function.
//
// To convert back to a regular int, use a type conversion:
//
//	var s ordering.Int = 42
//	regularInt := int(s)
type Int int

// Compile-time check that Int implements Sortable[Int].
var _ Sortable[Int] = (*Int)(nil)

// Equals returns true if this Int has the same value as the other Int.
func (i Int) Equals(other Int) bool {
	return int(i) == int(other)
}

// LessThan returns true if this Int is numerically less than the other Int.
func (i Int) LessThan(other Int) bool {
	return int(i) < int(other)
}

// String is a sortable wrapper type for the built-in string type.
// It implements the Sortable[String] interface using plain lexicographic
// comparison.
type String string

var _ Sortable[String] = (*String)(nil)

// Equals returns true if this String has the same value as the other String.
func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

// LessThan returns true if this String lexicographically precedes the other String.
func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}

// NaturalString is a sortable wrapper type for strings that compares using
// natural sort order, where numbers embedded in strings are treated
// numerically (e.g. "file2" sorts before "file10").
type NaturalString string

var _ Sortable[NaturalString] = (*NaturalString)(nil)

// Equals returns true if this NaturalString has the same value as the other NaturalString.
func (s NaturalString) Equals(other NaturalString) bool {
	return string(s) == string(other)
}

// LessThan returns true if this NaturalString strictly precedes the other
// NaturalString in natural sort order. Equal strings do not precede each
// other.
func (s NaturalString) LessThan(other NaturalString) bool {
	// natsort.Compare returns true for equal strings; guard to keep the
	// ordering strict.
	return s != other && natsort.Compare(string(s), string(other))
}
