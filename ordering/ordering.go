// Package ordering provides ordering predicates and sortable wrapper types
// for use with sorted collections.
package ordering

import (
	"cmp"

	"facette.io/natsort"
)

// Less is the functional form of an ordering. It reports whether a should
// sort before b. Sorted collections keep their elements arranged so that for
// every adjacent pair (a, b) in sequence order, Less(b, a) is false.
//
// A Less must describe a strict weak ordering: Less(a, a) is false, and if
// Less(a, b) is true then Less(b, a) is false. Two values where neither
// orders before the other are considered equivalent.
type Less[T any] func(a, b T) bool

// Natural returns the ascending order for any naturally ordered type.
// This is the default ordering for sorted collections: the smallest value
// sorts first.
//
// Example:
//
//	q := queue.New(ordering.Natural[int]())
//	q.InsertAll(10, 5, 20)
//	// Iterating yields: 5, 10, 20
func Natural[T cmp.Ordered]() Less[T] {
	return func(a, b T) bool {
		return a < b
	}
}

// Reverse inverts an ordering, turning ascending into descending and vice
// versa. Passing the result of Natural produces a descending order.
//
// Example:
//
//	q := queue.New(ordering.Reverse(ordering.Natural[int]()))
//	q.InsertAll(10, 5, 20)
//	// Iterating yields: 20, 10, 5
func Reverse[T any](less Less[T]) Less[T] {
	return func(a, b T) bool {
		return less(b, a)
	}
}

// NaturalStrings returns a natural-sort ordering for strings. Natural sort
// treats numbers within strings numerically, so "file2" sorts before
// "file10" even though plain lexicographic order would reverse them.
func NaturalStrings() Less[string] {
	// natsort.Compare returns true for equal strings; guard to keep the
	// ordering strict.
	return func(a, b string) bool {
		return a != b && natsort.Compare(a, b)
	}
}

// Sortable is the interface form of an ordering: a type that knows how to
// compare itself against other values of the same type. Types implementing
// this interface can be stored in sorted collections without supplying a
// separate Less function.
type Sortable[T any] interface {
	// LessThan reports whether this value sorts before other.
	LessThan(other T) bool

	// Equals reports whether this value is equal to other according to the
	// type's own semantics.
	Equals(other T) bool
}

// BySortable derives a Less function from a type's own Sortable
// implementation.
func BySortable[T Sortable[T]]() Less[T] {
	return func(a, b T) bool {
		return a.LessThan(b)
	}
}
