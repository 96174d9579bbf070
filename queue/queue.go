// Package queue provides a priority queue that keeps its elements in fully
// sorted order rather than heap order.
//
// Keeping the complete sort order trades insertion cost (O(n) per insert, due
// to shifting) for O(1) access to any rank and a browsable, rank-ordered
// iteration view. Use a binary heap instead when you only ever need the top
// element and insertion throughput matters more than random access.
//
// The core implementation performs no locking; wrap a queue with
// NewThreadSafeQueue when it must be shared between goroutines.
package queue

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"slices"
	"sort"

	"github.com/amp-labs/amp-queue/ordering"
)

// ErrIndexOutOfRange is returned by rank-based operations (At, RemoveAt) when
// the requested index is negative or not less than the queue's size.
var ErrIndexOutOfRange = errors.New("index out of range")

// ErrIncompatibleQueues is returned by Swap when the two queues are not
// backed by the same implementation and their state cannot be exchanged.
var ErrIncompatibleQueues = errors.New("incompatible queue implementations")

// Queue is a priority queue whose elements are kept in fully sorted order
// under the queue's ordering predicate. Rank 0 is the highest-priority
// element: the one that sorts first. Every operation leaves the sorted
// invariant intact.
type Queue[T any] interface {
	// Insert adds a single element at its lower-bound position: the first
	// rank at which no existing element sorts before it. Elements equal to
	// existing ones are placed before the existing equals at that boundary.
	Insert(value T)

	// InsertAll adds the given elements one at a time, in argument order.
	// The sorted invariant holds after each individual insertion.
	InsertAll(values ...T)

	// PopTop removes and returns the highest-priority element (rank 0).
	// Returns the zero value and false when the queue is empty; an empty
	// queue is not an error.
	PopTop() (T, bool)

	// RemoveAt removes the element at the given zero-based rank. Returns
	// ErrIndexOutOfRange when the rank does not exist; the queue is left
	// unchanged in that case.
	RemoveAt(index int) error

	// At returns the element at the given zero-based rank. Returns
	// ErrIndexOutOfRange when the rank does not exist. All indexed access
	// through this queue is bounds-checked.
	At(index int) (T, error)

	// Top returns the highest-priority element without removing it.
	// Returns the zero value and false when the queue is empty.
	Top() (T, bool)

	// Search locates the first element equivalent to value, meaning neither
	// orders before the other. It returns the element's rank and true when
	// found, or the rank at which value would be inserted and false when not.
	Search(value T) (int, bool)

	// Size returns the number of elements currently in the queue.
	Size() int

	// IsEmpty returns true when the queue holds no elements.
	IsEmpty() bool

	// Entries returns a copy of the elements in rank order. Modifying the
	// returned slice does not affect the queue.
	Entries() []T

	// Seq returns an iterator for ranging over the elements in rank order.
	// The iterator yields (rank, element) pairs and is a live view of the
	// queue: inserting or removing elements while an iteration is in
	// progress invalidates the traversal.
	//
	// This method is compatible with Go 1.23+ range-over-func syntax:
	//
	//	for rank, elem := range q.Seq() {
	//	    // process rank and element
	//	}
	Seq() iter.Seq2[int, T]

	// Clear removes all elements, leaving the queue empty and usable.
	Clear()

	// Clone returns an independent copy of the queue with the same elements
	// and ordering. The copy shares no storage with the original.
	Clone() Queue[T]

	// Move transfers the queue's entire state into a new queue, leaving the
	// receiver valid and empty. The new queue uses the same ordering.
	Move() Queue[T]
}

// New creates an empty Queue ordered by the given predicate.
//
// Example:
//
//	q := queue.New(ordering.Reverse(ordering.Natural[int]()))
//	q.InsertAll(10, 5, 20)
//	top, _ := q.Top() // 20
func New[T any](less ordering.Less[T]) Queue[T] {
	return &sortedQueue[T]{
		less: less,
	}
}

// NewOrdered creates an empty Queue for any naturally ordered element type,
// using ascending order. The smallest element has the highest priority.
func NewOrdered[T cmp.Ordered]() Queue[T] {
	return New(ordering.Natural[T]())
}

// NewSortable creates an empty Queue for element types that implement
// ordering.Sortable, deriving the ordering from the type's own LessThan.
func NewSortable[T ordering.Sortable[T]]() Queue[T] {
	return New(ordering.BySortable[T]())
}

// sortedQueue is the core Queue implementation: a slice kept in ascending
// order under less at all times.
type sortedQueue[T any] struct {
	elements []T
	less     ordering.Less[T]
}

var _ Queue[int] = (*sortedQueue[int])(nil)

// lowerBound returns the first index at which no existing element sorts
// before value. This is both the insertion point for Insert and the start of
// the run of elements equivalent to value.
func (q *sortedQueue[T]) lowerBound(value T) int {
	return sort.Search(len(q.elements), func(i int) bool {
		return !q.less(q.elements[i], value)
	})
}

// Insert adds value at its lower-bound position, shifting later elements
// back by one rank. O(log n) to find the position, O(n) to shift.
func (q *sortedQueue[T]) Insert(value T) {
	q.elements = slices.Insert(q.elements, q.lowerBound(value), value)
}

// InsertAll adds the given elements by repeated single insertion, in
// argument order.
func (q *sortedQueue[T]) InsertAll(values ...T) {
	for _, value := range values {
		q.Insert(value)
	}
}

// PopTop removes and returns the element at rank 0.
// Returns the zero value and false when the queue is empty.
func (q *sortedQueue[T]) PopTop() (T, bool) {
	if len(q.elements) == 0 {
		var zero T

		return zero, false
	}

	top := q.elements[0]
	q.elements = slices.Delete(q.elements, 0, 1)

	return top, true
}

// RemoveAt removes the element at the given rank, shifting later elements
// forward by one rank. Returns ErrIndexOutOfRange for ranks that do not
// exist; the queue is unchanged in that case.
func (q *sortedQueue[T]) RemoveAt(index int) error {
	if index < 0 || index >= len(q.elements) {
		return fmt.Errorf("%w: index %d with size %d", ErrIndexOutOfRange, index, len(q.elements))
	}

	q.elements = slices.Delete(q.elements, index, index+1)

	return nil
}

// At returns the element at the given rank.
// Returns ErrIndexOutOfRange for ranks that do not exist.
func (q *sortedQueue[T]) At(index int) (T, error) {
	if index < 0 || index >= len(q.elements) {
		var zero T

		return zero, fmt.Errorf("%w: index %d with size %d", ErrIndexOutOfRange, index, len(q.elements))
	}

	return q.elements[index], nil
}

// Top returns the element at rank 0 without removing it.
// Returns the zero value and false when the queue is empty.
func (q *sortedQueue[T]) Top() (T, bool) {
	if len(q.elements) == 0 {
		var zero T

		return zero, false
	}

	return q.elements[0], true
}

// Search binary-searches for the first element equivalent to value.
func (q *sortedQueue[T]) Search(value T) (int, bool) {
	i := q.lowerBound(value)
	if i < len(q.elements) && !q.less(value, q.elements[i]) {
		return i, true
	}

	return i, false
}

// Size returns the number of elements in the queue.
func (q *sortedQueue[T]) Size() int {
	return len(q.elements)
}

// IsEmpty returns true when the queue holds no elements.
func (q *sortedQueue[T]) IsEmpty() bool {
	return len(q.elements) == 0
}

// Entries returns a copy of the elements in rank order.
func (q *sortedQueue[T]) Entries() []T {
	return slices.Clone(q.elements)
}

// Seq returns a live iterator over the elements in rank order.
func (q *sortedQueue[T]) Seq() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, element := range q.elements {
			if !yield(i, element) {
				return
			}
		}
	}
}

// Clear removes all elements, leaving the queue empty and usable.
func (q *sortedQueue[T]) Clear() {
	clear(q.elements)
	q.elements = q.elements[:0]
}

// Clone returns an independent copy of the queue.
func (q *sortedQueue[T]) Clone() Queue[T] {
	if q == nil {
		return nil
	}

	return &sortedQueue[T]{
		elements: slices.Clone(q.elements),
		less:     q.less,
	}
}

// Move transfers the queue's state into a new queue via a state exchange
// with a fresh empty instance, leaving the receiver valid and empty.
func (q *sortedQueue[T]) Move() Queue[T] {
	fresh := &sortedQueue[T]{less: q.less}
	q.exchange(fresh)

	return fresh
}

// exchange swaps the full internal state of two queues in O(1).
// This single mechanism underlies both Move and the package-level Swap.
func (q *sortedQueue[T]) exchange(other *sortedQueue[T]) {
	q.elements, other.elements = other.elements, q.elements
	q.less, other.less = other.less, q.less
}

// swapWith implements the swapper interface for the core implementation.
// When the other queue is a decorator, the exchange is delegated to it so
// that Swap stays symmetric regardless of argument order.
func (q *sortedQueue[T]) swapWith(other Queue[T]) error {
	if peer, ok := other.(*sortedQueue[T]); ok {
		q.exchange(peer)

		return nil
	}

	if peer, ok := other.(*threadSafeQueue[T]); ok {
		return peer.swapWith(q)
	}

	return fmt.Errorf("%w: cannot swap %T with %T", ErrIncompatibleQueues, q, other)
}

// swapper is implemented by queues whose full state can be exchanged in O(1).
type swapper[T any] interface {
	swapWith(other Queue[T]) error
}

// Swap exchanges the entire state of two queues, elements and ordering both,
// in O(1). Swapping the same pair twice restores both queues to their
// original state. Returns ErrIncompatibleQueues when the two queues are not
// backed by the same implementation.
func Swap[T any](a, b Queue[T]) error {
	first, ok := a.(swapper[T])
	if !ok {
		return fmt.Errorf("%w: %T does not support state exchange", ErrIncompatibleQueues, a)
	}

	return first.swapWith(b)
}
