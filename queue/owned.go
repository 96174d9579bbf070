package queue

import (
	"errors"
	"io"
	"iter"

	"go.uber.org/atomic"

	"github.com/amp-labs/amp-queue/ordering"
)

// OwnedQueue is a sorted priority queue that owns the lifetime of its
// elements. Elements must implement io.Closer; any element still inside the
// queue when Close is called is released.
//
// Ownership rules:
//   - PopTop transfers ownership of the returned element to the caller.
//     The queue will not close it.
//   - RemoveAt closes the removed element, since it never leaves the queue's
//     ownership.
//   - Close releases every remaining element and empties the queue.
//
// OwnedQueue implements io.Closer, so it composes with generic
// resource-management helpers and defer statements:
//
//	q := queue.NewOwned[*job](byDeadline)
//	defer should.Close(q, "failed to release pending jobs")
//
// Like the core queue, OwnedQueue performs no locking, with one exception:
// Close is idempotent and safe to call from multiple goroutines.
type OwnedQueue[T io.Closer] struct {
	internal Queue[T]
	closed   *atomic.Bool // Guards Close so elements are released exactly once
}

var _ io.Closer = (*OwnedQueue[io.Closer])(nil)

// NewOwned creates an empty OwnedQueue ordered by the given predicate.
func NewOwned[T io.Closer](less ordering.Less[T]) *OwnedQueue[T] {
	return &OwnedQueue[T]{
		internal: New(less),
		closed:   atomic.NewBool(false),
	}
}

// NewOwnedSortable creates an empty OwnedQueue for element types that
// implement both io.Closer and ordering.Sortable.
func NewOwnedSortable[T interface {
	io.Closer
	ordering.Sortable[T]
}]() *OwnedQueue[T] {
	return &OwnedQueue[T]{
		internal: New[T](func(a, b T) bool {
			return a.LessThan(b)
		}),
		closed: atomic.NewBool(false),
	}
}

// Insert adds a single element; the queue takes ownership of it.
// Panics when the queue has already been closed: a closed queue would never
// release the element, so the insertion is rejected rather than leaking it.
func (q *OwnedQueue[T]) Insert(value T) {
	if q.closed.Load() {
		panic("queue: Insert into a closed OwnedQueue")
	}

	q.internal.Insert(value)
}

// InsertAll adds the given elements one at a time, in argument order; the
// queue takes ownership of all of them.
// Panics when the queue has already been closed, like Insert.
func (q *OwnedQueue[T]) InsertAll(values ...T) {
	if q.closed.Load() {
		panic("queue: InsertAll into a closed OwnedQueue")
	}

	q.internal.InsertAll(values...)
}

// PopTop removes and returns the highest-priority element, transferring
// ownership to the caller. The caller becomes responsible for closing it.
// Returns the zero value and false when the queue is empty.
func (q *OwnedQueue[T]) PopTop() (T, bool) {
	return q.internal.PopTop()
}

// RemoveAt removes and closes the element at the given rank. Returns
// ErrIndexOutOfRange when the rank does not exist (the queue is unchanged),
// or the element's own close error after a successful removal.
func (q *OwnedQueue[T]) RemoveAt(index int) error {
	element, err := q.internal.At(index)
	if err != nil {
		return err
	}

	if err := q.internal.RemoveAt(index); err != nil {
		return err
	}

	return element.Close()
}

// At returns the element at the given rank without transferring ownership.
// Returns ErrIndexOutOfRange when the rank does not exist.
func (q *OwnedQueue[T]) At(index int) (T, error) {
	return q.internal.At(index)
}

// Top returns the highest-priority element without removing it or
// transferring ownership. Returns the zero value and false when empty.
func (q *OwnedQueue[T]) Top() (T, bool) {
	return q.internal.Top()
}

// Search locates the first element equivalent to value. See Queue.Search.
func (q *OwnedQueue[T]) Search(value T) (int, bool) {
	return q.internal.Search(value)
}

// Size returns the number of elements currently owned by the queue.
func (q *OwnedQueue[T]) Size() int {
	return q.internal.Size()
}

// IsEmpty returns true when the queue holds no elements.
func (q *OwnedQueue[T]) IsEmpty() bool {
	return q.internal.IsEmpty()
}

// Entries returns a copy of the element handles in rank order. Ownership is
// not transferred; the queue will still close these elements.
func (q *OwnedQueue[T]) Entries() []T {
	return q.internal.Entries()
}

// Seq returns a live iterator over the elements in rank order. See Queue.Seq.
func (q *OwnedQueue[T]) Seq() iter.Seq2[int, T] {
	return q.internal.Seq()
}

// Clear closes and removes every element, leaving the queue empty and
// usable. Errors from individual Close calls are collected and joined; all
// elements are removed regardless.
func (q *OwnedQueue[T]) Clear() error {
	return q.release()
}

// Close releases every element still owned by the queue and empties it.
// Errors from individual element Close calls are collected and returned as a
// joined error. Close is idempotent: only the first call releases elements,
// subsequent calls return nil. A closed queue rejects further insertions
// (see Insert), so elements cannot slip in after release.
func (q *OwnedQueue[T]) Close() error {
	if !q.closed.CompareAndSwap(false, true) {
		return nil
	}

	return q.release()
}

// release closes all elements currently in the queue and clears it.
func (q *OwnedQueue[T]) release() error {
	var errs []error

	for _, element := range q.internal.Seq() {
		if err := element.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	q.internal.Clear()

	return errors.Join(errs...)
}
