package queue

import (
	"iter"
	"sync"
)

// NewThreadSafeQueue wraps an existing Queue implementation with thread-safe
// access using sync.RWMutex. It provides concurrent read/write access to the
// underlying queue while preserving the Queue interface.
//
// The wrapper uses read-write locks to allow multiple concurrent readers or
// exclusive writer access. Write operations (Insert, InsertAll, PopTop,
// RemoveAt, Clear) acquire exclusive locks, while read operations (At, Top,
// Search, Size, IsEmpty, Entries, Seq, Clone) use shared read locks for
// better concurrency.
//
// The core queue itself performs no locking; this wrapper is the supported
// way to share one queue between goroutines.
//
// Example usage:
//
//	unsafeQueue := queue.NewOrdered[int]()
//	safeQueue := queue.NewThreadSafeQueue(unsafeQueue)
//	safeQueue.Insert(42) // thread-safe
func NewThreadSafeQueue[T any](q Queue[T]) Queue[T] {
	if q == nil {
		return nil
	}

	tsq, ok := q.(*threadSafeQueue[T])
	if ok {
		// Already thread-safe, return as-is
		return tsq
	}

	return &threadSafeQueue[T]{
		internal: q,
	}
}

// threadSafeQueue is a decorator that wraps any Queue implementation with
// thread-safe access. It uses sync.RWMutex to coordinate concurrent access,
// allowing multiple simultaneous readers or a single exclusive writer.
type threadSafeQueue[T any] struct {
	mutex    sync.RWMutex // Protects access to internal queue
	internal Queue[T]     // Underlying queue implementation
}

// Insert adds a single element with exclusive lock protection.
// Acquires a write lock to ensure no other goroutines can read or write during the operation.
func (t *threadSafeQueue[T]) Insert(value T) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.internal.Insert(value)
}

// InsertAll adds multiple elements with exclusive lock protection.
// Acquires a write lock to ensure no other goroutines can read or write during the operation.
func (t *threadSafeQueue[T]) InsertAll(values ...T) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.internal.InsertAll(values...)
}

// PopTop removes and returns the highest-priority element with exclusive lock protection.
// Acquires a write lock to ensure no other goroutines can read or write during the operation.
func (t *threadSafeQueue[T]) PopTop() (T, bool) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.internal.PopTop()
}

// RemoveAt removes the element at the given rank with exclusive lock protection.
// Acquires a write lock to ensure no other goroutines can read or write during the operation.
func (t *threadSafeQueue[T]) RemoveAt(index int) error {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.internal.RemoveAt(index)
}

// At returns the element at the given rank with shared read lock protection.
// Acquires a read lock, allowing multiple concurrent At calls without blocking each other.
func (t *threadSafeQueue[T]) At(index int) (T, error) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.At(index)
}

// Top returns the highest-priority element with shared read lock protection.
// Acquires a read lock, allowing multiple concurrent Top calls without blocking each other.
func (t *threadSafeQueue[T]) Top() (T, bool) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Top()
}

// Search locates an equivalent element with shared read lock protection.
// Acquires a read lock, allowing multiple concurrent Search calls without blocking each other.
func (t *threadSafeQueue[T]) Search(value T) (int, bool) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Search(value)
}

// Size returns the number of elements with shared read lock protection.
// Acquires a read lock, allowing multiple concurrent Size calls without blocking each other.
func (t *threadSafeQueue[T]) Size() int {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Size()
}

// IsEmpty reports whether the queue is empty with shared read lock protection.
// Acquires a read lock, allowing multiple concurrent IsEmpty calls without blocking each other.
func (t *threadSafeQueue[T]) IsEmpty() bool {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.IsEmpty()
}

// Entries returns all elements in rank order with shared read lock protection.
// Acquires a read lock during the operation to ensure a consistent snapshot.
func (t *threadSafeQueue[T]) Entries() []T {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Entries()
}

// Seq returns an iterator over the queue's elements in rank order with snapshot semantics.
// Acquires a read lock only during the snapshot creation, then releases it before returning.
//
// Implementation note: This creates a complete snapshot of the queue under a read lock,
// then returns an iterator over that snapshot. This design ensures:
//   - The read lock is not held during iteration (preventing long-lived lock holding)
//   - Iteration sees a consistent view of the queue at the time Seq() was called
//   - Multiple goroutines can iterate concurrently without blocking each other
//   - Changes made after Seq() is called are not visible to the iterator
//
// Trade-off: Uses O(n) memory to store the snapshot, but provides better concurrency
// characteristics than the live iteration of the core implementation.
func (t *threadSafeQueue[T]) Seq() iter.Seq2[int, T] {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	// Create snapshot under read lock
	accum := t.internal.Entries()

	// Return iterator over snapshot (no lock held during iteration)
	return func(yield func(int, T) bool) {
		for i, element := range accum {
			if !yield(i, element) {
				return
			}
		}
	}
}

// Clear removes all elements with exclusive lock protection.
// Acquires a write lock to ensure no other goroutines can read or write during the operation.
func (t *threadSafeQueue[T]) Clear() {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.internal.Clear()
}

// Clone returns an independent, thread-safe copy of the queue.
// Acquires a read lock on this queue during the operation. The returned queue is also thread-safe.
func (t *threadSafeQueue[T]) Clone() Queue[T] {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return NewThreadSafeQueue(t.internal.Clone())
}

// Move transfers the queue's state into a new thread-safe queue, leaving this
// queue valid and empty. Acquires a write lock during the transfer. The
// returned queue is also thread-safe.
func (t *threadSafeQueue[T]) Move() Queue[T] {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return NewThreadSafeQueue(t.internal.Move())
}

// swapWith exchanges this queue's state with another queue under this
// queue's write lock. If the other queue is also a thread-safe wrapper, its
// underlying queue is exchanged directly.
//
// Note: The 'other' queue is accessed directly without coordination. If
// 'other' is also being used concurrently, the caller should handle that
// synchronization externally.
func (t *threadSafeQueue[T]) swapWith(other Queue[T]) error {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if peer, ok := other.(*threadSafeQueue[T]); ok {
		other = peer.internal
	}

	return Swap(t.internal, other)
}
