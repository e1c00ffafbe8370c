// Package tslist provides a generic doubly linked list that is safe for
// concurrent use by multiple goroutines without external synchronization.
//
// Every operation holds one list-wide mutex for its full duration, so the
// operations on a single List are linearizable: each sees the effects of
// every operation ordered before it and none of those ordered after. No
// fairness is promised between goroutines contending for the lock, and lock
// acquisition cannot be cancelled or timed out.
package tslist

import (
	"errors"
	"sync"

	"github.com/LiliyaMakhmutova/ThreadSafeList2D/internal/chain"
)

var (
	// ErrAccessViolation is returned by Front and Back when the list is
	// empty.
	ErrAccessViolation = errors.New("access violation")

	// ErrElementNotFound is returned by Remove when no element of the list
	// compares equal to the requested value.
	ErrElementNotFound = errors.New("element is not found")
)

// List is a doubly linked list of values of type T. The zero value is an
// empty list ready to use.
//
// List's methods may be called concurrently, on the error paths included: a
// failed Front, Back, or Remove releases the lock before the caller sees the
// error and never corrupts the list. A List must not be copied after first
// use; share one by pointer instead.
type List[T comparable] struct {
	m     sync.Mutex
	nodes chain.Chain[T]
}

// New returns an empty list.
func New[T comparable]() *List[T] {
	return &List[T]{}
}

// Front returns a copy of the first value in the list. It returns
// ErrAccessViolation if the list is empty.
func (l *List[T]) Front() (T, error) {
	l.m.Lock()
	defer l.m.Unlock()
	h := l.nodes.Front()
	if h == chain.None {
		var zero T
		return zero, ErrAccessViolation
	}
	return l.nodes.Value(h), nil
}

// Back returns a copy of the last value in the list. It returns
// ErrAccessViolation if the list is empty.
func (l *List[T]) Back() (T, error) {
	l.m.Lock()
	defer l.m.Unlock()
	h := l.nodes.Back()
	if h == chain.None {
		var zero T
		return zero, ErrAccessViolation
	}
	return l.nodes.Value(h), nil
}

// Len returns the number of values in the list. The count is cached, not
// recomputed, so Len is O(1).
func (l *List[T]) Len() int {
	l.m.Lock()
	defer l.m.Unlock()
	return l.nodes.Len()
}

// Empty reports whether the list has no values.
func (l *List[T]) Empty() bool {
	l.m.Lock()
	defer l.m.Unlock()
	return l.nodes.Len() == 0
}

// PushFront inserts value at the front of the list. O(1).
func (l *List[T]) PushFront(value T) {
	l.m.Lock()
	defer l.m.Unlock()
	l.nodes.PushFront(value)
}

// PushBack inserts value at the back of the list. O(1).
func (l *List[T]) PushBack(value T) {
	l.m.Lock()
	defer l.m.Unlock()
	l.nodes.PushBack(value)
}

// Remove unlinks the first value equal to value, scanning from the front
// toward the back. If no value compares equal it returns ErrElementNotFound
// and leaves the list unchanged. O(n).
func (l *List[T]) Remove(value T) error {
	l.m.Lock()
	defer l.m.Unlock()
	h, ok := l.findLocked(value)
	if !ok {
		return ErrElementNotFound
	}
	l.nodes.Remove(h)
	return nil
}

// Clear removes every value from the list. The emptied list is immediately
// reusable.
func (l *List[T]) Clear() {
	l.m.Lock()
	defer l.m.Unlock()
	l.nodes.Clear()
}

// findLocked returns the handle of the first node equal to value, scanning
// forward from the head. The caller must hold l.m; findLocked never acquires
// it (the lock is not re-entrant).
func (l *List[T]) findLocked(value T) (chain.Handle, bool) {
	for h := l.nodes.Front(); h != chain.None; h = l.nodes.Next(h) {
		if l.nodes.Value(h) == value {
			return h, true
		}
	}
	return chain.None, false
}

// snapshot returns the values in front-to-back order. Test instrumentation,
// not part of the public API.
func (l *List[T]) snapshot() []T {
	l.m.Lock()
	defer l.m.Unlock()
	out := make([]T, 0, l.nodes.Len())
	for h := l.nodes.Front(); h != chain.None; h = l.nodes.Next(h) {
		out = append(out, l.nodes.Value(h))
	}
	return out
}

// snapshotReverse returns the values in back-to-front order. It follows prev
// links from the tail, so it exercises the back-references that snapshot
// does not.
func (l *List[T]) snapshotReverse() []T {
	l.m.Lock()
	defer l.m.Unlock()
	out := make([]T, 0, l.nodes.Len())
	for h := l.nodes.Back(); h != chain.None; h = l.nodes.Prev(h) {
		out = append(out, l.nodes.Value(h))
	}
	return out
}
