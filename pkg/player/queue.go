// Package player reveals precomputed fractal geometry one primitive at a
// time so a renderer can animate growth on its own clock.
//
// Queues and playbacks are owned by a single consumer. They are not safe for
// concurrent use; draining one from several goroutines is a misuse.
package player

// Queue is an ordered, finite buffer of primitives with a cursor.
type Queue[T any] struct {
	items []T
	next  int
}

// New wraps items. The queue takes ownership of the slice; callers must not
// modify it afterwards.
func New[T any](items []T) *Queue[T] {
	return &Queue[T]{items: items}
}

// Advance removes and returns the head of the queue. Once the queue is
// exhausted it returns the zero value and false, on every later call too.
func (q *Queue[T]) Advance() (T, bool) {
	if q.next >= len(q.items) {
		var zero T
		return zero, false
	}
	item := q.items[q.next]
	q.next++
	return item, true
}

// Done reports whether every item has been returned by Advance.
func (q *Queue[T]) Done() bool { return q.next >= len(q.items) }

// Len returns the total number of items the queue was built with.
func (q *Queue[T]) Len() int { return len(q.items) }

// Remaining returns the number of items not yet returned by Advance.
func (q *Queue[T]) Remaining() int { return len(q.items) - q.next }

// Played returns the items already returned by Advance, in order. Renderers
// that redraw the whole frame every tick draw this prefix. The slice aliases
// the queue's storage and must not be modified.
func (q *Queue[T]) Played() []T { return q.items[:q.next] }
