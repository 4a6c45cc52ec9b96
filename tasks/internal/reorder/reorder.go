// Package reorder restores sequence order to values that arrive out of order.
package reorder

import (
	"context"
	"errors"
	"sort"
)

var (
	ErrClosedBuffer = errors.New("buffer is closed")
	ErrOverflow     = errors.New("too many values pending")
)

// SeqFunc returns the sequence number of a value.
type SeqFunc[T any] func(T) int

// Buffer holds values until every earlier sequence number has been released.
//
// Values are released on Source strictly by sequence number starting from the
// first one given to New. At most maxPending values wait for a gap to fill.
// Insert and Close must be called from one goroutine.
type Buffer[T any] struct {
	pending    []T
	next       int
	maxPending int
	seq        SeqFunc[T]

	sink   chan T
	closed bool
}

func New[T any](first, maxPending int, seq SeqFunc[T]) *Buffer[T] {
	if maxPending <= 0 {
		maxPending = 1
	}
	return &Buffer[T]{
		pending:    make([]T, 0, maxPending),
		next:       first,
		maxPending: maxPending,
		seq:        seq,
		sink:       make(chan T, maxPending),
	}
}

// Insert queues val and releases the contiguous run that is now complete.
func (b *Buffer[T]) Insert(ctx context.Context, val T) error {
	if b.closed {
		return ErrClosedBuffer
	}

	s := b.seq(val)
	idx := sort.Search(len(b.pending), func(i int) bool {
		return s < b.seq(b.pending[i])
	})
	b.pending = append(b.pending, val)
	copy(b.pending[idx+1:], b.pending[idx:])
	b.pending[idx] = val

	for len(b.pending) > 0 && b.seq(b.pending[0]) == b.next {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case b.sink <- b.pending[0]:
		}
		var zero T
		b.pending[0] = zero
		b.pending = b.pending[1:]
		b.next++
	}

	if len(b.pending) > b.maxPending {
		return ErrOverflow
	}
	return nil
}

// Len reports how many values wait for an earlier one.
func (b *Buffer[T]) Len() int { return len(b.pending) }

// Source yields released values; it is closed by Close.
func (b *Buffer[T]) Source() <-chan T {
	return b.sink
}

// Close flushes whatever is still pending in sequence order, gaps included,
// and closes Source. Repeated calls are ignored.
func (b *Buffer[T]) Close(ctx context.Context) {
	if b.closed {
		return
	}
	b.closed = true
	defer close(b.sink)

	for _, v := range b.pending {
		select {
		case <-ctx.Done():
			return
		case b.sink <- v:
		}
	}
	b.pending = nil
}
