// Package dispatch fans messages out to a fixed set of workers, routing each
// message by the hash of its partition key so equal keys share a worker.
package dispatch

import (
	"context"
	"sync"

	"github.com/cespare/xxhash/v2"
)

type Partitionable interface {
	PartitionKey() string
}

// Dispatcher owns one buffered channel and one worker goroutine per partition.
type Dispatcher[T Partitionable] struct {
	chs  []chan T
	wg   sync.WaitGroup
	once sync.Once
}

// New starts numWorkers workers, each calling handleFn for the messages of
// its partition in arrival order. Workers stop when ctx is done or after
// Close once their channel is drained.
func New[T Partitionable](
	ctx context.Context,
	numWorkers, bufferSize int,
	handleFn func(context.Context, T),
) *Dispatcher[T] {
	if numWorkers <= 0 {
		panic("number of workers should be greater than 0")
	}
	d := &Dispatcher[T]{chs: make([]chan T, numWorkers)}
	for i := range d.chs {
		ch := make(chan T, bufferSize)
		d.wg.Add(1)
		go func(ch chan T) {
			defer d.wg.Done()
			for {
				select {
				case msg, ok := <-ch:
					if !ok {
						return
					}
					handleFn(ctx, msg)
				case <-ctx.Done():
					return
				}
			}
		}(ch)
		d.chs[i] = ch
	}
	return d
}

// ChannelOf returns the input channel of msg's partition.
func (d *Dispatcher[T]) ChannelOf(msg T) chan<- T {
	return d.chs[IndexOf(msg.PartitionKey(), len(d.chs))]
}

// Send delivers msg to its partition or gives up when ctx is done.
func (d *Dispatcher[T]) Send(ctx context.Context, msg T) error {
	select {
	case d.ChannelOf(msg) <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting messages and waits for the workers to finish.
// No Send may be in flight or follow it.
func (d *Dispatcher[T]) Close() {
	d.once.Do(func() {
		for _, ch := range d.chs {
			close(ch)
		}
	})
	d.wg.Wait()
}

// IndexOf maps key onto one of n partitions.
func IndexOf(key string, n int) int {
	switch n {
	case 0:
		panic("number of partitions cannot be 0")
	case 1:
		return 0
	default:
		return int(xxhash.Sum64String(key) % uint64(n))
	}
}
