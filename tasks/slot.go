package tasks

import (
	"context"
	"errors"
	"sync"
)

var ErrClosedSlot = errors.New("slot is closed")

// Slot is the shared current-task record between one producer and one
// consumer. It holds at most one task: Put waits until the previous task was
// taken and Take waits until a task is present, so every task is handed over
// exactly once and in order.
type Slot struct {
	mu     sync.Mutex
	cond   sync.Cond
	task   Task
	full   bool
	closed bool
}

func NewSlot() *Slot {
	s := &Slot{}
	s.cond.L = &s.mu
	return s
}

func (s *Slot) wake() {
	s.mu.Lock()
	s.cond.Broadcast()
	s.mu.Unlock()
}

// Put stores t once the slot is empty.
func (s *Slot) Put(ctx context.Context, t Task) error {
	stop := context.AfterFunc(ctx, s.wake)
	defer stop()

	s.mu.Lock()
	defer s.mu.Unlock()
	for s.full && !s.closed {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.cond.Wait()
	}
	if s.closed {
		return ErrClosedSlot
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.task, s.full = t, true
	s.cond.Broadcast()
	return nil
}

// Take removes and returns the stored task once there is one. A closed slot
// still hands out its last task before reporting ErrClosedSlot.
func (s *Slot) Take(ctx context.Context) (Task, error) {
	stop := context.AfterFunc(ctx, s.wake)
	defer stop()

	s.mu.Lock()
	defer s.mu.Unlock()
	for !s.full && !s.closed {
		if err := ctx.Err(); err != nil {
			return Task{}, err
		}
		s.cond.Wait()
	}
	if !s.full {
		return Task{}, ErrClosedSlot
	}
	t := s.task
	s.task, s.full = Task{}, false
	s.cond.Broadcast()
	return t, nil
}

// Close wakes every waiter. Further Puts fail with ErrClosedSlot.
func (s *Slot) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.cond.Broadcast()
}
