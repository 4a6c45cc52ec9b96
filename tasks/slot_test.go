package tasks_test

import (
	"context"
	"testing"
	"time"

	"github.com/on-the-ground/tabulated_go/tasks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlot_HandsOverInOrder(t *testing.T) {
	ctx := context.Background()
	slot := tasks.NewSlot()
	gen := tasks.NewGenerator(7)

	const n = 200
	sent := make([]tasks.Task, n)
	for i := range sent {
		sent[i] = gen.Next()
	}

	go func() {
		defer slot.Close()
		for _, task := range sent {
			if err := slot.Put(ctx, task); err != nil {
				return
			}
		}
	}()

	var got []tasks.Task
	for {
		task, err := slot.Take(ctx)
		if err != nil {
			assert.ErrorIs(t, err, tasks.ErrClosedSlot)
			break
		}
		got = append(got, task)
	}
	require.Len(t, got, n)
	for i := range sent {
		assert.Equal(t, sent[i].ID, got[i].ID)
		assert.Equal(t, i, got[i].Seq)
	}
}

func TestSlot_PutWaitsForTake(t *testing.T) {
	ctx := context.Background()
	slot := tasks.NewSlot()
	gen := tasks.NewGenerator(1)

	require.NoError(t, slot.Put(ctx, gen.Next()))

	second := make(chan error, 1)
	go func() { second <- slot.Put(ctx, gen.Next()) }()

	select {
	case <-second:
		t.Fatal("Put returned while the slot was still full")
	case <-time.After(20 * time.Millisecond):
	}

	first, err := slot.Take(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, first.Seq)
	require.NoError(t, <-second)

	next, err := slot.Take(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, next.Seq)
}

func TestSlot_Cancellation(t *testing.T) {
	slot := tasks.NewSlot()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := slot.Take(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	require.NoError(t, slot.Put(context.Background(), tasks.NewGenerator(1).Next()))
	ctx2, cancel2 := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel2()
	assert.ErrorIs(t, slot.Put(ctx2, tasks.Task{}), context.DeadlineExceeded)
}

func TestSlot_Close(t *testing.T) {
	ctx := context.Background()
	slot := tasks.NewSlot()

	require.NoError(t, slot.Put(ctx, tasks.Task{Seq: 9}))
	slot.Close()

	assert.ErrorIs(t, slot.Put(ctx, tasks.Task{}), tasks.ErrClosedSlot)

	// the last task survives Close
	task, err := slot.Take(ctx)
	require.NoError(t, err)
	assert.Equal(t, 9, task.Seq)

	_, err = slot.Take(ctx)
	assert.ErrorIs(t, err, tasks.ErrClosedSlot)
}

func TestSlot_CloseWakesWaiter(t *testing.T) {
	slot := tasks.NewSlot()
	errs := make(chan error, 1)
	go func() {
		_, err := slot.Take(context.Background())
		errs <- err
	}()

	time.Sleep(10 * time.Millisecond)
	slot.Close()
	assert.ErrorIs(t, <-errs, tasks.ErrClosedSlot)
}
