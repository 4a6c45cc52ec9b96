package tasks

import (
	"context"
	"fmt"

	"github.com/on-the-ground/tabulated_go/tasks/internal/dispatch"
	"github.com/on-the-ground/tabulated_go/tasks/internal/reorder"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// RunPool integrates cfg.TasksCount tasks on cfg.NumWorkers workers. Tasks
// are partitioned by the hash of their ID. Results are released in task order
// through a reorder buffer; at most cfg.ReorderWindow tasks are in flight or
// waiting to be released at any time.
//
// For equal configs RunPool and Run return the same results.
func RunPool(ctx context.Context, cfg Config, logger *zap.Logger, metrics *Metrics) ([]Result, error) {
	cfg = cfg.normalized()
	h := newHarness(logger, metrics)
	gen := NewGenerator(cfg.Seed)

	g, ctx := errgroup.WithContext(ctx)
	tokens := make(chan struct{}, cfg.ReorderWindow)
	done := make(chan Result, cfg.NumWorkers)
	ordered := reorder.New(0, cfg.ReorderWindow, func(r Result) int { return r.Task.Seq })

	workers := dispatch.New(ctx, cfg.NumWorkers, cfg.BufferSize, func(ctx context.Context, t Task) {
		r := h.integrate(t)
		select {
		case done <- r:
		case <-ctx.Done():
		}
	})

	g.Go(func() error {
		defer workers.Close()
		for i := 0; i < cfg.TasksCount; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			select {
			case tokens <- struct{}{}:
			case <-ctx.Done():
				return ctx.Err()
			}
			t := gen.Next()
			h.source(t)
			if err := workers.Send(ctx, t); err != nil {
				return err
			}
		}
		return nil
	})
	g.Go(func() error {
		defer ordered.Close(ctx)
		for i := 0; i < cfg.TasksCount; i++ {
			select {
			case r := <-done:
				if err := ordered.Insert(ctx, r); err != nil {
					return fmt.Errorf("reorder task %d: %w", r.Task.Seq, err)
				}
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	results := make([]Result, 0, cfg.TasksCount)
	for r := range ordered.Source() {
		results = append(results, r)
		<-tokens
	}

	err := g.Wait()
	h.logger.Debug("pool finished",
		zap.Int("workers", cfg.NumWorkers),
		zap.Int("results", len(results)),
		zap.Error(err),
	)
	return results, err
}
