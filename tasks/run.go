package tasks

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Run generates cfg.TasksCount tasks in one goroutine and integrates them in
// another, handing each task over through a Slot. Results come back in task
// order. On cancellation the results gathered so far are returned with the
// context's error.
func Run(ctx context.Context, cfg Config, logger *zap.Logger, metrics *Metrics) ([]Result, error) {
	cfg = cfg.normalized()
	h := newHarness(logger, metrics)
	gen := NewGenerator(cfg.Seed)
	slot := NewSlot()
	results := make([]Result, 0, cfg.TasksCount)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer slot.Close()
		for i := 0; i < cfg.TasksCount; i++ {
			t := gen.Next()
			h.source(t)
			if err := slot.Put(ctx, t); err != nil {
				return err
			}
		}
		return nil
	})
	g.Go(func() error {
		for {
			t, err := slot.Take(ctx)
			if errors.Is(err, ErrClosedSlot) {
				return nil
			}
			if err != nil {
				return err
			}
			results = append(results, h.integrate(t))
		}
	})

	err := g.Wait()
	h.logger.Debug("run finished", zap.Int("results", len(results)), zap.Error(err))
	return results, err
}
