// Package tasks drives integration jobs through producer/consumer pipelines.
//
// A Generator produces random Tasks: a logarithm with a random base, random
// bounds and a random step. Run hands them one at a time from a generator
// goroutine to an integrator goroutine through a Slot, the single shared
// task record. RunPool fans the same stream out to a partitioned worker pool
// and restores task order before returning.
//
// The functions package itself is not synchronized; every Task owns its
// Function and each Function is integrated by exactly one goroutine.
//
// Example:
//
//	cfg := tasks.NewConfig(1, 4, 100, 0, 42)
//	results, err := tasks.RunPool(ctx, cfg, logger, tasks.NewMetrics(prometheus.DefaultRegisterer))
//	if err != nil {
//		return err
//	}
//	summary := tasks.Summarize(results)
package tasks
