package main

import (
	"fmt"

	"github.com/on-the-ground/tabulated_go/internal/configkeys"
	"github.com/on-the-ground/tabulated_go/tasks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func newTasksCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Generate random logarithm integration tasks and integrate them",
		Long: `Generate random logarithm integration tasks and integrate them.

Without --pool one goroutine generates tasks and another integrates them,
handing each task over through a single shared slot. With --pool the tasks
are spread over a worker pool and the results put back in order.
Run with --log-level info to see every source and result.`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindFlags(v, cmd.Flags(),
				binding{configkeys.ConfigTasksCount, "count"},
				binding{configkeys.ConfigTasksSeed, "seed"},
				binding{configkeys.ConfigTasksPool, "pool"},
				binding{configkeys.ConfigTasksHandlerBufferSize, "buffer-size"},
				binding{configkeys.ConfigTasksHandlerNumWorkers, "workers"},
				binding{configkeys.ConfigTasksHandlerReorderWindow, "reorder-window"},
			)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(v, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer logger.Sync()

			cfg := tasks.NewConfig(
				v.GetInt(configkeys.ConfigTasksHandlerBufferSize),
				v.GetInt(configkeys.ConfigTasksHandlerNumWorkers),
				v.GetInt(configkeys.ConfigTasksCount),
				v.GetInt(configkeys.ConfigTasksHandlerReorderWindow),
				v.GetUint64(configkeys.ConfigTasksSeed),
			)
			metrics := tasks.NewMetrics(prometheus.NewRegistry())

			run := tasks.Run
			if v.GetBool(configkeys.ConfigTasksPool) {
				run = tasks.RunPool
			}
			results, err := run(cmd.Context(), cfg, logger, metrics)
			if err != nil {
				return err
			}
			if err := tasks.Errors(results); err != nil {
				logger.Warn("some tasks failed", zap.Error(err))
			}

			s := tasks.Summarize(results)
			_, err = fmt.Fprintf(cmd.OutOrStdout(),
				"tasks %d failures %d\nmean %g median %g stddev %g min %g max %g\n",
				s.Count, s.Failures, s.Mean, s.Median, s.StdDev, s.Min, s.Max,
			)
			return err
		},
	}
	cmd.Flags().Int("count", tasks.DefaultTasksCount, "number of tasks")
	cmd.Flags().Uint64("seed", 1, "random seed")
	cmd.Flags().Bool("pool", false, "integrate on a worker pool")
	cmd.Flags().Int("buffer-size", 1, "queue length per worker")
	cmd.Flags().Int("workers", 1, "number of pool workers")
	cmd.Flags().Int("reorder-window", 0, "tasks in flight at once, 0 picks a default")
	return cmd
}
