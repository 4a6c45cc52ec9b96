package tasks_test

import (
	"context"
	"testing"

	"github.com/on-the-ground/tabulated_go/tasks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.InfoLevel)
	return zap.New(core), logs
}

func sequential(t *testing.T, cfg tasks.Config) []tasks.Result {
	t.Helper()
	gen := tasks.NewGenerator(cfg.Seed)
	out := make([]tasks.Result, cfg.TasksCount)
	for i := range out {
		out[i] = gen.Next().Integrate()
	}
	return out
}

func assertSameResults(t *testing.T, want, got []tasks.Result) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, i, got[i].Task.Seq)
		assert.Equal(t, want[i].Task.ID, got[i].Task.ID)
		assert.Equal(t, want[i].Value, got[i].Value, "seq %d", i)
		assert.Equal(t, want[i].Err == nil, got[i].Err == nil, "seq %d", i)
	}
}

func TestRun(t *testing.T) {
	cfg := tasks.NewConfig(0, 0, 25, 0, 11)
	logger, logs := observedLogger()
	reg := prometheus.NewRegistry()
	metrics := tasks.NewMetrics(reg)

	results, err := tasks.Run(context.Background(), cfg, logger, metrics)
	require.NoError(t, err)
	assertSameResults(t, sequential(t, cfg), results)

	summary := tasks.Summarize(results)
	assert.Equal(t, 25.0, testutil.ToFloat64(metrics.Generated))
	assert.Equal(t, float64(summary.Count-summary.Failures), testutil.ToFloat64(metrics.Integrated))
	assert.Equal(t, float64(summary.Failures), testutil.ToFloat64(metrics.Failed))
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.Seconds))

	assert.Equal(t, 25, logs.FilterMessage("source").Len())
	assert.Equal(t, 25, logs.FilterMessage("result").Len()+logs.FilterMessage("error").Len())
	first := logs.FilterMessage("source").All()[0].ContextMap()
	assert.Equal(t, results[0].Task.ID.String(), first["taskId"])
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := tasks.Run(ctx, tasks.NewConfig(1, 1, 10, 0, 1), nil, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, len(results), 10)
}

func TestRunPool_MatchesSequential(t *testing.T) {
	for _, workers := range []int{1, 3, 8} {
		cfg := tasks.NewConfig(2, workers, 40, 0, 99)
		results, err := tasks.RunPool(context.Background(), cfg, zap.NewNop(), nil)
		require.NoError(t, err)
		assertSameResults(t, sequential(t, cfg), results)
	}
}

func TestRunPool_SmallWindow(t *testing.T) {
	// a window of one serializes the pool
	cfg := tasks.NewConfig(1, 4, 20, 1, 3)
	results, err := tasks.RunPool(context.Background(), cfg, nil, nil)
	require.NoError(t, err)
	assertSameResults(t, sequential(t, cfg), results)
}

func TestRunPool_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := tasks.NewMetrics(reg)
	cfg := tasks.NewConfig(1, 4, 30, 0, 5)

	results, err := tasks.RunPool(context.Background(), cfg, nil, metrics)
	require.NoError(t, err)
	require.Len(t, results, 30)

	assert.Equal(t, 30.0, testutil.ToFloat64(metrics.Generated))
	assert.Equal(t, 30.0, testutil.ToFloat64(metrics.Integrated)+testutil.ToFloat64(metrics.Failed))

	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestRunPool_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := tasks.RunPool(ctx, tasks.NewConfig(1, 2, 10, 0, 1), nil, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, len(results), 10)
}

func TestNewConfig(t *testing.T) {
	cfg := tasks.NewConfig(0, -1, 0, 0, 8)
	assert.Equal(t, tasks.Config{
		BufferSize:    1,
		NumWorkers:    1,
		TasksCount:    tasks.DefaultTasksCount,
		ReorderWindow: 3,
		Seed:          8,
	}, cfg)

	cfg = tasks.NewConfig(4, 2, 10, 5, 0)
	assert.Equal(t, 5, cfg.ReorderWindow)
}
