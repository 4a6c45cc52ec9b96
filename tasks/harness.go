package tasks

import (
	"go.uber.org/zap"
)

// harness logs and counts what the pipelines do.
type harness struct {
	logger  *zap.Logger
	metrics *Metrics
}

func newHarness(logger *zap.Logger, metrics *Metrics) harness {
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = NewMetrics(nil)
	}
	return harness{logger: logger, metrics: metrics}
}

func taskFields(t Task) []zap.Field {
	return []zap.Field{
		zap.String("taskId", t.ID.String()),
		zap.Int("seq", t.Seq),
		zap.Float64("left", t.Left),
		zap.Float64("right", t.Right),
		zap.Float64("step", t.Step),
	}
}

func (h harness) source(t Task) {
	h.metrics.Generated.Inc()
	h.logger.Info("source", taskFields(t)...)
}

func (h harness) integrate(t Task) Result {
	r := t.Integrate()
	h.metrics.Seconds.Observe(r.Span.Duration().Seconds())
	if r.Err != nil {
		h.metrics.Failed.Inc()
		h.logger.Warn("error", append(taskFields(t), zap.Error(r.Err))...)
		return r
	}
	h.metrics.Integrated.Inc()
	h.logger.Info("result", append(taskFields(t), zap.Float64("value", r.Value))...)
	return r
}
