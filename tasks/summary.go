package tasks

import (
	"github.com/montanaflynn/stats"
	"go.uber.org/multierr"
)

// Summary describes a finished run. The statistics cover successful results
// only and are zero when there are none.
type Summary struct {
	Count    int
	Failures int
	Mean     float64
	Median   float64
	StdDev   float64
	Min      float64
	Max      float64
}

func Summarize(results []Result) Summary {
	s := Summary{Count: len(results)}
	values := make(stats.Float64Data, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			s.Failures++
			continue
		}
		values = append(values, r.Value)
	}
	if len(values) == 0 {
		return s
	}
	// stats only fails on empty input
	s.Mean, _ = values.Mean()
	s.Median, _ = values.Median()
	s.StdDev, _ = values.StandardDeviation()
	s.Min, _ = values.Min()
	s.Max, _ = values.Max()
	return s
}

// Errors combines the errors of all failed results, or returns nil.
func Errors(results []Result) error {
	var err error
	for _, r := range results {
		err = multierr.Append(err, r.Err)
	}
	return err
}
