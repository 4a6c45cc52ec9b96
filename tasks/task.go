package tasks

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/on-the-ground/tabulated_go/functions"
	"github.com/on-the-ground/tabulated_go/pure"
	"github.com/rickb777/date/v2/timespan"
)

// Task is one integration job.
type Task struct {
	ID       uuid.UUID
	Seq      int
	Function functions.Function
	Left     float64
	Right    float64
	Step     float64
}

func (t Task) PartitionKey() string { return t.ID.String() }

func (t Task) String() string {
	return fmt.Sprintf("#%d [%g, %g] step %g", t.Seq, t.Left, t.Right, t.Step)
}

// Result is the outcome of integrating a Task. Span covers the integration
// only, not the time the task waited in a queue.
type Result struct {
	Task  Task
	Value float64
	Err   error
	Span  timespan.TimeSpan
}

// Integrate runs the composite trapezoid rule over the task, memoizing the
// integrand so shared trapezoid edges are evaluated once.
func (t Task) Integrate() Result {
	start := time.Now()
	value, err := functions.Integrate(pure.Tableize(t.Function, memoSize), t.Left, t.Right, t.Step)
	if err != nil {
		err = fmt.Errorf("task %s: %w", t, err)
	}
	return Result{
		Task:  t,
		Value: value,
		Err:   err,
		Span:  timespan.BetweenTimes(start, time.Now()),
	}
}
