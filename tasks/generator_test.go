package tasks_test

import (
	"testing"

	"github.com/on-the-ground/tabulated_go/functions/basic"
	"github.com/on-the-ground/tabulated_go/tasks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Ranges(t *testing.T) {
	gen := tasks.NewGenerator(42)
	ids := map[string]bool{}
	for i := 0; i < 1000; i++ {
		task := gen.Next()
		assert.Equal(t, i, task.Seq)

		ln, ok := task.Function.(basic.Log)
		require.True(t, ok)
		assert.Greater(t, ln.Base(), 1.0)
		assert.LessOrEqual(t, ln.Base(), 10.0)

		assert.GreaterOrEqual(t, task.Left, 0.0)
		assert.Less(t, task.Left, 100.0)
		assert.GreaterOrEqual(t, task.Right, 100.0)
		assert.Less(t, task.Right, 200.0)
		assert.GreaterOrEqual(t, task.Step, 0.0)
		assert.Less(t, task.Step, 1.0)

		assert.False(t, ids[task.PartitionKey()], "duplicate id")
		ids[task.PartitionKey()] = true
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	a, b, c := tasks.NewGenerator(5), tasks.NewGenerator(5), tasks.NewGenerator(6)
	for i := 0; i < 10; i++ {
		ta, tb, tc := a.Next(), b.Next(), c.Next()
		assert.Equal(t, ta.ID, tb.ID)
		assert.Equal(t, ta.Left, tb.Left)
		assert.Equal(t, ta.Step, tb.Step)
		assert.Equal(t, ta.Function, tb.Function)
		assert.NotEqual(t, ta.ID, tc.ID)
	}
}
