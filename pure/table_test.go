package pure_test

import (
	"sync"
	"testing"

	"github.com/on-the-ground/tabulated_go/pure"
	"github.com/stretchr/testify/assert"
)

func TestTable_BasicUsage(t *testing.T) {
	table := pure.NewTable[string, string](4)

	table.Store("a", "final")

	val, ok := table.Load("a")
	assert.True(t, ok)
	assert.Equal(t, "final", val)

	_, ok = table.Load("x")
	assert.False(t, ok)

	table.Store("a", "updated")
	val, ok = table.Load("a")
	assert.True(t, ok)
	assert.Equal(t, "updated", val)
}

func TestTable_RotatesGenerations(t *testing.T) {
	table := pure.NewTable[int, int](2)

	table.Store(1, 1)
	table.Store(2, 2)
	// head is full: 3 starts a fresh generation, 1 and 2 survive in the old one
	table.Store(3, 3)
	for _, k := range []int{1, 2, 3} {
		_, ok := table.Load(k)
		assert.True(t, ok, "key %d", k)
	}

	table.Store(4, 4)
	// rotating again drops the oldest generation
	table.Store(5, 5)
	for _, k := range []int{1, 2} {
		_, ok := table.Load(k)
		assert.False(t, ok, "key %d", k)
	}
	for _, k := range []int{3, 4, 5} {
		_, ok := table.Load(k)
		assert.True(t, ok, "key %d", k)
	}
	assert.LessOrEqual(t, table.Len(), 4)
}

func TestTable_ZeroSizePanics(t *testing.T) {
	assert.Panics(t, func() { pure.NewTable[int, int](0) })
}

func TestTable_ConcurrentUse(t *testing.T) {
	table := pure.NewTable[int, int](64)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				table.Store(g*1000+i, i)
				table.Load(g*1000 + i/2)
			}
		}(g)
	}
	wg.Wait()
	assert.LessOrEqual(t, table.Len(), 128)
}
