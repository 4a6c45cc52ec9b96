package functions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayCache(t *testing.T) {
	f, err := NewArrayTabulatedFunction(0, 4, 5)
	require.NoError(t, err)
	assert.Equal(t, -1, f.cachedIndex)

	_, err = f.Point(3)
	require.NoError(t, err)
	assert.Equal(t, 3, f.cachedIndex)
	assert.Equal(t, Point{X: 3}, f.cachedPoint)

	require.NoError(t, f.SetPointY(1, 7))
	assert.Equal(t, 1, f.cachedIndex)
	assert.Equal(t, Point{X: 1, Y: 7}, f.cachedPoint)

	require.NoError(t, f.AddPoint(Point{X: 2.5, Y: 1}))
	assert.Equal(t, 3, f.cachedIndex)
	assert.Equal(t, Point{X: 2.5, Y: 1}, f.cachedPoint)

	// a hit must still see the latest value after SetPointX at the cached slot
	require.NoError(t, f.SetPointX(3, 2.75))
	x, err := f.PointX(3)
	require.NoError(t, err)
	assert.Equal(t, 2.75, x)

	require.NoError(t, f.DeletePoint(0))
	assert.Equal(t, -1, f.cachedIndex)

	c := f.Clone().(*ArrayTabulatedFunction)
	assert.Equal(t, -1, c.cachedIndex)
}

func TestLinkedListCache_Lookup(t *testing.T) {
	f, err := NewLinkedListTabulatedFunction(0, 9, 10)
	require.NoError(t, err)
	assert.Nil(t, f.cachedNode)

	for _, i := range []int{7, 3, 9, 0, 5, 5, 6, 1} {
		p, err := f.Point(i)
		require.NoError(t, err)
		assert.Equal(t, float64(i), p.X)
		assert.Equal(t, i, f.cachedIndex)
		assert.Equal(t, p, f.cachedNode.point)
	}
}

func TestLinkedListCache_Delete(t *testing.T) {
	f, err := NewLinkedListTabulatedFunction(0, 5, 6)
	require.NoError(t, err)

	_, err = f.Point(4)
	require.NoError(t, err)

	// deleting before the cursor shifts its index down
	require.NoError(t, f.DeletePoint(1))
	assert.Equal(t, 3, f.cachedIndex)
	assert.Equal(t, 4.0, f.cachedNode.point.X)

	// deleting after the cursor leaves it alone
	require.NoError(t, f.DeletePoint(4))
	assert.Equal(t, 3, f.cachedIndex)

	// deleting the cursor clears it
	require.NoError(t, f.DeletePoint(3))
	assert.Nil(t, f.cachedNode)
	assert.Equal(t, -1, f.cachedIndex)

	assert.Equal(t, []Point{{X: 0}, {X: 2}, {X: 3}}, f.Points())
	p, err := f.Point(2)
	require.NoError(t, err)
	assert.Equal(t, 3.0, p.X)
}

func TestLinkedListCache_Add(t *testing.T) {
	f, err := NewLinkedListTabulatedFunction(0, 3, 4)
	require.NoError(t, err)

	_, err = f.Point(3)
	require.NoError(t, err)

	require.NoError(t, f.AddPoint(Point{X: 0.5}))
	assert.Equal(t, 1, f.cachedIndex)
	assert.Equal(t, 0.5, f.cachedNode.point.X)

	// lookups relative to the new cursor still land on the right node
	for i, want := range []float64{0, 0.5, 1, 2, 3} {
		x, err := f.PointX(i)
		require.NoError(t, err)
		assert.Equal(t, want, x)
	}
}

func TestLinkedListSentinel(t *testing.T) {
	f, err := NewLinkedListTabulatedFunctionFromPoints([]Point{{X: 1, Y: 1}, {X: 2, Y: 2}})
	require.NoError(t, err)

	assert.Equal(t, f.head, f.head.next.prev)
	assert.Equal(t, f.head, f.head.prev.next)
	assert.Equal(t, Point{}, f.head.point)
	assert.Equal(t, 2, f.count)

	c := f.Clone().(*LinkedListTabulatedFunction)
	assert.NotSame(t, f.head.next, c.head.next)
}
