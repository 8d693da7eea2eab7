package pqueue_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vexlio/graphmat/pqueue"
)

func TestQueue_OrdersByPriority(t *testing.T) {
	var q pqueue.Queue[string]
	q.Insert(3, "three")
	q.Insert(1, "one")
	q.Insert(2, "two")

	min, ok := q.PeekMin()
	require.True(t, ok)
	assert.Equal(t, "one", min)

	var out []string
	for {
		v, ok := q.ExtractMin()
		if !ok {
			break
		}
		out = append(out, v)
	}
	assert.Equal(t, []string{"one", "two", "three"}, out)
	assert.Equal(t, 0, q.Len())
}

func TestQueue_EmptyExtract(t *testing.T) {
	var q pqueue.Queue[int]
	_, ok := q.ExtractMin()
	assert.False(t, ok)
	_, ok = q.PeekMin()
	assert.False(t, ok)
}

func TestDecreaseKey_Reorders(t *testing.T) {
	var q pqueue.Queue[string]
	q.Insert(10, "slow")
	it := q.Insert(20, "late")

	require.NoError(t, q.DecreaseKey(it, 5))
	assert.Equal(t, int64(5), it.Priority())

	v, ok := q.ExtractMin()
	require.True(t, ok)
	assert.Equal(t, "late", v)
}

func TestDecreaseKey_RejectsIncrease(t *testing.T) {
	var q pqueue.Queue[string]
	it := q.Insert(5, "x")
	assert.ErrorIs(t, q.DecreaseKey(it, 9), pqueue.ErrKeyIncrease)
}

func TestDecreaseKey_DetachedHandle(t *testing.T) {
	var q pqueue.Queue[string]
	it := q.Insert(5, "x")
	_, _ = q.ExtractMin()
	assert.ErrorIs(t, q.DecreaseKey(it, 1), pqueue.ErrDetached)
}

// TestQueue_RandomizedAgainstSort drains a randomly filled queue and
// checks the extraction order against a plain sort of the priorities.
func TestQueue_RandomizedAgainstSort(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	var q pqueue.Queue[int64]

	priorities := make([]int64, 500)
	for i := range priorities {
		p := int64(r.Intn(10_000))
		priorities[i] = p
		q.Insert(p, p)
	}
	sort.Slice(priorities, func(i, j int) bool { return priorities[i] < priorities[j] })

	for i, want := range priorities {
		got, ok := q.ExtractMin()
		require.True(t, ok, "queue drained early at %d", i)
		assert.Equal(t, want, got)
	}
}
