package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queueOf(ids ...int64) *CustomerQueue {
	q := &CustomerQueue{}
	for _, id := range ids {
		q.Enqueue(&Customer{ID: id})
	}
	return q
}

func idsOf(cs []*Customer) []int64 {
	out := make([]int64, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.ID)
	}
	return out
}

func TestCustomerQueue_Peek(t *testing.T) {
	// GIVEN a line [1, 2]
	q := queueOf(1, 2)

	// THEN Peek returns the front without removing it
	require.NotNil(t, q.Peek())
	assert.Equal(t, int64(1), q.Peek().ID)
	assert.Equal(t, 2, q.Len())

	assert.Nil(t, (&CustomerQueue{}).Peek())
}

func TestCustomerQueue_Dequeue_FIFO(t *testing.T) {
	q := queueOf(1, 2, 3)

	assert.Equal(t, int64(1), q.Dequeue().ID)
	assert.Equal(t, int64(2), q.Dequeue().ID)
	assert.Equal(t, int64(3), q.Dequeue().ID)
	assert.Nil(t, q.Dequeue())
}

func TestCustomerQueue_DequeueN_AllOrNothing(t *testing.T) {
	q := queueOf(1, 2, 3)

	// WHEN fewer than n are waiting, nothing is removed
	assert.Nil(t, q.DequeueN(4))
	assert.Equal(t, 3, q.Len())

	// WHEN enough are waiting, exactly n leave from the front
	batch := q.DequeueN(2)
	assert.Equal(t, []int64{1, 2}, idsOf(batch))
	assert.Equal(t, []int64{3}, idsOf(q.Items()))

	assert.Nil(t, q.DequeueN(0))
}

func TestCustomerQueue_DequeueN_BatchSurvivesLaterEnqueue(t *testing.T) {
	q := queueOf(1, 2, 3)
	batch := q.DequeueN(2)
	q.Enqueue(&Customer{ID: 4})
	q.Enqueue(&Customer{ID: 5})

	assert.Equal(t, []int64{1, 2}, idsOf(batch))
	assert.Equal(t, []int64{3, 4, 5}, idsOf(q.Items()))
}

func TestCustomerQueue_RemoveAt(t *testing.T) {
	q := queueOf(1, 2, 3)

	assert.Equal(t, int64(2), q.RemoveAt(1).ID)
	assert.Equal(t, []int64{1, 3}, idsOf(q.Items()))
	assert.Nil(t, q.RemoveAt(5))
	assert.Nil(t, q.RemoveAt(-1))
}

func TestCustomerQueue_PrependFront_KeepsOrder(t *testing.T) {
	q := queueOf(3, 4)
	q.PrependFront(&Customer{ID: 1}, &Customer{ID: 2})

	assert.Equal(t, []int64{1, 2, 3, 4}, idsOf(q.Items()))
}

func TestCustomerQueue_PrependFront_NilPanics(t *testing.T) {
	q := queueOf(1)
	assert.Panics(t, func() { q.PrependFront(nil) })
}

func TestCustomerQueue_Clear(t *testing.T) {
	q := queueOf(1, 2)
	q.Clear()

	assert.Equal(t, 0, q.Len())
	assert.Equal(t, "[]", q.String())
}

func TestCustomerQueue_String(t *testing.T) {
	assert.Equal(t, "[1 2 3]", queueOf(1, 2, 3).String())
}
