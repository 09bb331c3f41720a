// Implements the CustomerQueue, which holds every customer waiting in line.
// Customers are enqueued on arrival and re-enqueued at the tail after a remake.

package sim

import (
	"fmt"
	"strings"
)

// CustomerQueue is the FIFO line of customers waiting for a station.
// Order is arrival order, except that remade customers are re-appended at the
// back. Removal splices the backing slice; line lengths stay small enough
// that the O(n) shift never matters.
type CustomerQueue struct {
	queue []*Customer
}

// Enqueue adds a customer to the back of the line.
func (q *CustomerQueue) Enqueue(c *Customer) {
	if c == nil {
		panic("Enqueue: customer must not be nil")
	}
	q.queue = append(q.queue, c)
}

func (q *CustomerQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, c := range q.queue {
		sb.WriteString(fmt.Sprint(c.ID))
		if i < len(q.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// PrependFront inserts customers at the front of the line, keeping their
// relative order. Used when a removed station hands back its batch.
func (q *CustomerQueue) PrependFront(cs ...*Customer) {
	for _, c := range cs {
		if c == nil {
			panic("PrependFront: customer must not be nil")
		}
	}
	q.queue = append(append(make([]*Customer, 0, len(cs)+len(q.queue)), cs...), q.queue...)
}

// Len returns the number of customers in line.
func (q *CustomerQueue) Len() int {
	return len(q.queue)
}

// Peek returns the customer at the front of the line without removing it.
// Returns nil if the line is empty.
func (q *CustomerQueue) Peek() *Customer {
	if len(q.queue) == 0 {
		return nil
	}
	return q.queue[0]
}

// At returns the customer at index i, or nil if i is out of range.
func (q *CustomerQueue) At(i int) *Customer {
	if i < 0 || i >= len(q.queue) {
		return nil
	}
	return q.queue[i]
}

// Items returns the line contents for iteration.
// The returned slice is the queue's internal storage; callers may mutate the
// customers but MUST NOT append to or reslice it.
func (q *CustomerQueue) Items() []*Customer {
	return q.queue
}

// Dequeue removes and returns the customer at the front of the line.
// Returns nil if the line is empty.
func (q *CustomerQueue) Dequeue() *Customer {
	if len(q.queue) == 0 {
		return nil
	}
	c := q.queue[0]
	q.queue[0] = nil
	q.queue = q.queue[1:]
	return c
}

// DequeueN removes the first n customers as one batch. It is all-or-nothing:
// if fewer than n customers are waiting, nothing is removed and nil is returned.
func (q *CustomerQueue) DequeueN(n int) []*Customer {
	if n <= 0 || len(q.queue) < n {
		return nil
	}
	batch := make([]*Customer, n)
	copy(batch, q.queue[:n])
	rest := q.queue[n:]
	q.queue = append(q.queue[:0], rest...)
	return batch
}

// RemoveAt deletes the customer at index i and returns it.
func (q *CustomerQueue) RemoveAt(i int) *Customer {
	if i < 0 || i >= len(q.queue) {
		return nil
	}
	c := q.queue[i]
	q.queue = append(q.queue[:i], q.queue[i+1:]...)
	return c
}

// Clear empties the line.
func (q *CustomerQueue) Clear() {
	clear(q.queue)
	q.queue = q.queue[:0]
}
