package tableau

import "github.com/propcalc/tautology/wff"

// A branch is a set of formulas that must hold simultaneously.
// Formulas are kept in insertion order: older formulas come first.
type branch []wff.Formula

// queue is the worklist of branches, processed in first-in, first-out order.
type queue struct {
	content []branch
	head    int // Index of the first branch still in the queue
}

func newQueue(b branch) *queue {
	return &queue{content: []branch{b}}
}

func (q *queue) len() int {
	return len(q.content) - q.head
}

func (q *queue) push(bs ...branch) {
	q.content = append(q.content, bs...)
}

// pop removes and returns the first branch of the queue.
// The queue must not be empty.
func (q *queue) pop() branch {
	b := q.content[q.head]
	q.content[q.head] = nil
	q.head++
	if q.head > len(q.content)/2 {
		// Reclaim the space used by popped branches.
		n := copy(q.content, q.content[q.head:])
		clear(q.content[n:])
		q.content = q.content[:n]
		q.head = 0
	}
	return b
}
