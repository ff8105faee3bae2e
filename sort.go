package strq

import (
	"fmt"

	"github.com/go-kit/log/level"

	"github.com/tychoish/strq/alloc"
)

// Sort orders the queue ascending with the queue's comparator, using
// a merge sort that relinks the existing nodes. Queues with fewer than
// two elements are returned as is.
//
// Otherwise q is discarded and the returned queue owns every node;
// callers must use the returned queue from then on. The recursion
// needs two scratch queue structures per split, and these are
// obtained from the allocator before any node moves: if the allocator
// refuses them, Sort returns q unmodified along with ErrAllocation.
func Sort(q *Queue) (*Queue, error) {
	if err := q.usable("sort"); err != nil {
		return q, err
	}
	if q.count < 2 {
		return q, nil
	}

	scratch := 2 * (q.count - 1)
	heap := q.conf.Allocator
	if err := heap.Acquire(alloc.QueueStruct, scratch); err != nil {
		level.Warn(q.conf.Logger).Log("op", "sort", "msg", "could not obtain scratch queues; leaving queue unsorted",
			"size", q.count, "scratch", scratch, "err", err)
		return q, fmt.Errorf("sort: %w: %w", ErrAllocation, err)
	}
	// splits and merges balance out: the input structure and one
	// half are dropped for every split, so the live count is unchanged.
	defer heap.Release(alloc.QueueStruct, scratch)

	return mergeSort(q), nil
}

// Sort sorts the queue in place. See the Sort function.
func (q *Queue) Sort() error {
	out, err := Sort(q)
	if err != nil || out == q {
		return err
	}

	q.head, q.tail, q.count = out.head, out.tail, out.count
	q.released = false
	out.discard()
	return nil
}

// IsSorted reports whether every adjacent pair of values is in order
// according to the queue's comparator.
func IsSorted(q *Queue) bool {
	if q.Size() <= 1 {
		return true
	}

	for n := q.head; n.next != nil; n = n.next {
		if q.conf.Compare(n.next.value, n.value) < 0 {
			return false
		}
	}
	return true
}

func mergeSort(q *Queue) *Queue {
	if q.count < 2 {
		return q
	}

	left, right := split(q)
	return merge(mergeSort(left), mergeSort(right))
}

// split moves the first count/2 nodes of q into left and the rest into
// right, then discards q. The right half is never the smaller one.
func split(q *Queue) (left, right *Queue) {
	size := q.count / 2

	last := q.head
	for i := 1; i < size; i++ {
		last = last.next
	}

	left = q.scratch(q.head, last, size)
	right = q.scratch(last.next, q.tail, q.count-size)
	last.next = nil

	q.discard()
	return left, right
}

// merge splices the nodes of two sorted queues into left, and discards
// right. A node is taken from left only when it compares strictly less
// than the current right node, so equal values come from right first.
func merge(left, right *Queue) *Queue {
	compare := left.conf.Compare
	count := left.count + right.count
	a, b := left.head, right.head
	right.discard()

	var last *node
	link := &left.head
	for a != nil || b != nil {
		var next *node
		if b == nil || (a != nil && compare(a.value, b.value) < 0) {
			next, a = a, a.next
		} else {
			next, b = b, b.next
		}

		*link = next
		link = &next.next
		last = next
	}
	last.next = nil

	left.tail = last
	left.count = count
	return left
}

func (q *Queue) scratch(head, tail *node, count int) *Queue {
	return &Queue{head: head, tail: tail, count: count, conf: q.conf}
}
