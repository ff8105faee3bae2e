// Package strq provides a singly linked queue of strings that can be
// reversed and sorted in place.
//
// Queues are built with New, grown with InsertHead and InsertTail and
// drained with RemoveHead. Sort orders the queue ascending using a
// natural string comparison (so "item2" sorts before "item10") by
// splitting and merging the existing node chain: no node or value is
// copied, allocated or freed while sorting.
//
// Every operation reports failure with an error that can be checked
// with errors.Is against ErrInvalidArgument, ErrEmptyQueue,
// ErrAllocation or ErrCorrupted. Storage accounting is delegated to an
// alloc.Allocator, which lets harnesses track live nodes and force
// allocation failures.
//
// Queues are not safe for concurrent use. Callers that share a queue
// between goroutines must provide their own synchronization.
package strq
