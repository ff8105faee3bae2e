// Package alloc accounts for the storage a queue holds: queue
// structures, nodes and the bytes of node values.
//
// Go manages the memory itself, so an Allocator does not hand out
// memory. Queues ask it for permission before they create something
// and report back when they drop it, which lets a harness count what
// is live and refuse requests to exercise failure paths.
package alloc

import "fmt"

// Resource identifies a kind of storage.
type Resource int8

const (
	// QueueStruct counts queue structures, including the scratch
	// queues used while sorting.
	QueueStruct Resource = iota
	// Node counts list nodes.
	Node
	// Value counts the bytes of node values.
	Value

	numResources
)

func (r Resource) String() string {
	switch r {
	case QueueStruct:
		return "queue"
	case Node:
		return "node"
	case Value:
		return "value"
	default:
		return fmt.Sprintf("resource(%d)", int8(r))
	}
}

func (r Resource) valid() bool { return r >= 0 && r < numResources }

// Allocator is consulted before a queue creates a resource and told
// when the resource is dropped. Acquire returns an error to refuse the
// request, in which case nothing was acquired.
type Allocator interface {
	Acquire(res Resource, n int) error
	Release(res Resource, n int)
}

// Heap is the default Allocator: it grants every request and keeps no
// records.
type Heap struct{}

func (Heap) Acquire(Resource, int) error { return nil }
func (Heap) Release(Resource, int)       {}
