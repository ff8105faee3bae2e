package strq

// Error is the type of the sentinel errors reported by this package,
// and allows them to be declared as constants.
type Error string

func (e Error) Error() string { return string(e) }

const (
	// ErrInvalidArgument is returned when an operation is called on a
	// nil queue, on a queue that has been destroyed or discarded, or
	// with an unusable option.
	ErrInvalidArgument Error = "invalid argument"

	// ErrEmptyQueue is returned by operations that need at least one
	// element.
	ErrEmptyQueue Error = "queue is empty"

	// ErrAllocation is returned when the allocator refuses storage for
	// a node, a value or a queue structure. The queue is not modified.
	ErrAllocation Error = "allocation failed"

	// ErrCorrupted is returned by Validate when the node chain does
	// not agree with the queue's head, tail or count.
	ErrCorrupted Error = "queue corrupted"
)
