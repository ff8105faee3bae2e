package strq

import (
	"fmt"
	"strings"

	"github.com/go-kit/log/level"

	"github.com/tychoish/strq/alloc"
)

type node struct {
	value string
	next  *node
}

// Queue is a singly linked sequence of strings with access to both
// ends. A queue owns its nodes exclusively: nodes move between queues
// only while sorting, and never belong to two queues at once.
//
// The zero value is an empty queue using the default options; New
// applies custom options. Destroy releases a queue and everything it
// holds; Sort discards the queue it is given and returns
// the queue that now owns the nodes. Operations on a destroyed or
// discarded queue report ErrInvalidArgument.
type Queue struct {
	head  *node
	tail  *node
	count int

	released bool
	conf     Options
}

// New constructs an empty queue. It reports an error if an option is
// invalid or if the allocator refuses the queue structure.
func New(opts ...OptionProvider[*Options]) (*Queue, error) {
	conf := &Options{}
	if err := ApplyOptions(conf, opts...); err != nil {
		return nil, err
	}

	if err := conf.Allocator.Acquire(alloc.QueueStruct, 1); err != nil {
		level.Debug(conf.Logger).Log("op", "new", "msg", "could not obtain queue structure", "err", err)
		return nil, fmt.Errorf("new: %w: %w", ErrAllocation, err)
	}

	return &Queue{conf: *conf}, nil
}

// InsertHead adds a copy of value to the front of the queue. On error
// the queue is unchanged.
func (q *Queue) InsertHead(value string) error {
	n, err := q.newNode("insert_head", value)
	if err != nil {
		return err
	}

	n.next = q.head
	q.head = n
	if q.count == 0 {
		q.tail = n
	}
	q.count++
	return nil
}

// InsertTail adds a copy of value to the back of the queue. On error
// the queue is unchanged.
func (q *Queue) InsertTail(value string) error {
	n, err := q.newNode("insert_tail", value)
	if err != nil {
		return err
	}

	if q.count == 0 {
		q.head = n
	} else {
		q.tail.next = n
	}
	q.tail = n
	q.count++
	return nil
}

// RemoveHead detaches the first element, releases its storage and
// returns its value.
func (q *Queue) RemoveHead() (string, error) {
	n, err := q.detachHead("remove_head")
	if err != nil {
		return "", err
	}

	value := n.value
	q.release(n)
	return value, nil
}

// RemoveHeadInto detaches the first element and copies its value into
// buf as a zero-terminated string: at most len(buf)-1 bytes of the
// value are copied, followed by a zero byte. A nil or empty buf
// receives nothing, but the element is still removed. The number of
// value bytes copied is returned.
func (q *Queue) RemoveHeadInto(buf []byte) (int, error) {
	n, err := q.detachHead("remove_head")
	if err != nil {
		return 0, err
	}

	var copied int
	if len(buf) > 0 {
		copied = copy(buf[:len(buf)-1], n.value)
		buf[copied] = 0
	}

	q.release(n)
	return copied, nil
}

// Size returns the number of elements in the queue. Nil and released
// queues have no elements.
func (q *Queue) Size() int {
	if q == nil || q.released {
		return 0
	}
	return q.count
}

// Reverse reverses the order of the queue by relinking its nodes. It
// neither allocates nor releases anything.
func (q *Queue) Reverse() error {
	if err := q.usable("reverse"); err != nil {
		return err
	}
	if q.count == 0 {
		return q.reject("reverse", ErrEmptyQueue)
	}

	var prev *node
	for cur := q.head; cur != nil; {
		next := cur.next
		cur.next = prev
		prev, cur = cur, next
	}
	q.head, q.tail = q.tail, q.head

	return nil
}

// Destroy releases every node and value and then the queue itself.
// The queue cannot be used afterwards.
func (q *Queue) Destroy() error {
	if err := q.usable("destroy"); err != nil {
		return err
	}

	for n := q.head; n != nil; {
		next := n.next
		n.next = nil
		q.release(n)
		n = next
	}

	q.conf.Allocator.Release(alloc.QueueStruct, 1)
	q.discard()
	return nil
}

// Head returns the first value without removing it.
func (q *Queue) Head() (string, error) {
	if err := q.usable("head"); err != nil {
		return "", err
	}
	if q.count == 0 {
		return "", q.reject("head", ErrEmptyQueue)
	}
	return q.head.value, nil
}

// Tail returns the last value without removing it.
func (q *Queue) Tail() (string, error) {
	if err := q.usable("tail"); err != nil {
		return "", err
	}
	if q.count == 0 {
		return "", q.reject("tail", ErrEmptyQueue)
	}
	return q.tail.value, nil
}

// Values returns the values of the queue in order.
func (q *Queue) Values() []string {
	out := make([]string, 0, q.Size())
	if q.Size() == 0 {
		return out
	}

	for n := q.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}

func (q *Queue) String() string {
	return fmt.Sprintf("[%s]", strings.Join(q.Values(), " "))
}

// Validate walks the node chain and checks that it agrees with the
// queue's head, tail and count.
func (q *Queue) Validate() error {
	if err := q.usable("validate"); err != nil {
		return err
	}

	switch {
	case q.count < 0:
		return corrupted("negative count %d", q.count)
	case q.count == 0 && (q.head != nil || q.tail != nil):
		return corrupted("empty queue with head or tail")
	case q.count == 0:
		return nil
	case q.head == nil || q.tail == nil:
		return corrupted("%d elements without head or tail", q.count)
	case q.tail.next != nil:
		return corrupted("tail is linked to another node")
	}

	seen := 1
	for n := q.head; n != q.tail; n = n.next {
		if n.next == nil {
			return corrupted("tail is not reachable from head after %d nodes", seen)
		}
		seen++
		if seen > q.count {
			return corrupted("chain is longer than count %d", q.count)
		}
	}

	if seen != q.count {
		return corrupted("chain has %d nodes, count is %d", seen, q.count)
	}
	return nil
}

func corrupted(tmpl string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrCorrupted, fmt.Sprintf(tmpl, args...))
}

func (q *Queue) usable(op string) error {
	if q == nil {
		return fmt.Errorf("%s: nil queue: %w", op, ErrInvalidArgument)
	}
	q.lazySetup()
	if q.released {
		return q.reject(op, fmt.Errorf("released queue: %w", ErrInvalidArgument))
	}
	return nil
}

func (q *Queue) lazySetup() {
	if q.conf.Compare == nil || q.conf.Allocator == nil || q.conf.Logger == nil {
		_ = q.conf.Validate()
	}
}

func (q *Queue) reject(op string, err error) error {
	level.Debug(q.conf.Logger).Log("op", op, "size", q.count, "err", err)
	return fmt.Errorf("%s: %w", op, err)
}

func (q *Queue) newNode(op, value string) (*node, error) {
	if err := q.usable(op); err != nil {
		return nil, err
	}

	heap := q.conf.Allocator
	if err := heap.Acquire(alloc.Node, 1); err != nil {
		return nil, q.reject(op, fmt.Errorf("node: %w: %w", ErrAllocation, err))
	}
	if err := heap.Acquire(alloc.Value, len(value)); err != nil {
		heap.Release(alloc.Node, 1)
		return nil, q.reject(op, fmt.Errorf("value: %w: %w", ErrAllocation, err))
	}

	return &node{value: strings.Clone(value)}, nil
}

func (q *Queue) detachHead(op string) (*node, error) {
	if err := q.usable(op); err != nil {
		return nil, err
	}
	if q.count == 0 {
		return nil, q.reject(op, ErrEmptyQueue)
	}

	n := q.head
	q.head = n.next
	n.next = nil
	q.count--
	if q.count == 0 {
		q.tail = nil
	}
	return n, nil
}

func (q *Queue) release(n *node) {
	q.conf.Allocator.Release(alloc.Value, len(n.value))
	q.conf.Allocator.Release(alloc.Node, 1)
	n.value = ""
}

// discard drops the queue's claim on its chain. The nodes must
// already belong to another queue or have been released.
func (q *Queue) discard() {
	q.head, q.tail, q.count = nil, nil, 0
	q.released = true
}
