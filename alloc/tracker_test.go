package alloc_test

import (
	"errors"
	"testing"

	"github.com/tychoish/strq/alloc"
	"github.com/tychoish/strq/internal/check"
)

func TestHeap(t *testing.T) {
	var a alloc.Allocator = alloc.Heap{}
	for _, res := range []alloc.Resource{alloc.QueueStruct, alloc.Node, alloc.Value} {
		check.NotError(t, a.Acquire(res, 1<<20))
		a.Release(res, 1<<20)
	}
}

func TestTracker(t *testing.T) {
	t.Run("ZeroValueGrants", func(t *testing.T) {
		tr := &alloc.Tracker{}
		check.NotError(t, tr.Acquire(alloc.Node, 1))
		check.NotError(t, tr.Acquire(alloc.Value, 12))
		check.Equal(t, tr.Live(alloc.Node), 1)
		check.Equal(t, tr.Live(alloc.Value), 12)
		check.Equal(t, tr.Calls(alloc.Value), 1)
	})
	t.Run("LiveAndTotal", func(t *testing.T) {
		tr := &alloc.Tracker{}
		for i := 0; i < 10; i++ {
			check.NotError(t, tr.Acquire(alloc.Node, 1))
		}
		tr.Release(alloc.Node, 4)
		check.Equal(t, tr.Live(alloc.Node), 6)
		check.Equal(t, tr.Total(alloc.Node), 10)
		check.Equal(t, tr.Calls(alloc.Node), 10)
		check.Equal(t, tr.Live(alloc.QueueStruct), 0)
	})
	t.Run("FailAfter", func(t *testing.T) {
		tr := &alloc.Tracker{}
		tr.FailAfter(alloc.Node, 2)
		check.NotError(t, tr.Acquire(alloc.Node, 1))
		check.NotError(t, tr.Acquire(alloc.Node, 1))

		err := tr.Acquire(alloc.Node, 1)
		check.ErrorIs(t, err, alloc.ErrExhausted)
		check.ErrorIs(t, tr.Acquire(alloc.Node, 1), alloc.ErrExhausted)
		check.Equal(t, tr.Live(alloc.Node), 2)

		// other resources are unaffected
		check.NotError(t, tr.Acquire(alloc.Value, 3))

		tr.Disarm(alloc.Node)
		check.NotError(t, tr.Acquire(alloc.Node, 1))
		check.Equal(t, tr.Live(alloc.Node), 3)
	})
	t.Run("FailImmediately", func(t *testing.T) {
		tr := &alloc.Tracker{}
		tr.FailAfter(alloc.QueueStruct, 0)
		err := tr.Acquire(alloc.QueueStruct, 1)
		check.Error(t, err)
		check.True(t, errors.Is(err, alloc.ErrExhausted))
		check.Equal(t, tr.Calls(alloc.QueueStruct), 0)
	})
	t.Run("Reset", func(t *testing.T) {
		tr := &alloc.Tracker{}
		tr.FailAfter(alloc.Node, 0)
		check.NotError(t, tr.Acquire(alloc.Value, 5))
		tr.Reset()
		check.Equal(t, tr.Live(alloc.Value), 0)
		check.NotError(t, tr.Acquire(alloc.Node, 1))
	})
	t.Run("InvalidRequests", func(t *testing.T) {
		tr := &alloc.Tracker{}
		check.Error(t, tr.Acquire(alloc.Resource(42), 1))
		check.Error(t, tr.Acquire(alloc.Node, -1))
		check.NotErrorIs(t, tr.Acquire(alloc.Node, -1), alloc.ErrExhausted)
		check.Equal(t, tr.Live(alloc.Resource(42)), 0)
		tr.Release(alloc.Resource(-1), 1)
	})
	t.Run("ResourceNames", func(t *testing.T) {
		check.Equal(t, alloc.QueueStruct.String(), "queue")
		check.Equal(t, alloc.Node.String(), "node")
		check.Equal(t, alloc.Value.String(), "value")
		check.Equal(t, alloc.Resource(9).String(), "resource(9)")
	})
}
