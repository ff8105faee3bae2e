package alloc

import (
	"github.com/pkg/errors"
)

// ErrExhausted is returned by a Tracker when it has been told to
// refuse requests.
var ErrExhausted = errors.New("allocator exhausted")

// Tracker is an Allocator that records what has been acquired and
// released, and can be armed to refuse requests. The zero value grants
// everything. Trackers are not safe for concurrent use.
type Tracker struct {
	live   [numResources]int
	total  [numResources]int
	calls  [numResources]int
	armed  [numResources]bool
	budget [numResources]int
}

// Acquire grants the request unless the tracker is armed for res and
// its budget is spent.
func (t *Tracker) Acquire(res Resource, n int) error {
	if !res.valid() {
		return errors.Errorf("acquire %d of unknown %s", n, res)
	}
	if n < 0 {
		return errors.Errorf("acquire negative amount %d of %s", n, res)
	}

	if t.armed[res] {
		if t.budget[res] <= 0 {
			return errors.Wrapf(ErrExhausted, "acquire %d %s after %d calls", n, res, t.calls[res])
		}
		t.budget[res]--
	}

	t.live[res] += n
	t.total[res] += n
	t.calls[res]++
	return nil
}

func (t *Tracker) Release(res Resource, n int) {
	if !res.valid() {
		return
	}
	t.live[res] -= n
}

// FailAfter arms the tracker so that the next n requests for res
// succeed and every request after that fails, until Disarm or Reset.
func (t *Tracker) FailAfter(res Resource, n int) {
	if !res.valid() {
		return
	}
	t.armed[res] = true
	t.budget[res] = n
}

// Disarm stops refusing requests for res.
func (t *Tracker) Disarm(res Resource) {
	if !res.valid() {
		return
	}
	t.armed[res] = false
	t.budget[res] = 0
}

// Live reports the amount of res acquired and not yet released.
func (t *Tracker) Live(res Resource) int { return t.get(&t.live, res) }

// Total reports the amount of res ever acquired.
func (t *Tracker) Total(res Resource) int { return t.get(&t.total, res) }

// Calls reports the number of granted requests for res.
func (t *Tracker) Calls(res Resource) int { return t.get(&t.calls, res) }

// Reset clears all counters and disarms the tracker.
func (t *Tracker) Reset() { *t = Tracker{} }

func (t *Tracker) get(counts *[numResources]int, res Resource) int {
	if !res.valid() {
		return 0
	}
	return counts[res]
}
