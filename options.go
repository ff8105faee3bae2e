package strq

import (
	"errors"
	"fmt"

	"github.com/go-kit/log"

	"github.com/tychoish/strq/alloc"
	"github.com/tychoish/strq/natural"
)

// Comparator is a three-way comparison: it returns a negative number
// when a sorts before b, zero when they are equivalent and a positive
// number otherwise.
type Comparator func(a, b string) int

// Options configures a Queue. The zero value is usable: Validate fills
// in the natural comparator, the heap allocator and a no-op logger.
type Options struct {
	// Compare orders values for Sort and IsSorted. It must be
	// consistent and transitive over the values of one sort.
	Compare Comparator
	// Allocator accounts for the queue structure, its nodes and
	// their values. Sort only uses it for scratch queue structures.
	Allocator alloc.Allocator
	// Logger receives diagnostics about rejected operations. Errors
	// are always returned to the caller regardless of the logger.
	Logger log.Logger
}

func (o *Options) Validate() error {
	if o.Compare == nil {
		o.Compare = natural.Compare
	}
	if o.Allocator == nil {
		o.Allocator = alloc.Heap{}
	}
	if o.Logger == nil {
		o.Logger = log.NewNopLogger()
	}
	return nil
}

// OptionProvider modifies an options value, and reports an error if
// the modification is not possible.
type OptionProvider[T any] func(T) error

// ApplyOptions runs every provider against opt, and then validates
// opt if it has a Validate method. All errors are joined.
func ApplyOptions[T any](opt T, opts ...OptionProvider[T]) error {
	errs := make([]error, 0, len(opts)+1)
	for idx := range opts {
		if opts[idx] == nil {
			continue
		}
		errs = append(errs, opts[idx](opt))
	}

	if validator, ok := any(opt).(interface{ Validate() error }); ok {
		errs = append(errs, validator.Validate())
	}

	return errors.Join(errs...)
}

// SetOptions replaces the options wholesale.
func SetOptions(opt *Options) OptionProvider[*Options] {
	return func(o *Options) error {
		if opt == nil {
			return fmt.Errorf("nil options: %w", ErrInvalidArgument)
		}
		*o = *opt
		return nil
	}
}

func WithComparator(fn Comparator) OptionProvider[*Options] {
	return func(o *Options) error {
		if fn == nil {
			return fmt.Errorf("nil comparator: %w", ErrInvalidArgument)
		}
		o.Compare = fn
		return nil
	}
}

func WithAllocator(a alloc.Allocator) OptionProvider[*Options] {
	return func(o *Options) error {
		if a == nil {
			return fmt.Errorf("nil allocator: %w", ErrInvalidArgument)
		}
		o.Allocator = a
		return nil
	}
}

func WithLogger(logger log.Logger) OptionProvider[*Options] {
	return func(o *Options) error {
		if logger == nil {
			return fmt.Errorf("nil logger: %w", ErrInvalidArgument)
		}
		o.Logger = logger
		return nil
	}
}
