// Package slicekit provides slice utilities: checked access, positional and
// order-preserving insertion, and removal operations.
//
// The slicekit package is considered as a `lite` package,
// and therefore its dependencies strictly restricted.
package slicekit

import (
	"fmt"

	"go.llib.dev/collkit/pkg/compare"
	"go.llib.dev/collkit/pkg/errorkit"
	"go.llib.dev/collkit/pkg/opt"
	"go.llib.dev/collkit/port/option"
)

// ErrOutOfBounds is raised when an index based operation receives an index
// outside of the range the operation accepts.
// It signals caller misuse, and it is not meant to be recovered from in normal control flow.
const ErrOutOfBounds errorkit.Error = "ErrOutOfBounds"

// ErrInvalidArgument is raised when an operation receives an argument
// it cannot interpret, such as a nil comparator.
const ErrInvalidArgument errorkit.Error = "ErrInvalidArgument"

// Lookup is a checked indexed read.
// It returns the element at the given index as a present Opt,
// or an absent Opt for any index outside of the [0, len) range.
// Lookup never panics, an out of range index is a normal miss, not an error.
func Lookup[T any](s []T, index int) opt.Opt[T] {
	if index < 0 || len(s) <= index {
		return opt.None[T]()
	}
	return opt.Some(s[index])
}

// Insert inserts the given values at the index position,
// shifting the subsequent elements to the right.
// The updated slice is returned to support chaining, the same way append does.
//
// The index must be within the [0, len] range, where index == len appends.
// An index outside of that range panics with ErrOutOfBounds.
func Insert[T any](s []T, index int, vs ...T) []T {
	if index < 0 || len(s) < index {
		panic(ErrOutOfBounds.F("insert at %d is outside of the [0, %d] range", index, len(s)))
	}
	var out = make([]T, 0, len(s)+len(vs))
	out = append(out, s[:index]...)
	out = append(out, vs...)
	out = append(out, s[index:]...)
	return out
}

// SearchLow returns the leftmost valid insertion index for the value
// in a slice that is already sorted by the given comparator.
// When the slice contains elements equal to the value,
// the returned index points to the first of them.
//
// The search costs O(log n) comparisons.
func SearchLow[T any](s []T, v T, cmp compare.Func[T]) int {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if compare.IsLess(cmp(s[mid], v)) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// SearchHigh returns the rightmost valid insertion index for the value
// in a slice that is already sorted by the given comparator.
// When the slice contains elements equal to the value,
// the returned index points right after the last of them.
//
// The search costs O(log n) comparisons.
func SearchHigh[T any](s []T, v T, cmp compare.Func[T]) int {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if compare.IsLessOrEqual(cmp(s[mid], v)) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// InsertOrdered inserts the value into a slice that is already sorted by the comparator,
// at the position a binary search determines, keeping the slice sorted.
//
// Among elements equal to the inserted value the insertion position is selected
// by the duplicate policy, which defaults to DupHigh.
// Repeated insertions of equal values with the default policy
// keep their insertion order stable.
//
// The caller guarantees that the slice is sorted by the comparator before the call,
// InsertOrdered doesn't verify it.
func InsertOrdered[T any](s []T, v T, cmp compare.Func[T], opts ...OrderedInsertOption) []T {
	if cmp == nil {
		panic(ErrInvalidArgument.F("nil comparator received"))
	}
	c := option.Use(opts)
	var index int
	switch c.Dup {
	case DupLow:
		index = SearchLow(s, v, cmp)
	case DupHigh:
		index = SearchHigh(s, v, cmp)
	default:
		panic(ErrInvalidArgument.F("unknown duplicate policy: %d", c.Dup))
	}
	return Insert(s, index, v)
}

type OrderedInsertConfig struct {
	// Dup selects the insertion position among elements
	// that are equal to the inserted value.
	Dup DupPolicy
}

type OrderedInsertOption option.Option[OrderedInsertConfig]

// DupPolicy is the tie-break rule of InsertOrdered for equal elements.
type DupPolicy int

const (
	// DupHigh places the inserted value after the last equal element.
	DupHigh DupPolicy = iota
	// DupLow places the inserted value before the first equal element.
	DupLow
)

// InsertLow makes InsertOrdered insert before the first equal element.
func InsertLow() OrderedInsertOption {
	return option.Func[OrderedInsertConfig](func(c *OrderedInsertConfig) {
		c.Dup = DupLow
	})
}

// InsertHigh makes InsertOrdered insert after the last equal element.
// This is the default behaviour.
func InsertHigh() OrderedInsertOption {
	return option.Func[OrderedInsertConfig](func(c *OrderedInsertConfig) {
		c.Dup = DupHigh
	})
}

// Remove removes the first element that is equal to the given value,
// scanning from index zero, keeping the relative order of the remaining elements.
// It returns the updated slice along with the removed element,
// or an absent Opt when no element matched, in which case the slice is left intact.
func Remove[T comparable](s []T, v T) ([]T, opt.Opt[T]) {
	return RemoveBy(s, func(got T, _ int, _ []T) bool {
		return got == v
	})
}

// RemoveBy removes the first element for which the predicate reports true.
// The predicate receives the element, its index and the whole slice.
// It returns the updated slice along with the removed element,
// or an absent Opt when nothing matched.
func RemoveBy[T any](s []T, by func(v T, index int, s []T) bool) ([]T, opt.Opt[T]) {
	for index, v := range s {
		if by(v, index, s) {
			return RemoveAt(s, index)
		}
	}
	return s, opt.None[T]()
}

// RemoveAt removes and returns the element at the index position.
// An index outside of the [0, len) range is a normal miss:
// the slice is returned unchanged along with an absent Opt, no panic is raised.
func RemoveAt[T any](s []T, index int) ([]T, opt.Opt[T]) {
	v, ok := Lookup(s, index).Lookup()
	if !ok {
		return s, opt.None[T]()
	}
	var out = make([]T, 0, len(s)-1)
	out = append(out, s[:index]...)
	out = append(out, s[index+1:]...)
	return out, opt.Some(v)
}

// Present returns a new slice with the absent values filtered out,
// keeping the relative order of the present ones. The input is not mutated.
func Present[T any](s []opt.Opt[T]) []T {
	if s == nil {
		return nil
	}
	var out = make([]T, 0, len(s))
	for _, o := range s {
		if v, ok := o.Lookup(); ok {
			out = append(out, v)
		}
	}
	return out
}

// NonNil returns a new slice with both the absent values and the nil pointers
// filtered out, keeping the relative order. The input is not mutated.
func NonNil[T any](s []opt.Opt[*T]) []*T {
	if s == nil {
		return nil
	}
	var out = make([]*T, 0, len(s))
	for _, o := range s {
		if ptr, ok := o.Lookup(); ok && ptr != nil {
			out = append(out, ptr)
		}
	}
	return out
}

func Must[T any](v T, err error) T {
	if err != nil {
		panic(fmt.Errorf("slicekit.Must: %w", err))
	}
	return v
}

// Map will do a mapping from an input type into an output type.
func Map[O, I any, FN mapFunc[O, I]](s []I, fn FN) ([]O, error) {
	if s == nil {
		return nil, nil
	}
	var (
		out    = make([]O, len(s))
		mapper = toMapFunc[O, I](fn)
	)
	for index, v := range s {
		o, err := mapper(v)
		if err != nil {
			return out, err
		}
		out[index] = o
	}
	return out, nil
}

// Reduce iterates over a slice, combining elements using the reducer function.
func Reduce[O, I any, FN reduceFunc[O, I]](s []I, initial O, fn FN) (O, error) {
	var (
		result  = initial
		reducer = toReduceFunc[O, I](fn)
	)
	for _, i := range s {
		o, err := reducer(result, i)
		if err != nil {
			return result, err
		}
		result = o
	}
	return result, nil
}

// Merge will merge all passed slices into a single slice,
// in the order the arguments were passed.
func Merge[T any](ss ...[]T) []T {
	var out = []T{}
	for _, s := range ss {
		out = append(out, s...)
	}
	return out
}

// Clone creates a clone from the passed source slice.
func Clone[T any](s []T) []T {
	if s == nil {
		return nil
	}
	var out = make([]T, len(s))
	copy(out, s)
	return out
}

// --------------------------------------------------------------------------------- //

type reduceFunc[O, I any] interface {
	func(O, I) O | func(O, I) (O, error)
}

func toReduceFunc[O, I any, FN reduceFunc[O, I]](m FN) func(O, I) (O, error) {
	switch fn := any(m).(type) {
	case func(O, I) O:
		return func(o O, i I) (O, error) {
			return fn(o, i), nil
		}
	case func(O, I) (O, error):
		return fn
	default:
		panic("unexpected")
	}
}

type mapFunc[O, I any] interface {
	func(I) O | func(I) (O, error)
}

func toMapFunc[O, I any, MF mapFunc[O, I]](m MF) func(I) (O, error) {
	switch fn := any(m).(type) {
	case func(I) O:
		return func(i I) (O, error) {
			return fn(i), nil
		}
	case func(I) (O, error):
		return fn
	default:
		panic("unexpected")
	}
}
