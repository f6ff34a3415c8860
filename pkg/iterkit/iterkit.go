// Package iterkit provides lazy, single-pass iterator adapters.
//
// # Summary
//
// An iterator's goal is to decouple the origin of the data from the consumer who uses that data.
// An iterator represents an iterable list of elements,
// which length is not known until it is fully iterated, thus can range from zero to infinity.
// The adapters in this package wrap an upstream sequence and expose the same
// sequence contract back, which makes them composable without materialising data.
// No adapter reads further ahead than what its next output item requires,
// with the single documented exception of PartitionHead.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
// https://en.wikipedia.org/wiki/Pipeline_(software)
package iterkit

import (
	"fmt"
	"iter"
	"slices"
	"sync/atomic"

	"go.llib.dev/collkit/pkg/opt"
)

// SingleUseSeq is an iter.Seq[T] that can only be iterated once.
// After iteration, it is expected to yield no more values.
//
// Most iterators provide the ability to walk an entire sequence:
// when called, the iterator does any setup necessary to start the sequence,
// then calls yield on successive elements of the sequence, and then cleans up before returning.
// Calling the iterator again walks the sequence again.
//
// SingleUseSeq iterators break that convention, providing the ability to walk a sequence only once.
// These “single-use iterators” typically report values from a data stream that cannot be rewound to start over.
// Once such a sequence reported that it is finished, it stays finished,
// every further pull yields nothing.
//
// If an iterator sequence is single use,
// it should either have comments for functions or methods that return single-use iterators
// or it should use the SingleUseSeq type to clearly express it with a return type.
type SingleUseSeq[T any] = iter.Seq[T]

// Empty iterator is used to represent a nil result with the Null object pattern.
// It is exhausted from the start.
func Empty[T any]() iter.Seq[T] {
	return func(yield func(T) bool) {}
}

// Slice returns an iterator over the values of the given slice.
func Slice[T any](slice []T) iter.Seq[T] {
	return slices.Values(slice)
}

// SingleValue creates an iterator that yields one single element.
func SingleValue[T any](v T) iter.Seq[T] {
	return func(yield func(T) bool) { yield(v) }
}

// Concat returns a lazy iterator over the concatenation of the given slices,
// in argument order. Each input is read per element, one input is fully walked
// before the next one is started, nothing is pre-flattened.
func Concat[T any](vss ...[]T) iter.Seq[T] {
	if len(vss) == 0 {
		return Empty[T]()
	}
	return func(yield func(T) bool) {
		for _, vs := range vss {
			for _, v := range vs {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Merge returns a lazy iterator over the concatenation of the given iterators,
// in argument order.
func Merge[T any](is ...iter.Seq[T]) iter.Seq[T] {
	if len(is) == 0 {
		return Empty[T]()
	}
	return func(yield func(T) bool) {
		for _, i := range is {
			for v := range i {
				if !yield(v) {
					return
				}
			}
		}
	}
}

func Collect[T any](i iter.Seq[T]) []T {
	if i == nil {
		return nil
	}
	var vs = make([]T, 0)
	for v := range i {
		vs = append(vs, v)
	}
	return vs
}

// CollectPull will collect all remaining values of a pull iterator.
func CollectPull[T any](next func() (T, bool), stops ...func()) []T {
	var vs = make([]T, 0)
	for _, stop := range stops {
		defer stop()
	}
	for {
		v, ok := next()
		if !ok {
			break
		}
		vs = append(vs, v)
	}
	return vs
}

// FromPull turns a pull iterator function back into an iter.Seq.
func FromPull[T any](next func() (T, bool), stops ...func()) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, stop := range stops {
			defer stop()
		}
		for {
			v, ok := next()
			if !ok {
				break
			}
			if !yield(v) {
				return
			}
		}
	}
}

// TakeOne pulls exactly one value from a pull iterator.
// It returns the value as a present Opt, or an absent Opt on exhaustion.
func TakeOne[T any](next func() (T, bool)) opt.Opt[T] {
	return opt.Of(next())
}

// Take will take the next N values from a pull iterator.
func Take[T any](next func() (T, bool), n int) []T {
	var vs []T
	for i := 0; i < n; i++ {
		v, ok := next()
		if !ok {
			break
		}
		vs = append(vs, v)
	}
	return vs
}

// TakeAll will take all the remaining values from a pull iterator.
func TakeAll[T any](next func() (T, bool)) []T {
	var vs []T
	for {
		v, ok := next()
		if !ok {
			break
		}
		vs = append(vs, v)
	}
	return vs
}

// TakeWhile yields the upstream values unchanged as long as the predicate holds.
// The predicate receives the value along with its zero based output index.
//
// The first value the predicate rejects terminates the returned sequence for good,
// even though the upstream may hold further values.
// The rejected value is already consumed from the upstream at that point
// and is not recoverable through either sequence.
//
// The returned sequence is single use.
func TakeWhile[T any](i iter.Seq[T], pred func(v T, index int) bool) SingleUseSeq[T] {
	return func(yield func(T) bool) {
		next, stop := iter.Pull(i)
		defer stop()
		for index := 0; ; index++ {
			v, ok := next()
			if !ok {
				return
			}
			if !pred(v, index) {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// SkipWhile discards the upstream values as long as the predicate holds.
// The predicate receives the value along with its zero based index among the discarded values.
// The first value the predicate lets through is yielded,
// and from that point on the adapter is a transparent passthrough,
// the predicate is not consulted again.
//
// The returned sequence is single use.
func SkipWhile[T any](i iter.Seq[T], pred func(v T, index int) bool) SingleUseSeq[T] {
	return func(yield func(T) bool) {
		var (
			accepted bool
			index    int
		)
		for v := range i {
			if !accepted {
				if pred(v, index) {
					index++
					continue
				}
				accepted = true
			}
			if !yield(v) {
				return
			}
		}
	}
}

// FindMap pulls the upstream values one at a time, applying the mapping function,
// and returns the first present mapped result,
// consuming the upstream only up to and including the value that produced it.
// When the upstream exhausts without a present mapping, an absent Opt is returned.
func FindMap[To, From any](i iter.Seq[From], fn func(v From, index int) opt.Opt[To]) opt.Opt[To] {
	var index int
	for v := range i {
		if o := fn(v, index); o.IsSome() {
			return o
		}
		index++
	}
	return opt.None[To]()
}

// Partition yields the upstream values grouped into slices of the given size.
// The last group may be shorter than size when the upstream exhausts mid group,
// but an empty group is never yielded, the sequence terminates instead.
// Concatenating the groups reproduces the upstream order.
//
// The size must be a positive integer, anything else panics.
//
// The returned sequence is single use.
func Partition[T any](i iter.Seq[T], size int) SingleUseSeq[[]T] {
	if size < 1 {
		panic(fmt.Sprintf("[Partition] invalid group size: %d", size))
	}
	return func(yield func([]T) bool) {
		var next, stop = iter.Pull(i)
		defer stop()

		var vs = make([]T, 0, size)
		var flush = func() bool {
			var cont bool = true
			if 0 < len(vs) {
				cont = yield(vs)
				vs = make([]T, 0, size)
			}
			return cont
		}

		for {
			v, ok := next()
			if !ok {
				if !flush() {
					return
				}
				break
			}
			vs = append(vs, v)
			if size <= len(vs) {
				if !flush() {
					return
				}
			}
		}
	}
}

// PartitionHead groups the upstream values the same way Partition does,
// except the short group, when the total length is not a multiple of size,
// is placed first rather than last.
// When the total length divides evenly there is no short group at all.
//
// Placing the shortfall up front requires knowing the total length before
// the first group can be emitted, so PartitionHead is intentionally eager:
// it fully drains the upstream into a buffer and returns a materialised result.
//
// The size must be a positive integer, anything else panics.
func PartitionHead[T any](i iter.Seq[T], size int) [][]T {
	if size < 1 {
		panic(fmt.Sprintf("[PartitionHead] invalid group size: %d", size))
	}
	var vs = Collect(i)
	if len(vs) == 0 {
		return nil
	}
	var out [][]T
	if head := len(vs) % size; 0 < head {
		out = append(out, vs[:head:head])
		vs = vs[head:]
	}
	for 0 < len(vs) {
		out = append(out, vs[:size:size])
		vs = vs[size:]
	}
	return out
}

// Present lazily filters out the absent values of an optional value sequence,
// yielding the unwrapped present values in their original order.
func Present[T any](i iter.Seq[opt.Opt[T]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for o := range i {
			if v, ok := o.Lookup(); ok {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// NonNil lazily filters out both the absent values and the nil pointers
// of an optional pointer sequence, preserving order.
func NonNil[T any](i iter.Seq[opt.Opt[*T]]) iter.Seq[*T] {
	return Filter(Present(i), func(ptr *T) bool {
		return ptr != nil
	})
}

func Filter[T any](i iter.Seq[T], filter func(T) bool) iter.Seq[T] {
	if i == nil {
		return nil
	}
	return func(yield func(T) bool) {
		for v := range i {
			if filter(v) {
				if !yield(v) {
					break
				}
			}
		}
	}
}

// Map allows you to do additional transformation on the values.
// This is useful in cases, where you have to alter the input value,
// or change the type all together.
func Map[To any, From any](i iter.Seq[From], transform func(From) To) iter.Seq[To] {
	return func(yield func(To) bool) {
		for v := range i {
			if !yield(transform(v)) {
				break
			}
		}
	}
}

func Reduce[R, T any](i iter.Seq[T], initial R, fn func(R, T) R) R {
	var v = initial
	for c := range i {
		v = fn(v, c)
	}
	return v
}

// First decodes the first value of the iterator and stops the iteration.
func First[T any](i iter.Seq[T]) (T, bool) {
	for v := range i {
		return v, true
	}
	var zero T
	return zero, false
}

func Last[T any](i iter.Seq[T]) (T, bool) {
	var (
		last T
		ok   bool
	)
	for v := range i {
		last = v
		ok = true
	}
	return last, ok
}

// Count will iterate over and count the total iterations number.
//
// Good when all you want is to count all the elements in an iterator but don't want to do anything else.
func Count[T any](i iter.Seq[T]) int {
	var total int
	for range i {
		total++
	}
	return total
}

func Limit[V any](i iter.Seq[V], n int) iter.Seq[V] {
	return func(yield func(V) bool) {
		next, stop := iter.Pull(i)
		defer stop()
		for limit := n; 0 < limit; limit-- {
			v, ok := next()
			if !ok {
				break
			}
			if !yield(v) {
				return
			}
		}
	}
}

func Offset[V any](i iter.Seq[V], offset int) iter.Seq[V] {
	return func(yield func(V) bool) {
		next, stop := iter.Pull(i)
		defer stop()
		for i := 0; i < offset; i++ {
			v, ok := next()
			if !ok {
				return
			}
			_ = v // dispose
		}
		for {
			v, ok := next()
			if !ok {
				break
			}
			if !yield(v) {
				return
			}
		}
	}
}

// IntRange returns an iterator that will range between the specified `begin` and the `end` int.
func IntRange(begin, end int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; begin+i < end+1; i++ {
			if !yield(begin + i) {
				break
			}
		}
	}
}

// CharRange returns an iterator that will range between the specified `begin` and the `end` rune.
func CharRange(begin, end rune) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for i := rune(0); begin+i < end+1; i++ {
			if !yield(begin + i) {
				break
			}
		}
	}
}

// Once guards an iterator, so it can be walked only once.
// Any iteration attempt after the first yields nothing.
func Once[T any](i iter.Seq[T]) SingleUseSeq[T] {
	var done int32
	return func(yield func(T) bool) {
		if !atomic.CompareAndSwapInt32(&done, 0, 1) {
			return
		}
		for v := range i {
			if !yield(v) {
				return
			}
		}
	}
}

// Reverse will reverse the iteration direction.
//
// # WARNING
//
// It does not work with infinite iterators,
// as it requires to collect all values before it can reverse the elements.
func Reverse[T any](i iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		var vs []T = Collect(i)
		for i := len(vs) - 1; 0 <= i; i-- {
			if !yield(vs[i]) {
				return
			}
		}
	}
}
