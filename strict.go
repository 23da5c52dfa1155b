// Package strict provides small container types that carry their length
// invariant in the type itself.
//
// A strict container proves "at least one element" or "exactly one, two or
// three elements" at construction time, so the consumer code doesn't need
// defensive emptiness checks at every call site.
// The containers are plain in-memory value types without any concurrency or
// I/O concern; their sharing rules are the sharing rules of their elements.
//
// The concrete container implementations live in their own packages:
//   - pkg/nonempty: List (owned, growable) and View (borrowed, read-only)
//   - pkg/few: OneToThree (exactly 1, 2 or 3 inline elements)
package strict

import "iter"

// Sizer is implemented by containers that can report their current length.
type Sizer interface {
	// Len returns the number of elements currently held by the container.
	// For strict containers the result is always a strictly positive number.
	Len() int
}

// Container is the read-only contract every container of this module
// fulfils, regardless of whether it owns its elements or only views them.
//
// Expectations towards an implementation are expressed
// in the strictcontract package.
type Container[T any] interface {
	Sizer
	// HasLen reports whether the container currently holds exactly n elements.
	HasLen(n int) bool
	// First returns the element at index zero.
	// The length invariant guarantees its existence, so there is no ok flag.
	First() T
	// Lookup returns the element at the given zero based index.
	// An index outside the valid range is a normal outcome, not an error,
	// and it is reported through the returned bool flag.
	Lookup(index int) (T, bool)
	// Iter yields the elements in slot order.
	// The returned sequence is finite and restartable.
	Iter() iter.Seq[T]
	// ToSlice returns the elements in slot order as a new slice.
	ToSlice() []T
}
