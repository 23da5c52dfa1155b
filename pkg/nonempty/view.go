package nonempty

import (
	"iter"
	"slices"
	"unsafe"
)

// View is a read-only, non-owning window over at least one element.
//
// A View aliases storage that is owned elsewhere, without copying it.
// It must not be retained past the lifetime of that storage, and reads
// through it are only race-free while the storage is not mutated
// concurrently. The zero View is not valid; construct it with ViewOf or
// ViewOne.
type View[T any] struct {
	vs []T
}

// ViewOf wraps the given slice into a View without copying it.
// It returns ErrNotEnoughElements when the slice is empty.
func ViewOf[T any](vs []T) (View[T], error) {
	if len(vs) == 0 {
		return View[T]{}, ErrNotEnoughElements
	}
	return View[T]{vs: vs}, nil
}

// ViewOne returns a View over the single element the pointer refers to.
// It cannot fail, and it performs no copy: later writes through the pointer
// are visible through the View.
func ViewOne[T any](p *T) View[T] {
	return View[T]{vs: unsafe.Slice(p, 1)}
}

// Len returns the element count, which is always at least one.
func (v View[T]) Len() int { return len(v.vs) }

// HasLen reports whether the View covers exactly n elements.
func (v View[T]) HasLen(n int) bool { return len(v.vs) == n }

// First returns the element at index zero.
func (v View[T]) First() T { return v.vs[0] }

// Last returns the element at the final index.
func (v View[T]) Last() T { return v.vs[len(v.vs)-1] }

// Lookup returns the element at the given index.
// An index outside the valid range is reported with a false ok flag.
func (v View[T]) Lookup(index int) (T, bool) {
	if index < 0 || len(v.vs) <= index {
		var zero T
		return zero, false
	}
	return v.vs[index], true
}

// Slice returns the viewed slice itself.
// By contract the result is for reading only.
func (v View[T]) Slice() []T { return v.vs }

// ToSlice returns a copy of the viewed elements in order.
// The copy is safe to retain past the lifetime of the viewed storage.
func (v View[T]) ToSlice() []T { return slices.Clone(v.vs) }

// Iter yields the viewed elements in order.
// The sequence is finite and restartable.
func (v View[T]) Iter() iter.Seq[T] { return slices.Values(v.vs) }
