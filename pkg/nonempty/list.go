package nonempty

import (
	"iter"
	"slices"
)

// List is a growable sequence that always holds at least one element.
//
// It is a mostly costless wrapping of a slice: reading operations don't need
// an ok flag or an error for the first and last element, because the length
// invariant already proves their existence.
// The zero List is not valid; construct it with New or FromSlice.
type List[T any] struct {
	vs []T
}

// New returns a List that holds the given elements.
// It cannot fail since at least one element is required by the signature.
func New[T any](first T, rest ...T) List[T] {
	vs := make([]T, 0, 1+len(rest))
	vs = append(vs, first)
	vs = append(vs, rest...)
	return List[T]{vs: vs}
}

// FromSlice wraps the given slice into a List.
// It returns ErrNotEnoughElements when the slice is empty.
//
// The List takes ownership of the slice;
// the caller should not use it afterwards.
func FromSlice[T any](vs []T) (List[T], error) {
	if len(vs) == 0 {
		return List[T]{}, ErrNotEnoughElements
	}
	return List[T]{vs: vs}, nil
}

// Len returns the current element count, which is always at least one.
func (l List[T]) Len() int { return len(l.vs) }

// HasLen reports whether the List currently holds exactly n elements.
func (l List[T]) HasLen(n int) bool { return len(l.vs) == n }

// First returns the element at index zero.
func (l List[T]) First() T { return l.vs[0] }

// Last returns the element at the final index.
func (l List[T]) Last() T { return l.vs[len(l.vs)-1] }

// FirstPtr returns a pointer to the element at index zero.
// The pointer aliases the backing slice and stays valid until the next
// growing or shrinking operation on the List.
func (l *List[T]) FirstPtr() *T { return &l.vs[0] }

// LastPtr returns a pointer to the element at the final index.
// The same aliasing rules apply as for FirstPtr.
func (l *List[T]) LastPtr() *T { return &l.vs[len(l.vs)-1] }

// Lookup returns the element at the given index.
// An index outside the valid range is reported with a false ok flag.
func (l List[T]) Lookup(index int) (T, bool) {
	if index < 0 || len(l.vs) <= index {
		var zero T
		return zero, false
	}
	return l.vs[index], true
}

// LookupPtr returns a pointer to the element at the given index,
// or a false ok flag when the index is outside the valid range.
func (l *List[T]) LookupPtr(index int) (*T, bool) {
	if index < 0 || len(l.vs) <= index {
		return nil, false
	}
	return &l.vs[index], true
}

// Set overwrites the element at the given index.
func (l *List[T]) Set(index int, v T) error {
	if index < 0 || len(l.vs) <= index {
		return ErrOutOfBounds.F("index: %d, length: %d", index, len(l.vs))
	}
	l.vs[index] = v
	return nil
}

// Take returns the first element and discards the rest.
//
// Take consumes the List: the backing storage is released,
// and the List must not be used afterwards.
func (l *List[T]) Take() T {
	v := l.vs[0]
	l.vs = nil
	return v
}

// Append adds the given elements to the end of the List.
// Growth can never violate the length invariant, so Append always succeeds.
func (l *List[T]) Append(vs ...T) {
	l.vs = append(l.vs, vs...)
}

// Insert places the given elements at the given index,
// shifting everything at and after it towards the end.
// Index may equal Len, in which case Insert behaves like Append.
func (l *List[T]) Insert(index int, vs ...T) error {
	if index < 0 || len(l.vs) < index {
		return ErrOutOfBounds.F("index: %d, length: %d", index, len(l.vs))
	}
	l.vs = slices.Insert(l.vs, index, vs...)
	return nil
}

// Pop removes and returns the last element,
// unless the List holds a single element only.
// Refusing to shrink below one element is a normal, expected outcome,
// so it is reported with a false ok flag instead of an error.
func (l *List[T]) Pop() (T, bool) {
	if len(l.vs) == 1 {
		var zero T
		return zero, false
	}
	index := len(l.vs) - 1
	v := l.vs[index]
	l.vs = l.vs[:index]
	return v, true
}

// Remove removes and returns the element at the given index,
// shifting the remaining elements towards the front.
// It returns ErrNotEnoughElements when the List holds a single element,
// and ErrOutOfBounds when the index is outside the valid range;
// in both cases the List is left unchanged.
func (l *List[T]) Remove(index int) (T, error) {
	var zero T
	if len(l.vs) == 1 {
		return zero, ErrNotEnoughElements
	}
	if index < 0 || len(l.vs) <= index {
		return zero, ErrOutOfBounds.F("index: %d, length: %d", index, len(l.vs))
	}
	v := l.vs[index]
	l.vs = slices.Delete(l.vs, index, index+1)
	return v, nil
}

// SwapRemove removes and returns the element at the given index by swapping
// it with the last element and shrinking by one. It is O(1) but does not
// preserve the element order. The guards are the same as for Remove.
func (l *List[T]) SwapRemove(index int) (T, error) {
	var zero T
	if len(l.vs) == 1 {
		return zero, ErrNotEnoughElements
	}
	if index < 0 || len(l.vs) <= index {
		return zero, ErrOutOfBounds.F("index: %d, length: %d", index, len(l.vs))
	}
	last := len(l.vs) - 1
	v := l.vs[index]
	l.vs[index] = l.vs[last]
	l.vs = l.vs[:last]
	return v, nil
}

// Slice returns the backing slice for read or read-write traversal.
// Mutating elements through it is allowed; the returned header copy cannot
// shrink the List itself, so the invariant stays intact.
func (l *List[T]) Slice() []T { return l.vs }

// ToSlice returns a copy of the elements in order.
func (l List[T]) ToSlice() []T { return slices.Clone(l.vs) }

// Iter yields the elements in order.
// The sequence is finite and restartable.
func (l List[T]) Iter() iter.Seq[T] { return slices.Values(l.vs) }

// IterPtr yields a pointer to each element in order,
// allowing in-place mutation during traversal.
func (l *List[T]) IterPtr() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range l.vs {
			if !yield(&l.vs[i]) {
				return
			}
		}
	}
}
