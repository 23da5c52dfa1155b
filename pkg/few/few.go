// Package few provides OneToThree, an ordered collection that holds exactly
// one, two or three elements, fixed at construction time.
//
// Encoding the arity in the value lets the consumer dispatch on Len without
// defending against emptiness or unbounded growth, while the inline element
// slots avoid any heap indirection.
package few

import (
	"cmp"
	"fmt"
	"iter"

	"go.llib.dev/frameless/pkg/compare"
	"go.llib.dev/frameless/pkg/errorkit"
)

const (
	// ErrEmptySource is returned when converting from an empty slice.
	ErrEmptySource errorkit.Error = "empty source"
	// ErrTooManyElements is returned when converting from a slice
	// that holds more than three elements.
	ErrTooManyElements errorkit.Error = "too many elements"
)

// OneToThree holds exactly one, two or three elements of T in order.
//
// The arity is fixed at construction and never changes afterwards;
// transformations like Map or SortedBy produce new values of the same arity
// instead of mutating it.
//
// OneToThree is comparable whenever T is: the unused slots of a given arity
// always hold the zero value of T, so == compares the arity and the
// populated slots pairwise, and values can be used as map keys.
// The zero OneToThree is not valid; construct it with One, Two, Three
// or FromSlice.
type OneToThree[T any] struct {
	n       int
	a, b, c T
}

// One returns a OneToThree holding a single element.
func One[T any](a T) OneToThree[T] { return OneToThree[T]{n: 1, a: a} }

// Two returns a OneToThree holding exactly two elements, in order.
func Two[T any](a, b T) OneToThree[T] { return OneToThree[T]{n: 2, a: a, b: b} }

// Three returns a OneToThree holding exactly three elements, in order.
func Three[T any](a, b, c T) OneToThree[T] { return OneToThree[T]{n: 3, a: a, b: b, c: c} }

// FromSlice converts a slice of one to three elements, preserving order.
// It returns ErrEmptySource for an empty slice and ErrTooManyElements for a
// slice longer than three; excess elements are never silently dropped.
func FromSlice[T any](vs []T) (OneToThree[T], error) {
	switch len(vs) {
	case 0:
		return OneToThree[T]{}, ErrEmptySource
	case 1:
		return One(vs[0]), nil
	case 2:
		return Two(vs[0], vs[1]), nil
	case 3:
		return Three(vs[0], vs[1], vs[2]), nil
	default:
		return OneToThree[T]{}, ErrTooManyElements.F("length: %d", len(vs))
	}
}

// Len returns the arity: 1, 2 or 3.
// Unlike a nonempty sequence's length, this is exact, not a lower bound.
func (v OneToThree[T]) Len() int { return v.n }

// HasLen reports whether the arity is exactly n.
func (v OneToThree[T]) HasLen(n int) bool { return v.n == n }

// First returns the element at index zero, present in every arity.
func (v OneToThree[T]) First() T { return v.a }

// FirstPtr returns a pointer to the element at index zero.
func (v *OneToThree[T]) FirstPtr() *T { return &v.a }

// Lookup returns the element at the given index.
// An index at or above the arity is a normal outcome,
// reported with a false ok flag.
func (v OneToThree[T]) Lookup(index int) (T, bool) {
	switch {
	case index == 0 && 1 <= v.n:
		return v.a, true
	case index == 1 && 2 <= v.n:
		return v.b, true
	case index == 2 && 3 <= v.n:
		return v.c, true
	default:
		var zero T
		return zero, false
	}
}

// LookupPtr returns a pointer to the element at the given index,
// or a false ok flag when the index is at or above the arity.
func (v *OneToThree[T]) LookupPtr(index int) (*T, bool) {
	switch {
	case index == 0 && 1 <= v.n:
		return &v.a, true
	case index == 1 && 2 <= v.n:
		return &v.b, true
	case index == 2 && 3 <= v.n:
		return &v.c, true
	default:
		return nil, false
	}
}

// Iter yields the elements in slot order by probing Lookup with increasing
// indexes until it reports absence. The sequence is finite and restartable.
func (v OneToThree[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; ; i++ {
			e, ok := v.Lookup(i)
			if !ok {
				return
			}
			if !yield(e) {
				return
			}
		}
	}
}

// ToSlice returns the elements in slot order as a new slice of arity length.
func (v OneToThree[T]) ToSlice() []T {
	switch v.n {
	case 1:
		return []T{v.a}
	case 2:
		return []T{v.a, v.b}
	case 3:
		return []T{v.a, v.b, v.c}
	default:
		return nil
	}
}

// ToPtrSlice returns pointers to the slots in order, as a slice of arity
// length, allowing in-place mutation of the elements.
func (v *OneToThree[T]) ToPtrSlice() []*T {
	switch v.n {
	case 1:
		return []*T{&v.a}
	case 2:
		return []*T{&v.a, &v.b}
	case 3:
		return []*T{&v.a, &v.b, &v.c}
	default:
		return nil
	}
}

// SortedBy returns a OneToThree of the same arity with the elements in
// non-decreasing order according to the given comparison function.
//
// Arity two takes a single comparison; arity three selects among the six
// possible permutations with an explicit comparison decision tree.
func (v OneToThree[T]) SortedBy(cmp func(a, b T) int) OneToThree[T] {
	less := func(a, b T) bool { return compare.IsLess(cmp(a, b)) }
	switch v.n {
	case 2:
		if less(v.b, v.a) {
			return Two(v.b, v.a)
		}
		return v
	case 3:
		a, b, c := v.a, v.b, v.c
		switch {
		case less(a, b):
			switch {
			case less(b, c):
				return Three(a, b, c)
			case less(a, c):
				return Three(a, c, b)
			default:
				return Three(c, a, b)
			}
		case less(a, c):
			return Three(b, a, c)
		case less(b, c):
			return Three(b, c, a)
		default:
			return Three(c, b, a)
		}
	default:
		return v
	}
}

// String formats the value as an ordered list of its elements,
// the same way a slice would format, regardless of the arity.
func (v OneToThree[T]) String() string {
	return fmt.Sprintf("%v", v.ToSlice())
}

// Sorted returns the value with its elements in non-decreasing natural order.
func Sorted[T cmp.Ordered](v OneToThree[T]) OneToThree[T] {
	return v.SortedBy(cmp.Compare[T])
}

// Equal reports whether two values have the same arity and pairwise equal
// elements in slot order. It is equivalent to the == operator,
// which OneToThree supports for comparable element types.
func Equal[T comparable](a, b OneToThree[T]) bool { return a == b }

// Map applies a transformation to every slot,
// producing a OneToThree of the output type with the same arity.
func Map[O, I any](v OneToThree[I], fn func(I) O) OneToThree[O] {
	switch v.n {
	case 1:
		return One(fn(v.a))
	case 2:
		return Two(fn(v.a), fn(v.b))
	case 3:
		return Three(fn(v.a), fn(v.b), fn(v.c))
	default:
		return OneToThree[O]{}
	}
}

// TryMap applies a fallible transformation to every slot in order.
// The first failure short-circuits the mapping and is returned as is;
// when every call succeeds, the result preserves the arity.
func TryMap[O, I any](v OneToThree[I], fn func(I) (O, error)) (OneToThree[O], error) {
	var zero OneToThree[O]
	switch v.n {
	case 1:
		a, err := fn(v.a)
		if err != nil {
			return zero, err
		}
		return One(a), nil
	case 2:
		a, err := fn(v.a)
		if err != nil {
			return zero, err
		}
		b, err := fn(v.b)
		if err != nil {
			return zero, err
		}
		return Two(a, b), nil
	case 3:
		a, err := fn(v.a)
		if err != nil {
			return zero, err
		}
		b, err := fn(v.b)
		if err != nil {
			return zero, err
		}
		c, err := fn(v.c)
		if err != nil {
			return zero, err
		}
		return Three(a, b, c), nil
	default:
		return zero, nil
	}
}
