package few_test

import (
	"fmt"
	"hash/maphash"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/strict"
	"go.llib.dev/strict/pkg/few"
	"go.llib.dev/strict/strictcontract"
)

var _ strict.Container[int] = few.OneToThree[int]{}

func ExampleOneToThree() {
	v := few.Three(3, 1, 2)

	switch v.Len() {
	case 1:
		// single element
	case 2:
		// pair
	case 3:
		fmt.Println(few.Sorted(v))
	}
	// Output: [1 2 3]
}

func ExampleMap() {
	v := few.Map(few.Three(1, 2, 3), strconv.Itoa)
	fmt.Println(v)
	// Output: [1 2 3]
}

func ExampleTryMap() {
	v, err := few.TryMap(few.Two("1", "2"), strconv.Atoi)
	fmt.Println(v, err)
	// Output: [1 2] <nil>
}

func TestOneToThree_Len(t *testing.T) {
	assert.Equal(t, 1, few.One("a").Len())
	assert.Equal(t, 2, few.Two("a", "b").Len())
	assert.Equal(t, 3, few.Three("a", "b", "c").Len())

	assert.True(t, few.Two("a", "b").HasLen(2))
	assert.False(t, few.Two("a", "b").HasLen(3))
}

func TestOneToThree_First(t *testing.T) {
	assert.Equal(t, "a", few.One("a").First())
	assert.Equal(t, "a", few.Two("a", "b").First())
	assert.Equal(t, "a", few.Three("a", "b", "c").First())
}

func TestOneToThree_FirstPtr(t *testing.T) {
	v := few.Two(1, 2)
	*v.FirstPtr() = 42
	assert.Equal(t, few.Two(42, 2), v)
}

func TestOneToThree_Lookup(t *testing.T) {
	t.Run("within the arity", func(t *testing.T) {
		v := few.Three("a", "b", "c")
		for i, exp := range []string{"a", "b", "c"} {
			got, ok := v.Lookup(i)
			assert.True(t, ok)
			assert.Equal(t, exp, got)
		}
	})
	t.Run("at or above the arity the element is simply absent", func(t *testing.T) {
		_, ok := few.One("a").Lookup(1)
		assert.False(t, ok)
		_, ok = few.Two("a", "b").Lookup(2)
		assert.False(t, ok)
		_, ok = few.Three("a", "b", "c").Lookup(3)
		assert.False(t, ok)
		_, ok = few.Three("a", "b", "c").Lookup(-1)
		assert.False(t, ok)
	})
}

func TestOneToThree_LookupPtr(t *testing.T) {
	v := few.Three(1, 2, 3)
	ptr, ok := v.LookupPtr(2)
	assert.True(t, ok)
	*ptr = 42
	assert.Equal(t, few.Three(1, 2, 42), v)
	_, ok = v.LookupPtr(3)
	assert.False(t, ok)
}

func TestOneToThree_Iter(t *testing.T) {
	assert.Equal(t, []int{1}, iterkit.Collect(few.One(1).Iter()))
	assert.Equal(t, []int{1, 2}, iterkit.Collect(few.Two(1, 2).Iter()))
	assert.Equal(t, []int{1, 2, 3}, iterkit.Collect(few.Three(1, 2, 3).Iter()))
}

func TestOneToThree_ToSlice(t *testing.T) {
	assert.Equal(t, []string{"a"}, few.One("a").ToSlice())
	assert.Equal(t, []string{"a", "b"}, few.Two("a", "b").ToSlice())
	assert.Equal(t, []string{"a", "b", "c"}, few.Three("a", "b", "c").ToSlice())
}

func TestOneToThree_ToPtrSlice(t *testing.T) {
	v := few.Two(1, 2)
	for _, ptr := range v.ToPtrSlice() {
		*ptr *= 10
	}
	assert.Equal(t, few.Two(10, 20), v)
}

func TestSorted(t *testing.T) {
	t.Run("arity one", func(t *testing.T) {
		assert.Equal(t, few.One(1), few.Sorted(few.One(1)))
	})
	t.Run("arity two", func(t *testing.T) {
		assert.Equal(t, few.Two(2, 5), few.Sorted(few.Two(5, 2)))
		assert.Equal(t, few.Two(1, 2), few.Sorted(few.Two(1, 2)))
	})
	t.Run("arity three covers every permutation", func(t *testing.T) {
		exp := few.Three(1, 2, 3)
		for _, v := range []few.OneToThree[int]{
			few.Three(1, 2, 3),
			few.Three(1, 3, 2),
			few.Three(2, 1, 3),
			few.Three(2, 3, 1),
			few.Three(3, 1, 2),
			few.Three(3, 2, 1),
		} {
			assert.Equal(t, exp, few.Sorted(v), assert.MessageF("input: %s", v))
		}
	})
	t.Run("ties", func(t *testing.T) {
		assert.Equal(t, few.Three(1, 1, 2), few.Sorted(few.Three(1, 2, 1)))
		assert.Equal(t, few.Three(2, 3, 4), few.Sorted(few.Three(3, 2, 4)))
		assert.Equal(t, few.Three(7, 7, 7), few.Sorted(few.Three(7, 7, 7)))
	})
}

func TestOneToThree_SortedBy(t *testing.T) {
	byLength := func(a, b string) int { return len(a) - len(b) }
	v := few.Three("ccc", "a", "bb").SortedBy(byLength)
	assert.Equal(t, few.Three("a", "bb", "ccc"), v)
}

func TestMap(t *testing.T) {
	t.Run("the arity is preserved", func(t *testing.T) {
		assert.Equal(t, few.One("1"), few.Map(few.One(1), strconv.Itoa))
		assert.Equal(t, few.Two("1", "2"), few.Map(few.Two(1, 2), strconv.Itoa))
		assert.Equal(t, few.Three("1", "2", "3"), few.Map(few.Three(1, 2, 3), strconv.Itoa))
	})
}

func TestTryMap(t *testing.T) {
	t.Run("happy", func(t *testing.T) {
		got, err := few.TryMap(few.Three("1", "-2", "3"), strconv.Atoi)
		assert.NoError(t, err)
		assert.Equal(t, few.Three(1, -2, 3), got)
	})
	t.Run("rainy", func(t *testing.T) {
		_, err := few.TryMap(few.Three("1", "-2", "3"), func(s string) (uint64, error) {
			return strconv.ParseUint(s, 10, 64)
		})
		assert.Error(t, err)
	})
	t.Run("the first failure short-circuits in slot order", func(t *testing.T) {
		var calls []string
		expErr := fmt.Errorf("boom")
		_, err := few.TryMap(few.Three("a", "b", "c"), func(s string) (string, error) {
			calls = append(calls, s)
			if s == "b" {
				return "", expErr
			}
			return s, nil
		})
		assert.ErrorIs(t, err, expErr)
		assert.Equal(t, []string{"a", "b"}, calls)
	})
}

func TestFromSlice(t *testing.T) {
	t.Run("order is preserved front-to-back", func(t *testing.T) {
		got, err := few.FromSlice([]int{1})
		require.NoError(t, err)
		require.Equal(t, few.One(1), got)

		got, err = few.FromSlice([]int{1, 2})
		require.NoError(t, err)
		require.Equal(t, few.Two(1, 2), got)

		got, err = few.FromSlice([]int{1, 2, 3})
		require.NoError(t, err)
		require.Equal(t, few.Three(1, 2, 3), got)
	})
	t.Run("empty source", func(t *testing.T) {
		_, err := few.FromSlice[int](nil)
		require.ErrorIs(t, err, few.ErrEmptySource)
	})
	t.Run("more than three elements", func(t *testing.T) {
		_, err := few.FromSlice([]int{1, 2, 3, 4})
		require.ErrorIs(t, err, few.ErrTooManyElements)
	})
}

func TestOneToThree_equality(t *testing.T) {
	t.Run("same arity compares the slots pairwise", func(t *testing.T) {
		assert.True(t, few.Two(1, 2) == few.Two(1, 2))
		assert.False(t, few.Two(1, 2) == few.Two(2, 1))
		assert.True(t, few.Equal(few.Three(1, 2, 3), few.Three(1, 2, 3)))
		assert.False(t, few.Equal(few.Three(1, 2, 3), few.Three(1, 2, 4)))
	})
	t.Run("different arities are never equal", func(t *testing.T) {
		assert.False(t, few.Equal(few.One(1), few.Two(1, 0)))
		assert.False(t, few.Equal(few.Two(1, 2), few.Three(1, 2, 0)))
	})
}

func TestOneToThree_hashing(t *testing.T) {
	seed := maphash.MakeSeed()
	t.Run("equal values hash identically", func(t *testing.T) {
		a, b := few.Three(1, 2, 3), few.Three(1, 2, 3)
		assert.Equal(t, maphash.Comparable(seed, a), maphash.Comparable(seed, b))
	})
	t.Run("usable as a map key", func(t *testing.T) {
		index := map[few.OneToThree[string]]int{}
		index[few.Two("a", "b")] = 42
		assert.Equal(t, 42, index[few.Two("a", "b")])
		_, ok := index[few.Three("a", "b", "")]
		assert.False(t, ok, "a different arity is a different key even with zero value slots")
	})
}

func TestOneToThree_String(t *testing.T) {
	// every arity renders as an ordered list, without a variant tag
	assert.Equal(t, "[1]", few.One(1).String())
	assert.Equal(t, "[1 2]", few.Two(1, 2).String())
	assert.Equal(t, "[1 2 3]", fmt.Sprint(few.Three(1, 2, 3)))
}

func TestOneToThree_implementsContainer(t *testing.T) {
	t.Run("Container", strictcontract.Container(func(tb testing.TB) strict.Container[string] {
		t := testcase.ToT(&tb)
		switch t.Random.IntN(3) {
		case 0:
			return few.One(t.Random.String())
		case 1:
			return few.Two(t.Random.String(), t.Random.String())
		default:
			return few.Three(t.Random.String(), t.Random.String(), t.Random.String())
		}
	}).Test)
}
