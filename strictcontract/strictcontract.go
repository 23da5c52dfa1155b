// Package strictcontract defines the behavioral expectations towards
// strict.Container implementations as a reusable testing suite.
package strictcontract

import (
	"iter"
	"testing"

	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/pkg/iterkit/iterkitcontract"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/strict"
)

// Container returns the contract suite that every strict.Container
// implementation must pass. The make function is expected to return an
// already populated container; the suite only exercises the shared
// read-only surface, so the invariants of the concrete type stay intact.
func Container[T any](mk contract.Make[strict.Container[T]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) strict.Container[T] {
		return mk(t)
	})

	s.Test("the length is always strictly positive", func(t *testcase.T) {
		assert.True(t, 1 <= subject.Get(t).Len())
	})

	s.Test("HasLen agrees with Len", func(t *testcase.T) {
		con := subject.Get(t)
		assert.True(t, con.HasLen(con.Len()))
		assert.False(t, con.HasLen(con.Len()+1))
		assert.False(t, con.HasLen(0))
	})

	s.Test("First is the element at index zero", func(t *testcase.T) {
		con := subject.Get(t)
		got, ok := con.Lookup(0)
		assert.True(t, ok)
		assert.Equal(t, con.First(), got)
	})

	s.Test("Lookup covers every index up to the length", func(t *testcase.T) {
		con := subject.Get(t)
		vs := con.ToSlice()
		assert.Equal(t, con.Len(), len(vs))
		for i, exp := range vs {
			got, ok := con.Lookup(i)
			assert.True(t, ok)
			assert.Equal(t, exp, got)
		}
	})

	s.Test("Lookup reports absence outside the valid range", func(t *testcase.T) {
		con := subject.Get(t)
		_, ok := con.Lookup(-1)
		assert.False(t, ok)
		_, ok = con.Lookup(con.Len())
		assert.False(t, ok)
	})

	s.Test("iteration yields the elements in slot order", func(t *testcase.T) {
		con := subject.Get(t)
		assert.Equal(t, con.ToSlice(), iterkit.Collect(con.Iter()))
	})

	s.Test("iteration is restartable without consumption side effects", func(t *testcase.T) {
		con := subject.Get(t)
		i := con.Iter()
		assert.Equal(t, iterkit.Collect(i), iterkit.Collect(i))
	})

	s.Describe("#Iter", iterkitcontract.IterSeq(func(tb testing.TB) iter.Seq[T] {
		return mk(tb).Iter()
	}).Spec)

	return s.AsSuite("Container")
}
