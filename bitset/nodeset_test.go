package bitset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetGetClear(t *testing.T) {
	s := New(130) // spans 3 words
	assert.False(t, s.Get(0))
	s.Set(0)
	s.Set(64)
	s.Set(129)
	assert.True(t, s.Get(0))
	assert.True(t, s.Get(64))
	assert.True(t, s.Get(129))
	assert.Equal(t, 3, s.PopCount())

	s.Clear(64)
	assert.False(t, s.Get(64))
	assert.Equal(t, 2, s.PopCount())
}

func TestClearAllAndEmpty(t *testing.T) {
	s := New(70)
	assert.True(t, s.Empty())
	s.Set(69)
	assert.False(t, s.Empty())
	s.ClearAll()
	assert.True(t, s.Empty())
}

func TestUnionIntersectDifference(t *testing.T) {
	a := New(64)
	b := New(64)
	a.Set(1)
	a.Set(2)
	b.Set(2)
	b.Set(3)

	union := a.Clone()
	union.UnionWith(b)
	assert.Equal(t, []int{1, 2, 3}, union.Slice())

	inter := a.Clone()
	inter.IntersectWith(b)
	assert.Equal(t, []int{2}, inter.Slice())

	diff := a.Clone()
	diff.DifferenceWith(b)
	assert.Equal(t, []int{1}, diff.Slice())

	sym := a.Clone()
	sym.SymmetricDifferenceWith(b)
	assert.Equal(t, []int{1, 3}, sym.Slice())
}

func TestIntersects(t *testing.T) {
	a := New(64)
	b := New(64)
	a.Set(5)
	assert.False(t, a.Intersects(b))
	b.Set(5)
	assert.True(t, a.Intersects(b))
}

func TestCopyFromDoesNotReallocate(t *testing.T) {
	a := New(64)
	a.Set(3)
	b := New(64)
	before := &b.words[0]
	b.CopyFrom(a)
	after := &b.words[0]
	assert.Same(t, before, after)
	assert.True(t, b.Get(3))
}

func TestNextSetAndEach(t *testing.T) {
	s := New(200)
	s.Set(0)
	s.Set(63)
	s.Set(64)
	s.Set(199)

	var got []int
	s.Each(func(id int) { got = append(got, id) })
	assert.Equal(t, []int{0, 63, 64, 199}, got)

	next, ok := s.NextSet(1)
	assert.True(t, ok)
	assert.Equal(t, 63, next)

	_, ok = s.NextSet(200)
	assert.False(t, ok)
}

func TestFlipAll(t *testing.T) {
	s := New(10)
	s.Set(0)
	s.FlipAll()
	assert.False(t, s.Get(0))
	assert.True(t, s.Get(1))
}

func TestEqual(t *testing.T) {
	a := New(64)
	b := New(64)
	a.Set(4)
	b.Set(4)
	assert.True(t, a.Equal(b))
	b.Set(5)
	assert.False(t, a.Equal(b))
}

func TestRotateXorFoldDependsOnOrder(t *testing.T) {
	h1 := RotateXorFold([]uint64{1, 2, 3})
	h2 := RotateXorFold([]uint64{3, 2, 1})
	assert.NotEqual(t, h1, h2)

	h3 := RotateXorFold([]uint64{1, 2, 3})
	assert.Equal(t, h1, h3)
}
