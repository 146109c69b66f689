package fingerprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPutIfLessInsertsOnce(t *testing.T) {
	m := New(1, 16)
	key := []uint64{42}

	assert.True(t, m.PutIfLess(key, 5))
	g, ok := m.Get(key)
	assert.True(t, ok)
	assert.Equal(t, 5, g)
	assert.Equal(t, 1, m.Len())
}

func TestPutIfLessReplacesOnlyWhenSmaller(t *testing.T) {
	m := New(1, 16)
	key := []uint64{7}
	assert.True(t, m.PutIfLess(key, 10))

	assert.False(t, m.PutIfLess(key, 12))
	g, _ := m.Get(key)
	assert.Equal(t, 10, g)

	assert.True(t, m.PutIfLess(key, 3))
	g, _ = m.Get(key)
	assert.Equal(t, 3, g)
}

func TestGetMissing(t *testing.T) {
	m := New(1, 16)
	_, ok := m.Get([]uint64{99})
	assert.False(t, ok)
}

func TestGrowsAndPreservesEntries(t *testing.T) {
	m := New(2, 4) // tiny initial capacity to force growth quickly
	for i := 0; i < 200; i++ {
		key := []uint64{uint64(i), uint64(i * 31)}
		assert.True(t, m.PutIfLess(key, i+1))
	}
	assert.Equal(t, 200, m.Len())
	for i := 0; i < 200; i++ {
		key := []uint64{uint64(i), uint64(i * 31)}
		g, ok := m.Get(key)
		assert.True(t, ok)
		assert.Equal(t, i+1, g)
	}
}

func TestOverflowed(t *testing.T) {
	assert.False(t, Overflowed(1))
	assert.False(t, Overflowed(maxG))
	assert.True(t, Overflowed(maxG+1))
}
