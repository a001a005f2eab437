package util

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestMultisetDuplicates(t *testing.T) {
	ms := NewMultiset()
	ms.Insert(0)
	ms.Insert(0)
	ms.Insert(7)
	assert.Equal(t, 3, ms.Size())
	assert.Equal(t, 2, ms.Count(0))
	assert.True(t, ms.Contains(7))

	assert.True(t, ms.Remove(0))
	assert.Equal(t, 1, ms.Count(0))
	assert.True(t, ms.Remove(0))
	assert.False(t, ms.Remove(0))
	assert.Equal(t, 1, ms.Size())
	assert.False(t, ms.Contains(0))
}

func TestMultisetOrdering(t *testing.T) {
	ms := NewMultiset()
	for _, key := range []uint64{42, 7, 99, 7} {
		ms.Insert(key)
	}

	min, found := ms.Min()
	assert.True(t, found)
	assert.Equal(t, uint64(7), min)

	ceiling, found := ms.Ceiling(8)
	assert.True(t, found)
	assert.Equal(t, uint64(42), ceiling)

	ceiling, found = ms.Ceiling(99)
	assert.True(t, found)
	assert.Equal(t, uint64(99), ceiling)

	_, found = ms.Ceiling(100)
	assert.False(t, found)
}

func TestMultisetEmpty(t *testing.T) {
	ms := NewMultiset()
	assert.Equal(t, 0, ms.Size())

	_, found := ms.Min()
	assert.False(t, found)

	_, found = ms.Ceiling(0)
	assert.False(t, found)
}
