package objectpool

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

// Acquisition follows handle order, which is unrelated to construction
// order; assert membership, never sequence.
func TestMultisetPoolAcquiresEveryObject(t *testing.T) {
	p, err := NewMultisetPool[testObject]("membershipTest", 8, nil)
	assert.NoError(t, err)

	seen := make(map[*testObject]struct{})
	for i := 0; i < 8; i++ {
		obj := p.Acquire()
		assert.NotNil(t, obj)
		seen[obj] = struct{}{}
	}
	assert.Equal(t, 8, len(seen))
	for obj := range p.handles {
		_, found := seen[obj]
		assert.True(t, found)
	}
}

func TestMultisetPoolHandleOrder(t *testing.T) {
	p, err := NewMultisetPool[testObject]("handleOrderTest", 8, nil)
	assert.NoError(t, err)

	last := uint64(0)
	for i := 0; i < 8; i++ {
		obj := p.Acquire()
		assert.NotNil(t, obj)
		handle := p.handles[obj]
		assert.True(t, handle > last)
		last = handle
	}
}

// Both multisets hold exactly capacity entries at all times; acquire and
// release only trade handles for empty markers.
func TestMultisetPoolMarkerBalance(t *testing.T) {
	p, err := NewMultisetPool[testObject]("markerTest", 4, nil)
	assert.NoError(t, err)
	assert.Equal(t, 4, p.available.Size())
	assert.Equal(t, 4, p.inUse.Size())
	assert.Equal(t, 0, p.available.Count(emptyMarker))
	assert.Equal(t, 4, p.inUse.Count(emptyMarker))

	obj := p.Acquire()
	assert.NotNil(t, obj)
	assert.Equal(t, 4, p.available.Size())
	assert.Equal(t, 4, p.inUse.Size())
	assert.Equal(t, 1, p.available.Count(emptyMarker))
	assert.Equal(t, 3, p.inUse.Count(emptyMarker))

	p.Release(obj)
	assert.Equal(t, 0, p.available.Count(emptyMarker))
	assert.Equal(t, 4, p.inUse.Count(emptyMarker))
}

func benchmarkMultisetPool(sz int, b *testing.B) {
	p, err := NewMultisetPool[testObject]("benchmark", sz, nil)
	if err != nil {
		panic(err)
	}
	acquired := make([]*testObject, 0, sz)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		acquired = acquired[:0]
		for j := 0; j < sz; j++ {
			acquired = append(acquired, p.Acquire())
		}
		for j := 0; j < sz; j++ {
			p.Release(acquired[j])
		}
	}
}

func BenchmarkMultisetPool_1024(b *testing.B)  { benchmarkMultisetPool(1024, b) }
func BenchmarkMultisetPool_4096(b *testing.B)  { benchmarkMultisetPool(4096, b) }
func BenchmarkMultisetPool_16384(b *testing.B) { benchmarkMultisetPool(16384, b) }
