package objectpool

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestArrayPoolIndexOrder(t *testing.T) {
	p, err := NewArrayPool[testObject]("indexOrderTest", 4, nil)
	assert.NoError(t, err)
	for i := 0; i < 4; i++ {
		obj := p.Acquire()
		assert.True(t, obj == &p.arena[i])
	}
}

// Reuse is most-recently-released-first: the free list is a stack, not a
// scan over slot indices.
func TestArrayPoolLifoReuse(t *testing.T) {
	p, err := NewArrayPool[testObject]("lifoTest", 3, nil)
	assert.NoError(t, err)

	a := p.Acquire()
	b := p.Acquire()
	c := p.Acquire()
	p.Release(a)
	p.Release(b)

	assert.True(t, p.Acquire() == b)
	assert.True(t, p.Acquire() == a)

	p.Release(c)
	assert.True(t, p.Acquire() == c)
}

func benchmarkArrayPool(sz int, b *testing.B) {
	p, err := NewArrayPool[testObject]("benchmark", sz, nil)
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

func BenchmarkArrayPool_1024(b *testing.B)  { benchmarkArrayPool(1024, b) }
func BenchmarkArrayPool_4096(b *testing.B)  { benchmarkArrayPool(4096, b) }
func BenchmarkArrayPool_16384(b *testing.B) { benchmarkArrayPool(16384, b) }
