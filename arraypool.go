package objectpool

import "github.com/pkg/errors"

// ArrayPool tracks its objects with a fixed arena of capacity slots, a LIFO
// free list of slot indices, and a per-slot in-use flag. A fresh pool hands
// out slots in index order; after that, a released slot is reused before
// older ones. Acquire and release are O(1).
type ArrayPool[T any, PT Resetter[T]] struct {
	id       string
	capacity int
	arena    []T
	free     []int
	inUse    []bool
	index    map[*T]int
	used     int
	closed   bool
	i        Instrument
}

// NewArrayPool allocates capacity zero-valued objects in a single arena. All
// objects start available.
func NewArrayPool[T any, PT Resetter[T]](id string, capacity int, i Instrument) (*ArrayPool[T, PT], error) {
	if capacity < 1 {
		return nil, errors.Errorf("invalid capacity [%d]", capacity)
	}
	pool := &ArrayPool[T, PT]{
		id:       id,
		capacity: capacity,
		arena:    make([]T, capacity),
		free:     make([]int, capacity),
		inUse:    make([]bool, capacity),
		index:    make(map[*T]int, capacity),
		i:        i,
	}
	for slot := 0; slot < capacity; slot++ {
		// seeded descending, so the first pop yields slot 0
		pool.free[slot] = capacity - 1 - slot
		pool.index[&pool.arena[slot]] = slot
	}
	if pool.i != nil {
		pool.i.Allocated(pool.id, capacity)
	}
	return pool, nil
}

func (self *ArrayPool[T, PT]) Acquire() *T {
	if self.closed {
		return nil
	}
	if len(self.free) < 1 {
		if self.i != nil {
			self.i.Exhausted(self.id)
		}
		return nil
	}
	slot := self.free[len(self.free)-1]
	self.free = self.free[:len(self.free)-1]
	self.inUse[slot] = true
	self.used++
	if self.i != nil {
		self.i.Acquired(self.id)
	}
	return &self.arena[slot]
}

func (self *ArrayPool[T, PT]) Release(obj *T) {
	if self.closed {
		return
	}
	slot, found := self.index[obj]
	if !found || !self.inUse[slot] {
		if self.i != nil {
			self.i.UnknownRelease(self.id)
		}
		return
	}
	PT(obj).Reset()
	self.inUse[slot] = false
	self.free = append(self.free, slot)
	self.used--
	if self.i != nil {
		self.i.Released(self.id)
	}
}

func (self *ArrayPool[T, PT]) Capacity() int {
	return self.capacity
}

func (self *ArrayPool[T, PT]) Available() int {
	return len(self.free)
}

func (self *ArrayPool[T, PT]) InUse() int {
	return self.used
}

func (self *ArrayPool[T, PT]) Close() {
	if self.closed {
		return
	}
	self.closed = true
	self.arena = nil
	self.free = nil
	self.inUse = nil
	self.index = nil
	self.used = 0
	if self.i != nil {
		self.i.Closed(self.id)
	}
}
