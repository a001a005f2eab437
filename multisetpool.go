package objectpool

import (
	"github.com/openziti/objectpool/util"
	"github.com/pkg/errors"
	"unsafe"
)

// emptyMarker occupies a bookkeeping entry that currently holds no object.
// Between handles and markers, each multiset always holds exactly capacity
// entries.
const emptyMarker = uint64(0)

// MultisetPool tracks its objects with two ordered multisets of handles,
// one per state, padded with duplicate empty markers. Acquire takes the
// smallest available handle, so acquisition order follows handle order
// rather than construction order; callers that need slot-index ordering
// should use ArrayPool.
type MultisetPool[T any, PT Resetter[T]] struct {
	id        string
	capacity  int
	objects   map[uint64]*T
	handles   map[*T]uint64
	available *util.Multiset
	inUse     *util.Multiset
	closed    bool
	i         Instrument
}

// NewMultisetPool allocates capacity zero-valued objects, all available.
func NewMultisetPool[T any, PT Resetter[T]](id string, capacity int, i Instrument) (*MultisetPool[T, PT], error) {
	if capacity < 1 {
		return nil, errors.Errorf("invalid capacity [%d]", capacity)
	}
	pool := &MultisetPool[T, PT]{
		id:        id,
		capacity:  capacity,
		objects:   make(map[uint64]*T, capacity),
		handles:   make(map[*T]uint64, capacity),
		available: util.NewMultiset(),
		inUse:     util.NewMultiset(),
		i:         i,
	}
	for j := 0; j < capacity; j++ {
		obj := new(T)
		handle := handleOf(obj)
		pool.objects[handle] = obj
		pool.handles[obj] = handle
		pool.available.Insert(handle)
		pool.inUse.Insert(emptyMarker)
	}
	if pool.i != nil {
		pool.i.Allocated(pool.id, capacity)
	}
	return pool, nil
}

// handleOf derives an ordering handle from the object's address. The
// conversion is one-way: handles index the objects map, and are never
// turned back into pointers.
func handleOf[T any](obj *T) uint64 {
	return uint64(uintptr(unsafe.Pointer(obj)))
}

func (self *MultisetPool[T, PT]) Acquire() *T {
	if self.closed {
		return nil
	}
	handle, found := self.available.Ceiling(emptyMarker + 1)
	if !found {
		if self.i != nil {
			self.i.Exhausted(self.id)
		}
		return nil
	}
	self.available.Remove(handle)
	self.available.Insert(emptyMarker)
	self.inUse.Remove(emptyMarker)
	self.inUse.Insert(handle)
	if self.i != nil {
		self.i.Acquired(self.id)
	}
	return self.objects[handle]
}

func (self *MultisetPool[T, PT]) Release(obj *T) {
	if self.closed {
		return
	}
	handle, found := self.handles[obj]
	if !found || !self.inUse.Contains(handle) {
		if self.i != nil {
			self.i.UnknownRelease(self.id)
		}
		return
	}
	PT(obj).Reset()
	self.inUse.Remove(handle)
	self.inUse.Insert(emptyMarker)
	self.available.Remove(emptyMarker)
	self.available.Insert(handle)
	if self.i != nil {
		self.i.Released(self.id)
	}
}

func (self *MultisetPool[T, PT]) Capacity() int {
	return self.capacity
}

func (self *MultisetPool[T, PT]) Available() int {
	if self.closed {
		return 0
	}
	return self.available.Size() - self.available.Count(emptyMarker)
}

func (self *MultisetPool[T, PT]) InUse() int {
	if self.closed {
		return 0
	}
	return self.inUse.Size() - self.inUse.Count(emptyMarker)
}

func (self *MultisetPool[T, PT]) Close() {
	if self.closed {
		return
	}
	self.closed = true
	self.objects = nil
	self.handles = nil
	self.available = nil
	self.inUse = nil
	if self.i != nil {
		self.i.Closed(self.id)
	}
}
