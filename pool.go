// Package objectpool provides a fixed-capacity object pool: a store of N
// pre-allocated objects of a single type, handed out to callers on demand
// and returned for reuse, so that a hot loop avoids repeated allocation of
// identically-sized objects.
//
// Two interchangeable bookkeeping strategies implement the same Pool
// contract: ArrayPool (an arena of slots plus an index free list) and
// MultisetPool (ordered multisets of object handles). They differ only in
// the data structure used for slot bookkeeping and in the order available
// objects are handed out.
//
// Pools are not safe for concurrent use. Callers sharing a pool across
// goroutines must provide their own locking.
package objectpool

// Resetter constrains the pooled object type: *T must be able to restore
// itself to a clean, reusable state. The pool invokes Reset on every
// release, before the object becomes available again, so the next acquirer
// always receives a logically-clean object.
type Resetter[T any] interface {
	*T
	Reset()
}

// Pool is the contract shared by both bookkeeping strategies. A pool owns
// exactly Capacity objects for its entire lifetime; acquired references are
// non-owning, time-bounded loans.
type Pool[T any] interface {
	// Acquire returns a reference to an available object, or nil when the
	// pool is exhausted. Exhaustion is an ordinary outcome a caller must
	// check for, not an error.
	Acquire() *T

	// Release returns an acquired object to the pool, invoking its Reset
	// before it becomes available again. A reference the pool does not
	// currently track as in-use (never acquired, already released, or
	// foreign) is ignored; bookkeeping is never corrupted by a caller bug.
	Release(obj *T)

	// Capacity returns the fixed number of objects the pool owns.
	Capacity() int

	// Available returns the number of objects currently available.
	Available() int

	// InUse returns the number of objects currently acquired.
	InUse() int

	// Close tears down the pool, reclaiming all owned objects as a unit
	// regardless of how many are still acquired. Close is idempotent. A
	// closed pool returns nil from Acquire and ignores Release.
	Close()
}

// Instrument receives notifications of pool lifecycle events. All pool
// constructors accept a nil Instrument.
type Instrument interface {
	Allocated(id string, capacity int)
	Acquired(id string)
	Exhausted(id string)
	Released(id string)
	UnknownRelease(id string)
	Closed(id string)
}
