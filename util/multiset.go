package util

import (
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
)

// Multiset is an ordered multiset of uint64 keys, backed by a red-black
// tree mapping each key to its count. Duplicate keys are permitted.
// Insertion and removal are amortized O(log n).
type Multiset struct {
	tree *redblacktree.Tree
	size int
}

func NewMultiset() *Multiset {
	return &Multiset{tree: redblacktree.NewWith(utils.UInt64Comparator)}
}

// Insert adds one instance of key.
func (self *Multiset) Insert(key uint64) {
	count := 0
	if v, found := self.tree.Get(key); found {
		count = v.(int)
	}
	self.tree.Put(key, count+1)
	self.size++
}

// Remove removes one instance of key, reporting whether an instance was
// present.
func (self *Multiset) Remove(key uint64) bool {
	v, found := self.tree.Get(key)
	if !found {
		return false
	}
	count := v.(int)
	if count > 1 {
		self.tree.Put(key, count-1)
	} else {
		self.tree.Remove(key)
	}
	self.size--
	return true
}

// Count returns the number of instances of key.
func (self *Multiset) Count(key uint64) int {
	if v, found := self.tree.Get(key); found {
		return v.(int)
	}
	return 0
}

func (self *Multiset) Contains(key uint64) bool {
	return self.Count(key) > 0
}

// Size returns the total number of instances across all keys.
func (self *Multiset) Size() int {
	return self.size
}

// Min returns the smallest key present.
func (self *Multiset) Min() (uint64, bool) {
	node := self.tree.Left()
	if node == nil {
		return 0, false
	}
	return node.Key.(uint64), true
}

// Ceiling returns the smallest key >= floor.
func (self *Multiset) Ceiling(floor uint64) (uint64, bool) {
	node, found := self.tree.Ceiling(floor)
	if !found {
		return 0, false
	}
	return node.Key.(uint64), true
}
