package bench

// bigObjectSize makes each pooled object occupy 1MB of RAM, large enough
// that allocator behavior dominates the timed passes.
const bigObjectSize = 1000 * 1024

type bigObject struct {
	byteArray [bigObjectSize]byte
}

func (self *bigObject) Reset() {}

func (self *bigObject) setFirstByte(c byte) {
	self.byteArray[0] = c
}

func processObj(obj *bigObject) {
	obj.setFirstByte('a')
}
