package datastructure

import "math/bits"

// Mask is a set of dense valve indices, one bit per valve. the valve count
// is checked against pkg.MAX_VALVES when the graph is built, so a uint64 is
// always wide enough.
type Mask uint64

func (m Mask) Has(i Index) bool {
	return m&(1<<i) != 0
}

func (m Mask) Set(i Index) Mask {
	return m | (1 << i)
}

func (m Mask) Disjoint(other Mask) bool {
	return m&other == 0
}

func (m Mask) Count() int {
	return bits.OnesCount64(uint64(m))
}
