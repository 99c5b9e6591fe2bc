package minidfa

import "github.com/bits-and-blooms/bitset"

// stateSet is a mutable set of NFA state ids used as scratch during
// subset construction. Equality on set contents is what identifies a DFA
// state, so the set carries an order-insensitive hash.
type stateSet struct {
	bits *bitset.BitSet
}

func newStateSet(numStates int) *stateSet {
	return &stateSet{bits: bitset.New(uint(numStates))}
}

func (s *stateSet) add(state int) {
	s.bits.Set(uint(state))
}

func (s *stateSet) test(state int) bool {
	return s.bits.Test(uint(state))
}

func (s *stateSet) clear() {
	s.bits.ClearAll()
}

func (s *stateSet) empty() bool {
	return s.bits.None()
}

func (s *stateSet) copyFrom(other *stateSet) {
	other.bits.CopyFull(s.bits)
}

// hash sums the mixed member ids plus the cardinality. Order-insensitive,
// matching set equality.
func (s *stateSet) hash() uint64 {
	h := uint64(s.bits.Count())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		h += mix32(int(i))
	}
	return h
}

// freeze snapshots the set together with the DFA state it was assigned.
func (s *stateSet) freeze(dfaState int) *frozenStateSet {
	return &frozenStateSet{
		bits:     s.bits.Clone(),
		hashCode: s.hash(),
		dfaState: dfaState,
	}
}

// frozenStateSet is an immutable snapshot keyed into the DFA-state lookup
// table by hashCode; collisions fall back to exact bitset equality.
type frozenStateSet struct {
	bits     *bitset.BitSet
	hashCode uint64
	dfaState int
}

func (f *frozenStateSet) equals(s *stateSet) bool {
	return f.bits.Equal(s.bits)
}
