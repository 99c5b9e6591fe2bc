package minidfa

import (
	"github.com/bits-and-blooms/bitset"
)

// DFA is a complete deterministic automaton over a byte alphabet. States
// are dense integers 0..NumStates-1 and every (state, symbol) cell is
// defined; partial machines are completed with a dead state before a DFA
// value is ever constructed.
type DFA struct {
	Alphabet  *Alphabet
	NumStates int
	Start     int

	accept *bitset.BitSet
	// trans holds NumStates rows of Alphabet.Len() cells.
	trans []int
}

func newDFA(ab *Alphabet, numStates, start int) *DFA {
	d := &DFA{
		Alphabet:  ab,
		NumStates: numStates,
		Start:     start,
		accept:    bitset.New(uint(numStates)),
		trans:     make([]int, numStates*ab.Len()),
	}
	return d
}

// IsAccept reports whether state is accepting.
func (d *DFA) IsAccept(state int) bool {
	return d.accept.Test(uint(state))
}

func (d *DFA) setAccept(state int, accept bool) {
	d.accept.SetTo(uint(state), accept)
}

// AcceptStates returns the accepting states in ascending order.
func (d *DFA) AcceptStates() []int {
	out := make([]int, 0, d.accept.Count())
	for s, ok := d.accept.NextSet(0); ok; s, ok = d.accept.NextSet(s + 1) {
		out = append(out, int(s))
	}
	return out
}

// Step performs one transition on the symbol at alphabet column col.
func (d *DFA) Step(state, col int) int {
	return d.trans[state*d.Alphabet.Len()+col]
}

func (d *DFA) setTrans(state, col, dest int) {
	d.trans[state*d.Alphabet.Len()+col] = dest
}

// Run simulates the DFA on w from the start state and reports acceptance.
// A byte outside the alphabet is an input error.
func (d *DFA) Run(w []byte) (bool, error) {
	state := d.Start
	for _, c := range w {
		col := d.Alphabet.Index(c)
		if col < 0 {
			return false, inputErr(0, "string contains symbol %q not in alphabet", c)
		}
		state = d.Step(state, col)
	}
	return d.IsAccept(state), nil
}
