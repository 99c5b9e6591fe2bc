package minidfa

// Subset construction: each reachable epsilon-closed set of NFA states
// becomes one DFA state. Sets are interned through a hash table keyed by
// the mixed-id hash with exact bitset comparison on collision, so lookup
// does not rescan every existing state.

// epsClosure grows out to the least superset of itself closed under
// epsilon edges, by BFS over the epsilon sub-graph.
func epsClosure(n *enfa, out *stateSet) {
	queue := make([]int, 0, n.numStates())
	for s, ok := out.bits.NextSet(0); ok; s, ok = out.bits.NextSet(s + 1) {
		queue = append(queue, int(s))
	}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, e := range n.edges[u] {
			if e.sym == 0 && !out.test(e.to) {
				out.add(e.to)
				queue = append(queue, e.to)
			}
		}
	}
}

// moveOn fills out with every state reachable from in by one edge
// labeled sym.
func moveOn(n *enfa, out, in *stateSet, sym byte) {
	out.clear()
	for s, ok := in.bits.NextSet(0); ok; s, ok = in.bits.NextSet(s + 1) {
		for _, e := range n.edges[int(s)] {
			if e.sym == sym {
				out.add(e.to)
			}
		}
	}
}

// noTrans is the cell sentinel for "no transition" before dead-state
// completion rewrites it.
const noTrans = -1

type dfaBuilder struct {
	ab     *Alphabet
	accept []bool
	trans  [][]int
	byID   []*frozenStateSet
	// interned sets by hash; buckets resolve collisions by bit equality
	lookup map[uint64][]*frozenStateSet
}

func (b *dfaBuilder) find(set *stateSet) int {
	for _, f := range b.lookup[set.hash()] {
		if f.equals(set) {
			return f.dfaState
		}
	}
	return -1
}

func (b *dfaBuilder) addState(set *stateSet, accepting bool) (int, error) {
	if len(b.trans) >= MaxDFAStates {
		return 0, resourceErr("too many DFA states (limit %d)", MaxDFAStates)
	}
	id := len(b.trans)
	row := make([]int, b.ab.Len())
	for i := range row {
		row[i] = noTrans
	}
	b.trans = append(b.trans, row)
	b.accept = append(b.accept, accepting)
	f := set.freeze(id)
	b.byID = append(b.byID, f)
	b.lookup[f.hashCode] = append(b.lookup[f.hashCode], f)
	return id, nil
}

// determinize runs the construction from fragment f's entry state and
// completes the result with a dead state if any cell stayed undefined.
func determinize(n *enfa, f frag, ab *Alphabet) (*DFA, error) {
	b := &dfaBuilder{
		ab:     ab,
		lookup: make(map[uint64][]*frozenStateSet),
	}

	numNFA := n.numStates()
	cur := newStateSet(numNFA)
	cur.add(f.start)
	epsClosure(n, cur)

	if _, err := b.addState(cur, cur.test(f.accept)); err != nil {
		return nil, err
	}

	mv := newStateSet(numNFA)
	cl := newStateSet(numNFA)

	for id := 0; id < len(b.trans); id++ {
		src := &stateSet{bits: b.byID[id].bits}
		for col := 0; col < ab.Len(); col++ {
			moveOn(n, mv, src, ab.Symbol(col))
			if mv.empty() {
				continue
			}
			cl.copyFrom(mv)
			epsClosure(n, cl)

			dest := b.find(cl)
			if dest < 0 {
				var err error
				dest, err = b.addState(cl, cl.test(f.accept))
				if err != nil {
					return nil, err
				}
			}
			b.trans[id][col] = dest
		}
	}

	return b.complete()
}

// complete rewrites noTrans cells to a fresh dead state. The dead state
// self-loops on every symbol and is non-accepting; it is adjoined only
// when at least one cell needs it.
func (b *dfaBuilder) complete() (*DFA, error) {
	needDead := false
	for _, row := range b.trans {
		for _, t := range row {
			if t == noTrans {
				needDead = true
			}
		}
	}

	n := len(b.trans)
	dead := noTrans
	if needDead {
		if n >= MaxDFAStates {
			return nil, resourceErr("too many DFA states (limit %d)", MaxDFAStates)
		}
		dead = n
		n++
	}

	d := newDFA(b.ab, n, 0)
	for s, row := range b.trans {
		d.setAccept(s, b.accept[s])
		for col, t := range row {
			if t == noTrans {
				t = dead
			}
			d.setTrans(s, col, t)
		}
	}
	if needDead {
		for col := 0; col < b.ab.Len(); col++ {
			d.setTrans(dead, col, dead)
		}
	}
	return d, nil
}
