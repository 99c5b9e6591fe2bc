package minidfa

// nfaEdge is one outgoing edge. sym == 0 marks an epsilon edge; the zero
// byte can never be an alphabet symbol.
type nfaEdge struct {
	to  int
	sym byte
}

// enfa is a Thompson epsilon-NFA. States live in a single arena indexed
// by integer id; each state owns its outgoing edges.
type enfa struct {
	edges [][]nfaEdge
}

func newENFA() *enfa {
	return &enfa{edges: make([][]nfaEdge, 0, 16)}
}

func (n *enfa) numStates() int {
	return len(n.edges)
}

func (n *enfa) createState() (int, error) {
	if len(n.edges) >= MaxNFAStates {
		return 0, resourceErr("too many NFA states (limit %d)", MaxNFAStates)
	}
	n.edges = append(n.edges, nil)
	return len(n.edges) - 1, nil
}

func (n *enfa) addEdge(from, to int, sym byte) {
	n.edges[from] = append(n.edges[from], nfaEdge{to: to, sym: sym})
}

func (n *enfa) addEpsilon(from, to int) {
	n.addEdge(from, to, 0)
}

// frag is a Thompson fragment: a sub-automaton with a unique entry state
// and a unique accept state.
type frag struct {
	start, accept int
}

// fragStack accumulates fragments while walking a postfix expression.
type fragStack struct {
	frags []frag
}

func (fs *fragStack) push(f frag) {
	fs.frags = append(fs.frags, f)
}

func (fs *fragStack) pop() (frag, error) {
	if len(fs.frags) == 0 {
		return frag{}, semanticErr(0, "invalid postfix expression: operand stack underflow")
	}
	f := fs.frags[len(fs.frags)-1]
	fs.frags = fs.frags[:len(fs.frags)-1]
	return f, nil
}

func (fs *fragStack) size() int {
	return len(fs.frags)
}

// symbolFrag builds the two-state fragment for an alphabet symbol, or for
// epsilon when sym is zero.
func (n *enfa) symbolFrag(sym byte) (frag, error) {
	s, err := n.createState()
	if err != nil {
		return frag{}, err
	}
	t, err := n.createState()
	if err != nil {
		return frag{}, err
	}
	n.addEdge(s, t, sym)
	return frag{start: s, accept: t}, nil
}

// concatFrag links a's accept to b's start with an epsilon edge.
func (n *enfa) concatFrag(a, b frag) frag {
	n.addEpsilon(a.accept, b.start)
	return frag{start: a.start, accept: b.accept}
}

// unionFrag adds a fresh start with epsilon edges into both branches and
// a fresh accept reached from both branch accepts.
func (n *enfa) unionFrag(a, b frag) (frag, error) {
	s, err := n.createState()
	if err != nil {
		return frag{}, err
	}
	t, err := n.createState()
	if err != nil {
		return frag{}, err
	}
	n.addEpsilon(s, a.start)
	n.addEpsilon(s, b.start)
	n.addEpsilon(a.accept, t)
	n.addEpsilon(b.accept, t)
	return frag{start: s, accept: t}, nil
}

// starFrag wraps f in the Kleene closure: bypass edge for zero
// repetitions, back edge for iteration.
func (n *enfa) starFrag(f frag) (frag, error) {
	s, err := n.createState()
	if err != nil {
		return frag{}, err
	}
	t, err := n.createState()
	if err != nil {
		return frag{}, err
	}
	n.addEpsilon(s, f.start)
	n.addEpsilon(s, t)
	n.addEpsilon(f.accept, f.start)
	n.addEpsilon(f.accept, t)
	return frag{start: s, accept: t}, nil
}

// thompson walks a postfix expression and assembles the full epsilon-NFA.
// The stack must hold exactly one fragment when the walk ends.
func thompson(post []byte, ab *Alphabet) (*enfa, frag, error) {
	n := newENFA()
	var st fragStack

	for _, c := range post {
		switch {
		case ab.Contains(c):
			f, err := n.symbolFrag(c)
			if err != nil {
				return nil, frag{}, err
			}
			st.push(f)
		case c == epsToken:
			f, err := n.symbolFrag(0)
			if err != nil {
				return nil, frag{}, err
			}
			st.push(f)
		case c == concatOp:
			f2, err := st.pop()
			if err != nil {
				return nil, frag{}, err
			}
			f1, err := st.pop()
			if err != nil {
				return nil, frag{}, err
			}
			st.push(n.concatFrag(f1, f2))
		case c == '|' || c == '+':
			f2, err := st.pop()
			if err != nil {
				return nil, frag{}, err
			}
			f1, err := st.pop()
			if err != nil {
				return nil, frag{}, err
			}
			f, err := n.unionFrag(f1, f2)
			if err != nil {
				return nil, frag{}, err
			}
			st.push(f)
		case c == '*':
			f, err := st.pop()
			if err != nil {
				return nil, frag{}, err
			}
			sf, err := n.starFrag(f)
			if err != nil {
				return nil, frag{}, err
			}
			st.push(sf)
		default:
			return nil, frag{}, semanticErr(0, "invalid postfix token 0x%02x", c)
		}
	}

	if st.size() != 1 {
		return nil, frag{}, semanticErr(0, "invalid postfix expression: operand stack not singleton")
	}
	f, err := st.pop()
	if err != nil {
		return nil, frag{}, err
	}
	return n, f, nil
}
