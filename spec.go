package minidfa

import (
	"bufio"
	"io"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// DFA spec form: a line-oriented, whitespace-tolerant description
//
//	Start: q0
//	Accept: {q0, q2}
//	(q0, a) -> q1
//
// State names are q<nonnegative integer>. Blank lines and '#' comments
// are skipped; other lines without a '(' are ignored. Missing
// transitions are completed with a dead state, and no minimization is
// applied, so the emitted table mirrors the spec's own state numbering.

// maxStateLabel bounds the integer in a q<number> state name.
const maxStateLabel = 1000000

// parseQState parses a q<number> token. It rejects labels above
// maxStateLabel and any trailing non-digit.
func parseQState(tok string) (int, bool) {
	if len(tok) < 2 || tok[0] != 'q' {
		return 0, false
	}
	v := 0
	for i := 1; i < len(tok); i++ {
		c := tok[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + int(c-'0')
		if v > maxStateLabel {
			return 0, false
		}
	}
	return v, true
}

func trimStatePunct(tok string) string {
	return strings.TrimRight(tok, ",})")
}

type specParser struct {
	ab        *Alphabet
	start     int
	startSeen bool
	accSeen   bool
	accepting *bitset.BitSet
	// trans rows are allocated as states are first mentioned.
	trans [][]int
	maxQ  int
}

// ensureState grows the transition table to cover state q.
func (p *specParser) ensureState(q int) error {
	if q >= MaxDFAStates {
		return resourceErr("state index q%d too large (limit %d states)", q, MaxDFAStates)
	}
	for len(p.trans) <= q {
		row := make([]int, p.ab.Len())
		for i := range row {
			row[i] = noTrans
		}
		p.trans = append(p.trans, row)
	}
	if q > p.maxQ {
		p.maxQ = q
	}
	return nil
}

func (p *specParser) parseStart(line string, lineNo int) error {
	rest := line[strings.IndexByte(line, ':')+1:]
	tok := ""
	if fields := strings.Fields(rest); len(fields) > 0 {
		tok = trimStatePunct(fields[0])
	}
	q, ok := parseQState(tok)
	if !ok {
		return semanticErr(lineNo, "Start line must be: Start: q<number>")
	}
	if err := p.ensureState(q); err != nil {
		return err
	}
	p.start = q
	p.startSeen = true
	return nil
}

// parseAccept marks every q<number> token after the colon; braces and
// commas are separators and unrecognized tokens are dropped.
func (p *specParser) parseAccept(line string, lineNo int) error {
	rest := line[strings.IndexByte(line, ':')+1:]
	p.accSeen = true

	rest = strings.NewReplacer("{", " ", "}", " ", ",", " ").Replace(rest)
	for _, tok := range strings.Fields(rest) {
		q, ok := parseQState(trimStatePunct(tok))
		if !ok {
			continue
		}
		if err := p.ensureState(q); err != nil {
			return err
		}
		p.accepting.Set(uint(q))
	}
	return nil
}

// scanStateDigits consumes the leading digit run of s. The value may
// exceed maxStateLabel here; ensureState rejects it by range instead.
func scanStateDigits(s string) (int, string, bool) {
	i := 0
	v := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		v = v*10 + int(s[i]-'0')
		if v > maxStateLabel {
			return v, s[i:], true
		}
		i++
	}
	if i == 0 {
		return 0, s, false
	}
	return v, s[i:], true
}

func (p *specParser) parseTransition(line string, lineNo int) error {
	open := strings.IndexByte(line, '(')
	if open < 0 {
		// Not a transition; tolerated as free-form commentary.
		return nil
	}
	rest := strings.TrimLeft(line[open+1:], " \t")
	if !strings.HasPrefix(rest, "q") {
		return inputErr(lineNo, "bad transition (missing q)")
	}
	from, rest, ok := scanStateDigits(rest[1:])
	if !ok {
		return inputErr(lineNo, "bad from-state")
	}

	comma := strings.IndexByte(rest, ',')
	if comma < 0 {
		return inputErr(lineNo, "bad transition (missing comma)")
	}
	rest = strings.TrimLeft(rest[comma+1:], " \t")
	if rest == "" {
		return inputErr(lineNo, "missing symbol")
	}
	sym := rest[0]
	rest = rest[1:]
	col := p.ab.Index(sym)
	if col < 0 {
		return inputErr(lineNo, "symbol %q not in alphabet", sym)
	}

	arrow := strings.Index(rest, "->")
	if arrow < 0 {
		return inputErr(lineNo, "missing ->")
	}
	rest = strings.TrimLeft(rest[arrow+2:], " \t")
	if !strings.HasPrefix(rest, "q") {
		return inputErr(lineNo, "bad to-state (missing q)")
	}
	to, _, ok := scanStateDigits(rest[1:])
	if !ok {
		return inputErr(lineNo, "bad to-state digits")
	}

	if err := p.ensureState(from); err != nil {
		return err
	}
	if err := p.ensureState(to); err != nil {
		return err
	}
	if cur := p.trans[from][col]; cur != noTrans && cur != to {
		return semanticErr(lineNo, "nondeterministic transition for (q%d,%c)", from, sym)
	}
	p.trans[from][col] = to
	return nil
}

// build completes the accumulated table with a dead state where needed
// and materializes the DFA.
func (p *specParser) build() (*DFA, error) {
	if !p.startSeen {
		return nil, semanticErr(0, "missing Start line")
	}
	if !p.accSeen {
		return nil, semanticErr(0, "missing Accept line")
	}

	n := p.maxQ + 1
	k := p.ab.Len()

	needDead := false
	for s := 0; s < n && !needDead; s++ {
		for col := 0; col < k; col++ {
			if p.trans[s][col] == noTrans {
				needDead = true
				break
			}
		}
	}

	outN := n
	dead := noTrans
	if needDead {
		if n >= MaxDFAStates {
			return nil, resourceErr("too many DFA states (limit %d)", MaxDFAStates)
		}
		dead = n
		outN = n + 1
	}

	d := newDFA(p.ab, outN, p.start)
	for s, ok := p.accepting.NextSet(0); ok; s, ok = p.accepting.NextSet(s + 1) {
		d.setAccept(int(s), true)
	}
	for s := 0; s < n; s++ {
		for col := 0; col < k; col++ {
			t := p.trans[s][col]
			if t == noTrans {
				t = dead
			}
			d.setTrans(s, col, t)
		}
	}
	if needDead {
		for col := 0; col < k; col++ {
			d.setTrans(dead, col, dead)
		}
	}
	return d, nil
}

// ParseDFASpec reads the transition-function form from r and compiles
// it to a complete DFA over ab.
func ParseDFASpec(r io.Reader, ab *Alphabet) (*DFA, error) {
	p := &specParser{
		ab:        ab,
		start:     -1,
		accepting: bitset.New(64),
		maxQ:      -1,
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		switch {
		case len(line) >= 6 && strings.EqualFold(line[:6], "Start:"):
			if p.startSeen {
				return nil, semanticErr(lineNo, "duplicate Start line")
			}
			if err := p.parseStart(line, lineNo); err != nil {
				return nil, err
			}
		case len(line) >= 7 && strings.EqualFold(line[:7], "Accept:"):
			if p.accSeen {
				return nil, semanticErr(lineNo, "duplicate Accept line")
			}
			if err := p.parseAccept(line, lineNo); err != nil {
				return nil, err
			}
		default:
			if err := p.parseTransition(line, lineNo); err != nil {
				return nil, err
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, inputErr(0, "reading spec: %v", err)
	}
	return p.build()
}
