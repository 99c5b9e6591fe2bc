package minidfa

import "github.com/bits-and-blooms/bitset"

// Minimize collapses a complete DFA to its Hopcroft equivalence classes.
// The result's state indices are the class ids; the class holding d's
// start becomes the new start. Running Minimize on an already-minimal
// table reproduces it up to class renaming.
func Minimize(d *DFA) *DFA {
	n := d.NumStates
	k := d.Alphabet.Len()

	numAccept := 0
	for s := 0; s < n; s++ {
		if d.IsAccept(s) {
			numAccept++
		}
	}
	// All states equivalent: either nothing accepts or everything does.
	if numAccept == 0 || numAccept == n {
		out := newDFA(d.Alphabet, 1, 0)
		out.setAccept(0, numAccept == n)
		for col := 0; col < k; col++ {
			out.setTrans(0, col, 0)
		}
		return out
	}

	// Initial partition {F, Q\F}; classes are slices of member states.
	blocks := make([][]int, 0, n)
	cls := make([]int, n)

	acc := make([]int, 0, numAccept)
	rej := make([]int, 0, n-numAccept)
	for s := 0; s < n; s++ {
		if d.IsAccept(s) {
			cls[s] = 0
			acc = append(acc, s)
		} else {
			cls[s] = 1
			rej = append(rej, s)
		}
	}
	blocks = append(blocks, acc, rej)

	// Worklist holds block indices still usable as splitters. Seed with
	// the smaller initial block.
	worklist := make([]int, 0, n)
	if len(acc) <= len(rej) {
		worklist = append(worklist, 0)
	} else {
		worklist = append(worklist, 1)
	}

	// inv[col][q] lists the states stepping to q on column col.
	inv := make([][][]int, k)
	for col := 0; col < k; col++ {
		inv[col] = make([][]int, n)
	}
	for p := 0; p < n; p++ {
		for col := 0; col < k; col++ {
			q := d.Step(p, col)
			inv[col][q] = append(inv[col][q], p)
		}
	}

	onWorklist := make([]bool, n)
	onWorklist[worklist[0]] = true
	mark := bitset.New(uint(n))

	for len(worklist) > 0 {
		splitter := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		onWorklist[splitter] = false
		members := blocks[splitter]

		for col := 0; col < k; col++ {
			// X = union of predecessors of the splitter block on col.
			mark.ClearAll()
			for _, q := range members {
				for _, p := range inv[col][q] {
					mark.Set(uint(p))
				}
			}

			for yi := 0; yi < len(blocks); yi++ {
				y := blocks[yi]
				cnt := 0
				for _, s := range y {
					if mark.Test(uint(s)) {
						cnt++
					}
				}
				if cnt == 0 || cnt == len(y) {
					continue
				}

				y1 := make([]int, 0, cnt)
				y2 := make([]int, 0, len(y)-cnt)
				for _, s := range y {
					if mark.Test(uint(s)) {
						y1 = append(y1, s)
					} else {
						y2 = append(y2, s)
					}
				}

				blocks[yi] = y1
				newi := len(blocks)
				blocks = append(blocks, y2)
				for _, s := range y2 {
					cls[s] = newi
				}

				// If Y was queued, both halves stay queued; otherwise
				// queue the smaller half.
				if onWorklist[yi] {
					worklist = append(worklist, newi)
					onWorklist[newi] = true
				} else if len(y1) <= len(y2) {
					worklist = append(worklist, yi)
					onWorklist[yi] = true
				} else {
					worklist = append(worklist, newi)
					onWorklist[newi] = true
				}
			}
		}
	}

	return emitClasses(d, cls, len(blocks))
}

// emitClasses builds the canonical minimized table: each class's row is
// read through its representative, the smallest original state index in
// the class.
func emitClasses(d *DFA, cls []int, numClasses int) *DFA {
	k := d.Alphabet.Len()

	rep := make([]int, numClasses)
	for i := range rep {
		rep[i] = -1
	}
	for s := 0; s < d.NumStates; s++ {
		if rep[cls[s]] == -1 {
			rep[cls[s]] = s
		}
	}

	out := newDFA(d.Alphabet, numClasses, cls[d.Start])
	for s := 0; s < d.NumStates; s++ {
		if d.IsAccept(s) {
			out.setAccept(cls[s], true)
		}
	}
	for c := 0; c < numClasses; c++ {
		for col := 0; col < k; col++ {
			out.setTrans(c, col, cls[d.Step(rep[c], col)])
		}
	}
	return out
}
