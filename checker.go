package minidfa

import (
	"bufio"
	"io"
	"strings"
)

// epsWord is the test-file spelling of the empty string.
const epsWord = "<eps>"

// Mismatch records the first test string on which the two machines
// disagree. Word keeps the file spelling, so the empty string reads
// back as "<eps>".
type Mismatch struct {
	Line       int
	Word       string
	RefAccept  bool
	UserAccept bool
	Label      int
}

// CheckResult is the outcome of an equivalence run. Mismatch is nil
// when the user machine agreed with the reference on every test.
type CheckResult struct {
	Total    int
	Mismatch *Mismatch
}

// CheckEquivalence runs ref and user side by side on every test line.
// Each non-comment line is "<label> <string>" with label 0 or 1 and the
// empty string written as "<eps>". The machines' alphabets must agree
// byte for byte. A label that contradicts the reference is advisory
// only and reported through warn; a ref/user disagreement stops the run
// and is returned in the result.
func CheckEquivalence(ref, user *DFA, tests io.Reader, warn func(line, label int, refAccept bool)) (*CheckResult, error) {
	if !ref.Alphabet.Equal(user.Alphabet) {
		return nil, compatErr("alphabets differ between reference (%s) and user (%s) DFA",
			ref.Alphabet, user.Alphabet)
	}

	res := &CheckResult{}
	sc := bufio.NewScanner(tests)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}

		if line[0] != '0' && line[0] != '1' {
			return nil, inputErr(lineNo, "label must be 0 or 1")
		}
		label := 0
		if line[0] == '1' {
			label = 1
		}

		rest := strings.TrimLeft(line[1:], " \t")
		if rest == "" {
			return nil, inputErr(lineNo, "missing string token (use %s for empty)", epsWord)
		}
		word := rest
		if cut := strings.IndexAny(rest, " \t"); cut >= 0 {
			word = rest[:cut]
		}

		w := word
		if w == epsWord {
			w = ""
		}

		refAcc, err := ref.Run([]byte(w))
		if err != nil {
			return nil, inputErr(lineNo, "string contains symbol not in alphabet")
		}
		userAcc, err := user.Run([]byte(w))
		if err != nil {
			return nil, inputErr(lineNo, "string contains symbol not in alphabet")
		}

		res.Total++

		if refAcc != userAcc {
			res.Mismatch = &Mismatch{
				Line:       lineNo,
				Word:       word,
				RefAccept:  refAcc,
				UserAccept: userAcc,
				Label:      label,
			}
			return res, nil
		}

		if (label == 1) != refAcc && warn != nil {
			warn(lineNo, label, refAcc)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, inputErr(0, "reading tests: %v", err)
	}
	return res, nil
}
