package minidfa

const (
	// MaxAlphabet is the largest number of symbols an alphabet may declare.
	MaxAlphabet = 128
	// MaxNFAStates bounds the Thompson construction arena.
	MaxNFAStates = 4096
	// MaxDFAStates bounds both subset construction and spec parsing.
	MaxDFAStates = 4096

	// epsToken is the internal single-byte stand-in for epsilon. It sits
	// below 0x20 so no printable alphabet symbol can collide with it.
	epsToken = byte(0x01)
	// concatOp marks explicit concatenation after preprocessing. '.' is
	// rejected from both alphabets and regexes before it is introduced.
	concatOp = byte('.')
)

func isRegexMeta(c byte) bool {
	switch c {
	case '|', '+', '*', '(', ')', '.':
		return true
	}
	return false
}

func isSpecMeta(c byte) bool {
	switch c {
	case '{', '}', ',', '-', '>', ':':
		return true
	}
	return false
}

// Alphabet is an ordered set of distinct single-byte symbols. Order is
// significant: it indexes every transition table column.
type Alphabet struct {
	symbols []byte
	index   [256]int8 // symbol byte -> column, -1 if absent
}

func newAlphabet() *Alphabet {
	ab := &Alphabet{}
	for i := range ab.index {
		ab.index[i] = -1
	}
	return ab
}

func (ab *Alphabet) add(c byte) error {
	if c < 32 {
		return semanticErr(0, "alphabet contains non-printable byte 0x%02x", c)
	}
	// A space would make the table's alphabet field unparsable.
	if c == ' ' {
		return semanticErr(0, "alphabet must not contain a space")
	}
	if c == epsToken {
		return semanticErr(0, "alphabet must not contain the epsilon token")
	}
	if isRegexMeta(c) || isSpecMeta(c) {
		return semanticErr(0, "alphabet contains reserved character %q", c)
	}
	if ab.index[c] >= 0 {
		return semanticErr(0, "alphabet contains duplicate symbol %q", c)
	}
	if len(ab.symbols) >= MaxAlphabet {
		return resourceErr("alphabet exceeds %d symbols", MaxAlphabet)
	}
	ab.index[c] = int8(len(ab.symbols))
	ab.symbols = append(ab.symbols, c)
	return nil
}

// ParseAlphabetLine parses the free-form alphabet line of a regex input
// file. Whitespace, commas and semicolons are separators; the kept bytes
// in first-seen order become the alphabet.
func ParseAlphabetLine(line string) (*Alphabet, error) {
	ab := newAlphabet()
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c == '\n' || c == '\r' || c == ' ' || c == '\t' || c == '\v' || c == '\f' || c == ',' || c == ';' {
			continue
		}
		if err := ab.add(c); err != nil {
			return nil, err
		}
	}
	if len(ab.symbols) == 0 {
		return nil, semanticErr(0, "alphabet is empty")
	}
	return ab, nil
}

// ParseAlphabetString parses the strict argv form: exactly the k symbols
// concatenated with no separators.
func ParseAlphabetString(s string) (*Alphabet, error) {
	if len(s) == 0 {
		return nil, semanticErr(0, "alphabet is empty")
	}
	ab := newAlphabet()
	for i := 0; i < len(s); i++ {
		if err := ab.add(s[i]); err != nil {
			return nil, err
		}
	}
	return ab, nil
}

// Len returns the number of symbols k.
func (ab *Alphabet) Len() int {
	return len(ab.symbols)
}

// Index returns the column of symbol c, or -1 if c is not in the alphabet.
func (ab *Alphabet) Index(c byte) int {
	return int(ab.index[c])
}

// Contains reports whether c is an alphabet symbol.
func (ab *Alphabet) Contains(c byte) bool {
	return ab.index[c] >= 0
}

// Symbol returns the symbol at column i.
func (ab *Alphabet) Symbol(i int) byte {
	return ab.symbols[i]
}

// String returns the k symbols concatenated, the form the table header uses.
func (ab *Alphabet) String() string {
	return string(ab.symbols)
}

// Equal reports byte equality: same symbols in the same order.
func (ab *Alphabet) Equal(other *Alphabet) bool {
	return ab.String() == other.String()
}
