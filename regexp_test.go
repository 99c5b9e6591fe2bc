package minidfa

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func compile(t *testing.T, regex, alphabet string) *DFA {
	t.Helper()
	ab, err := ParseAlphabetString(alphabet)
	assert.Nil(t, err)
	d, err := CompileRegexp(regex, ab)
	assert.Nil(t, err)
	return d
}

func accepts(t *testing.T, d *DFA, w string) bool {
	t.Helper()
	ok, err := d.Run([]byte(w))
	assert.Nil(t, err)
	return ok
}

func tableString(t *testing.T, d *DFA) string {
	t.Helper()
	var sb strings.Builder
	assert.Nil(t, d.WriteTable(&sb))
	return sb.String()
}

func Test_preprocessRegexp(t *testing.T) {
	t.Run("asciiEpsilonToken", func(t *testing.T) {
		out := preprocessRegexp("<eps>|a")
		assert.Equal(t, []byte{epsToken, '|', 'a'}, out)
	})

	t.Run("utf8EpsilonGlyph", func(t *testing.T) {
		out := preprocessRegexp("ε|a")
		assert.Equal(t, []byte{epsToken, '|', 'a'}, out)
	})

	t.Run("stripsWhitespace", func(t *testing.T) {
		out := preprocessRegexp(" (a | b)* \t\r\n")
		assert.Equal(t, []byte("(a|b)*"), out)
	})
}

func Test_validateRegexp(t *testing.T) {
	ab, err := ParseAlphabetString("ab")
	assert.Nil(t, err)

	t.Run("emptyRegex", func(t *testing.T) {
		err := validateRegexp(nil, ab)
		assert.NotNil(t, err)
		assert.Equal(t, KindSemantic, Kind(err))
	})

	t.Run("explicitDot", func(t *testing.T) {
		err := validateRegexp([]byte("a.b"), ab)
		assert.NotNil(t, err)
	})

	t.Run("symbolOutsideAlphabet", func(t *testing.T) {
		err := validateRegexp([]byte("ac"), ab)
		assert.NotNil(t, err)
	})

	t.Run("extraCloseParen", func(t *testing.T) {
		err := validateRegexp([]byte("a)b("), ab)
		assert.NotNil(t, err)
	})

	t.Run("unclosedParen", func(t *testing.T) {
		err := validateRegexp([]byte("(ab"), ab)
		assert.NotNil(t, err)
	})
}

func Test_CompileRegexp(t *testing.T) {
	t.Run("endsWithABB", func(t *testing.T) {
		d := compile(t, "(a|b)*abb", "ab")
		assert.True(t, accepts(t, d, "abb"))
		assert.True(t, accepts(t, d, "aabb"))
		assert.True(t, accepts(t, d, "babb"))
		assert.False(t, accepts(t, d, ""))
		assert.False(t, accepts(t, d, "ab"))
		assert.False(t, accepts(t, d, "abba"))
		assert.Equal(t, 4, d.NumStates)
	})

	t.Run("plusIsUnion", func(t *testing.T) {
		union := compile(t, "a|b", "ab")
		plus := compile(t, "a+b", "ab")
		assert.Equal(t, tableString(t, union), tableString(t, plus))
	})

	t.Run("epsilonOnly", func(t *testing.T) {
		d := compile(t, "<eps>", "ab")
		assert.True(t, accepts(t, d, ""))
		assert.False(t, accepts(t, d, "a"))
		assert.False(t, accepts(t, d, "b"))
		assert.Equal(t, 2, d.NumStates)
	})

	t.Run("aStarOverTwoSymbols", func(t *testing.T) {
		d := compile(t, "a*", "ab")
		assert.True(t, accepts(t, d, ""))
		assert.True(t, accepts(t, d, "aaa"))
		assert.False(t, accepts(t, d, "ab"))
		assert.Equal(t, 2, d.NumStates)
	})

	t.Run("singleSymbolAlphabet", func(t *testing.T) {
		d := compile(t, "aa*", "a")
		assert.Equal(t, 1, d.Alphabet.Len())
		assert.False(t, accepts(t, d, ""))
		assert.True(t, accepts(t, d, "a"))
		assert.True(t, accepts(t, d, "aaaa"))
	})

	t.Run("runRejectsForeignByte", func(t *testing.T) {
		d := compile(t, "a*", "ab")
		_, err := d.Run([]byte("ax"))
		assert.NotNil(t, err)
	})
}

func Test_CompileRegexp_canonicalTable(t *testing.T) {
	// (ab)* minimizes to start/accept, seen-a, and a dead state.
	d := compile(t, "(ab)*", "ab")
	want := "ALPHABET 2 ab\n" +
		"STATES 3\n" +
		"START 0\n" +
		"ACCEPT 1 0\n" +
		"TRANS\n" +
		"1 2\n" +
		"2 0\n" +
		"2 2\n" +
		"END\n"
	assert.Equal(t, want, tableString(t, d))
}

func Test_toPostfix(t *testing.T) {
	ab, err := ParseAlphabetString("ab")
	assert.Nil(t, err)

	t.Run("starBindsTighterThanConcat", func(t *testing.T) {
		post, err := toPostfix(insertConcat([]byte("ab*"), ab), ab)
		assert.Nil(t, err)
		assert.Equal(t, []byte{'a', 'b', '*', concatOp}, post)
	})

	t.Run("concatBindsTighterThanUnion", func(t *testing.T) {
		post, err := toPostfix(insertConcat([]byte("ab|b"), ab), ab)
		assert.Nil(t, err)
		assert.Equal(t, []byte{'a', 'b', concatOp, 'b', '|'}, post)
	})

	t.Run("parenthesesGroup", func(t *testing.T) {
		post, err := toPostfix(insertConcat([]byte("(a|b)a"), ab), ab)
		assert.Nil(t, err)
		assert.Equal(t, []byte{'a', 'b', '|', 'a', concatOp}, post)
	})
}
