package minidfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Minimize(t *testing.T) {
	ab, err := ParseAlphabetString("ab")
	assert.Nil(t, err)

	t.Run("collapsesEquivalentStates", func(t *testing.T) {
		// Two distinct accepting states with identical behavior for a*.
		d := newDFA(ab, 3, 0)
		d.setAccept(0, true)
		d.setAccept(1, true)
		d.setTrans(0, 0, 1)
		d.setTrans(0, 1, 2)
		d.setTrans(1, 0, 1)
		d.setTrans(1, 1, 2)
		d.setTrans(2, 0, 2)
		d.setTrans(2, 1, 2)

		m := Minimize(d)
		assert.Equal(t, 2, m.NumStates)
		assert.Equal(t, 0, m.Start)
		assert.True(t, m.IsAccept(0))
		assert.False(t, m.IsAccept(1))
		assert.Equal(t, 0, m.Step(0, 0))
		assert.Equal(t, 1, m.Step(0, 1))
		assert.Equal(t, 1, m.Step(1, 0))
		assert.Equal(t, 1, m.Step(1, 1))
	})

	t.Run("noneAccepting", func(t *testing.T) {
		d := newDFA(ab, 4, 2)
		for s := 0; s < 4; s++ {
			d.setTrans(s, 0, (s+1)%4)
			d.setTrans(s, 1, s)
		}
		m := Minimize(d)
		assert.Equal(t, 1, m.NumStates)
		assert.False(t, m.IsAccept(0))
		assert.Equal(t, 0, m.Step(0, 0))
		assert.Equal(t, 0, m.Step(0, 1))
	})

	t.Run("allAccepting", func(t *testing.T) {
		d := newDFA(ab, 3, 1)
		for s := 0; s < 3; s++ {
			d.setAccept(s, true)
			d.setTrans(s, 0, (s+1)%3)
			d.setTrans(s, 1, (s+2)%3)
		}
		m := Minimize(d)
		assert.Equal(t, 1, m.NumStates)
		assert.True(t, m.IsAccept(0))
	})

	t.Run("idempotentOnMinimalTable", func(t *testing.T) {
		d := compile(t, "(a|b)*abb", "ab")
		again := Minimize(d)
		assert.Equal(t, tableString(t, d), tableString(t, again))
	})

	t.Run("preservesLanguage", func(t *testing.T) {
		d := compile(t, "(a|b)*ba", "ab")
		words := []string{"", "a", "b", "ba", "ab", "aba", "bba", "baab", "abab"}
		m := Minimize(d)
		for _, w := range words {
			assert.Equal(t, accepts(t, d, w), accepts(t, m, w), "word %q", w)
		}
	})
}
