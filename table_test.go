package minidfa

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_WriteTable(t *testing.T) {
	ab, err := ParseAlphabetString("ab")
	assert.Nil(t, err)

	d := newDFA(ab, 2, 0)
	d.setAccept(0, true)
	d.setTrans(0, 0, 0)
	d.setTrans(0, 1, 1)
	d.setTrans(1, 0, 1)
	d.setTrans(1, 1, 1)

	want := "ALPHABET 2 ab\n" +
		"STATES 2\n" +
		"START 0\n" +
		"ACCEPT 1 0\n" +
		"TRANS\n" +
		"0 1\n" +
		"1 1\n" +
		"END\n"
	assert.Equal(t, want, tableString(t, d))
}

func Test_ReadTable(t *testing.T) {
	t.Run("roundTrip", func(t *testing.T) {
		d := compile(t, "(a|b)*abb", "ab")
		text := tableString(t, d)
		back, err := ReadTable(strings.NewReader(text))
		assert.Nil(t, err)
		assert.Equal(t, text, tableString(t, back))
	})

	t.Run("whitespaceTolerant", func(t *testing.T) {
		text := "ALPHABET 2 ab STATES 2 START 0 ACCEPT 1 0 TRANS 0 1 1 1 END"
		d, err := ReadTable(strings.NewReader(text))
		assert.Nil(t, err)
		assert.Equal(t, 2, d.NumStates)
		assert.True(t, d.IsAccept(0))
		assert.Equal(t, 1, d.Step(0, 1))
	})

	t.Run("badHeaderKeyword", func(t *testing.T) {
		_, err := ReadTable(strings.NewReader("ALFABET 2 ab"))
		assert.NotNil(t, err)
		assert.Equal(t, KindInput, Kind(err))
	})

	t.Run("alphabetLengthMismatch", func(t *testing.T) {
		_, err := ReadTable(strings.NewReader("ALPHABET 3 ab STATES 1"))
		assert.NotNil(t, err)
	})

	t.Run("startOutOfRange", func(t *testing.T) {
		_, err := ReadTable(strings.NewReader("ALPHABET 1 a STATES 2 START 2"))
		assert.NotNil(t, err)
	})

	t.Run("acceptNotAscending", func(t *testing.T) {
		text := "ALPHABET 1 a STATES 3 START 0 ACCEPT 2 2 1 TRANS 0 1 2 END"
		_, err := ReadTable(strings.NewReader(text))
		assert.NotNil(t, err)
	})

	t.Run("transitionOutOfRange", func(t *testing.T) {
		text := "ALPHABET 1 a STATES 2 START 0 ACCEPT 0 TRANS 0 7 END"
		_, err := ReadTable(strings.NewReader(text))
		assert.NotNil(t, err)
	})

	t.Run("truncatedBeforeEnd", func(t *testing.T) {
		text := "ALPHABET 1 a STATES 1 START 0 ACCEPT 0 TRANS 0"
		_, err := ReadTable(strings.NewReader(text))
		assert.NotNil(t, err)
	})

	t.Run("duplicateAlphabetSymbol", func(t *testing.T) {
		_, err := ReadTable(strings.NewReader("ALPHABET 2 aa STATES 1"))
		assert.NotNil(t, err)
	})
}
