package enigma_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeii/cipherhub/pkg/cipher/alphabet"
	"github.com/sergeii/cipherhub/pkg/cipher/enigma"
)

func TestEncryptChar_KnownFirstLetter(t *testing.T) {
	// I-II-III, UKW-B, rings AAA, start AAA: the first A lights up B
	s := enigma.Step(stateAt("AAA"))
	got := enigma.EncryptChar('A', s, nil, enigma.ReflectorB)
	assert.Equal(t, 'B', got)
}

func TestEncryptChar_IsReciprocal(t *testing.T) {
	pb, err := enigma.ParsePlugboard("AB CD EZ")
	require.NoError(t, err)

	for _, windows := range []string{"AAA", "QEV", "ZZZ", "MCK"} {
		s := stateAt(windows)
		for i := range alphabet.Latin.Len() {
			in := alphabet.Latin.At(i)
			out := enigma.EncryptChar(in, s, pb, enigma.ReflectorB)
			assert.NotEqual(t, in, out, "%q is encrypted onto itself at %s", in, windows)
			assert.Equal(t, in, enigma.EncryptChar(out, s, pb, enigma.ReflectorB))
		}
	}
}

func TestEncryptChar_IsPermutationAtEveryState(t *testing.T) {
	s := stateAt("AAA")
	for range 50 {
		s = enigma.Step(s)
		seen := make(map[rune]bool)
		for i := range alphabet.Latin.Len() {
			seen[enigma.EncryptChar(alphabet.Latin.At(i), s, nil, enigma.ReflectorC)] = true
		}
		assert.Len(t, seen, 26)
	}
}

func TestEncryptChar_RingSettingShiftsWiring(t *testing.T) {
	plain := stateAt("AAA")
	ringed := plain
	for i := range ringed {
		ringed[i].Ring = 1
	}
	plainOut := enigma.EncryptChar('A', enigma.Step(plain), nil, enigma.ReflectorB)
	ringedOut := enigma.EncryptChar('A', enigma.Step(ringed), nil, enigma.ReflectorB)
	assert.Equal(t, 'B', plainOut)
	assert.Equal(t, 'E', ringedOut)
}

func TestEncryptChar_NonLetterIsReturnedAsIs(t *testing.T) {
	s := stateAt("AAA")
	assert.Equal(t, '!', enigma.EncryptChar('!', s, nil, enigma.ReflectorB))
}
