package enigma_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeii/cipherhub/pkg/cipher/alphabet"
	"github.com/sergeii/cipherhub/pkg/cipher/enigma"
)

func TestRotors_WiringIsBijective(t *testing.T) {
	for _, rotor := range enigma.Rotors() {
		t.Run(rotor.Name(), func(t *testing.T) {
			seen := make(map[rune]bool)
			for _, r := range rotor.Wiring() {
				assert.False(t, seen[r], "letter %q is wired twice", r)
				seen[r] = true
			}
			assert.Len(t, seen, 26)
		})
	}
}

func TestRotors_Catalog(t *testing.T) {
	tests := []struct {
		rotor *enigma.RotorSpec
		name  string
		id    string
		notch rune
	}{
		{enigma.RotorI, "I", "rotor-i", 'Q'},
		{enigma.RotorII, "II", "rotor-ii", 'E'},
		{enigma.RotorIII, "III", "rotor-iii", 'V'},
		{enigma.RotorIV, "IV", "rotor-iv", 'J'},
		{enigma.RotorV, "V", "rotor-v", 'Z'},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.name, tt.rotor.Name())
		assert.Equal(t, tt.id, tt.rotor.ID())
		assert.Equal(t, tt.notch, tt.rotor.Notch())
		idx, _ := alphabet.Latin.Index(tt.notch)
		assert.Equal(t, idx, tt.rotor.NotchIndex())
	}
}

func TestLookupRotor(t *testing.T) {
	tests := []struct {
		name    string
		want    *enigma.RotorSpec
		wantErr bool
	}{
		{"II", enigma.RotorII, false},
		{"ii", enigma.RotorII, false},
		{"Rotor II", enigma.RotorII, false},
		{"rotor-ii", enigma.RotorII, false},
		{" iv ", enigma.RotorIV, false},
		{"I", enigma.RotorI, false},
		{"VI", nil, true},
		{"", nil, true},
		{"rotor", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := enigma.LookupRotor(tt.name)
			if tt.wantErr {
				assert.ErrorIs(t, err, enigma.ErrUnknownRotor)
				return
			}
			require.NoError(t, err)
			assert.Same(t, tt.want, got)
		})
	}
}

func TestNewRotorSpec_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		wiring string
		notch  rune
	}{
		{"short wiring", "EKMFLGDQVZNTOWYHXUSPAIBRC", 'Q'},
		{"duplicate letter", "EKMFLGDQVZNTOWYHXUSPAIBRCE", 'Q'},
		{"lower case wiring", "ekmflgdqvzntowyhxuspaibrcj", 'Q'},
		{"bad notch", "EKMFLGDQVZNTOWYHXUSPAIBRCJ", '1'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := enigma.NewRotorSpec("X", tt.wiring, tt.notch)
			assert.ErrorIs(t, err, enigma.ErrMalformedSpec)
		})
	}
}

func TestNewRotorSpec_Custom(t *testing.T) {
	rotor, err := enigma.NewRotorSpec("Identity", "ABCDEFGHIJKLMNOPQRSTUVWXYZ", 'A')
	require.NoError(t, err)
	assert.Equal(t, "rotor-identity", rotor.ID())
	assert.Equal(t, 0, rotor.NotchIndex())
}

func TestReflectors_AreFixedPointFreeInvolutions(t *testing.T) {
	for _, ref := range enigma.Reflectors() {
		t.Run(ref.Name(), func(t *testing.T) {
			wiring := []rune(ref.Wiring())
			require.Len(t, wiring, 26)
			for i, r := range wiring {
				letter := alphabet.Latin.At(i)
				back, _ := alphabet.Latin.Index(r)
				assert.Equal(t, letter, wiring[back], "reflector is not symmetric at %q", letter)
				assert.NotEqual(t, letter, r, "%q is reflected onto itself", letter)
			}
		})
	}
}

func TestLookupReflector(t *testing.T) {
	for _, name := range []string{"B", "b", "ukw-b", "UKW B", "Reflector B"} {
		got, err := enigma.LookupReflector(name)
		require.NoError(t, err, name)
		assert.Same(t, enigma.ReflectorB, got)
	}
	got, err := enigma.LookupReflector("C")
	require.NoError(t, err)
	assert.Equal(t, "ukw-c", got.ID())

	_, err = enigma.LookupReflector("A")
	assert.ErrorIs(t, err, enigma.ErrUnknownReflector)
}

func TestNewReflectorSpec_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		wiring string
	}{
		{"not a permutation", "YRUHQSLDPXNGOKMIEBFZCWVJAA"},
		// rotor I wiring is a permutation but not an involution
		{"not symmetric", "EKMFLGDQVZNTOWYHXUSPAIBRCJ"},
		// A and B swapped, every other letter reflected onto itself
		{"fixed points", "BACDEFGHIJKLMNOPQRSTUVWXYZ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := enigma.NewReflectorSpec("X", tt.wiring)
			assert.ErrorIs(t, err, enigma.ErrMalformedSpec)
		})
	}
}
