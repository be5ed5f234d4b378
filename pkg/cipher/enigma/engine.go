package enigma

import (
	"github.com/sergeii/cipherhub/pkg/cipher/alphabet"
)

// EncryptChar passes a single letter through the plugboard, the rotors
// from right to left, the reflector, the rotors from left to right and
// the plugboard again. The state must already be stepped for this key press.
// letter must be one of A..Z, otherwise it is returned unchanged.
func EncryptChar(letter rune, s State, pb *Plugboard, ref *ReflectorSpec) rune {
	signal, ok := alphabet.Latin.Index(letter)
	if !ok {
		return letter
	}
	n := alphabet.Latin.Len()

	signal = pb.swap(signal)

	for i := Right; i >= Left; i-- {
		offset := s[i].offset()
		signal = alphabet.Mod(s[i].Rotor.forward(signal+offset)-offset, n)
	}

	signal = ref.reflect(signal)

	for i := Left; i <= Right; i++ {
		offset := s[i].offset()
		signal = alphabet.Mod(s[i].Rotor.backward(signal+offset)-offset, n)
	}

	signal = pb.swap(signal)

	return alphabet.Latin.At(signal)
}
