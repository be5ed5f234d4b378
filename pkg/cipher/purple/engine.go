package purple

import (
	"strings"

	"github.com/sergeii/cipherhub/pkg/cipher/alphabet"
)

// TransformChar passes a letter through a single switch set at the given position.
// The signal enters shifted by position-1 and leaves shifted back by the same amount.
// A letter outside the switch's charset is returned unchanged.
func TransformChar(letter rune, wiring alphabet.Permutation, position int) rune {
	charset := wiring.Charset()
	idx, ok := charset.Index(letter)
	if !ok {
		return letter
	}
	shift := position - 1
	wired := wiring.Forward(alphabet.Mod(idx+shift, charset.Len()))
	return charset.At(wired - shift)
}

// EncryptConsonant chains the fast, medium and slow switches.
func (s *Spec) EncryptConsonant(letter rune, fast, medium, slow int) rune {
	letter = TransformChar(letter, s.fast, fast)
	letter = TransformChar(letter, s.medium, medium)
	return TransformChar(letter, s.slow, slow)
}

// DecryptConsonant undoes EncryptConsonant made at the same positions.
func (s *Spec) DecryptConsonant(letter rune, fast, medium, slow int) rune {
	letter = TransformChar(letter, s.slow.Invert(), slow)
	letter = TransformChar(letter, s.medium.Invert(), medium)
	return TransformChar(letter, s.fast.Invert(), fast)
}

// EncryptVowel passes a vowel through the sixes switch.
// The sixes have no stepping of their own and borrow the fast switch position.
func (s *Spec) EncryptVowel(letter rune, fast int) rune {
	return TransformChar(letter, s.vowel, fast)
}

func (s *Spec) DecryptVowel(letter rune, fast int) rune {
	return TransformChar(letter, s.vowel.Invert(), fast)
}

type direction int

const (
	encrypt direction = iota
	decrypt
)

// Encrypt runs a message through the machine starting from the given state
// and returns the ciphertext along with the state after the last letter.
func (s *Spec) Encrypt(text string, st State) (string, State) {
	return s.transcribe(text, st, encrypt)
}

// Decrypt must start from the same state the message was encrypted with.
func (s *Spec) Decrypt(text string, st State) (string, State) {
	return s.transcribe(text, st, decrypt)
}

// Press handles a single key. The second value reports whether the key was a letter.
// Keys that upper-case into more than one letter are not letters here.
func (s *Spec) Press(key rune, st State, decrypting bool) (rune, State, bool) {
	dir := encrypt
	if decrypting {
		dir = decrypt
	}
	upper := []rune(alphabet.Normalize(string(key)))
	if len(upper) != 1 || (!Vowels.Contains(upper[0]) && !Consonants.Contains(upper[0])) {
		return key, st, false
	}
	out, next := s.substitute(upper[0], st.Normalize(), dir)
	return out, next, true
}

func (s *Spec) transcribe(text string, st State, dir direction) (string, State) {
	text = alphabet.Normalize(text)
	st = st.Normalize()

	var out strings.Builder
	out.Grow(len(text))
	for _, r := range text {
		var sub rune
		sub, st = s.substitute(r, st, dir)
		out.WriteRune(sub)
	}
	return out.String(), st
}

func (s *Spec) substitute(r rune, st State, dir direction) (rune, State) {
	switch {
	case Vowels.Contains(r):
		if dir == decrypt {
			return s.DecryptVowel(r, st.Fast), st
		}
		return s.EncryptVowel(r, st.Fast), st
	case Consonants.Contains(r):
		st = Advance(st)
		if dir == decrypt {
			return s.DecryptConsonant(r, st.Fast, st.Medium, st.Slow), st
		}
		return s.EncryptConsonant(r, st.Fast, st.Medium, st.Slow), st
	default:
		return r, st
	}
}
