package enigma

import (
	"fmt"
	"strings"

	"github.com/gosimple/slug"

	"github.com/sergeii/cipherhub/pkg/cipher/alphabet"
)

// RotorSpec is the immutable description of a rotor: its wiring and turnover notch.
type RotorSpec struct {
	name  string
	notch int
	perm  alphabet.Permutation
}

// NewRotorSpec validates the wiring and the notch letter.
// wiring[i] is the letter the i-th letter of the alphabet is wired to at offset 0.
func NewRotorSpec(name, wiring string, notch rune) (*RotorSpec, error) {
	perm, err := alphabet.NewPermutation(alphabet.Latin, wiring)
	if err != nil {
		return nil, fmt.Errorf("%w: rotor %s: %w", ErrMalformedSpec, name, err)
	}
	notchIdx, ok := alphabet.Latin.Index(notch)
	if !ok {
		return nil, fmt.Errorf("%w: rotor %s: notch %q is not a letter", ErrMalformedSpec, name, notch)
	}
	return &RotorSpec{name: name, notch: notchIdx, perm: perm}, nil
}

func mustNewRotorSpec(name, wiring string, notch rune) *RotorSpec {
	spec, err := NewRotorSpec(name, wiring, notch)
	if err != nil {
		panic(err)
	}
	return spec
}

func (r *RotorSpec) Name() string {
	return r.name
}

// ID is the url friendly identifier of the rotor, e.g. rotor-iv
func (r *RotorSpec) ID() string {
	return slug.Make("rotor " + r.name)
}

func (r *RotorSpec) Wiring() string {
	return r.perm.Wiring()
}

func (r *RotorSpec) Notch() rune {
	return alphabet.Latin.At(r.notch)
}

// NotchIndex is the position at which the rotor carries into its left neighbour.
func (r *RotorSpec) NotchIndex() int {
	return r.notch
}

func (r *RotorSpec) forward(i int) int {
	return r.perm.Forward(i)
}

func (r *RotorSpec) backward(i int) int {
	return r.perm.Inverse(i)
}

// Historical Enigma I / M3 rotors.
var (
	RotorI   = mustNewRotorSpec("I", "EKMFLGDQVZNTOWYHXUSPAIBRCJ", 'Q')
	RotorII  = mustNewRotorSpec("II", "AJDKSIRUXBLHWTMCQGZNPYFVOE", 'E')
	RotorIII = mustNewRotorSpec("III", "BDFHJLCPRTXVZNYEIWGAKMUSQO", 'V')
	RotorIV  = mustNewRotorSpec("IV", "ESOVPZJAYQUIRHXLNFTGKDCMWB", 'J')
	RotorV   = mustNewRotorSpec("V", "VZBRGITYUPSDNHLXAWMJQOFECK", 'Z')
)

// Rotors lists the rotor catalog in its conventional order.
func Rotors() []*RotorSpec {
	return []*RotorSpec{RotorI, RotorII, RotorIII, RotorIV, RotorV}
}

// LookupRotor finds a catalog rotor by its name or id, ignoring case.
// "II", "ii", "Rotor II" and "rotor-ii" all refer to the same rotor.
func LookupRotor(name string) (*RotorSpec, error) {
	key := strings.TrimPrefix(slug.Make(name), "rotor-")
	for _, spec := range Rotors() {
		if slug.Make(spec.name) == key {
			return spec, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownRotor, name)
}
