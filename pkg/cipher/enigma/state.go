package enigma

import (
	"github.com/sergeii/cipherhub/pkg/cipher/alphabet"
)

const (
	Left   = 0
	Middle = 1
	Right  = 2
)

// Slot is a rotor installed into the machine along with its current settings.
type Slot struct {
	Rotor    *RotorSpec
	Position int
	Ring     int
}

func (s Slot) offset() int {
	return alphabet.Mod(s.Position-s.Ring, alphabet.Latin.Len())
}

func (s Slot) atNotch() bool {
	return s.Position == s.Rotor.NotchIndex()
}

// Window is the letter shown in the rotor's window.
func (s Slot) Window() rune {
	return alphabet.Latin.At(s.Position)
}

// State holds the three rotor slots, left (slow) to right (fast).
// It is a plain value, so every step produces a new state
// and the caller decides which one to keep.
type State [3]Slot

func NewState(left, middle, right Slot) State {
	return State{left, middle, right}.normalize()
}

func (s State) normalize() State {
	for i := range s {
		s[i].Position = alphabet.Mod(s[i].Position, alphabet.Latin.Len())
		s[i].Ring = alphabet.Mod(s[i].Ring, alphabet.Latin.Len())
	}
	return s
}

// Windows renders the rotor positions as letters, e.g. "ADU".
func (s State) Windows() string {
	return string([]rune{s[Left].Window(), s[Middle].Window(), s[Right].Window()})
}

// Step advances the rotors the way a key press does.
// The fast rotor always moves. The middle rotor moves when the fast rotor
// sits on its notch or when it sits on its own notch, in which case
// the left rotor moves along with it (the double step).
// All notches are checked against positions before any rotor moves.
func Step(s State) State {
	middleAtNotch := s[Middle].atNotch()
	rightAtNotch := s[Right].atNotch()

	if middleAtNotch {
		s[Left].Position++
	}
	if middleAtNotch || rightAtNotch {
		s[Middle].Position++
	}
	s[Right].Position++

	return s.normalize()
}
