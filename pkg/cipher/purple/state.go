package purple

import (
	"github.com/sergeii/cipherhub/pkg/cipher/alphabet"
)

// SwitchPositions is the number of positions of every consonant switch.
// Positions are counted from 1.
const SwitchPositions = 20

// State holds the positions of the three consonant switches.
type State struct {
	Fast   int
	Medium int
	Slow   int
}

// Home is the state with every switch on its first position.
var Home = State{Fast: 1, Medium: 1, Slow: 1}

// Normalize folds out of range positions back into 1..20.
func (s State) Normalize() State {
	return State{
		Fast:   normalizePosition(s.Fast),
		Medium: normalizePosition(s.Medium),
		Slow:   normalizePosition(s.Slow),
	}
}

func normalizePosition(pos int) int {
	return alphabet.Mod(pos-1, SwitchPositions) + 1
}

// Advance moves the fast switch by one position.
// Rolling over past the last position always carries into the next switch.
func Advance(s State) State {
	s.Fast++
	if s.Fast > SwitchPositions {
		s.Fast = 1
		s.Medium++
	}
	if s.Medium > SwitchPositions {
		s.Medium = 1
		s.Slow++
	}
	if s.Slow > SwitchPositions {
		s.Slow = 1
	}
	return s
}
