package enigma

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sergeii/cipherhub/pkg/cipher/alphabet"
)

const MaxPlugboardPairs = 13

// Plugboard swaps letters in pairs before and after the rotor stack.
// Letters without a cable map onto themselves.
type Plugboard struct {
	plugs map[rune]rune
}

func NewPlugboard() *Plugboard {
	return &Plugboard{plugs: make(map[rune]rune)}
}

// ParsePlugboard builds a plugboard from pairs such as "AB CD" or "ab,cd".
func ParsePlugboard(pairs string) (*Plugboard, error) {
	pb := NewPlugboard()
	fields := strings.FieldsFunc(alphabet.Normalize(pairs), func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n'
	})
	for _, pair := range fields {
		letters := []rune(pair)
		if len(letters) != 2 {
			return nil, fmt.Errorf("%w: %q is not a pair of letters", ErrInvalidPlugboardPairing, pair)
		}
		if err := pb.Add(letters[0], letters[1]); err != nil {
			return nil, err
		}
	}
	return pb, nil
}

// Add connects two letters with a cable.
// The pairing is rejected when either letter is already plugged,
// both letters are the same or every cable is already in use.
func (pb *Plugboard) Add(a, b rune) error {
	if !alphabet.Latin.Contains(a) || !alphabet.Latin.Contains(b) {
		return fmt.Errorf("%w: %q%q contains a non letter", ErrInvalidPlugboardPairing, a, b)
	}
	if a == b {
		return fmt.Errorf("%w: %q cannot be paired with itself", ErrInvalidPlugboardPairing, a)
	}
	for _, r := range []rune{a, b} {
		if paired, taken := pb.plugs[r]; taken {
			return fmt.Errorf("%w: %q is already paired with %q", ErrInvalidPlugboardPairing, r, paired)
		}
	}
	if len(pb.plugs)/2 >= MaxPlugboardPairs {
		return fmt.Errorf("%w: no more than %d pairs", ErrInvalidPlugboardPairing, MaxPlugboardPairs)
	}
	pb.plugs[a] = b
	pb.plugs[b] = a
	return nil
}

func (pb *Plugboard) Clear() {
	clear(pb.plugs)
}

// Map returns the letter wired to r, or r itself when it is not plugged.
func (pb *Plugboard) Map(r rune) rune {
	if pb == nil {
		return r
	}
	if paired, ok := pb.plugs[r]; ok {
		return paired
	}
	return r
}

func (pb *Plugboard) Len() int {
	if pb == nil {
		return 0
	}
	return len(pb.plugs) / 2
}

// Pairs lists the cables in alphabetical order, e.g. ["AB", "CD"]
func (pb *Plugboard) Pairs() []string {
	if pb == nil {
		return nil
	}
	pairs := make([]string, 0, len(pb.plugs)/2)
	for a, b := range pb.plugs {
		if a < b {
			pairs = append(pairs, string([]rune{a, b}))
		}
	}
	sort.Strings(pairs)
	return pairs
}

func (pb *Plugboard) String() string {
	return strings.Join(pb.Pairs(), " ")
}

func (pb *Plugboard) swap(i int) int {
	mapped, _ := alphabet.Latin.Index(pb.Map(alphabet.Latin.At(i)))
	return mapped
}
