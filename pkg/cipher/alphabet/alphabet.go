// Package alphabet provides the charsets and validated permutations
// the cipher machines are wired with.
package alphabet

import (
	"errors"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	ErrEmptyCharset    = errors.New("alphabet: charset is empty")
	ErrDuplicateLetter = errors.New("alphabet: charset has duplicate letters")
	ErrMalformedWiring = errors.New("alphabet: wiring is not a permutation of the charset")
)

// Mod is the modulo operation that never yields a negative remainder.
func Mod(n, m int) int {
	return ((n % m) + m) % m
}

// Charset is an ordered set of distinct letters that serves as an index space.
type Charset struct {
	letters []rune
	index   map[rune]int
}

// Latin is the 26 letter A..Z charset.
var Latin = MustNewCharset("ABCDEFGHIJKLMNOPQRSTUVWXYZ")

func NewCharset(s string) (Charset, error) {
	letters := []rune(s)
	if len(letters) == 0 {
		return Charset{}, ErrEmptyCharset
	}
	index := make(map[rune]int, len(letters))
	for i, r := range letters {
		if _, seen := index[r]; seen {
			return Charset{}, fmt.Errorf("%w: %q", ErrDuplicateLetter, r)
		}
		index[r] = i
	}
	return Charset{letters: letters, index: index}, nil
}

func MustNewCharset(s string) Charset {
	cs, err := NewCharset(s)
	if err != nil {
		panic(err)
	}
	return cs
}

func (cs Charset) Len() int {
	return len(cs.letters)
}

func (cs Charset) Index(r rune) (int, bool) {
	i, ok := cs.index[r]
	return i, ok
}

func (cs Charset) Contains(r rune) bool {
	_, ok := cs.index[r]
	return ok
}

// Count returns how many runes of text belong to the charset.
func (cs Charset) Count(text string) int {
	n := 0
	for _, r := range text {
		if cs.Contains(r) {
			n++
		}
	}
	return n
}

// At returns the letter at i, wrapping i around the charset length.
func (cs Charset) At(i int) rune {
	return cs.letters[Mod(i, len(cs.letters))]
}

func (cs Charset) String() string {
	return string(cs.letters)
}

// Permutation is a bijection over a charset.
// Both directions are tabulated once, so lookups never search.
type Permutation struct {
	charset Charset
	forward []int
	inverse []int
}

func NewPermutation(cs Charset, wiring string) (Permutation, error) {
	wired := []rune(wiring)
	if len(wired) != cs.Len() {
		return Permutation{}, fmt.Errorf(
			"%w: expected %d letters, got %d", ErrMalformedWiring, cs.Len(), len(wired),
		)
	}
	forward := make([]int, cs.Len())
	inverse := make([]int, cs.Len())
	for i := range inverse {
		inverse[i] = -1
	}
	for i, r := range wired {
		j, ok := cs.Index(r)
		if !ok {
			return Permutation{}, fmt.Errorf("%w: %q is not in %s", ErrMalformedWiring, r, cs)
		}
		if inverse[j] != -1 {
			return Permutation{}, fmt.Errorf("%w: %q is wired twice", ErrMalformedWiring, r)
		}
		forward[i] = j
		inverse[j] = i
	}
	return Permutation{charset: cs, forward: forward, inverse: inverse}, nil
}

func MustNewPermutation(cs Charset, wiring string) Permutation {
	p, err := NewPermutation(cs, wiring)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Permutation) Charset() Charset {
	return p.charset
}

func (p Permutation) Forward(i int) int {
	return p.forward[Mod(i, len(p.forward))]
}

func (p Permutation) Inverse(i int) int {
	return p.inverse[Mod(i, len(p.inverse))]
}

// Invert returns the permutation running in the opposite direction.
func (p Permutation) Invert() Permutation {
	return Permutation{charset: p.charset, forward: p.inverse, inverse: p.forward}
}

func (p Permutation) IsInvolution() bool {
	for i, j := range p.forward {
		if p.forward[j] != i {
			return false
		}
	}
	return true
}

// FixedPoints returns the letters the permutation maps onto themselves.
func (p Permutation) FixedPoints() []rune {
	var fixed []rune
	for i, j := range p.forward {
		if i == j {
			fixed = append(fixed, p.charset.At(i))
		}
	}
	return fixed
}

// Wiring renders the permutation back into its wiring string.
func (p Permutation) Wiring() string {
	wired := make([]rune, len(p.forward))
	for i, j := range p.forward {
		wired[i] = p.charset.At(j)
	}
	return string(wired)
}

// Normalize upper-cases a message the way the machines expect it.
// Characters outside of any charset are left for the machines to pass through.
func Normalize(text string) string {
	return cases.Upper(language.Und).String(text)
}
