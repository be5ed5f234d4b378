// Package purple implements a stepping switch cipher machine
// modelled after the Japanese "97-shiki" (PURPLE) machine.
//
// Letters are split into the "sixes" (vowels) and the "twenties" (consonants).
// The sixes pass through a single switch, the twenties through a cascade of
// three switches that step like an odometer. Letters never cross between the groups.
package purple

import (
	"errors"
	"fmt"

	"github.com/sergeii/cipherhub/pkg/cipher/alphabet"
)

var ErrMalformedSpec = errors.New("purple: malformed switch specification")

var (
	Vowels     = alphabet.MustNewCharset("AEIOUY")
	Consonants = alphabet.MustNewCharset("BCDFGHJKLMNPQRSTVWXZ")
)

// Wiring is the set of switch wirings a machine is built from.
type Wiring struct {
	Vowel  string
	Fast   string
	Medium string
	Slow   string
}

// DefaultWiring is the wiring of the built-in machine.
var DefaultWiring = Wiring{
	Vowel:  "UYEAIO",
	Fast:   "ZWBPGMHVRCQNLXJTDSKF",
	Medium: "ZGLJXWNMSTFCVHRPBKDQ",
	Slow:   "DTZRSLMFQPJWVGKXBNHC",
}

// Spec is an immutable, validated machine.
// Inverse tables are derived from the forward wiring,
// so the two directions can never disagree.
type Spec struct {
	vowel  alphabet.Permutation
	fast   alphabet.Permutation
	medium alphabet.Permutation
	slow   alphabet.Permutation
}

func NewSpec(w Wiring) (*Spec, error) {
	vowel, err := alphabet.NewPermutation(Vowels, w.Vowel)
	if err != nil {
		return nil, fmt.Errorf("%w: vowel switch: %w", ErrMalformedSpec, err)
	}
	stages := make([]alphabet.Permutation, 0, 3)
	for _, stage := range []struct {
		name   string
		wiring string
	}{
		{"fast", w.Fast},
		{"medium", w.Medium},
		{"slow", w.Slow},
	} {
		perm, err := alphabet.NewPermutation(Consonants, stage.wiring)
		if err != nil {
			return nil, fmt.Errorf("%w: %s switch: %w", ErrMalformedSpec, stage.name, err)
		}
		stages = append(stages, perm)
	}
	return &Spec{
		vowel:  vowel,
		fast:   stages[0],
		medium: stages[1],
		slow:   stages[2],
	}, nil
}

var defaultSpec = func() *Spec {
	spec, err := NewSpec(DefaultWiring)
	if err != nil {
		panic(err)
	}
	return spec
}()

// Default returns the built-in machine.
func Default() *Spec {
	return defaultSpec
}

func (s *Spec) Wiring() Wiring {
	return Wiring{
		Vowel:  s.vowel.Wiring(),
		Fast:   s.fast.Wiring(),
		Medium: s.medium.Wiring(),
		Slow:   s.slow.Wiring(),
	}
}
