package enigma

import (
	"fmt"
	"strings"

	"github.com/gosimple/slug"

	"github.com/sergeii/cipherhub/pkg/cipher/alphabet"
)

// ReflectorSpec folds the signal back through the rotor stack.
// Its wiring is an involution without fixed points.
type ReflectorSpec struct {
	name string
	perm alphabet.Permutation
}

func NewReflectorSpec(name, wiring string) (*ReflectorSpec, error) {
	perm, err := alphabet.NewPermutation(alphabet.Latin, wiring)
	if err != nil {
		return nil, fmt.Errorf("%w: reflector %s: %w", ErrMalformedSpec, name, err)
	}
	if !perm.IsInvolution() {
		return nil, fmt.Errorf("%w: reflector %s: wiring is not symmetric", ErrMalformedSpec, name)
	}
	if fixed := perm.FixedPoints(); len(fixed) > 0 {
		return nil, fmt.Errorf(
			"%w: reflector %s: letters %q are wired to themselves", ErrMalformedSpec, name, string(fixed),
		)
	}
	return &ReflectorSpec{name: name, perm: perm}, nil
}

func mustNewReflectorSpec(name, wiring string) *ReflectorSpec {
	spec, err := NewReflectorSpec(name, wiring)
	if err != nil {
		panic(err)
	}
	return spec
}

func (r *ReflectorSpec) Name() string {
	return r.name
}

// ID is the url friendly identifier of the reflector, e.g. ukw-b
func (r *ReflectorSpec) ID() string {
	return slug.Make("ukw " + r.name)
}

func (r *ReflectorSpec) Wiring() string {
	return r.perm.Wiring()
}

func (r *ReflectorSpec) reflect(i int) int {
	return r.perm.Forward(i)
}

var (
	ReflectorB = mustNewReflectorSpec("B", "YRUHQSLDPXNGOKMIEBFZCWVJAT")
	ReflectorC = mustNewReflectorSpec("C", "FVPJIAOYEDRZXWGCTKUQSBNMHL")
)

func Reflectors() []*ReflectorSpec {
	return []*ReflectorSpec{ReflectorB, ReflectorC}
}

// LookupReflector accepts "B", "ukw-b" or "UKW B" alike.
func LookupReflector(name string) (*ReflectorSpec, error) {
	key := slug.Make(name)
	key = strings.TrimPrefix(key, "reflector-")
	key = strings.TrimPrefix(key, "ukw-")
	for _, spec := range Reflectors() {
		if slug.Make(spec.name) == key {
			return spec, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownReflector, name)
}
