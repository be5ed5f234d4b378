package model

import (
	"github.com/gosimple/slug"

	"github.com/sergeii/cipherhub/pkg/cipher/enigma"
	"github.com/sergeii/cipherhub/pkg/cipher/purple"
)

type Rotor struct {
	ID     string `json:"id"     example:"rotor-i"`
	Name   string `json:"name"   example:"I"`
	Wiring string `json:"wiring" example:"EKMFLGDQVZNTOWYHXUSPAIBRCJ"`
	Notch  string `json:"notch"  example:"Q"`
}

type Reflector struct {
	ID     string `json:"id"     example:"ukw-b"`
	Name   string `json:"name"   example:"B"`
	Wiring string `json:"wiring" example:"YRUHQSLDPXNGOKMIEBFZCWVJAT"`
}

type SwitchWiring struct {
	ID      string `json:"id"      example:"fast"`
	Letters string `json:"letters" example:"BCDFGHJKLMNPQRSTVWXZ"`
	Wiring  string `json:"wiring"  example:"ZWBPGMHVRCQNLXJTDSKF"`
}

type Catalog struct {
	Rotors     []Rotor        `json:"rotors"`
	Reflectors []Reflector    `json:"reflectors"`
	Switches   []SwitchWiring `json:"switches"`
	Positions  int            `json:"switch_positions"`
}

func NewCatalog(rotors []*enigma.RotorSpec, reflectors []*enigma.ReflectorSpec, spec *purple.Spec) Catalog {
	catalog := Catalog{
		Rotors:     make([]Rotor, 0, len(rotors)),
		Reflectors: make([]Reflector, 0, len(reflectors)),
		Positions:  purple.SwitchPositions,
	}
	for _, r := range rotors {
		catalog.Rotors = append(catalog.Rotors, Rotor{
			ID:     r.ID(),
			Name:   r.Name(),
			Wiring: r.Wiring(),
			Notch:  string(r.Notch()),
		})
	}
	for _, r := range reflectors {
		catalog.Reflectors = append(catalog.Reflectors, Reflector{
			ID:     r.ID(),
			Name:   r.Name(),
			Wiring: r.Wiring(),
		})
	}
	wiring := spec.Wiring()
	switches := []struct {
		name    string
		letters string
		wiring  string
	}{
		{"Vowel", purple.Vowels.String(), wiring.Vowel},
		{"Fast", purple.Consonants.String(), wiring.Fast},
		{"Medium", purple.Consonants.String(), wiring.Medium},
		{"Slow", purple.Consonants.String(), wiring.Slow},
	}
	for _, sw := range switches {
		catalog.Switches = append(catalog.Switches, SwitchWiring{
			ID:      slug.Make(sw.name),
			Letters: sw.letters,
			Wiring:  sw.wiring,
		})
	}
	return catalog
}
