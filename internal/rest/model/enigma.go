package model

import (
	"github.com/sergeii/cipherhub/internal/core/usecases/runenigma"
	"github.com/sergeii/cipherhub/pkg/cipher/alphabet"
	"github.com/sergeii/cipherhub/pkg/cipher/enigma"
)

type EnigmaSettings struct {
	Rotors    [3]string `example:"I,II,III" json:"rotors"    validate:"dive,required,rotor"`
	Reflector string    `example:"B"        json:"reflector" validate:"required,reflector"`
	// Zero based, 0 is ring setting A
	Rings [3]int `json:"rings"`
	// Letters shown in the rotor windows, left to right
	Positions string `example:"ADU"   json:"positions" validate:"omitempty,windows"`
	Plugs     string `example:"AB CD" json:"plugs"     validate:"plugpairs"`
}

func (s EnigmaSettings) ToDomain() enigma.Settings {
	settings := enigma.Settings{
		Rotors:    s.Rotors,
		Reflector: s.Reflector,
		Rings:     s.Rings,
		Plugs:     s.Plugs,
	}
	for i, letter := range []rune(alphabet.Normalize(s.Positions)) {
		if i >= len(settings.Positions) {
			break
		}
		if idx, ok := alphabet.Latin.Index(letter); ok {
			settings.Positions[i] = idx
		}
	}
	return settings
}

func NewEnigmaSettingsFromDomain(settings enigma.Settings) EnigmaSettings {
	positions := make([]rune, 0, len(settings.Positions))
	for _, pos := range settings.Positions {
		positions = append(positions, alphabet.Latin.At(pos))
	}
	return EnigmaSettings{
		Rotors:    settings.Rotors,
		Reflector: settings.Reflector,
		Rings:     settings.Rings,
		Positions: string(positions),
		Plugs:     settings.Plugs,
	}
}

type EnigmaMessage struct {
	Settings EnigmaSettings `json:"settings"`
	Text     string         `json:"text"     validate:"required,max=65536"`
	Format   string         `example:"military" json:"format" validate:"omitempty,oneof=preserve military"`
}

type EnigmaResult struct {
	Text    string `json:"text"`
	Letters int    `json:"letters"`
	Windows string `json:"windows"` // rotor positions after the last letter
}

func NewEnigmaResultFromDomain(resp runenigma.Response) EnigmaResult {
	return EnigmaResult{
		Text:    resp.Text,
		Letters: resp.Letters,
		Windows: resp.Windows,
	}
}
