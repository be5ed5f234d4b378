package model

import (
	"time"

	"github.com/sergeii/cipherhub/internal/core/entities/cipher"
	"github.com/sergeii/cipherhub/internal/core/entities/session"
)

type NewSession struct {
	Machine   string          `example:"enigma"  json:"machine"   validate:"required,oneof=enigma purple"`
	Direction string          `example:"encrypt" json:"direction" validate:"omitempty,oneof=encrypt decrypt"`
	Enigma    *EnigmaSettings `json:"enigma"    validate:"required_if=Machine enigma"`
	Purple    *Switches       `json:"purple"`
}

type Session struct {
	ID        string          `json:"id"`
	Machine   string          `json:"machine"`
	Direction string          `json:"direction"`
	Enigma    *EnigmaSettings `json:"enigma,omitempty"`
	Purple    *Switches       `json:"purple,omitempty"`
	Windows   string          `json:"windows,omitempty"`
	Switches  *Switches       `json:"switches,omitempty"`
	Keys      int             `json:"keys"`
	Tape      string          `json:"tape"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func NewSessionFromDomain(s session.Session) Session {
	view := Session{
		ID:        s.ID.String(),
		Machine:   s.Machine.String(),
		Direction: s.Direction.String(),
		Keys:      s.Keys,
		Tape:      s.Tape,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	switch s.Machine {
	case cipher.Enigma:
		if s.Enigma != nil {
			settings := NewEnigmaSettingsFromDomain(*s.Enigma)
			view.Enigma = &settings
		}
		view.Windows = s.Windows()
	case cipher.Purple:
		if s.Purple != nil {
			initial := NewSwitchesFromDomain(*s.Purple)
			view.Purple = &initial
		}
		current := NewSwitchesFromDomain(s.Switches)
		view.Switches = &current
	}
	return view
}

type KeyPress struct {
	Keys string `example:"HELLO" json:"keys" validate:"required,max=1024"`
}

type KeyPressResult struct {
	Lamps   string  `json:"lamps"`
	Session Session `json:"session"`
}
