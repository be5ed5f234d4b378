package model

import (
	"github.com/sergeii/cipherhub/internal/core/usecases/runpurple"
	"github.com/sergeii/cipherhub/pkg/cipher/purple"
)

// Switches are the stepping switch positions, 1 through 20.
// A missing switch is set to 1.
type Switches struct {
	Fast   *int `json:"fast"   example:"9"`
	Medium *int `json:"medium" example:"1"`
	Slow   *int `json:"slow"   example:"20"`
}

func (s Switches) ToDomain() purple.State {
	st := purple.Home
	if s.Fast != nil {
		st.Fast = *s.Fast
	}
	if s.Medium != nil {
		st.Medium = *s.Medium
	}
	if s.Slow != nil {
		st.Slow = *s.Slow
	}
	return st.Normalize()
}

func NewSwitchesFromDomain(st purple.State) Switches {
	return Switches{
		Fast:   &st.Fast,
		Medium: &st.Medium,
		Slow:   &st.Slow,
	}
}

type PurpleMessage struct {
	Switches Switches `json:"switches"`
	Text     string   `json:"text"     validate:"required,max=65536"`
}

type PurpleResult struct {
	Text     string   `json:"text"`
	Letters  int      `json:"letters"`
	Switches Switches `json:"switches"` // positions after the last letter
}

func NewPurpleResultFromDomain(resp runpurple.Response) PurpleResult {
	return PurpleResult{
		Text:     resp.Text,
		Letters:  resp.Letters,
		Switches: NewSwitchesFromDomain(resp.Final),
	}
}
