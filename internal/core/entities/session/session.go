package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sergeii/cipherhub/internal/core/entities/cipher"
	"github.com/sergeii/cipherhub/pkg/cipher/alphabet"
	"github.com/sergeii/cipherhub/pkg/cipher/enigma"
	"github.com/sergeii/cipherhub/pkg/cipher/purple"
)

var (
	ErrInvalidSettings = errors.New("invalid machine settings")
	ErrMissingSettings = errors.New("machine settings are missing")
)

// Session is an interactive machine an operator types on key by key.
// It remembers both the settings it was set up with and the current
// rotor or switch positions, so it can be reset to the initial state.
type Session struct {
	ID        uuid.UUID
	Machine   cipher.Machine
	Direction cipher.Direction

	Enigma *enigma.Settings
	Purple *purple.State

	// Current positions of the machine
	Rotors   [3]int
	Switches purple.State

	Keys      int
	Tape      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

var Blank Session

func NewEnigma(id uuid.UUID, settings enigma.Settings, now time.Time) (Session, error) {
	m, err := enigma.NewMachine(settings)
	if err != nil {
		return Blank, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	initial := m.InitialState()
	// keep the normalized form, so the settings always round trip
	for i, slot := range initial {
		settings.Positions[i] = slot.Position
		settings.Rings[i] = slot.Ring
	}
	settings.Plugs = m.Plugboard().String()

	s := Session{
		ID:        id,
		Machine:   cipher.Enigma,
		Direction: cipher.Encrypt,
		Enigma:    &settings,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.rewind()
	return s, nil
}

func NewPurple(id uuid.UUID, initial purple.State, direction cipher.Direction, now time.Time) Session {
	initial = initial.Normalize()
	s := Session{
		ID:        id,
		Machine:   cipher.Purple,
		Direction: direction,
		Purple:    &initial,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.rewind()
	return s
}

// Press types the keys on the machine and returns the lamps that lit up.
// Keys that are not letters are ignored and do not move the machine.
// Only the most recent tapeLength lamps are kept on the session's tape.
func (s *Session) Press(keys string, tapeLength int, now time.Time) (string, error) {
	var lamps string
	var err error
	switch s.Machine {
	case cipher.Enigma:
		lamps, err = s.pressEnigma(keys)
	case cipher.Purple:
		lamps, err = s.pressPurple(keys)
	default:
		err = cipher.ErrUnknownMachine
	}
	if err != nil {
		return "", err
	}
	s.Keys += len(lamps)
	s.Tape = truncateTape(s.Tape+lamps, tapeLength)
	s.UpdatedAt = now
	return lamps, nil
}

func (s *Session) pressEnigma(keys string) (string, error) {
	if s.Enigma == nil {
		return "", ErrMissingSettings
	}
	m, err := enigma.NewMachine(*s.Enigma)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	state := m.InitialState()
	for i := range state {
		state[i].Position = s.Rotors[i]
	}
	var lamps strings.Builder
	for _, key := range alphabet.Normalize(keys) {
		lamp, next, pressErr := m.Press(key, state)
		if pressErr != nil {
			continue
		}
		lamps.WriteRune(lamp)
		state = next
	}
	for i, slot := range state {
		s.Rotors[i] = slot.Position
	}
	return lamps.String(), nil
}

func (s *Session) pressPurple(keys string) (string, error) {
	if s.Purple == nil {
		return "", ErrMissingSettings
	}
	spec := purple.Default()
	state := s.Switches
	var lamps strings.Builder
	for _, key := range alphabet.Normalize(keys) {
		lamp, next, ok := spec.Press(key, state, s.Direction == cipher.Decrypt)
		if !ok {
			continue
		}
		lamps.WriteRune(lamp)
		state = next
	}
	s.Switches = state
	return lamps.String(), nil
}

// Reset returns the machine to the positions it was set up with and clears the tape.
func (s *Session) Reset(now time.Time) {
	s.rewind()
	s.Keys = 0
	s.Tape = ""
	s.UpdatedAt = now
}

func (s *Session) rewind() {
	switch s.Machine {
	case cipher.Enigma:
		if s.Enigma != nil {
			s.Rotors = s.Enigma.Positions
		}
	case cipher.Purple:
		if s.Purple != nil {
			s.Switches = *s.Purple
		}
	}
}

// Windows renders the current rotor positions as letters, e.g. "AAF".
// It is empty for machines without rotors.
func (s Session) Windows() string {
	if s.Machine != cipher.Enigma {
		return ""
	}
	letters := make([]rune, 0, len(s.Rotors))
	for _, pos := range s.Rotors {
		letters = append(letters, rune('A'+pos))
	}
	return string(letters)
}

func (s Session) String() string {
	return fmt.Sprintf("%s session %s", s.Machine, s.ID)
}

func truncateTape(tape string, length int) string {
	if length <= 0 || len(tape) <= length {
		return tape
	}
	return tape[len(tape)-length:]
}
