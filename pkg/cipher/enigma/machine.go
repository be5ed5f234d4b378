package enigma

import (
	"fmt"
	"strings"

	"github.com/sergeii/cipherhub/pkg/cipher/alphabet"
)

const militaryGroupSize = 5

// Format decides what happens to characters outside of A..Z in a transcribed message.
type Format int

const (
	// FormatPreserve keeps spacing and punctuation in place
	FormatPreserve Format = iota
	// FormatMilitary drops everything but letters and emits them in blocks of five
	FormatMilitary
)

func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "", "preserve":
		return FormatPreserve, nil
	case "military":
		return FormatMilitary, nil
	default:
		return FormatPreserve, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

func (f Format) String() string {
	switch f {
	case FormatMilitary:
		return "military"
	default:
		return "preserve"
	}
}

// Settings is the initial configuration of a machine as an operator would set it up.
// Rings and positions are zero based and wrap around the alphabet.
type Settings struct {
	Rotors    [3]string
	Rings     [3]int
	Positions [3]int
	Reflector string
	Plugs     string
}

// Machine is a configured Enigma. It keeps no rotor state of its own:
// the state is handed in and returned on every call.
type Machine struct {
	reflector *ReflectorSpec
	plugboard *Plugboard
	initial   State
}

func NewMachine(settings Settings) (*Machine, error) {
	var slots [3]Slot
	seen := make(map[*RotorSpec]struct{}, len(settings.Rotors))
	for i, name := range settings.Rotors {
		rotor, err := LookupRotor(name)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[rotor]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRotor, rotor.Name())
		}
		seen[rotor] = struct{}{}
		slots[i] = Slot{Rotor: rotor, Position: settings.Positions[i], Ring: settings.Rings[i]}
	}

	reflector, err := LookupReflector(settings.Reflector)
	if err != nil {
		return nil, err
	}

	plugboard, err := ParsePlugboard(settings.Plugs)
	if err != nil {
		return nil, err
	}

	return New(NewState(slots[Left], slots[Middle], slots[Right]), reflector, plugboard), nil
}

// New assembles a machine from already validated parts.
func New(initial State, reflector *ReflectorSpec, plugboard *Plugboard) *Machine {
	if plugboard == nil {
		plugboard = NewPlugboard()
	}
	return &Machine{
		reflector: reflector,
		plugboard: plugboard,
		initial:   initial.normalize(),
	}
}

func (m *Machine) InitialState() State {
	return m.initial
}

func (m *Machine) Reflector() *ReflectorSpec {
	return m.reflector
}

func (m *Machine) Plugboard() *Plugboard {
	return m.plugboard
}

// Press is a single key press in the interactive mode:
// the rotors step and the lamp for the pressed key lights up.
// A key that upper-cases into several letters (e.g. 'ß') is not a single key,
// so typing a string should normalise the whole string first, the way Transcribe does.
func (m *Machine) Press(key rune, s State) (rune, State, error) {
	upper, ok := singleRune(alphabet.Normalize(string(key)))
	if !ok || !alphabet.Latin.Contains(upper) {
		return key, s, fmt.Errorf("%w: %q", ErrNotALetter, key)
	}
	s = Step(s)
	return EncryptChar(upper, s, m.plugboard, m.reflector), s, nil
}

func singleRune(s string) (rune, bool) {
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, false
	}
	return runes[0], true
}

// Transcribe runs a whole message through the machine starting from the given state
// and returns the result along with the state after the last letter.
// The machine is reciprocal, so the same call both encrypts and decrypts.
func (m *Machine) Transcribe(text string, s State, format Format) (string, State) {
	text = alphabet.Normalize(text)
	if format == FormatMilitary {
		text = lettersOnly(text)
	}

	var out strings.Builder
	out.Grow(len(text))
	for _, r := range text {
		if !alphabet.Latin.Contains(r) {
			out.WriteRune(r)
			continue
		}
		s = Step(s)
		out.WriteRune(EncryptChar(r, s, m.plugboard, m.reflector))
	}

	if format == FormatMilitary {
		return group(out.String(), militaryGroupSize), s
	}
	return out.String(), s
}

func lettersOnly(text string) string {
	return strings.Map(func(r rune) rune {
		if alphabet.Latin.Contains(r) {
			return r
		}
		return -1
	}, text)
}

func group(letters string, size int) string {
	var out strings.Builder
	for i, r := range []rune(letters) {
		if i > 0 && i%size == 0 {
			out.WriteByte(' ')
		}
		out.WriteRune(r)
	}
	return out.String()
}
