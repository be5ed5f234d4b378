package transcribe

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sergeii/cipherhub/pkg/cipher/alphabet"
	"github.com/sergeii/cipherhub/pkg/cipher/enigma"
	"github.com/sergeii/cipherhub/pkg/cipher/purple"
)

var ErrInvalidArgs = errors.New("transcribe: invalid arguments")

type EnigmaCmd struct {
	Rotors    []string `default:"I,II,III" help:"Rotors to put into the machine, left to right"`
	Reflector string   `default:"B"        help:"Reflector to put into the machine"`
	Rings     []int    `default:"0,0,0"    help:"Zero based ring settings, left to right"`
	Positions string   `default:"AAA"      help:"Letters shown in the rotor windows, left to right"`
	Plugs     string   `default:""         help:"Plugboard pairs, e.g. \"AB CD\""`
	Format    string   `default:"preserve" enum:"preserve,military" help:"How to treat characters other than letters"` // nolint:lll

	Text []string `arg:"" help:"Message to transcribe, read from stdin when omitted" optional:""`
}

func (c *EnigmaCmd) Run() error {
	return c.run(os.Stdin, os.Stdout)
}

func (c *EnigmaCmd) run(in io.Reader, out io.Writer) error {
	settings, err := c.settings()
	if err != nil {
		return err
	}
	machine, err := enigma.NewMachine(settings)
	if err != nil {
		return err
	}
	format, err := enigma.ParseFormat(c.Format)
	if err != nil {
		return err
	}
	text, err := readText(c.Text, in)
	if err != nil {
		return err
	}
	result, final := machine.Transcribe(text, machine.InitialState(), format)
	_, err = fmt.Fprintf(out, "%s\n%s\n", result, final.Windows())
	return err
}

func (c *EnigmaCmd) settings() (enigma.Settings, error) {
	var settings enigma.Settings
	if len(c.Rotors) != len(settings.Rotors) {
		return settings, fmt.Errorf("%w: expected 3 rotors, got %d", ErrInvalidArgs, len(c.Rotors))
	}
	if len(c.Rings) != len(settings.Rings) {
		return settings, fmt.Errorf("%w: expected 3 rings, got %d", ErrInvalidArgs, len(c.Rings))
	}
	windows := []rune(alphabet.Normalize(c.Positions))
	if len(windows) != len(settings.Positions) {
		return settings, fmt.Errorf("%w: expected 3 window letters, got %q", ErrInvalidArgs, c.Positions)
	}
	for i := range settings.Positions {
		idx, ok := alphabet.Latin.Index(windows[i])
		if !ok {
			return settings, fmt.Errorf("%w: %q is not a letter", ErrInvalidArgs, windows[i])
		}
		settings.Positions[i] = idx
		settings.Rotors[i] = c.Rotors[i]
		settings.Rings[i] = c.Rings[i]
	}
	settings.Reflector = c.Reflector
	settings.Plugs = c.Plugs
	return settings, nil
}

type PurpleCmd struct {
	Fast    int  `default:"1" help:"Position of the fast switch, 1 through 20"`
	Medium  int  `default:"1" help:"Position of the medium switch, 1 through 20"`
	Slow    int  `default:"1" help:"Position of the slow switch, 1 through 20"`
	Decrypt bool `help:"Decrypt the message instead of encrypting it"`

	Text []string `arg:"" help:"Message to transcribe, read from stdin when omitted" optional:""`
}

func (c *PurpleCmd) Run() error {
	return c.run(os.Stdin, os.Stdout)
}

func (c *PurpleCmd) run(in io.Reader, out io.Writer) error {
	text, err := readText(c.Text, in)
	if err != nil {
		return err
	}
	initial := purple.State{Fast: c.Fast, Medium: c.Medium, Slow: c.Slow}.Normalize()

	var result string
	var final purple.State
	if c.Decrypt {
		result, final = purple.Default().Decrypt(text, initial)
	} else {
		result, final = purple.Default().Encrypt(text, initial)
	}
	_, err = fmt.Fprintf(out, "%s\n%d-%d-%d\n", result, final.Fast, final.Medium, final.Slow)
	return err
}

func readText(args []string, in io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("failed to read message: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
