package enigma

import "errors"

var (
	ErrMalformedSpec           = errors.New("enigma: malformed wiring specification")
	ErrInvalidPlugboardPairing = errors.New("enigma: invalid plugboard pairing")
	ErrUnknownRotor            = errors.New("enigma: unknown rotor")
	ErrUnknownReflector        = errors.New("enigma: unknown reflector")
	ErrDuplicateRotor          = errors.New("enigma: rotor is installed more than once")
	ErrNotALetter              = errors.New("enigma: key is not a letter")
	ErrUnknownFormat           = errors.New("enigma: unknown output format")
)
