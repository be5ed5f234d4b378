package cipher

import (
	"errors"
)

var (
	ErrUnknownMachine   = errors.New("unknown cipher machine")
	ErrUnknownDirection = errors.New("unknown cipher direction")
)

type Machine string

const (
	Enigma Machine = "enigma"
	Purple Machine = "purple"
)

func ParseMachine(name string) (Machine, error) {
	switch Machine(name) {
	case Enigma, Purple:
		return Machine(name), nil
	default:
		return "", ErrUnknownMachine
	}
}

func (m Machine) String() string {
	return string(m)
}

type Direction string

const (
	Encrypt Direction = "encrypt"
	Decrypt Direction = "decrypt"
)

func ParseDirection(name string) (Direction, error) {
	switch Direction(name) {
	case "":
		return Encrypt, nil
	case Encrypt, Decrypt:
		return Direction(name), nil
	default:
		return "", ErrUnknownDirection
	}
}

func (d Direction) String() string {
	return string(d)
}
