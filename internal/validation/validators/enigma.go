package validators

import (
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/sergeii/cipherhub/pkg/cipher/alphabet"
	"github.com/sergeii/cipherhub/pkg/cipher/enigma"
)

const rotorSlots = 3

func ValidateRotor(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	// don't validate empty value
	if value == "" {
		return true
	}
	_, err := enigma.LookupRotor(value)
	return err == nil
}

func ValidateReflector(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := enigma.LookupReflector(value)
	return err == nil
}

// ValidatePlugPairs accepts cable pairs such as "AB CD EF".
func ValidatePlugPairs(fl validator.FieldLevel) bool {
	_, err := enigma.ParsePlugboard(fl.Field().String())
	return err == nil
}

// ValidateWindows accepts a letter for every rotor window, e.g. "ADU".
func ValidateWindows(fl validator.FieldLevel) bool {
	value := alphabet.Normalize(fl.Field().String())
	if value == "" {
		return true
	}
	if utf8.RuneCountInString(value) != rotorSlots {
		return false
	}
	return alphabet.Latin.Count(value) == rotorSlots
}
