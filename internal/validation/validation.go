package validation

import (
	"github.com/go-playground/validator/v10"

	"github.com/sergeii/cipherhub/internal/validation/validators"
)

func New() (*validator.Validate, error) {
	validate := validator.New()
	custom := map[string]validator.Func{
		"rotor":     validators.ValidateRotor,
		"reflector": validators.ValidateReflector,
		"plugpairs": validators.ValidatePlugPairs,
		"windows":   validators.ValidateWindows,
	}
	for tag, fn := range custom {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			return nil, err
		}
	}
	return validate, nil
}
