package cipher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sergeii/cipherhub/internal/core/entities/cipher"
)

func TestParseMachine(t *testing.T) {
	tests := []struct {
		name    string
		want    cipher.Machine
		wantErr error
	}{
		{"enigma", cipher.Enigma, nil},
		{"purple", cipher.Purple, nil},
		{"Enigma", "", cipher.ErrUnknownMachine},
		{"", "", cipher.ErrUnknownMachine},
		{"lorenz", "", cipher.ErrUnknownMachine},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cipher.ParseMachine(tt.name)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		name    string
		want    cipher.Direction
		wantErr error
	}{
		{"", cipher.Encrypt, nil},
		{"encrypt", cipher.Encrypt, nil},
		{"decrypt", cipher.Decrypt, nil},
		{"reverse", "", cipher.ErrUnknownDirection},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cipher.ParseDirection(tt.name)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.want, got)
		})
	}
}
