package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeii/cipherhub/internal/testutils"
)

type catalogSchema struct {
	Rotors []struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Wiring string `json:"wiring"`
		Notch  string `json:"notch"`
	} `json:"rotors"`
	Reflectors []struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Wiring string `json:"wiring"`
	} `json:"reflectors"`
	Switches []struct {
		ID      string `json:"id"`
		Letters string `json:"letters"`
		Wiring  string `json:"wiring"`
	} `json:"switches"`
	Positions int `json:"switch_positions"`
}

func TestAPI_Catalog_OK(t *testing.T) {
	var catalog catalogSchema

	ts, cancel := testutils.PrepareTestServer(t)
	defer cancel()

	resp := testutils.DoTestRequest(
		ts, http.MethodGet, "/api/catalog", nil,
		testutils.MustBindJSON(&catalog),
	)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, catalog.Rotors, 5)
	assert.Equal(t, "rotor-i", catalog.Rotors[0].ID)
	assert.Equal(t, "I", catalog.Rotors[0].Name)
	assert.Equal(t, "EKMFLGDQVZNTOWYHXUSPAIBRCJ", catalog.Rotors[0].Wiring)
	assert.Equal(t, "Q", catalog.Rotors[0].Notch)
	assert.Equal(t, "rotor-v", catalog.Rotors[4].ID)
	assert.Equal(t, "Z", catalog.Rotors[4].Notch)

	require.Len(t, catalog.Reflectors, 2)
	assert.Equal(t, "ukw-b", catalog.Reflectors[0].ID)
	assert.Equal(t, "YRUHQSLDPXNGOKMIEBFZCWVJAT", catalog.Reflectors[0].Wiring)
	assert.Equal(t, "ukw-c", catalog.Reflectors[1].ID)

	require.Len(t, catalog.Switches, 4)
	ids := make([]string, 0, len(catalog.Switches))
	for _, sw := range catalog.Switches {
		ids = append(ids, sw.ID)
		assert.Len(t, sw.Wiring, len(sw.Letters))
	}
	assert.Equal(t, []string{"vowel", "fast", "medium", "slow"}, ids)
	assert.Equal(t, "AEIOUY", catalog.Switches[0].Letters)
	assert.Equal(t, 20, catalog.Positions)
}
