package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"

	"github.com/sergeii/cipherhub/internal/testutils"
)

type sessionSchema struct {
	ID        string          `json:"id"`
	Machine   string          `json:"machine"`
	Direction string          `json:"direction"`
	Enigma    *map[string]any `json:"enigma"`
	Purple    *switchesSchema `json:"purple"`
	Windows   string          `json:"windows"`
	Switches  *switchesSchema `json:"switches"`
	Keys      int             `json:"keys"`
	Tape      string          `json:"tape"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type keyPressResultSchema struct {
	Lamps   string        `json:"lamps"`
	Session sessionSchema `json:"session"`
}

func createSession(t *testing.T, ts *httptest.Server, body map[string]any) sessionSchema {
	var s sessionSchema
	resp := testutils.DoTestRequest(
		ts, http.MethodPost, "/api/sessions", testutils.JSONBody(body),
		testutils.MustBindJSON(&s),
	)
	require.Equal(t, http.StatusCreated, resp.StatusCode, resp.Body)
	return s
}

func pressKeys(t *testing.T, ts *httptest.Server, id, keys string) keyPressResultSchema {
	var result keyPressResultSchema
	resp := testutils.DoTestRequest(
		ts, http.MethodPost, "/api/sessions/"+id+"/keys",
		testutils.JSONBody(map[string]string{"keys": keys}),
		testutils.MustBindJSON(&result),
	)
	require.Equal(t, http.StatusOK, resp.StatusCode, resp.Body)
	return result
}

func enigmaSessionBody() map[string]any {
	return map[string]any{
		"machine": "enigma",
		"enigma": map[string]any{
			"rotors":    []string{"I", "II", "III"},
			"reflector": "B",
			"positions": "ADU",
			"plugs":     "ab cd",
		},
	}
}

func TestAPI_Sessions_EnigmaLifecycle(t *testing.T) {
	ts, cancel := testutils.PrepareTestServer(t)
	defer cancel()

	created := createSession(t, ts, enigmaSessionBody())
	assert.NotEmpty(t, uuid.MustParse(created.ID))
	assert.Equal(t, "enigma", created.Machine)
	assert.Equal(t, "encrypt", created.Direction)
	assert.Equal(t, "ADU", created.Windows)
	assert.Nil(t, created.Switches)
	assert.Equal(t, 0, created.Keys)
	assert.Equal(t, "", created.Tape)
	require.NotNil(t, created.Enigma)
	assert.Equal(t, "AB CD", (*created.Enigma)["plugs"])

	// the rotors double step along the way
	pressed := pressKeys(t, ts, created.ID, "Hello!")
	assert.Len(t, pressed.Lamps, 5)
	assert.Equal(t, "BFZ", pressed.Session.Windows)
	assert.Equal(t, 5, pressed.Session.Keys)
	assert.Equal(t, pressed.Lamps, pressed.Session.Tape)

	// the machine is reciprocal, a twin session turns the lamps back into the message
	twin := createSession(t, ts, enigmaSessionBody())
	back := pressKeys(t, ts, twin.ID, pressed.Lamps)
	assert.Equal(t, "HELLO", back.Lamps)

	var viewed sessionSchema
	resp := testutils.DoTestRequest(
		ts, http.MethodGet, "/api/sessions/"+created.ID, nil,
		testutils.MustBindJSON(&viewed),
	)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "BFZ", viewed.Windows)
	assert.Equal(t, 5, viewed.Keys)
	assert.Equal(t, pressed.Lamps, viewed.Tape)

	var reset sessionSchema
	resp = testutils.DoTestRequest(
		ts, http.MethodPost, "/api/sessions/"+created.ID+"/reset", nil,
		testutils.MustBindJSON(&reset),
	)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ADU", reset.Windows)
	assert.Equal(t, 0, reset.Keys)
	assert.Equal(t, "", reset.Tape)

	// same keys from the same state light the same lamps
	again := pressKeys(t, ts, created.ID, "HELLO")
	assert.Equal(t, pressed.Lamps, again.Lamps)

	resp = testutils.DoTestRequest(ts, http.MethodDelete, "/api/sessions/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, resp.Body)

	resp = testutils.DoTestRequest(ts, http.MethodGet, "/api/sessions/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_Sessions_PurpleLifecycle(t *testing.T) {
	ts, cancel := testutils.PrepareTestServer(t)
	defer cancel()

	encrypting := createSession(t, ts, map[string]any{
		"machine": "purple",
	})
	assert.Equal(t, "purple", encrypting.Machine)
	assert.Equal(t, "encrypt", encrypting.Direction)
	assert.Equal(t, "", encrypting.Windows)
	assert.Equal(t, &switchesSchema{1, 1, 1}, encrypting.Purple)
	assert.Equal(t, &switchesSchema{1, 1, 1}, encrypting.Switches)

	pressed := pressKeys(t, ts, encrypting.ID, "PUR")
	assert.Equal(t, "PIL", pressed.Lamps)
	pressed = pressKeys(t, ts, encrypting.ID, "PLE")
	assert.Equal(t, "MHY", pressed.Lamps)
	assert.Equal(t, &switchesSchema{5, 1, 1}, pressed.Session.Switches)
	assert.Equal(t, &switchesSchema{1, 1, 1}, pressed.Session.Purple)
	assert.Equal(t, "PILMHY", pressed.Session.Tape)
	assert.Equal(t, 6, pressed.Session.Keys)

	decrypting := createSession(t, ts, map[string]any{
		"machine":   "purple",
		"direction": "decrypt",
		"purple":    map[string]int{"fast": 21, "medium": 1, "slow": 1},
	})
	assert.Equal(t, "decrypt", decrypting.Direction)
	assert.Equal(t, &switchesSchema{1, 1, 1}, decrypting.Switches)

	back := pressKeys(t, ts, decrypting.ID, "PILMHY")
	assert.Equal(t, "PURPLE", back.Lamps)
}

func TestAPI_Sessions_PressKeys_NoLetters(t *testing.T) {
	ts, cancel := testutils.PrepareTestServer(t)
	defer cancel()

	created := createSession(t, ts, enigmaSessionBody())

	pressed := pressKeys(t, ts, created.ID, "1234 !?")
	assert.Equal(t, "", pressed.Lamps)
	assert.Equal(t, "ADU", pressed.Session.Windows)
	assert.Equal(t, 0, pressed.Session.Keys)
	assert.True(t, created.UpdatedAt.Equal(pressed.Session.UpdatedAt))
}

func TestAPI_Sessions_Create_BadRequest(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
	}{
		{
			"unknown machine",
			map[string]any{"machine": "lorenz"},
		},
		{
			"no machine",
			map[string]any{},
		},
		{
			"enigma without settings",
			map[string]any{"machine": "enigma"},
		},
		{
			"enigma with unknown rotor",
			map[string]any{
				"machine": "enigma",
				"enigma": map[string]any{
					"rotors":    []string{"I", "II", "VI"},
					"reflector": "B",
				},
			},
		},
		{
			"enigma with duplicate rotors",
			map[string]any{
				"machine": "enigma",
				"enigma": map[string]any{
					"rotors":    []string{"I", "II", "I"},
					"reflector": "B",
				},
			},
		},
		{
			"unknown direction",
			map[string]any{
				"machine":   "purple",
				"direction": "sideways",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, cancel := testutils.PrepareTestServer(t)
			defer cancel()

			resp := testutils.DoTestRequest(ts, http.MethodPost, "/api/sessions", testutils.JSONBody(tt.body))
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode, resp.Body)
		})
	}
}

func TestAPI_Sessions_NotFound(t *testing.T) {
	ts, cancel := testutils.PrepareTestServer(t)
	defer cancel()

	id := uuid.NewString()
	tests := []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodGet, "/api/sessions/" + id, nil},
		{http.MethodPost, "/api/sessions/" + id + "/keys", map[string]string{"keys": "A"}},
		{http.MethodPost, "/api/sessions/" + id + "/reset", nil},
		{http.MethodDelete, "/api/sessions/" + id, nil},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			var resp testutils.Response
			if tt.body != nil {
				resp = testutils.DoTestRequest(ts, tt.method, tt.path, testutils.JSONBody(tt.body))
			} else {
				resp = testutils.DoTestRequest(ts, tt.method, tt.path, nil)
			}
			assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		})
	}
}

func TestAPI_Sessions_InvalidID(t *testing.T) {
	ts, cancel := testutils.PrepareTestServer(t)
	defer cancel()

	for _, path := range []string{"/api/sessions/foo", "/api/sessions/1234"} {
		resp := testutils.DoTestRequest(ts, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, resp.Body, "Invalid session id")
	}
}

func TestAPI_Sessions_PressKeys_BadRequest(t *testing.T) {
	ts, cancel := testutils.PrepareTestServer(t)
	defer cancel()

	created := createSession(t, ts, enigmaSessionBody())

	resp := testutils.DoTestRequest(
		ts, http.MethodPost, "/api/sessions/"+created.ID+"/keys",
		testutils.JSONBody(map[string]string{"keys": ""}),
	)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_Sessions_PressKeys_Busy(t *testing.T) {
	var rdb *redis.Client

	ts, cancel := testutils.PrepareTestServer(t, fx.Populate(&rdb))
	defer cancel()

	created := createSession(t, ts, enigmaSessionBody())

	// another key press is holding the session
	lockKey := "locks:sessions:" + created.ID
	require.NoError(t, rdb.Set(context.TODO(), lockKey, "someone", time.Minute).Err())

	resp := testutils.DoTestRequest(
		ts, http.MethodPost, "/api/sessions/"+created.ID+"/keys",
		testutils.JSONBody(map[string]string{"keys": "A"}),
	)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = testutils.DoTestRequest(ts, http.MethodPost, "/api/sessions/"+created.ID+"/reset", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// the session cannot be removed under a key press either
	resp = testutils.DoTestRequest(ts, http.MethodDelete, "/api/sessions/"+created.ID, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	require.NoError(t, rdb.Del(context.TODO(), lockKey).Err())
	pressed := pressKeys(t, ts, created.ID, "A")
	assert.Equal(t, "ADV", pressed.Session.Windows)

	resp = testutils.DoTestRequest(ts, http.MethodDelete, "/api/sessions/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}
