package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sergeii/cipherhub/internal/core/entities/cipher"
	"github.com/sergeii/cipherhub/internal/core/usecases/createsession"
	"github.com/sergeii/cipherhub/internal/core/usecases/getsession"
	"github.com/sergeii/cipherhub/internal/core/usecases/presskeys"
	"github.com/sergeii/cipherhub/internal/core/usecases/removesession"
	"github.com/sergeii/cipherhub/internal/core/usecases/resetsession"
	"github.com/sergeii/cipherhub/internal/rest/model"
	"github.com/sergeii/cipherhub/pkg/cipher/enigma"
	"github.com/sergeii/cipherhub/pkg/cipher/purple"
)

// CreateSession godoc
// @Summary      Create session
// @Description  Set up a machine to type on key by key
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        session body      model.NewSession  true  "Machine and its settings"
// @Success      201     {object}  model.Session
// @Failure      400     {object}  Error
// @Router       /sessions [post]
func (a *API) CreateSession(c *gin.Context) {
	var form model.NewSession
	if !a.bindJSON(c, &form) {
		return
	}

	req := createsession.Request{
		Machine:   cipher.Machine(form.Machine),
		Direction: cipher.Direction(form.Direction),
	}
	switch req.Machine {
	case cipher.Enigma:
		var settings enigma.Settings
		if form.Enigma != nil {
			settings = form.Enigma.ToDomain()
		}
		req.Enigma = &settings
	case cipher.Purple:
		initial := purple.Home
		if form.Purple != nil {
			initial = form.Purple.ToDomain()
		}
		req.Purple = &initial
	}

	s, err := a.container.CreateSession.Execute(c, req)
	if err != nil {
		switch {
		case errors.Is(err, createsession.ErrInvalidSettings):
			c.JSON(http.StatusBadRequest, Error{Error: err.Error()})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, model.NewSessionFromDomain(s))
}

// ViewSession godoc
// @Summary      View session
// @Description  Return the settings and the current state of a session
// @Tags         sessions
// @Produce      json
// @Param        id  path      string  true  "Session id"
// @Success      200 {object}  model.Session
// @Failure      404
// @Router       /sessions/{id} [get]
func (a *API) ViewSession(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}

	s, err := a.container.GetSession.Execute(c, id)
	if err != nil {
		switch {
		case errors.Is(err, getsession.ErrSessionNotFound):
			c.Status(http.StatusNotFound)
		default:
			a.logger.Error().Err(err).Stringer("session", id).Msg("Failed to obtain session")
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, model.NewSessionFromDomain(s))
}

// PressKeys godoc
// @Summary      Press keys
// @Description  Type keys on the session's machine one after another and return the lamps that lit up.
// @Description  Every letter moves the machine before it is enciphered, other keys are ignored.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "Session id"
// @Param        keys  body      model.KeyPress  true  "Keys to press"
// @Success      200   {object}  model.KeyPressResult
// @Failure      400   {object}  Error
// @Failure      404
// @Failure      409
// @Router       /sessions/{id}/keys [post]
func (a *API) PressKeys(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}

	var form model.KeyPress
	if !a.bindJSON(c, &form) {
		return
	}

	resp, err := a.container.PressKeys.Execute(c, presskeys.Request{SessionID: id, Keys: form.Keys})
	if err != nil {
		switch {
		case errors.Is(err, presskeys.ErrNoKeys):
			c.JSON(http.StatusBadRequest, Error{Error: err.Error()})
		case errors.Is(err, presskeys.ErrSessionNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, presskeys.ErrSessionBusy):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, model.KeyPressResult{
		Lamps:   resp.Lamps,
		Session: model.NewSessionFromDomain(resp.Session),
	})
}

// ResetSession godoc
// @Summary      Reset session
// @Description  Put the machine back to the positions it was set up with and clear the tape
// @Tags         sessions
// @Produce      json
// @Param        id  path      string  true  "Session id"
// @Success      200 {object}  model.Session
// @Failure      404
// @Failure      409
// @Router       /sessions/{id}/reset [post]
func (a *API) ResetSession(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}

	s, err := a.container.ResetSession.Execute(c, id)
	if err != nil {
		switch {
		case errors.Is(err, resetsession.ErrSessionNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, resetsession.ErrSessionBusy):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, model.NewSessionFromDomain(s))
}

// RemoveSession godoc
// @Summary      Remove session
// @Tags         sessions
// @Param        id  path  string  true  "Session id"
// @Success      204
// @Failure      404
// @Failure      409
// @Router       /sessions/{id} [delete]
func (a *API) RemoveSession(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}

	if err := a.container.RemoveSession.Execute(c, id); err != nil {
		switch {
		case errors.Is(err, removesession.ErrSessionNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, removesession.ErrSessionBusy):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func parseSessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, Error{Error: "Invalid session id"})
		return uuid.Nil, false
	}
	return id, true
}
