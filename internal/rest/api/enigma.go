package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeii/cipherhub/internal/core/entities/cipher"
	"github.com/sergeii/cipherhub/internal/core/usecases/runenigma"
	"github.com/sergeii/cipherhub/internal/rest/model"
	"github.com/sergeii/cipherhub/pkg/cipher/enigma"
)

// EncryptEnigma godoc
// @Summary      Encrypt with rotor machine
// @Description  Run a message through a rotor machine set up with the given settings
// @Tags         enigma
// @Accept       json
// @Produce      json
// @Param        message body      model.EnigmaMessage  true  "Machine settings and plaintext"
// @Success      200     {object}  model.EnigmaResult
// @Failure      400     {object}  Error
// @Router       /enigma/encrypt [post]
func (a *API) EncryptEnigma(c *gin.Context) {
	a.runEnigma(c, cipher.Encrypt)
}

// DecryptEnigma godoc
// @Summary      Decrypt with rotor machine
// @Description  Run a ciphertext through a rotor machine set up exactly as it was for encryption.
// @Description  Military grouping is not available for decryption.
// @Tags         enigma
// @Accept       json
// @Produce      json
// @Param        message body      model.EnigmaMessage  true  "Machine settings and ciphertext"
// @Success      200     {object}  model.EnigmaResult
// @Failure      400     {object}  Error
// @Router       /enigma/decrypt [post]
func (a *API) DecryptEnigma(c *gin.Context) {
	a.runEnigma(c, cipher.Decrypt)
}

func (a *API) runEnigma(c *gin.Context, direction cipher.Direction) {
	var msg model.EnigmaMessage
	if !a.bindJSON(c, &msg) {
		return
	}

	format, err := enigma.ParseFormat(msg.Format)
	if err != nil {
		c.JSON(http.StatusBadRequest, Error{Error: err.Error()})
		return
	}

	resp, err := a.container.RunEnigma.Execute(c, runenigma.Request{
		Settings:  msg.Settings.ToDomain(),
		Direction: direction,
		Format:    format,
		Text:      msg.Text,
	})
	if err != nil {
		switch {
		case errors.Is(err, runenigma.ErrInvalidSettings), errors.Is(err, runenigma.ErrGroupingNotSupported):
			c.JSON(http.StatusBadRequest, Error{Error: err.Error()})
		default:
			a.logger.Error().Err(err).Stringer("direction", direction).Msg("Failed to run rotor machine")
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, model.NewEnigmaResultFromDomain(resp))
}
