package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeii/cipherhub/internal/core/entities/cipher"
	"github.com/sergeii/cipherhub/internal/core/usecases/runpurple"
	"github.com/sergeii/cipherhub/internal/rest/model"
)

// EncryptPurple godoc
// @Summary      Encrypt with stepping switch machine
// @Description  Run a message through the stepping switch machine starting at the given switch positions
// @Tags         purple
// @Accept       json
// @Produce      json
// @Param        message body      model.PurpleMessage  true  "Switch positions and plaintext"
// @Success      200     {object}  model.PurpleResult
// @Failure      400     {object}  Error
// @Router       /purple/encrypt [post]
func (a *API) EncryptPurple(c *gin.Context) {
	a.runPurple(c, cipher.Encrypt)
}

// DecryptPurple godoc
// @Summary      Decrypt with stepping switch machine
// @Description  Run a ciphertext backwards through the stepping switch machine starting at the positions used for encryption
// @Tags         purple
// @Accept       json
// @Produce      json
// @Param        message body      model.PurpleMessage  true  "Switch positions and ciphertext"
// @Success      200     {object}  model.PurpleResult
// @Failure      400     {object}  Error
// @Router       /purple/decrypt [post]
func (a *API) DecryptPurple(c *gin.Context) {
	a.runPurple(c, cipher.Decrypt)
}

func (a *API) runPurple(c *gin.Context, direction cipher.Direction) {
	var msg model.PurpleMessage
	if !a.bindJSON(c, &msg) {
		return
	}

	resp := a.container.RunPurple.Execute(c, runpurple.Request{
		Initial:   msg.Switches.ToDomain(),
		Direction: direction,
		Text:      msg.Text,
	})

	c.JSON(http.StatusOK, model.NewPurpleResultFromDomain(resp))
}
