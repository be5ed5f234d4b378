package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeii/cipherhub/internal/rest/model"
	"github.com/sergeii/cipherhub/pkg/cipher/enigma"
	"github.com/sergeii/cipherhub/pkg/cipher/purple"
)

// Catalog godoc
// @Summary      List machine parts
// @Description  List the rotors and reflectors available to the rotor machine and the switch wiring of the stepping switch machine
// @Tags         catalog
// @Produce      json
// @Success      200 {object} model.Catalog
// @Router       /catalog [get]
func (a *API) Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, model.NewCatalog(enigma.Rotors(), enigma.Reflectors(), purple.Default()))
}
