package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/sergeii/cipherhub/cmd/cipherhub/container"
)

type API struct {
	container container.Container
	validate  *validator.Validate
	logger    *zerolog.Logger
}

type Error struct {
	Error string `json:"error"`
}

func New(
	container container.Container,
	validate *validator.Validate,
	logger *zerolog.Logger,
) *API {
	return &API{
		container: container,
		validate:  validate,
		logger:    logger,
	}
}

// bindJSON decodes the request body into v and validates the result.
// The request is aborted with 400 when anything is wrong with the body.
func (a *API) bindJSON(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		a.logger.Debug().Err(err).Str("path", c.FullPath()).Msg("Unable to decode request body")
		c.JSON(http.StatusBadRequest, Error{Error: "Malformed request body"})
		return false
	}
	if err := a.validate.Struct(v); err != nil {
		a.logger.Debug().Err(err).Str("path", c.FullPath()).Msg("Request body failed validation")
		c.JSON(http.StatusBadRequest, Error{Error: err.Error()})
		return false
	}
	return true
}
