package rest

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/sergeii/cipherhub/api/docs" // nolint: revive
	"github.com/sergeii/cipherhub/internal/rest/api"
)

func NewRouter(a *api.API) *gin.Engine {
	router := gin.Default()
	router.GET("/status", a.Status)
	router.GET("/api/catalog", a.Catalog)
	router.POST("/api/enigma/encrypt", a.EncryptEnigma)
	router.POST("/api/enigma/decrypt", a.DecryptEnigma)
	router.POST("/api/purple/encrypt", a.EncryptPurple)
	router.POST("/api/purple/decrypt", a.DecryptPurple)
	router.POST("/api/sessions", a.CreateSession)
	router.GET("/api/sessions/:id", a.ViewSession)
	router.POST("/api/sessions/:id/keys", a.PressKeys)
	router.POST("/api/sessions/:id/reset", a.ResetSession)
	router.DELETE("/api/sessions/:id", a.RemoveSession)
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return router
}
