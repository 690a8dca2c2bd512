package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/skiselkov/crypto-test/internal/domain/crypto"
	"github.com/skiselkov/crypto-test/internal/domain/kat"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine, katService kat.Service, sessions crypto.SessionFactory) {
	v1 := r.Group(BasePath) // lookup in version file

	// KAT Routes
	katHandler := NewKATHandler(katService)
	v1.POST("/kat/runs", katHandler.Run)
	v1.GET("/kat/runs", katHandler.List)
	v1.GET("/kat/runs/:id", katHandler.GetByID)

	// Cipher Routes
	cipherHandler := NewCipherHandler(sessions)
	v1.POST("/cipher", cipherHandler.Process)
}
