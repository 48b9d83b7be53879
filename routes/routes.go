package routes

import (
	"hashpix_backend/controllers"
	"hashpix_backend/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, avatarService *services.AvatarService) {
	r.GET("/health", controllers.Health)
	r.GET("/hash", controllers.GetHash)
	r.GET("/avatar", func(c *gin.Context) {
		controllers.GetAvatar(c, avatarService)
	})
	r.GET("/avatar/random", func(c *gin.Context) {
		controllers.GetRandomAvatar(c, avatarService)
	})
	r.GET("/palette", func(c *gin.Context) {
		controllers.GetPalette(c, avatarService)
	})
	r.GET("/identifier", func(c *gin.Context) {
		controllers.GetIdentifier(c, avatarService)
	})
}
