package main

import (
	"context"
	"hashpix_backend/config"
	"hashpix_backend/middleware"
	"hashpix_backend/routes"
	"hashpix_backend/services"
	"hashpix_backend/tracing"
	"log"

	"github.com/gin-gonic/gin"
)

const version = "0.1.0"

func main() {
	config.LoadEnv()
	cfg := config.Load()

	if err := tracing.Init(cfg.ServiceName, version, cfg.TraceOutput); err != nil {
		log.Fatal("Failed to initialize tracing:", err)
	}
	defer func() {
		if err := tracing.Shutdown(context.Background()); err != nil {
			log.Println("Failed to flush traces:", err)
		}
	}()

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	avatarService := services.NewAvatarService(services.WithMaxInputLength(cfg.MaxInputLength))

	r := gin.Default()
	r.Use(middleware.RequestID(), middleware.Tracing())
	routes.RegisterRoutes(r, avatarService)

	log.Println("Server running on port:", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
