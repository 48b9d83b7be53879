package controllers

import (
	"errors"
	"log"
	"net/http"

	"hashpix_backend/services"
	"hashpix_backend/utils"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetAvatar renders the avatar for ?input=, in ?format= (json, yaml, text).
// An empty input is answered with a placeholder document, not an error.
func GetAvatar(c *gin.Context, avatarService *services.AvatarService) {
	format, err := services.ParseFormat(c.Query("format"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	avatar, err := avatarService.Generate(c.Request.Context(), c.Query("input"))
	if err != nil {
		respondError(c, err)
		return
	}
	render(c, avatar, format)
}

// GetRandomAvatar renders the avatar of a freshly generated identifier.
func GetRandomAvatar(c *gin.Context, avatarService *services.AvatarService) {
	format, err := services.ParseFormat(c.Query("format"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	avatar, err := avatarService.Random(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	render(c, avatar, format)
}

func GetPalette(c *gin.Context, avatarService *services.AvatarService) {
	avatar, err := avatarService.Generate(c.Request.Context(), c.Query("input"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"input":   avatar.Input,
		"digest":  avatar.Digest,
		"palette": services.NewPaletteDocument(avatar.Palette),
	})
}

func GetHash(c *gin.Context) {
	input := c.Query("input")
	c.JSON(http.StatusOK, gin.H{"input": input, "digest": utils.HashString(input)})
}

func GetIdentifier(c *gin.Context, avatarService *services.AvatarService) {
	c.JSON(http.StatusOK, gin.H{"identifier": avatarService.NewIdentifier()})
}

func render(c *gin.Context, avatar *services.Avatar, format services.Format) {
	if format == services.FormatJSON {
		c.JSON(http.StatusOK, services.NewAvatarDocument(avatar))
		return
	}
	data, err := services.Encode(avatar, format)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, format.ContentType(), data)
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInputTooLong), errors.Is(err, services.ErrUnsupportedFormat):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("Error generating avatar: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate avatar"})
	}
}
