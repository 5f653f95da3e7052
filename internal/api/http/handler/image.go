package handler

import (
	"mime"
	"net/http"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"github.com/dtroode/carlisting-server/internal/logger"
)

// Image serves stored car images.
type Image struct {
	carService CarService
	logger     *logger.Logger
}

func NewImage(carService CarService, logger *logger.Logger) *Image {
	return &Image{carService: carService, logger: logger}
}

// Get handles GET /uploads/:key.
func (h *Image) Get(c echo.Context) error {
	key := c.Param("key")

	rc, err := h.carService.GetImage(c.Request().Context(), key)
	if err != nil {
		return err
	}
	defer rc.Close()

	contentType := mime.TypeByExtension(filepath.Ext(key))
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	c.Response().Header().Set("Cache-Control", "public, max-age=86400")

	return c.Stream(http.StatusOK, contentType, rc)
}
