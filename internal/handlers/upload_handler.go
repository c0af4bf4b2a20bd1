package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/qwarnma600-sudo/ecommerces/internal/logger"
)

// UploadImage handles POST /upload.
// It saves the file under the configured upload directory and returns the
// URL the storefront can fetch it back from (served at /images).
func (h *Handlers) UploadImage(c *gin.Context) {
	// 1. Get the file from the request
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": 0, "message": "No file uploaded"})
		return
	}

	// 2. Create the upload directory if it doesn't exist
	if _, err := os.Stat(h.Cfg.UploadDir); os.IsNotExist(err) {
		os.MkdirAll(h.Cfg.UploadDir, 0o755)
	}

	// 3. Generate a safe unique filename (uuid + original extension)
	ext := filepath.Ext(file.Filename)
	newFilename := fmt.Sprintf("image_%s%s", uuid.New().String(), ext)
	savePath := filepath.Join(h.Cfg.UploadDir, newFilename)

	// 4. Save the file
	if err := c.SaveUploadedFile(file, savePath); err != nil {
		zl := logger.Get()
		zl.Error().Err(err).Str("path", savePath).Msg("upload save failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": 0, "message": "Failed to save file"})
		return
	}

	// 5. Return the public URL
	c.JSON(http.StatusOK, gin.H{
		"success":   1,
		"image_url": fmt.Sprintf("%s/images/%s", h.Cfg.BaseURL, newFilename),
	})
}
