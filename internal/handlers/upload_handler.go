package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

const maxUploadSize = 5 << 20

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

// UploadFile handles POST /v1/admin/upload
// It saves an image under UploadDir and returns its public URL.
func (h *Handlers) UploadFile(c *gin.Context) {
	// 1. Get the file from the request
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	if file.Size > maxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File exceeds 5MB limit"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only jpg, jpeg, png, webp and gif images are allowed"})
		return
	}

	// 2. Create the upload directory if it doesn't exist
	if err := os.MkdirAll(h.UploadDir, 0755); err != nil {
		h.logger().Error("create upload dir failed", "dir", h.UploadDir, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}

	// 3. Readable, collision-free name: <slug>-<uuid><ext>
	newFilename := uploadName(file.Filename, ext)
	savePath := filepath.Join(h.UploadDir, newFilename)

	// 4. Save the file
	if err := c.SaveUploadedFile(file, savePath); err != nil {
		h.logger().Error("save upload failed", "path", savePath, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}

	h.logger().Info("file uploaded", "file", newFilename, "size", file.Size)
	c.JSON(http.StatusCreated, gin.H{
		"url": fmt.Sprintf("%s/uploads/%s", h.BaseURL, newFilename),
	})
}

func uploadName(original, ext string) string {
	base := slug.Make(strings.TrimSuffix(filepath.Base(original), filepath.Ext(original)))
	if base == "" {
		base = "image"
	}
	return fmt.Sprintf("%s-%s%s", base, uuid.New().String(), ext)
}
