package handlers

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// allowedExtensions lists the accepted social-preview image formats.
var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// UploadHandler stores social-preview images under a local directory.
type UploadHandler struct {
	dir string
}

// NewUploadHandler creates a new upload handler writing into dir.
func NewUploadHandler(dir string) *UploadHandler {
	return &UploadHandler{dir: dir}
}

// Upload saves a multipart image under a random filename and returns the
// URL it will be served from.
func (h *UploadHandler) Upload(c fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "no file selected")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return jsonError(c, fiber.StatusBadRequest, "unsupported file type, accepted: png, jpg, jpeg, gif, webp")
	}

	if err := os.MkdirAll(h.dir, 0755); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	name := uuid.New().String() + ext
	if err := c.SaveFile(file, filepath.Join(h.dir, name)); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":   "success",
		"url":      "/uploads/" + name,
		"filename": name,
	})
}
