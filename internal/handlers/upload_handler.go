package handlers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gainablefr/gainable-backend/internal/config"
	"github.com/gainablefr/gainable-backend/internal/dto"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var allowedUploadExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
	".svg":  true,
}

// UploadHandler stores dashboard images (logos, gallery photos, article
// illustrations) on local disk and returns their public URL.
type UploadHandler struct {
	cfg *config.Config
}

func NewUploadHandler(cfg *config.Config) *UploadHandler {
	return &UploadHandler{cfg: cfg}
}

func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Missing file",
		})
	}

	if file.Size > h.cfg.UploadMaxMB*1024*1024 {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{
			Error: true, Message: fmt.Sprintf("File exceeds %d MB limit", h.cfg.UploadMaxMB),
		})
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedUploadExts[ext] {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Unsupported file type",
		})
	}

	folder := sanitizeFolder(c.FormValue("folder", "misc"))
	dir := filepath.Join(h.cfg.UploadDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to store file",
		})
	}

	name := uuid.New().String() + ext
	if err := c.SaveFile(file, filepath.Join(dir, name)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to store file",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.UploadResponse{
		URL: h.cfg.UploadBaseURL + "/" + folder + "/" + name,
	})
}

// sanitizeFolder keeps uploads inside the configured directory no matter
// what the client sends as folder name.
func sanitizeFolder(folder string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(folder) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "misc"
	}
	return b.String()
}
