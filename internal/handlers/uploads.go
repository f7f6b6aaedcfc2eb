package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadConfig bounds what the image endpoints accept.
type UploadConfig struct {
	Dir     string
	MaxSize int64
}

var errInvalidUpload = errors.New("invalid upload")

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// saveImageUpload persists the optional "image" form file under
// <dir>/<resource>/ with a random name and returns its public path.
// Requests without a file (or without a multipart body) return "".
func saveImageUpload(c *gin.Context, cfg UploadConfig, resource string) (string, error) {
	if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		return "", nil
	}

	file, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		return "", fmt.Errorf("%w: %s", errInvalidUpload, err.Error())
	}

	if file.Size > cfg.MaxSize {
		return "", fmt.Errorf("%w: file exceeds %d bytes", errInvalidUpload, cfg.MaxSize)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return "", fmt.Errorf("%w: unsupported file type %q", errInvalidUpload, ext)
	}

	name := uuid.NewString() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(cfg.Dir, resource, name)); err != nil {
		return "", fmt.Errorf("save upload failed: %w", err)
	}

	return "/uploads/" + resource + "/" + name, nil
}
