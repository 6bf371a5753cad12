package service

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/popeskul/wa-broadcast/internal/models"
)

// LoadMedia reads the attachment at path. An empty path means no attachment.
func LoadMedia(path string) (*models.Media, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read media file: %w", err)
	}

	mimeType := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = strings.TrimSpace(mimeType[:i])
	}

	return &models.Media{
		Path:     path,
		FileName: filepath.Base(path),
		MimeType: mimeType,
		Data:     data,
	}, nil
}
