package services

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ImageService persists uploaded room images under the static uploads
// directory and returns the URL paths recorded on the room.
type ImageService struct {
	// BaseDir is the filesystem root for uploads, served at /uploads.
	BaseDir string
}

func NewImageService(baseDir string) *ImageService {
	if baseDir == "" {
		baseDir = "uploads"
	}
	return &ImageService{BaseDir: baseDir}
}

// SaveRoomImages decodes each base64 payload (raw or data-URI form) and
// writes it under <base>/rooms/<roomID>/, returning the public URL paths.
func (s *ImageService) SaveRoomImages(images []string, roomID string) ([]string, error) {
	urls := make([]string, 0, len(images))
	for _, b64 := range images {
		rel, err := s.saveBase64Image(b64, filepath.Join("rooms", roomID))
		if err != nil {
			return nil, err
		}
		urls = append(urls, "/uploads/"+rel)
	}
	return urls, nil
}

func (s *ImageService) saveBase64Image(b64, subdir string) (string, error) {
	if idx := strings.Index(b64, "base64,"); idx >= 0 {
		b64 = b64[idx+7:]
	}

	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(b64))
	if err != nil {
		return "", fmt.Errorf("decode base64: %w", err)
	}

	dir := filepath.Join(s.BaseDir, subdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("mkdir uploads dir: %w", err)
	}

	filename := fmt.Sprintf("%d.jpg", time.Now().UnixNano())
	fullpath := filepath.Join(dir, filename)

	if err := os.WriteFile(fullpath, data, 0644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	return filepath.ToSlash(filepath.Join(subdir, filename)), nil
}
