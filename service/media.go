package service

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const uploadDir = "./static/uploads"

// saveDataURI offloads an embedded `data:image/...` payload to the
// uploads directory and returns its public path. Any other value (a
// URL, an empty string) passes through untouched, so stored image
// references stay opaque strings either way.
func saveDataURI(value string) (string, error) {
	if !strings.HasPrefix(value, "data:image/") {
		return value, nil
	}

	parts := strings.SplitN(value, ",", 2)
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid data URI format")
	}

	meta := parts[0]
	data := parts[1]

	contentType := strings.TrimPrefix(meta, "data:")
	contentType = strings.SplitN(contentType, ";", 2)[0]

	var extension string
	switch contentType {
	case "image/png":
		extension = ".png"
	case "image/jpeg", "image/jpg":
		extension = ".jpg"
	case "image/gif":
		extension = ".gif"
	default:
		return "", fmt.Errorf("unsupported image content type: %s", contentType)
	}

	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode base64 payload: %w", err)
	}

	fileName := uuid.New().String() + extension
	filePath := filepath.Join(uploadDir, fileName)

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}
	if err := os.WriteFile(filePath, decoded, 0644); err != nil {
		return "", fmt.Errorf("failed to save image file: %w", err)
	}

	return fmt.Sprintf("/uploads/%s", fileName), nil
}
