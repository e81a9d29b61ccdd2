package utils

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/SacredMindInfotech/SacredMind-sub001/config"

	"github.com/google/uuid"
)

// NewStorageKey mints the storage key for an uploaded file. The key carries
// the original extension so the content type can be inferred from it; it is
// assigned once at upload time and never reassigned.
func NewStorageKey(filename string) string {
	ext := filepath.Ext(filename)
	return uuid.NewString() + ext
}

// SaveUploadedFile stores the uploaded file under the given key and returns
// the key. Callers create the catalog record only after this succeeds, so a
// failed upload never leaves an orphan record behind.
func SaveUploadedFile(file *multipart.FileHeader, key string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	destDir := config.AppConfig.UploadDir
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	dst, err := os.Create(filepath.Join(destDir, key))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return key, nil
}

// DeleteStoredFile removes the stored file for a key. Callers treat this as
// fire-and-forget; the catalog record is already gone when this runs.
func DeleteStoredFile(key string) error {
	if key == "" {
		return nil
	}
	return os.Remove(filepath.Join(config.AppConfig.UploadDir, key))
}

// GetFileURL maps a storage key to its public URL.
func GetFileURL(key string) string {
	if key == "" {
		return ""
	}
	return "/uploads/" + key
}
