package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"barasho/config"

	"github.com/google/uuid"
)

// Storage buckets for uploaded media
const (
	BucketLessonVideos     = "lesson-videos"
	BucketCourseThumbnails = "course-thumbnails"
)

// Upload size limits
const (
	MaxVideoSize     = 100 * 1024 * 1024 // 100MB
	MaxThumbnailSize = 5 * 1024 * 1024   // 5MB
)

// SaveUploadedFile stores an uploaded file under the given bucket with a
// randomized name and returns the stored relative path. The original
// filename is never reused, only its extension.
func SaveUploadedFile(file *multipart.FileHeader, bucket string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	destDir := filepath.Join(config.AppConfig.UploadDir, bucket)
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	newFilename := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)
	filePath := filepath.Join(destDir, newFilename)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return filepath.Join(bucket, newFilename), nil
}

// GetPublicURL resolves a stored path to the URL served by the static route
func GetPublicURL(storedPath string) string {
	if storedPath == "" {
		return ""
	}
	return config.AppConfig.PublicBaseURL + "/uploads/" + filepath.ToSlash(storedPath)
}

// ValidateUpload checks content type prefix and size before storing
func ValidateUpload(file *multipart.FileHeader, typePrefix string, maxSize int64) error {
	if file.Size > maxSize {
		return fmt.Errorf("file size must be less than %dMB", maxSize/(1024*1024))
	}
	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, typePrefix) {
		return fmt.Errorf("file must be a %s file", strings.TrimSuffix(typePrefix, "/"))
	}
	return nil
}
