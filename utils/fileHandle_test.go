package utils

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"barasho/config"

	"github.com/stretchr/testify/require"
)

func fileHeader(name, contentType string, size int64) *multipart.FileHeader {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Type", contentType)
	return &multipart.FileHeader{Filename: name, Header: header, Size: size}
}

func TestValidateUpload(t *testing.T) {
	require.NoError(t, ValidateUpload(fileHeader("intro.mp4", "video/mp4", 50*1024*1024), "video/", MaxVideoSize))
	require.NoError(t, ValidateUpload(fileHeader("cover.png", "image/png", 1024), "image/", MaxThumbnailSize))

	// Oversized
	require.Error(t, ValidateUpload(fileHeader("big.mp4", "video/mp4", MaxVideoSize+1), "video/", MaxVideoSize))

	// Wrong content type
	require.Error(t, ValidateUpload(fileHeader("doc.pdf", "application/pdf", 1024), "video/", MaxVideoSize))
	require.Error(t, ValidateUpload(fileHeader("intro.mp4", "video/mp4", 1024), "image/", MaxThumbnailSize))
}

func TestGetPublicURL(t *testing.T) {
	prev := config.AppConfig
	config.AppConfig = &config.Config{PublicBaseURL: "http://localhost:3000"}
	t.Cleanup(func() { config.AppConfig = prev })

	require.Equal(t, "http://localhost:3000/uploads/lesson-videos/abc.mp4",
		GetPublicURL("lesson-videos/abc.mp4"))
	require.Equal(t, "", GetPublicURL(""))
}
