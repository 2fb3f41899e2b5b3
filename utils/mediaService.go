package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"skillforge/config"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// UploadResult is what the media host hands back for a stored file
type UploadResult struct {
	URL      string `json:"fileUrl"`
	PublicID string `json:"publicId"`
}

type cloudinaryResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
}

// UploadMedia stores a file on the configured media host and returns its
// opaque HTTPS URL. When no media host is configured the file lands on local
// disk under ./uploads instead, so development works without credentials.
// kind selects the target folder (e.g. "course_images", "course_videos",
// "avatars").
func UploadMedia(file *multipart.FileHeader, kind string) (*UploadResult, error) {
	if config.AppConfig.MediaCloudName == "" {
		return uploadToDisk(file, kind)
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	uploadURL := fmt.Sprintf("%s/%s/auto/upload",
		config.AppConfig.MediaUploadURL, config.AppConfig.MediaCloudName)

	var result cloudinaryResponse
	resp, err := resty.New().R().
		SetFileReader("file", file.Filename, src).
		SetFormData(map[string]string{
			"upload_preset": config.AppConfig.MediaUploadPreset,
			"folder":        kind,
		}).
		SetResult(&result).
		Post(uploadURL)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("media host returned %s", resp.Status())
	}

	return &UploadResult{URL: result.SecureURL, PublicID: result.PublicID}, nil
}

// uploadToDisk is the local fallback used when no media host is configured
func uploadToDisk(file *multipart.FileHeader, kind string) (*UploadResult, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	destDir := filepath.Join("uploads", kind)
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return nil, err
	}

	publicID := uuid.NewString()
	filePath := filepath.Join(destDir, publicID+filepath.Ext(file.Filename))

	dst, err := os.Create(filePath)
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, err
	}

	return &UploadResult{URL: "/" + filepath.ToSlash(filePath), PublicID: publicID}, nil
}
