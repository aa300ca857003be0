package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// StorageService defines the interface for media storage operations.
type StorageService interface {
	// UploadImage stores the image and returns its public URL.
	UploadImage(ctx context.Context, file io.Reader, folder string) (string, error)
	DeleteImage(ctx context.Context, publicID string) error
}

// CloudinaryStorageService implements StorageService against Cloudinary.
type CloudinaryStorageService struct {
	cld *cloudinary.Cloudinary
}

// NewStorageService wraps an initialized Cloudinary client.
func NewStorageService(cld *cloudinary.Cloudinary) *CloudinaryStorageService {
	return &CloudinaryStorageService{cld: cld}
}

func (s *CloudinaryStorageService) UploadImage(ctx context.Context, file io.Reader, folder string) (string, error) {
	resp, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload failed: %w", err)
	}
	if resp.SecureURL == "" {
		return "", fmt.Errorf("cloudinary upload returned no URL: %s", resp.Error.Message)
	}
	return resp.SecureURL, nil
}

func (s *CloudinaryStorageService) DeleteImage(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("cloudinary destroy failed: %w", err)
	}
	return nil
}

// PublicIDFromURL recovers the public ID from a Cloudinary delivery URL so an
// asset recorded by its URL can be destroyed later. Returns "" for URLs that
// do not look like Cloudinary uploads.
func PublicIDFromURL(rawURL string) string {
	_, after, ok := strings.Cut(rawURL, "/upload/")
	if !ok || after == "" {
		return ""
	}
	// Strip the optional version segment ("v1234567890/").
	if after[0] == 'v' {
		if i := strings.IndexByte(after, '/'); i > 1 && isDigits(after[1:i]) {
			after = after[i+1:]
		}
	}
	// Drop the format extension; the public ID keeps the folder path.
	if i := strings.LastIndexByte(after, '.'); i > strings.LastIndexByte(after, '/') {
		after = after[:i]
	}
	return after
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
