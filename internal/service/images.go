package service

import (
	"fmt"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/carlisting-server/internal/apierror"
	"github.com/dtroode/carlisting-server/internal/model"
)

// UploadLimits bounds the images accepted with one request.
type UploadLimits struct {
	MaxFileSize int64
	MaxFiles    int
}

var (
	allowedImageExtensions = []string{".jpeg", ".jpg", ".png", ".gif"}
	allowedImageTypes      = []string{"image/jpeg", "image/jpg", "image/png", "image/gif"}

	unsafeKeyChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)
)

func (l UploadLimits) validate(images []model.ImageUpload) error {
	if l.MaxFiles > 0 && len(images) > l.MaxFiles {
		return apierror.NewErrValidation(fmt.Sprintf("at most %d images are allowed", l.MaxFiles))
	}

	for _, img := range images {
		ext := strings.ToLower(filepath.Ext(img.Filename))
		contentType := strings.ToLower(strings.TrimSpace(strings.Split(img.ContentType, ";")[0]))
		if !slices.Contains(allowedImageExtensions, ext) || !slices.Contains(allowedImageTypes, contentType) {
			return apierror.NewErrInvalidImage(img.Filename)
		}
		if l.MaxFileSize > 0 && img.Size > l.MaxFileSize {
			return apierror.NewErrValidation(fmt.Sprintf("image %s exceeds %d bytes", img.Filename, l.MaxFileSize))
		}
	}

	return nil
}

// imageKey builds a unique storage key that keeps the readable part of the
// original file name.
func imageKey(now time.Time, filename string) string {
	base := unsafeKeyChars.ReplaceAllString(filepath.Base(filename), "_")
	return fmt.Sprintf("%d_%s_%s", now.UnixMilli(), uuid.NewString()[:8], base)
}

// validImageKey reports whether key could have been produced by imageKey.
func validImageKey(key string) bool {
	return key != "" && key != "." && key != ".." && !unsafeKeyChars.MatchString(key)
}
