// Package storage uploads images to the object store and builds their public URLs.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/rpupo63/devfolio-backend/errs"
)

const (
	AvatarBucket    = "avatars"
	ThumbnailBucket = "project-thumbnails"

	publicObjectPrefix = "/storage/v1/object/public/"
)

// Store is an object storage backend.
type Store interface {
	// Upload writes body to bucket/path. Without upsert an existing object is an error.
	Upload(ctx context.Context, bucket, objectPath string, body io.Reader, contentType string, upsert bool) error
	// PublicURL is the address browsers load the object from.
	PublicURL(bucket, objectPath string) string
}

// Opener is implemented by stores that can serve their own objects.
type Opener interface {
	Open(ctx context.Context, bucket, objectPath string) (io.ReadCloser, error)
}

// AvatarPath is the single avatar slot of a user. Re-uploads overwrite it.
func AvatarPath(userID, filename string) string {
	return fmt.Sprintf("%s/avatar%s", userID, strings.ToLower(path.Ext(cleanName(filename))))
}

// ThumbnailPath prefixes the upload name with the upload time so repeated names never collide.
func ThumbnailPath(now time.Time, filename string) string {
	return fmt.Sprintf("%d-%s", now.UnixMilli(), cleanName(filename))
}

// ValidateImage rejects uploads that are empty or not images.
func ValidateImage(contentType string, size int64) error {
	if size == 0 {
		return errs.NewEmptyUploadError()
	}
	if !strings.HasPrefix(strings.ToLower(contentType), "image/") {
		return errs.NewUnsupportedFileError(contentType)
	}
	return nil
}

func publicURL(baseURL, bucket, objectPath string) string {
	return strings.TrimRight(baseURL, "/") + publicObjectPrefix + bucket + "/" + objectPath
}

func cleanName(filename string) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "." || name == "/" {
		return "upload"
	}
	return strings.ReplaceAll(name, " ", "_")
}
