package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/rpupo63/devfolio-backend/errs"
	"github.com/spf13/afero"
)

// AferoStore keeps objects on an afero filesystem, one directory per bucket. It backs local
// development and tests; the api serves its objects under the same public path Supabase uses.
type AferoStore struct {
	fs      afero.Fs
	baseURL string
}

func NewAferoStore(fs afero.Fs, baseURL string) *AferoStore {
	return &AferoStore{fs: fs, baseURL: baseURL}
}

// NewLocalStore roots an AferoStore at dir on the OS filesystem.
func NewLocalStore(dir, baseURL string) *AferoStore {
	return NewAferoStore(afero.NewBasePathFs(afero.NewOsFs(), dir), baseURL)
}

func (s *AferoStore) Upload(ctx context.Context, bucket, objectPath string, body io.Reader, contentType string, upsert bool) error {
	name := filepath.Join(bucket, filepath.FromSlash(objectPath))
	if !upsert {
		exists, err := afero.Exists(s.fs, name)
		if err != nil {
			return errs.NewUploadError(bucket, objectPath, err)
		}
		if exists {
			return errs.NewObjectExistsError(bucket, objectPath)
		}
	}
	if err := s.fs.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return errs.NewUploadError(bucket, objectPath, err)
	}
	f, err := s.fs.Create(name)
	if err != nil {
		return errs.NewUploadError(bucket, objectPath, err)
	}
	defer f.Close()
	if _, err := io.Copy(f, body); err != nil {
		return errs.NewUploadError(bucket, objectPath, err)
	}
	return nil
}

func (s *AferoStore) PublicURL(bucket, objectPath string) string {
	return publicURL(s.baseURL, bucket, objectPath)
}

func (s *AferoStore) Open(ctx context.Context, bucket, objectPath string) (io.ReadCloser, error) {
	f, err := s.fs.OpenFile(filepath.Join(bucket, filepath.FromSlash(objectPath)), os.O_RDONLY, 0)
	if os.IsNotExist(err) {
		return nil, errs.NewNotFound("object")
	}
	return f, err
}
