package api

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/rpupo63/devfolio-backend/admin"
	"github.com/rpupo63/devfolio-backend/errs"
)

const maxUploadBytes = 5 << 20

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

func parseMultipart(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes+1<<20)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return errs.NewMaxBodySizeExceededError(maxUploadBytes)
		}
		return errs.NewMalformedPayloadError("multipart form", err)
	}
	return nil
}

// formUpload returns the file sent under field, or nil when none was sent. The caller closes the
// returned file.
func formUpload(r *http.Request, field string) (*admin.Upload, multipart.File, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, errs.NewMalformedPayloadError(field, err)
	}
	if header.Size > maxUploadBytes {
		file.Close()
		return nil, nil, errs.NewMaxBodySizeExceededError(maxUploadBytes)
	}
	return &admin.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	}, file, nil
}

func formInt(r *http.Request, field string) (int, error) {
	raw := strings.TrimSpace(r.FormValue(field))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewInvalidFieldError(field, "must be a whole number")
	}
	return n, nil
}
