package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Storage errors
var (
	ErrUploadFailed    = errors.New("upload failed")
	ErrObjectExists    = errors.New("object already exists")
	ErrStorageBackend  = errors.New("storage backend unavailable")
	ErrEmptyUpload     = errors.New("empty upload")
	ErrUnsupportedFile = errors.New("unsupported file type")
)

// External service errors
var (
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrRateLimitExceeded  = errors.New("rate limit exceeded")
	ErrUpstreamNotFound   = errors.New("upstream resource not found")
)

// Configuration errors
var (
	ErrConfigMissing = errors.New("configuration missing")
	ErrConfigInvalid = errors.New("configuration invalid")
)

// NewUploadError reports a failed object upload; the save that depended on it is abandoned.
func NewUploadError(bucket, path string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrUploadFailed,
		Details:    fmt.Sprintf("Upload to %s/%s failed", bucket, path),
		Cause:      cause,
		Field:      "file",
	}
}

func NewObjectExistsError(bucket, path string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusConflict,
		err:        ErrObjectExists,
		Details:    fmt.Sprintf("Object %s/%s already exists", bucket, path),
		Field:      "file",
	}
}

func NewEmptyUploadError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrEmptyUpload,
		Details:    "No file was provided",
		Field:      "file",
	}
}

func NewUnsupportedFileError(contentType string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnsupportedMediaType,
		err:        ErrUnsupportedFile,
		Details:    fmt.Sprintf("Only images can be uploaded, got %s", contentType),
		Field:      "file",
	}
}

// NewExternalServiceError wraps a non-2xx answer from a third-party API.
func NewExternalServiceError(service string, statusCode int) *ApiErr {
	sentinel := ErrServiceUnavailable
	switch statusCode {
	case http.StatusNotFound:
		sentinel = ErrUpstreamNotFound
	case http.StatusForbidden, http.StatusTooManyRequests:
		sentinel = ErrRateLimitExceeded
	}
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        sentinel,
		Details:    fmt.Sprintf("%s responded with status %d", service, statusCode),
	}
}

func NewConfigError(configName string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrConfigInvalid,
		Details:    fmt.Sprintf("Configuration error in %s", configName),
		Cause:      cause,
		Field:      "config",
	}
}

func NewEnvironmentVariableError(varName string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrConfigMissing,
		Details:    fmt.Sprintf("Environment variable %s is missing", varName),
		Field:      varName,
	}
}

func IsUploadError(err error) bool {
	return errors.Is(err, ErrUploadFailed)
}

func IsObjectExistsError(err error) bool {
	return errors.Is(err, ErrObjectExists)
}

func IsUpstreamNotFound(err error) bool {
	return errors.Is(err, ErrUpstreamNotFound)
}

func IsServiceUnavailable(err error) bool {
	return errors.Is(err, ErrServiceUnavailable) || errors.Is(err, ErrRateLimitExceeded)
}
