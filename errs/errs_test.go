package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestDatabaseErrorClassification(t *testing.T) {
	tests := []struct {
		name   string
		cause  error
		status int
		check  func(error) bool
	}{
		{"record not found", gorm.ErrRecordNotFound, http.StatusNotFound, IsNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", gorm.ErrRecordNotFound), http.StatusNotFound, IsNotFound},
		{"duplicated key", gorm.ErrDuplicatedKey, http.StatusConflict, IsConflict},
		{"postgres unique", errors.New(`ERROR: duplicate key value violates unique constraint "profiles_pkey"`), http.StatusConflict, IsUniqueConstraintViolationError},
		{"row level security", errors.New("new row violates row-level security policy"), http.StatusForbidden, IsPermissionDeniedError},
		{"other", errors.New("syntax error at or near"), http.StatusInternalServerError, func(err error) bool { return errors.Is(err, ErrDatabaseQuery) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDatabaseError("find", "project", tt.cause)
			assert.Equal(t, tt.status, err.StatusCode)
			assert.True(t, tt.check(err))
		})
	}
}

func TestDatabaseErrorKeepsApiErr(t *testing.T) {
	missing := NewMissingRequiredFieldError("title")
	err := NewDatabaseError("create", "project", fmt.Errorf("bind: %w", missing))
	assert.Same(t, missing, err)
	assert.Equal(t, "title", err.Field)
}

func TestAlreadyExistsIsConflict(t *testing.T) {
	err := NewAlreadyExists("profile")
	assert.Equal(t, http.StatusConflict, err.StatusCode)
	assert.True(t, IsConflict(err))
	assert.Equal(t, "profile already exists", err.Error())
}

func TestExternalServiceError(t *testing.T) {
	notFound := NewExternalServiceError("GitHub", http.StatusNotFound)
	assert.True(t, IsUpstreamNotFound(notFound))
	assert.False(t, IsServiceUnavailable(notFound))

	limited := NewExternalServiceError("GitHub", http.StatusForbidden)
	assert.True(t, IsServiceUnavailable(limited))
	assert.Equal(t, http.StatusBadGateway, limited.StatusCode)
}

func TestGetFullErrorFollowsCauses(t *testing.T) {
	inner := NewUploadError("avatars", "u/avatar.png", errors.New("connection reset"))
	outer := NewInternalErrorWithCause("saving avatar", inner)

	full := outer.GetFullError()
	require.Contains(t, full, "saving avatar")
	assert.Contains(t, full, "connection reset")
}
