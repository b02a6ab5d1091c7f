package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetAppError(t *testing.T) {
	t.Run("passes app errors through", func(t *testing.T) {
		err := fmt.Errorf("loading: %w", NewNotFoundError("Vendor"))
		appErr := GetAppError(err)
		assert.Equal(t, http.StatusNotFound, appErr.Code)
		assert.Equal(t, "Vendor not found", appErr.Message)
	})

	t.Run("hides plain errors", func(t *testing.T) {
		cause := errors.New("pq: connection refused")
		appErr := GetAppError(cause)
		assert.Equal(t, http.StatusInternalServerError, appErr.Code)
		assert.Equal(t, "Internal server error", appErr.Message)
		assert.ErrorIs(t, appErr, cause)
	})
}

func TestWrap(t *testing.T) {
	cause := errors.New("cheque missing")
	err := Wrap(http.StatusUnprocessableEntity, "Bank Name and Cheque Number are required for Cheque payments", cause)

	assert.True(t, IsAppError(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Bank Name and Cheque Number are required for Cheque payments", err.Error())
}

func TestNewFieldError(t *testing.T) {
	err := NewFieldError("estimated", "estimated must be greater than zero")
	assert.Equal(t, http.StatusUnprocessableEntity, err.Code)
	assert.Equal(t, []FieldError{{Field: "estimated", Message: "estimated must be greater than zero"}}, err.Errors)
}
