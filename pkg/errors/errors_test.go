package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHttpError_Unwrap(t *testing.T) {
	cause := errors.New("duplicate key value violates unique constraint")
	err := NewConflictError("Telegram ID already registered", cause)

	assert.Equal(t, http.StatusConflict, err.Code)
	assert.ErrorIs(t, err, ErrConflict)
	assert.ErrorIs(t, err, cause)

	var httpErr *HttpError
	assert.True(t, errors.As(error(err), &httpErr))
	assert.Equal(t, "Telegram ID already registered", httpErr.Message)
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("User not found")
	assert.Equal(t, http.StatusNotFound, err.Code)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWithContext(t *testing.T) {
	err := NewBadRequestError("Invalid id", nil).WithContext("param", "abc")
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "abc", err.Context["param"])
}
