package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"staff-registry/pkg/api"
	apperrors "staff-registry/pkg/errors"
)

func renderError(t *testing.T, err error) (int, api.ErrorResponseBody) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.Response().Header().Set(echo.HeaderXRequestID, "req-1")

	require.NoError(t, ErrorResponse(c, err, zap.NewNop()))

	var body api.ErrorResponseBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestErrorResponse(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"http error", apperrors.NewConflictError("Username is already taken", nil), http.StatusConflict, "Username is already taken"},
		{"wrapped http error", fmt.Errorf("service: %w", apperrors.NewNotFoundError("User not found")), http.StatusNotFound, "User not found"},
		{"bare not found", apperrors.ErrNotFound, http.StatusNotFound, "Not found"},
		{"echo error", echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"), http.StatusMethodNotAllowed, "Method Not Allowed"},
		{"unknown error hides cause", errors.New("pq: relation users does not exist"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := renderError(t, tt.err)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, api.StatusError, body.Status)
			assert.Equal(t, tt.message, body.Message)
			assert.Equal(t, "req-1", body.RequestID)
		})
	}
}

func TestErrorResponse_ValidationDetails(t *testing.T) {
	code, body := renderError(t, apperrors.NewValidationError(map[string]string{"age": "must be greater than or equal to 18"}))
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Validation failed", body.Message)
	assert.Equal(t, map[string]string{"age": "must be greater than or equal to 18"}, body.Details)
}

func TestParseParams(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.SetParamNames("id", "id_telegram")

	c.SetParamValues("42", "-1001")
	id, err := ParseIDParam(c, "id")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), id)
	telegramID, err := ParseTelegramIDParam(c, "id_telegram")
	require.NoError(t, err)
	assert.Equal(t, int64(-1001), telegramID)

	c.SetParamValues("0", "abc")
	_, err = ParseIDParam(c, "id")
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	_, err = ParseTelegramIDParam(c, "id_telegram")
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	c.SetParamValues("9223372036854775807", "1")
	id, err = ParseIDParam(c, "id")
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxInt64), id)

	c.SetParamValues("9223372036854775808", "1")
	_, err = ParseIDParam(c, "id")
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}
