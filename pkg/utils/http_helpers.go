package utils

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"staff-registry/pkg/api"
	apperrors "staff-registry/pkg/errors"
	"staff-registry/pkg/validation"
)

const internalErrorMessage = "Internal server error"

// ErrorResponse пишет ошибку в стандартном конверте. Причина уходит только в лог.
func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	code, body := describeError(err)
	body.RequestID = c.Response().Header().Get(echo.HeaderXRequestID)

	fields := []zap.Field{
		zap.Int("code", code),
		zap.String("method", c.Request().Method),
		zap.String("uri", c.Request().RequestURI),
		zap.String("request_id", body.RequestID),
		zap.Error(err),
	}
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) && httpErr.Context != nil {
		fields = append(fields, zap.Any("context", httpErr.Context))
	}
	if code >= http.StatusInternalServerError {
		logger.Error("Ошибка обработки запроса", fields...)
	} else {
		logger.Warn("Запрос отклонён", fields...)
	}

	return c.JSON(code, body)
}

func describeError(err error) (int, api.ErrorResponseBody) {
	body := api.ErrorResponseBody{Status: api.StatusError}

	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		body.Message = httpErr.Message
		body.Details = httpErr.Details
		return httpErr.Code, body
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		body.Message = "Validation failed"
		body.Details = validation.Describe(validationErrors)
		return http.StatusBadRequest, body
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		body.Message = fmt.Sprint(echoErr.Message)
		return echoErr.Code, body
	}

	if errors.Is(err, apperrors.ErrNotFound) {
		body.Message = "Not found"
		return http.StatusNotFound, body
	}

	body.Message = internalErrorMessage
	return http.StatusInternalServerError, body
}

// HTTPErrorHandler рендерит ошибки echo (404 маршрута, 405, паники) в том же конверте.
func HTTPErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		if writeErr := ErrorResponse(c, err, logger); writeErr != nil {
			logger.Error("Не удалось отправить ответ с ошибкой", zap.Error(writeErr))
		}
	}
}

// ParseIDParam разбирает суррогатный идентификатор из пути.
func ParseIDParam(c echo.Context, name string) (uint64, error) {
	raw := c.Param(name)
	// BIGSERIAL не выходит за int64, больший id pgx не закодирует.
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 || id > math.MaxInt64 {
		return 0, apperrors.NewHttpError(http.StatusBadRequest, "Invalid path parameter",
			apperrors.ErrBadRequest, map[string]string{name: "must be a positive integer"}).
			WithContext("value", raw)
	}
	return id, nil
}

// ParseTelegramIDParam разбирает Telegram ID из пути; он может быть любым ненулевым int64.
func ParseTelegramIDParam(c echo.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.NewHttpError(http.StatusBadRequest, "Invalid path parameter",
			apperrors.ErrBadRequest, map[string]string{name: "must be a non-zero integer"}).
			WithContext("value", raw)
	}
	return id, nil
}
