package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "staff-registry/pkg/errors"
	"staff-registry/pkg/types"
)

const maxBodySize = 1 << 20

// BindStrict декодирует JSON-тело в dst, отклоняя неизвестные поля, и возвращает сырое тело,
// чтобы по нему можно было понять, какие поля клиент прислал.
func BindStrict(c echo.Context, dst interface{}) ([]byte, error) {
	raw, err := io.ReadAll(io.LimitReader(c.Request().Body, maxBodySize+1))
	if err != nil {
		return nil, apperrors.NewBadRequestError("Could not read request body", err)
	}
	if len(raw) > maxBodySize {
		return nil, apperrors.NewHttpError(http.StatusRequestEntityTooLarge, "Request body too large", apperrors.ErrBadRequest, nil)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, apperrors.NewBadRequestError("Request body is required", nil)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return nil, decodeError(err)
	}
	if dec.More() {
		return nil, apperrors.NewBadRequestError("Request body must contain a single JSON object", nil)
	}
	return raw, nil
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		reason := fmt.Sprintf("must be of type %s", typeErr.Type)
		if typeErr.Type == types.DateType {
			reason = "must be a date in YYYY-MM-DD format"
		}
		return apperrors.NewHttpError(http.StatusBadRequest, "Validation failed", err,
			map[string]string{field: reason})
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return apperrors.NewBadRequestError("Malformed JSON body", err)
	}

	// encoding/json не экспортирует тип ошибки для лишних полей.
	if msg := err.Error(); strings.HasPrefix(msg, "json: unknown field ") {
		field := strings.Trim(strings.TrimPrefix(msg, "json: unknown field "), `"`)
		return apperrors.NewHttpError(http.StatusBadRequest, "Validation failed", err,
			map[string]string{field: "extra fields not permitted"})
	}

	return apperrors.NewHttpError(http.StatusBadRequest, "Validation failed", err,
		map[string]string{"body": err.Error()})
}
