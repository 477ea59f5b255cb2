package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// StatusResponse конверт ответов на изменяющие запросы.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type ErrorResponseBody struct {
	Status    string            `json:"status"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// Success: {"status": "success", "message": ...}
func Success(c echo.Context, code int, message string) error {
	return c.JSON(code, StatusResponse{Status: StatusSuccess, Message: message})
}

// Created как Success, плюс идентификатор созданной записи под ключом idField.
func Created(c echo.Context, message, idField string, id uint64) error {
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"status":  StatusSuccess,
		"message": message,
		idField:   id,
	})
}

// SuccessWith конверт с дополнительными полями (например, версия схемы).
func SuccessWith(c echo.Context, code int, message string, extra map[string]interface{}) error {
	body := map[string]interface{}{
		"status":  StatusSuccess,
		"message": message,
	}
	for k, v := range extra {
		body[k] = v
	}
	return c.JSON(code, body)
}

// One отдаёт сам объект без конверта.
func One[T any](c echo.Context, data T) error {
	return c.JSON(http.StatusOK, data)
}

// List отдаёт весь список; nil отдаётся как [].
func List[T any](c echo.Context, list []T) error {
	if list == nil {
		list = make([]T, 0)
	}
	return c.JSON(http.StatusOK, list)
}
