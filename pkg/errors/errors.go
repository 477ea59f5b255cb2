package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound   = errors.New("запись не найдена")
	ErrConflict   = errors.New("конфликт с существующими данными")
	ErrValidation = errors.New("ошибка валидации")
	ErrBadRequest = errors.New("неверный запрос")
	ErrForbidden  = errors.New("доступ запрещён")
)

// HttpError ошибка, которую можно показать клиенту. Message уходит в ответ,
// Err только в лог.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details map[string]string
	Context map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%d %s", e.Code, e.Message)
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details map[string]string) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Details: details}
}

func NewNotFoundError(message string) *HttpError {
	return NewHttpError(http.StatusNotFound, message, ErrNotFound, nil)
}

func NewConflictError(message string, cause error) *HttpError {
	return NewHttpError(http.StatusConflict, message, errors.Join(ErrConflict, cause), nil)
}

func NewBadRequestError(message string, cause error) *HttpError {
	if cause == nil {
		cause = ErrBadRequest
	}
	return NewHttpError(http.StatusBadRequest, message, cause, nil)
}

func NewValidationError(details map[string]string) *HttpError {
	return NewHttpError(http.StatusBadRequest, "Validation failed", ErrValidation, details)
}

// WithContext добавляет поля, которые попадут в лог вместе с ошибкой.
func (e *HttpError) WithContext(key string, value interface{}) *HttpError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}
