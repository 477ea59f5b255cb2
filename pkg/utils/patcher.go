// Файл: utils/patcher.go
package utils

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	apperrors "staff-registry/pkg/errors"
)

// CollectPatch собирает изменения из DTO частичного обновления.
// Учитываются только поля, чьи JSON-ключи реально пришли в теле запроса. Ключ результата
// это колонка из тега db, значение уходит в базу как есть (driver.Valuer разворачивается).
// Явный null допустим только для полей с тегом patch:"nullable".
func CollectPatch(patchDTO interface{}, rawRequestBody []byte) (map[string]interface{}, error) {
	var sentFields map[string]json.RawMessage
	if err := json.Unmarshal(rawRequestBody, &sentFields); err != nil {
		return nil, apperrors.NewBadRequestError("Request body must be a JSON object", err)
	}

	patchValue := reflect.ValueOf(patchDTO)
	if patchValue.Kind() == reflect.Ptr {
		patchValue = patchValue.Elem()
	}
	if patchValue.Kind() != reflect.Struct {
		return nil, fmt.Errorf("CollectPatch: ожидалась структура, получено %s", patchValue.Kind())
	}
	patchType := patchValue.Type()

	changes := make(map[string]interface{})
	nullErrors := make(map[string]string)

	for i := 0; i < patchType.NumField(); i++ {
		fieldType := patchType.Field(i)
		jsonName := strings.Split(fieldType.Tag.Get("json"), ",")[0]
		column := fieldType.Tag.Get("db")
		if jsonName == "" || jsonName == "-" || column == "" {
			continue
		}

		raw, fieldWasSent := sentFields[jsonName]
		if !fieldWasSent {
			continue
		}

		if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			if fieldType.Tag.Get("patch") != "nullable" {
				nullErrors[jsonName] = "may not be null"
				continue
			}
			changes[column] = nil
			continue
		}

		value, err := columnValue(patchValue.Field(i))
		if err != nil {
			return nil, fmt.Errorf("поле %s: %w", jsonName, err)
		}
		changes[column] = value
	}

	if len(nullErrors) > 0 {
		return nil, apperrors.NewValidationError(nullErrors)
	}
	return changes, nil
}

func columnValue(field reflect.Value) (interface{}, error) {
	if valuer, ok := field.Interface().(driver.Valuer); ok {
		return valuer.Value()
	}
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			return nil, nil
		}
		return field.Elem().Interface(), nil
	}
	return field.Interface(), nil
}

// RejectNullKeys отклоняет явный null для перечисленных ключей тела: отсутствие такого
// поля означает значение по умолчанию, а null ничего не означает.
func RejectNullKeys(rawRequestBody []byte, keys ...string) error {
	var sentFields map[string]json.RawMessage
	if err := json.Unmarshal(rawRequestBody, &sentFields); err != nil {
		return apperrors.NewBadRequestError("Request body must be a JSON object", err)
	}

	nullErrors := make(map[string]string)
	for _, key := range keys {
		if raw, ok := sentFields[key]; ok && bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			nullErrors[key] = "may not be null"
		}
	}
	if len(nullErrors) > 0 {
		return apperrors.NewValidationError(nullErrors)
	}
	return nil
}
