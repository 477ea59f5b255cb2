package repositories

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	apperrors "staff-registry/pkg/errors"
)

// Коды SQLSTATE, которые мы отдаём клиенту как понятные ошибки.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgNotNullViolation    = "23502"
)

// classifyPgError переводит нарушения ограничений в HttpError (409/400).
// constraintMessages: имя ограничения -> сообщение для клиента.
// Прочие ошибки возвращаются как есть и станут 500 без деталей.
func classifyPgError(err error, constraintMessages map[string]string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	message, known := constraintMessages[pgErr.ConstraintName]
	switch pgErr.Code {
	case pgUniqueViolation:
		if !known {
			message = "Record conflicts with an existing one"
		}
		return apperrors.NewConflictError(message, err).WithContext("constraint", pgErr.ConstraintName)
	case pgForeignKeyViolation:
		if !known {
			message = "Referenced record does not exist"
		}
		return apperrors.NewConflictError(message, err).WithContext("constraint", pgErr.ConstraintName)
	case pgCheckViolation, pgNotNullViolation:
		if !known {
			message = "Value violates a storage constraint"
		}
		return apperrors.NewHttpError(http.StatusBadRequest, message, errors.Join(apperrors.ErrValidation, err), nil).
			WithContext("constraint", pgErr.ConstraintName)
	}
	return err
}
