// Файл: internal/entities/user_entity.go
package entities

import (
	"github.com/aarondl/null/v8"

	"staff-registry/pkg/types"
)

type User struct {
	ID          uint64      `json:"id" db:"id"`
	TelegramID  int64       `json:"id_telegram" db:"id_telegram"`
	Username    null.String `json:"username" db:"username"`
	FirstName   string      `json:"first_name" db:"first_name"`
	LastName    null.String `json:"last_name" db:"last_name"`
	PhoneNumber null.String `json:"phone_number" db:"phone_number"`

	// EmployeeID не колонка users: заполняется LEFT JOIN employees по id_telegram.
	EmployeeID null.Uint64 `json:"employee_id" db:"-"`

	types.BaseEntity
}
