package dto

import "github.com/aarondl/null/v8"

type CreateUserDTO struct {
	TelegramID  int64       `json:"id_telegram" validate:"required"`
	Username    null.String `json:"username" validate:"omitempty,min=3,max=30"`
	FirstName   string      `json:"first_name" validate:"required,min=2,max=50"`
	LastName    null.String `json:"last_name" validate:"omitempty,min=2,max=50"`
	PhoneNumber null.String `json:"phone_number" validate:"omitempty,min=7,max=12"`
}

// UpdateUserDTO частичное обновление. Какие поля прислал клиент, решает utils.CollectPatch,
// тег db задаёт колонку, patch:"nullable" разрешает явный null.
type UpdateUserDTO struct {
	Username    null.String `json:"username" db:"username" patch:"nullable" validate:"omitempty,min=3,max=30"`
	FirstName   null.String `json:"first_name" db:"first_name" validate:"omitempty,min=2,max=50"`
	LastName    null.String `json:"last_name" db:"last_name" patch:"nullable" validate:"omitempty,min=2,max=50"`
	PhoneNumber null.String `json:"phone_number" db:"phone_number" patch:"nullable" validate:"omitempty,min=7,max=12"`
}

type UserDTO struct {
	ID          uint64      `json:"id"`
	TelegramID  int64       `json:"id_telegram"`
	Username    null.String `json:"username"`
	FirstName   string      `json:"first_name"`
	LastName    null.String `json:"last_name"`
	PhoneNumber null.String `json:"phone_number"`
	EmployeeID  null.Uint64 `json:"employee_id"`
	CreatedAt   string      `json:"created_at"`
	UpdatedAt   string      `json:"updated_at"`
}
