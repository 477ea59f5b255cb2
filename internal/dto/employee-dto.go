package dto

import (
	"github.com/aarondl/null/v8"

	"staff-registry/pkg/types"
)

type CreateEmployeeDTO struct {
	TelegramID       int64          `json:"id_telegram" validate:"required"`
	ZupID            string         `json:"zup_id" validate:"required,min=1"`
	Login            string         `json:"login" validate:"required,min=3"`
	FirstName        string         `json:"first_name" validate:"required,min=2,max=50"`
	LastName         string         `json:"last_name" validate:"required,min=2,max=50"`
	MiddleName       null.String    `json:"middle_name" validate:"omitempty,max=50"`
	FullName         string         `json:"full_name" validate:"required,min=2"`
	Age              int            `json:"age" validate:"required,min=18,max=100"`
	DateOfBirth      types.Date     `json:"date_of_birth" validate:"required"`
	Gender           string         `json:"gender" validate:"required,gender"`
	Position         string         `json:"position" validate:"required,min=2"`
	Department       string         `json:"department" validate:"required,min=2"`
	Organisation     string         `json:"organisation" validate:"required,min=2"`
	FullOrgStructure string         `json:"full_org_structure" validate:"required"`
	DateOfStart      types.Date     `json:"date_of_start" validate:"required"`
	DateOfEnd        types.NullDate `json:"date_of_end"`
	Phone            string         `json:"phone" validate:"required,min=7,max=15"`
	Email            string         `json:"email" validate:"required,custom_email"`
	IsWorking        null.Bool      `json:"is_working"`
}

type UpdateEmployeeDTO struct {
	ZupID            null.String    `json:"zup_id" db:"zup_id" validate:"omitempty,min=1"`
	Login            null.String    `json:"login" db:"login" validate:"omitempty,min=3"`
	FirstName        null.String    `json:"first_name" db:"first_name" validate:"omitempty,min=2,max=50"`
	LastName         null.String    `json:"last_name" db:"last_name" validate:"omitempty,min=2,max=50"`
	MiddleName       null.String    `json:"middle_name" db:"middle_name" patch:"nullable" validate:"omitempty,max=50"`
	FullName         null.String    `json:"full_name" db:"full_name" validate:"omitempty,min=2"`
	Age              null.Int       `json:"age" db:"age" validate:"omitempty,min=18,max=100"`
	DateOfBirth      types.NullDate `json:"date_of_birth" db:"date_of_birth"`
	Gender           null.String    `json:"gender" db:"gender" validate:"omitempty,gender"`
	Position         null.String    `json:"position" db:"position" validate:"omitempty,min=2"`
	Department       null.String    `json:"department" db:"department" validate:"omitempty,min=2"`
	Organisation     null.String    `json:"organisation" db:"organisation" validate:"omitempty,min=2"`
	FullOrgStructure null.String    `json:"full_org_structure" db:"full_org_structure"`
	DateOfStart      types.NullDate `json:"date_of_start" db:"date_of_start"`
	DateOfEnd        types.NullDate `json:"date_of_end" db:"date_of_end" patch:"nullable"`
	Phone            null.String    `json:"phone" db:"phone" validate:"omitempty,min=7,max=15"`
	Email            null.String    `json:"email" db:"email" validate:"omitempty,custom_email"`
	IsWorking        null.Bool      `json:"is_working" db:"is_working"`
}

type EmployeeDTO struct {
	ID               uint64         `json:"id"`
	TelegramID       int64          `json:"id_telegram"`
	ZupID            string         `json:"zup_id"`
	Login            string         `json:"login"`
	FirstName        string         `json:"first_name"`
	LastName         string         `json:"last_name"`
	MiddleName       null.String    `json:"middle_name"`
	FullName         string         `json:"full_name"`
	Age              int            `json:"age"`
	DateOfBirth      types.Date     `json:"date_of_birth"`
	Gender           string         `json:"gender"`
	Position         string         `json:"position"`
	Department       string         `json:"department"`
	Organisation     string         `json:"organisation"`
	FullOrgStructure string         `json:"full_org_structure"`
	DateOfStart      types.Date     `json:"date_of_start"`
	DateOfEnd        types.NullDate `json:"date_of_end"`
	Phone            string         `json:"phone"`
	Email            string         `json:"email"`
	IsWorking        bool           `json:"is_working"`
	CreatedAt        string         `json:"created_at"`
	UpdatedAt        string         `json:"updated_at"`
}
