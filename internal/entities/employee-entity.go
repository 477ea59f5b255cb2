package entities

import (
	"time"

	"github.com/aarondl/null/v8"

	"staff-registry/pkg/types"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// Employee всегда принадлежит пользователю с тем же id_telegram (FK с ON DELETE CASCADE).
type Employee struct {
	ID               uint64      `json:"id" db:"id"`
	TelegramID       int64       `json:"id_telegram" db:"id_telegram"`
	ZupID            string      `json:"zup_id" db:"zup_id"`
	Login            string      `json:"login" db:"login"`
	FirstName        string      `json:"first_name" db:"first_name"`
	LastName         string      `json:"last_name" db:"last_name"`
	MiddleName       null.String `json:"middle_name" db:"middle_name"`
	FullName         string      `json:"full_name" db:"full_name"`
	Age              int         `json:"age" db:"age"`
	DateOfBirth      time.Time   `json:"date_of_birth" db:"date_of_birth"`
	Gender           string      `json:"gender" db:"gender"`
	Position         string      `json:"position" db:"position"`
	Department       string      `json:"department" db:"department"`
	Organisation     string      `json:"organisation" db:"organisation"`
	FullOrgStructure string      `json:"full_org_structure" db:"full_org_structure"`
	DateOfStart      time.Time   `json:"date_of_start" db:"date_of_start"`
	DateOfEnd        null.Time   `json:"date_of_end" db:"date_of_end"`
	Phone            string      `json:"phone" db:"phone"`
	Email            string      `json:"email" db:"email"`
	IsWorking        bool        `json:"is_working" db:"is_working"`

	types.BaseEntity
}
