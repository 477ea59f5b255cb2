package types

import "time"

// BaseEntity служебные отметки времени, которые ведёт база.
type BaseEntity struct {
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
