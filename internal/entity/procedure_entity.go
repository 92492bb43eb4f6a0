package entity

import (
	"time"

	"github.com/google/uuid"
)

type Procedure struct {
	Id          uuid.UUID
	Title       string
	Description string
	Industry    string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
	IsDeleted   bool
}
