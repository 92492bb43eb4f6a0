package model

import (
	"time"

	"github.com/google/uuid"
)

type Procedure struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string
	Description string `gorm:"type:text"`
	Industry    string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
	IsDeleted   bool
}

func (Procedure) TableName() string {
	return "procedures"
}
