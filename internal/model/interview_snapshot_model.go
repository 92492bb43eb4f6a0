package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type InterviewSnapshot struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	ProcedureId uuid.UUID      `gorm:"type:uuid;uniqueIndex"`
	State       datatypes.JSON `gorm:"type:jsonb"`
	Completed   bool
	UpdatedAt   time.Time
}

func (InterviewSnapshot) TableName() string {
	return "interview_snapshots"
}
