package model

import (
	"time"

	"github.com/google/uuid"
)

type InterviewTurn struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProcedureId uuid.UUID `gorm:"type:uuid;index"`
	Role        string
	Content     string `gorm:"type:text"`
	CreatedAt   time.Time
}

func (InterviewTurn) TableName() string {
	return "interview_turns"
}
