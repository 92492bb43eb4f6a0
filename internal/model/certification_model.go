package model

import (
	"time"

	"github.com/google/uuid"
)

type CertificationRecord struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProcedureId     uuid.UUID `gorm:"type:uuid;index"`
	TopicsTotal     int
	RequiredTopics  int
	RequiredCovered int
	QuestionsAsked  int
	CompletedAt     time.Time
}

func (CertificationRecord) TableName() string {
	return "certification_records"
}
