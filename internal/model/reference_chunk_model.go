package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type ReferenceChunk struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProcedureId uuid.UUID `gorm:"type:uuid;index"`
	Source      string
	Content     string          `gorm:"type:text"`
	Embedding   pgvector.Vector `gorm:"type:vector(1536)"`
	ChunkIndex  int
	CreatedAt   time.Time
}

func (ReferenceChunk) TableName() string {
	return "reference_chunks"
}
