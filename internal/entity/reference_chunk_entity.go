package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReferenceChunk is an embedded slice of ingested reference material
// (papers, manuals) attached to a procedure.
type ReferenceChunk struct {
	Id          uuid.UUID
	ProcedureId uuid.UUID
	Source      string
	Content     string
	Embedding   []float32
	ChunkIndex  int
	CreatedAt   time.Time
}
