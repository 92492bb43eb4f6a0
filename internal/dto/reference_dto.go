package dto

import (
	"github.com/google/uuid"
)

type IngestReferenceRequest struct {
	ProcedureId uuid.UUID `json:"procedure_id" validate:"required"`
	Source      string    `json:"source" validate:"required"`
	Content     string    `json:"content" validate:"required"`
}

type IngestReferenceResponse struct {
	ProcedureId uuid.UUID `json:"procedure_id"`
	ChunksSaved int       `json:"chunks_saved"`
}

type ReferenceChunkDTO struct {
	Id         uuid.UUID `json:"id"`
	Source     string    `json:"source"`
	Content    string    `json:"content"`
	ChunkIndex int       `json:"chunk_index"`
}

type SearchReferenceResponse struct {
	Query  string              `json:"query"`
	Chunks []ReferenceChunkDTO `json:"chunks"`
}
