package contract

import (
	"context"

	"zyglio-be/internal/entity"
	"zyglio-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ReferenceChunkRepository interface {
	CreateBatch(ctx context.Context, chunks []entity.ReferenceChunk) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]entity.ReferenceChunk, error)
	// SearchSimilar returns the limit chunks closest to the query embedding by
	// cosine distance, scoped to one procedure.
	SearchSimilar(ctx context.Context, procedureId uuid.UUID, embedding []float32, limit int) ([]entity.ReferenceChunk, error)
	DeleteByProcedureId(ctx context.Context, procedureId uuid.UUID) error
}
