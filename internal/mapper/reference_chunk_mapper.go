package mapper

import (
	"zyglio-be/internal/entity"
	"zyglio-be/internal/model"

	"github.com/pgvector/pgvector-go"
)

type ReferenceChunkMapper struct{}

func NewReferenceChunkMapper() *ReferenceChunkMapper {
	return &ReferenceChunkMapper{}
}

func (m *ReferenceChunkMapper) ToModel(e *entity.ReferenceChunk) *model.ReferenceChunk {
	if e == nil {
		return nil
	}
	return &model.ReferenceChunk{
		Id:          e.Id,
		ProcedureId: e.ProcedureId,
		Source:      e.Source,
		Content:     e.Content,
		Embedding:   pgvector.NewVector(e.Embedding),
		ChunkIndex:  e.ChunkIndex,
		CreatedAt:   e.CreatedAt,
	}
}

func (m *ReferenceChunkMapper) ToEntity(mo *model.ReferenceChunk) *entity.ReferenceChunk {
	if mo == nil {
		return nil
	}
	return &entity.ReferenceChunk{
		Id:          mo.Id,
		ProcedureId: mo.ProcedureId,
		Source:      mo.Source,
		Content:     mo.Content,
		Embedding:   mo.Embedding.Slice(),
		ChunkIndex:  mo.ChunkIndex,
		CreatedAt:   mo.CreatedAt,
	}
}

func (m *ReferenceChunkMapper) ToEntities(models []model.ReferenceChunk) []entity.ReferenceChunk {
	entities := make([]entity.ReferenceChunk, 0, len(models))
	for i := range models {
		entities = append(entities, *m.ToEntity(&models[i]))
	}
	return entities
}
