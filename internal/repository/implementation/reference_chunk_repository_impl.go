package implementation

import (
	"context"

	"zyglio-be/internal/entity"
	"zyglio-be/internal/mapper"
	"zyglio-be/internal/model"
	"zyglio-be/internal/repository/contract"
	"zyglio-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type referenceChunkRepository struct {
	db     *gorm.DB
	mapper *mapper.ReferenceChunkMapper
}

func NewReferenceChunkRepository(db *gorm.DB) contract.ReferenceChunkRepository {
	return &referenceChunkRepository{
		db:     db,
		mapper: mapper.NewReferenceChunkMapper(),
	}
}

func (r *referenceChunkRepository) CreateBatch(ctx context.Context, chunks []entity.ReferenceChunk) error {
	if len(chunks) == 0 {
		return nil
	}
	models := make([]model.ReferenceChunk, 0, len(chunks))
	for i := range chunks {
		models = append(models, *r.mapper.ToModel(&chunks[i]))
	}
	return r.db.WithContext(ctx).CreateInBatches(models, 100).Error
}

func (r *referenceChunkRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]entity.ReferenceChunk, error) {
	var models []model.ReferenceChunk
	db := applySpecifications(r.db.WithContext(ctx), specs)
	if err := db.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *referenceChunkRepository) SearchSimilar(ctx context.Context, procedureId uuid.UUID, embedding []float32, limit int) ([]entity.ReferenceChunk, error) {
	var models []model.ReferenceChunk
	err := r.db.WithContext(ctx).
		Where("procedure_id = ?", procedureId).
		Order(gorm.Expr("embedding <=> ?", pgvector.NewVector(embedding))).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *referenceChunkRepository) DeleteByProcedureId(ctx context.Context, procedureId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("procedure_id = ?", procedureId).
		Delete(&model.ReferenceChunk{}).Error
}
