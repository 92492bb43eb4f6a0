package service

import (
	"context"
	"fmt"
	"time"

	"zyglio-be/internal/dto"
	"zyglio-be/internal/entity"
	"zyglio-be/internal/repository/specification"
	"zyglio-be/internal/repository/unitofwork"
	"zyglio-be/pkg/embedding"
	"zyglio-be/pkg/utils"

	"github.com/google/uuid"
)

const (
	// ChunkSize 1500 chars (approx 375 tokens) keeps chunks well inside
	// embedding context limits; the overlap preserves boundary context.
	referenceChunkSize    = 1500
	referenceChunkOverlap = 200

	searchResultLimit = 5
)

// IReferenceService ingests and searches procedure reference material
type IReferenceService interface {
	Ingest(ctx context.Context, request *dto.IngestReferenceRequest) (*dto.IngestReferenceResponse, error)
	Search(ctx context.Context, procedureId uuid.UUID, query string) (*dto.SearchReferenceResponse, error)
}

type referenceService struct {
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
}

func NewReferenceService(
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
) IReferenceService {
	return &referenceService{
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
	}
}

// Ingest splits the document, embeds every chunk, and stores them for
// similarity search.
func (rs *referenceService) Ingest(ctx context.Context, request *dto.IngestReferenceRequest) (*dto.IngestReferenceResponse, error) {
	uow := rs.uowFactory.NewUnitOfWork(ctx)

	procedure, err := uow.ProcedureRepository().FindOne(ctx,
		specification.ByID{ID: request.ProcedureId},
		specification.NotDeleted{},
	)
	if err != nil {
		return nil, err
	}
	if procedure == nil {
		return nil, fmt.Errorf("procedure not found")
	}

	chunks := utils.SplitText(request.Content, referenceChunkSize, referenceChunkOverlap)

	now := time.Now()
	entities := make([]entity.ReferenceChunk, 0, len(chunks))
	for i, chunk := range chunks {
		res, err := rs.embeddingProvider.Generate(chunk, "RETRIEVAL_DOCUMENT")
		if err != nil {
			return nil, fmt.Errorf("embedding chunk %d: %w", i, err)
		}
		entities = append(entities, entity.ReferenceChunk{
			Id:          uuid.New(),
			ProcedureId: request.ProcedureId,
			Source:      request.Source,
			Content:     chunk,
			Embedding:   res.Embedding.Values,
			ChunkIndex:  i,
			CreatedAt:   now,
		})
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ReferenceChunkRepository().CreateBatch(ctx, entities); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.IngestReferenceResponse{
		ProcedureId: request.ProcedureId,
		ChunksSaved: len(entities),
	}, nil
}

// Search embeds the query and returns the closest chunks by cosine distance.
func (rs *referenceService) Search(ctx context.Context, procedureId uuid.UUID, query string) (*dto.SearchReferenceResponse, error) {
	if query == "" {
		return &dto.SearchReferenceResponse{Query: query, Chunks: []dto.ReferenceChunkDTO{}}, nil
	}

	res, err := rs.embeddingProvider.Generate(query, "RETRIEVAL_QUERY")
	if err != nil {
		return nil, err
	}

	uow := rs.uowFactory.NewUnitOfWork(ctx)
	chunks, err := uow.ReferenceChunkRepository().SearchSimilar(ctx, procedureId, res.Embedding.Values, searchResultLimit)
	if err != nil {
		return nil, err
	}

	dtos := make([]dto.ReferenceChunkDTO, 0, len(chunks))
	for _, c := range chunks {
		dtos = append(dtos, dto.ReferenceChunkDTO{
			Id:         c.Id,
			Source:     c.Source,
			Content:    c.Content,
			ChunkIndex: c.ChunkIndex,
		})
	}

	return &dto.SearchReferenceResponse{
		Query:  query,
		Chunks: dtos,
	}, nil
}
