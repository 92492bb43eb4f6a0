package contract

import (
	"context"

	"zyglio-be/internal/entity"
	"zyglio-be/internal/repository/specification"
)

type InterviewTurnRepository interface {
	Create(ctx context.Context, turn *entity.InterviewTurn) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]entity.InterviewTurn, error)
}

type CertificationRepository interface {
	Create(ctx context.Context, record *entity.CertificationRecord) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CertificationRecord, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]entity.CertificationRecord, error)
}

type InterviewSnapshotRepository interface {
	Upsert(ctx context.Context, snapshot *entity.InterviewSnapshot) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.InterviewSnapshot, error)
}
