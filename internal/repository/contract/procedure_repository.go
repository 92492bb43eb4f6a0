package contract

import (
	"context"

	"zyglio-be/internal/entity"
	"zyglio-be/internal/repository/specification"
)

type ProcedureRepository interface {
	Create(ctx context.Context, procedure *entity.Procedure) error
	Update(ctx context.Context, procedure *entity.Procedure) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Procedure, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]entity.Procedure, error)
}
