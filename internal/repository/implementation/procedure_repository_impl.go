package implementation

import (
	"context"
	"errors"

	"zyglio-be/internal/entity"
	"zyglio-be/internal/mapper"
	"zyglio-be/internal/model"
	"zyglio-be/internal/repository/contract"
	"zyglio-be/internal/repository/specification"

	"gorm.io/gorm"
)

type procedureRepository struct {
	db     *gorm.DB
	mapper *mapper.ProcedureMapper
}

func NewProcedureRepository(db *gorm.DB) contract.ProcedureRepository {
	return &procedureRepository{
		db:     db,
		mapper: mapper.NewProcedureMapper(),
	}
}

func applySpecifications(db *gorm.DB, specs []specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *procedureRepository) Create(ctx context.Context, procedure *entity.Procedure) error {
	return r.db.WithContext(ctx).Create(r.mapper.ToModel(procedure)).Error
}

func (r *procedureRepository) Update(ctx context.Context, procedure *entity.Procedure) error {
	return r.db.WithContext(ctx).Save(r.mapper.ToModel(procedure)).Error
}

func (r *procedureRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Procedure, error) {
	var mo model.Procedure
	db := applySpecifications(r.db.WithContext(ctx), specs)
	if err := db.First(&mo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&mo), nil
}

func (r *procedureRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]entity.Procedure, error) {
	var models []model.Procedure
	db := applySpecifications(r.db.WithContext(ctx), specs)
	if err := db.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
