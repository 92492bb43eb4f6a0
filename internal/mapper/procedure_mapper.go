package mapper

import (
	"zyglio-be/internal/entity"
	"zyglio-be/internal/model"
)

type ProcedureMapper struct{}

func NewProcedureMapper() *ProcedureMapper {
	return &ProcedureMapper{}
}

func (m *ProcedureMapper) ToModel(e *entity.Procedure) *model.Procedure {
	if e == nil {
		return nil
	}
	return &model.Procedure{
		Id:          e.Id,
		Title:       e.Title,
		Description: e.Description,
		Industry:    e.Industry,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
		DeletedAt:   e.DeletedAt,
		IsDeleted:   e.IsDeleted,
	}
}

func (m *ProcedureMapper) ToEntity(mo *model.Procedure) *entity.Procedure {
	if mo == nil {
		return nil
	}
	return &entity.Procedure{
		Id:          mo.Id,
		Title:       mo.Title,
		Description: mo.Description,
		Industry:    mo.Industry,
		CreatedAt:   mo.CreatedAt,
		UpdatedAt:   mo.UpdatedAt,
		DeletedAt:   mo.DeletedAt,
		IsDeleted:   mo.IsDeleted,
	}
}

func (m *ProcedureMapper) ToEntities(models []model.Procedure) []entity.Procedure {
	entities := make([]entity.Procedure, 0, len(models))
	for i := range models {
		entities = append(entities, *m.ToEntity(&models[i]))
	}
	return entities
}
