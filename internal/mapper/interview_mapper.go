package mapper

import (
	"zyglio-be/internal/entity"
	"zyglio-be/internal/model"

	"gorm.io/datatypes"
)

type InterviewTurnMapper struct{}

func NewInterviewTurnMapper() *InterviewTurnMapper {
	return &InterviewTurnMapper{}
}

func (m *InterviewTurnMapper) ToModel(e *entity.InterviewTurn) *model.InterviewTurn {
	if e == nil {
		return nil
	}
	return &model.InterviewTurn{
		Id:          e.Id,
		ProcedureId: e.ProcedureId,
		Role:        e.Role,
		Content:     e.Content,
		CreatedAt:   e.CreatedAt,
	}
}

func (m *InterviewTurnMapper) ToEntity(mo *model.InterviewTurn) *entity.InterviewTurn {
	if mo == nil {
		return nil
	}
	return &entity.InterviewTurn{
		Id:          mo.Id,
		ProcedureId: mo.ProcedureId,
		Role:        mo.Role,
		Content:     mo.Content,
		CreatedAt:   mo.CreatedAt,
	}
}

func (m *InterviewTurnMapper) ToEntities(models []model.InterviewTurn) []entity.InterviewTurn {
	entities := make([]entity.InterviewTurn, 0, len(models))
	for i := range models {
		entities = append(entities, *m.ToEntity(&models[i]))
	}
	return entities
}

type CertificationMapper struct{}

func NewCertificationMapper() *CertificationMapper {
	return &CertificationMapper{}
}

func (m *CertificationMapper) ToModel(e *entity.CertificationRecord) *model.CertificationRecord {
	if e == nil {
		return nil
	}
	return &model.CertificationRecord{
		Id:              e.Id,
		ProcedureId:     e.ProcedureId,
		TopicsTotal:     e.TopicsTotal,
		RequiredTopics:  e.RequiredTopics,
		RequiredCovered: e.RequiredCovered,
		QuestionsAsked:  e.QuestionsAsked,
		CompletedAt:     e.CompletedAt,
	}
}

func (m *CertificationMapper) ToEntity(mo *model.CertificationRecord) *entity.CertificationRecord {
	if mo == nil {
		return nil
	}
	return &entity.CertificationRecord{
		Id:              mo.Id,
		ProcedureId:     mo.ProcedureId,
		TopicsTotal:     mo.TopicsTotal,
		RequiredTopics:  mo.RequiredTopics,
		RequiredCovered: mo.RequiredCovered,
		QuestionsAsked:  mo.QuestionsAsked,
		CompletedAt:     mo.CompletedAt,
	}
}

func (m *CertificationMapper) ToEntities(models []model.CertificationRecord) []entity.CertificationRecord {
	entities := make([]entity.CertificationRecord, 0, len(models))
	for i := range models {
		entities = append(entities, *m.ToEntity(&models[i]))
	}
	return entities
}

type InterviewSnapshotMapper struct{}

func NewInterviewSnapshotMapper() *InterviewSnapshotMapper {
	return &InterviewSnapshotMapper{}
}

func (m *InterviewSnapshotMapper) ToModel(e *entity.InterviewSnapshot) *model.InterviewSnapshot {
	if e == nil {
		return nil
	}
	return &model.InterviewSnapshot{
		Id:          e.Id,
		ProcedureId: e.ProcedureId,
		State:       datatypes.JSON(e.State),
		Completed:   e.Completed,
		UpdatedAt:   e.UpdatedAt,
	}
}

func (m *InterviewSnapshotMapper) ToEntity(mo *model.InterviewSnapshot) *entity.InterviewSnapshot {
	if mo == nil {
		return nil
	}
	return &entity.InterviewSnapshot{
		Id:          mo.Id,
		ProcedureId: mo.ProcedureId,
		State:       []byte(mo.State),
		Completed:   mo.Completed,
		UpdatedAt:   mo.UpdatedAt,
	}
}
