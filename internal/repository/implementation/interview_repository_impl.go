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
	"gorm.io/gorm/clause"
)

type interviewTurnRepository struct {
	db     *gorm.DB
	mapper *mapper.InterviewTurnMapper
}

func NewInterviewTurnRepository(db *gorm.DB) contract.InterviewTurnRepository {
	return &interviewTurnRepository{
		db:     db,
		mapper: mapper.NewInterviewTurnMapper(),
	}
}

func (r *interviewTurnRepository) Create(ctx context.Context, turn *entity.InterviewTurn) error {
	return r.db.WithContext(ctx).Create(r.mapper.ToModel(turn)).Error
}

func (r *interviewTurnRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]entity.InterviewTurn, error) {
	var models []model.InterviewTurn
	db := applySpecifications(r.db.WithContext(ctx), specs)
	if err := db.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

type certificationRepository struct {
	db     *gorm.DB
	mapper *mapper.CertificationMapper
}

func NewCertificationRepository(db *gorm.DB) contract.CertificationRepository {
	return &certificationRepository{
		db:     db,
		mapper: mapper.NewCertificationMapper(),
	}
}

func (r *certificationRepository) Create(ctx context.Context, record *entity.CertificationRecord) error {
	return r.db.WithContext(ctx).Create(r.mapper.ToModel(record)).Error
}

func (r *certificationRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CertificationRecord, error) {
	var mo model.CertificationRecord
	db := applySpecifications(r.db.WithContext(ctx), specs)
	if err := db.First(&mo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&mo), nil
}

func (r *certificationRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]entity.CertificationRecord, error) {
	var models []model.CertificationRecord
	db := applySpecifications(r.db.WithContext(ctx), specs)
	if err := db.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

type interviewSnapshotRepository struct {
	db     *gorm.DB
	mapper *mapper.InterviewSnapshotMapper
}

func NewInterviewSnapshotRepository(db *gorm.DB) contract.InterviewSnapshotRepository {
	return &interviewSnapshotRepository{
		db:     db,
		mapper: mapper.NewInterviewSnapshotMapper(),
	}
}

func (r *interviewSnapshotRepository) Upsert(ctx context.Context, snapshot *entity.InterviewSnapshot) error {
	mo := r.mapper.ToModel(snapshot)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "procedure_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"state", "completed", "updated_at"}),
	}).Create(mo).Error
}

func (r *interviewSnapshotRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.InterviewSnapshot, error) {
	var mo model.InterviewSnapshot
	db := applySpecifications(r.db.WithContext(ctx), specs)
	if err := db.First(&mo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&mo), nil
}
