package service

import (
	"context"
	"fmt"
	"time"

	"zyglio-be/internal/dto"
	"zyglio-be/internal/entity"
	"zyglio-be/internal/repository/specification"
	"zyglio-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// IProcedureService defines the procedure catalog interface
type IProcedureService interface {
	Create(ctx context.Context, request *dto.CreateProcedureRequest) (*dto.CreateProcedureResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ProcedureResponse, error)
	List(ctx context.Context, request *dto.ListProceduresRequest) ([]*dto.ProcedureResponse, error)
	Update(ctx context.Context, request *dto.UpdateProcedureRequest) (*dto.ProcedureResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetCertifications(ctx context.Context, id uuid.UUID) ([]*dto.CertificationResponse, error)
}

type procedureService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewProcedureService(uowFactory unitofwork.RepositoryFactory) IProcedureService {
	return &procedureService{
		uowFactory: uowFactory,
	}
}

func (ps *procedureService) Create(ctx context.Context, request *dto.CreateProcedureRequest) (*dto.CreateProcedureResponse, error) {
	uow := ps.uowFactory.NewUnitOfWork(ctx)

	procedure := entity.Procedure{
		Id:          uuid.New(),
		Title:       request.Title,
		Description: request.Description,
		Industry:    request.Industry,
		CreatedAt:   time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ProcedureRepository().Create(ctx, &procedure); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.CreateProcedureResponse{Id: procedure.Id}, nil
}

func (ps *procedureService) Show(ctx context.Context, id uuid.UUID) (*dto.ProcedureResponse, error) {
	uow := ps.uowFactory.NewUnitOfWork(ctx)

	procedure, err := uow.ProcedureRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.NotDeleted{},
	)
	if err != nil {
		return nil, err
	}
	if procedure == nil {
		return nil, fmt.Errorf("procedure not found")
	}

	return procedureResponse(procedure), nil
}

func (ps *procedureService) List(ctx context.Context, request *dto.ListProceduresRequest) ([]*dto.ProcedureResponse, error) {
	uow := ps.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.NotDeleted{},
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if request.Industry != "" {
		specs = append(specs, specification.FilterBy{Field: "industry", Value: request.Industry})
	}
	if request.Limit > 0 {
		specs = append(specs, specification.Pagination{Limit: request.Limit, Offset: request.Offset})
	}

	procedures, err := uow.ProcedureRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.ProcedureResponse, 0, len(procedures))
	for i := range procedures {
		response = append(response, procedureResponse(&procedures[i]))
	}
	return response, nil
}

func (ps *procedureService) Update(ctx context.Context, request *dto.UpdateProcedureRequest) (*dto.ProcedureResponse, error) {
	uow := ps.uowFactory.NewUnitOfWork(ctx)

	procedure, err := uow.ProcedureRepository().FindOne(ctx,
		specification.ByID{ID: request.Id},
		specification.NotDeleted{},
	)
	if err != nil {
		return nil, err
	}
	if procedure == nil {
		return nil, fmt.Errorf("procedure not found")
	}

	now := time.Now()
	procedure.Title = request.Title
	procedure.Description = request.Description
	procedure.Industry = request.Industry
	procedure.UpdatedAt = &now

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ProcedureRepository().Update(ctx, procedure); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return procedureResponse(procedure), nil
}

func (ps *procedureService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := ps.uowFactory.NewUnitOfWork(ctx)

	procedure, err := uow.ProcedureRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.NotDeleted{},
	)
	if err != nil {
		return err
	}
	if procedure == nil {
		return fmt.Errorf("procedure not found")
	}

	now := time.Now()
	procedure.IsDeleted = true
	procedure.DeletedAt = &now

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ProcedureRepository().Update(ctx, procedure); err != nil {
		return err
	}

	return uow.Commit()
}

func (ps *procedureService) GetCertifications(ctx context.Context, id uuid.UUID) ([]*dto.CertificationResponse, error) {
	uow := ps.uowFactory.NewUnitOfWork(ctx)

	records, err := uow.CertificationRepository().FindAll(ctx,
		specification.ByProcedureID{ProcedureID: id},
		specification.OrderBy{Field: "completed_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.CertificationResponse, 0, len(records))
	for _, r := range records {
		response = append(response, &dto.CertificationResponse{
			Id:              r.Id,
			ProcedureId:     r.ProcedureId,
			TopicsTotal:     r.TopicsTotal,
			RequiredTopics:  r.RequiredTopics,
			RequiredCovered: r.RequiredCovered,
			QuestionsAsked:  r.QuestionsAsked,
			CompletedAt:     r.CompletedAt,
		})
	}
	return response, nil
}

func procedureResponse(p *entity.Procedure) *dto.ProcedureResponse {
	return &dto.ProcedureResponse{
		Id:          p.Id,
		Title:       p.Title,
		Description: p.Description,
		Industry:    p.Industry,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
