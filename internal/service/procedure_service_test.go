package service

import (
	"context"
	"testing"

	"zyglio-be/internal/dto"
	"zyglio-be/internal/entity"
	"zyglio-be/internal/repository/contract"
	"zyglio-be/internal/repository/specification"
	"zyglio-be/internal/repository/unitofwork"
)

// recordingProcedureRepo captures the specifications each query is built from.
type recordingProcedureRepo struct {
	fakeProcedureRepo
	findAllSpecs []specification.Specification
}

func (r *recordingProcedureRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]entity.Procedure, error) {
	r.findAllSpecs = specs
	return r.fakeProcedureRepo.FindAll(ctx, specs...)
}

type recordingUow struct {
	fakeUow
	procedures *recordingProcedureRepo
}

func (u *recordingUow) ProcedureRepository() contract.ProcedureRepository {
	return u.procedures
}

type recordingFactory struct {
	uow *recordingUow
}

func (f *recordingFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

func newProcedureHarness() (IProcedureService, *recordingProcedureRepo) {
	state := &fakeState{}
	repo := &recordingProcedureRepo{fakeProcedureRepo: fakeProcedureRepo{state: state}}
	uow := &recordingUow{fakeUow: fakeUow{state: state}, procedures: repo}
	return NewProcedureService(&recordingFactory{uow: uow}), repo
}

func hasSpec(specs []specification.Specification, match func(specification.Specification) bool) bool {
	for _, s := range specs {
		if match(s) {
			return true
		}
	}
	return false
}

func TestListDefaultsToUnfilteredQuery(t *testing.T) {
	svc, repo := newProcedureHarness()

	if _, err := svc.List(context.Background(), &dto.ListProceduresRequest{}); err != nil {
		t.Fatalf("List: %v", err)
	}

	if !hasSpec(repo.findAllSpecs, func(s specification.Specification) bool {
		_, ok := s.(specification.NotDeleted)
		return ok
	}) {
		t.Error("soft-deleted rows not excluded")
	}
	if !hasSpec(repo.findAllSpecs, func(s specification.Specification) bool {
		o, ok := s.(specification.OrderBy)
		return ok && o.Field == "created_at" && o.Desc
	}) {
		t.Error("newest-first ordering missing")
	}
	if hasSpec(repo.findAllSpecs, func(s specification.Specification) bool {
		_, ok := s.(specification.FilterBy)
		return ok
	}) {
		t.Error("unexpected filter on empty request")
	}
	if hasSpec(repo.findAllSpecs, func(s specification.Specification) bool {
		_, ok := s.(specification.Pagination)
		return ok
	}) {
		t.Error("unexpected pagination on empty request")
	}
}

func TestListFiltersByIndustry(t *testing.T) {
	svc, repo := newProcedureHarness()

	req := &dto.ListProceduresRequest{Industry: "healthcare"}
	if _, err := svc.List(context.Background(), req); err != nil {
		t.Fatalf("List: %v", err)
	}

	if !hasSpec(repo.findAllSpecs, func(s specification.Specification) bool {
		f, ok := s.(specification.FilterBy)
		return ok && f.Field == "industry" && f.Value == "healthcare"
	}) {
		t.Error("industry filter not applied")
	}
}

func TestListPaginates(t *testing.T) {
	svc, repo := newProcedureHarness()

	req := &dto.ListProceduresRequest{Limit: 10, Offset: 20}
	if _, err := svc.List(context.Background(), req); err != nil {
		t.Fatalf("List: %v", err)
	}

	if !hasSpec(repo.findAllSpecs, func(s specification.Specification) bool {
		p, ok := s.(specification.Pagination)
		return ok && p.Limit == 10 && p.Offset == 20
	}) {
		t.Error("pagination not applied")
	}
}
