package unitofwork

import (
	"context"

	"zyglio-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ProcedureRepository() contract.ProcedureRepository
	InterviewTurnRepository() contract.InterviewTurnRepository
	CertificationRepository() contract.CertificationRepository
	InterviewSnapshotRepository() contract.InterviewSnapshotRepository
	ReferenceChunkRepository() contract.ReferenceChunkRepository
}
