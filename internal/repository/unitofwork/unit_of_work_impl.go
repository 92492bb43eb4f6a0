package unitofwork

import (
	"context"
	"errors"

	"zyglio-be/internal/repository/contract"
	"zyglio-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type unitOfWork struct {
	db *gorm.DB
	tx *gorm.DB

	procedureRepo      contract.ProcedureRepository
	interviewTurnRepo  contract.InterviewTurnRepository
	certificationRepo  contract.CertificationRepository
	snapshotRepo       contract.InterviewSnapshotRepository
	referenceChunkRepo contract.ReferenceChunkRepository
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &unitOfWork{db: db}
}

func (u *unitOfWork) Begin(ctx context.Context) error {
	if u.tx != nil {
		return errors.New("transaction already started")
	}
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	u.tx = tx
	u.procedureRepo = implementation.NewProcedureRepository(tx)
	u.interviewTurnRepo = implementation.NewInterviewTurnRepository(tx)
	u.certificationRepo = implementation.NewCertificationRepository(tx)
	u.snapshotRepo = implementation.NewInterviewSnapshotRepository(tx)
	u.referenceChunkRepo = implementation.NewReferenceChunkRepository(tx)
	return nil
}

func (u *unitOfWork) Commit() error {
	if u.tx == nil {
		return errors.New("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.reset()
	return err
}

// Rollback is a no-op after Commit, so callers can defer it unconditionally.
func (u *unitOfWork) Rollback() error {
	if u.tx == nil {
		return nil
	}
	err := u.tx.Rollback().Error
	u.reset()
	return err
}

func (u *unitOfWork) reset() {
	u.tx = nil
	u.procedureRepo = nil
	u.interviewTurnRepo = nil
	u.certificationRepo = nil
	u.snapshotRepo = nil
	u.referenceChunkRepo = nil
}

func (u *unitOfWork) ProcedureRepository() contract.ProcedureRepository {
	return u.procedureRepo
}

func (u *unitOfWork) InterviewTurnRepository() contract.InterviewTurnRepository {
	return u.interviewTurnRepo
}

func (u *unitOfWork) CertificationRepository() contract.CertificationRepository {
	return u.certificationRepo
}

func (u *unitOfWork) InterviewSnapshotRepository() contract.InterviewSnapshotRepository {
	return u.snapshotRepo
}

func (u *unitOfWork) ReferenceChunkRepository() contract.ReferenceChunkRepository {
	return u.referenceChunkRepo
}
