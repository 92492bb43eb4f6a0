package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByProcedureID scopes a query to one procedure
type ByProcedureID struct {
	ProcedureID uuid.UUID
}

func (s ByProcedureID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("procedure_id = ?", s.ProcedureID)
}
