package contract

import (
	"zyglio-be/pkg/store"
)

// InterviewSessionRepository holds live interview sessions keyed by procedure
// id. The memory implementation backs a single node; the redis implementation
// lets sessions survive restarts.
type InterviewSessionRepository interface {
	Get(procedureId string) (*store.Session, bool)
	Save(session *store.Session)
	Delete(procedureId string)
}
