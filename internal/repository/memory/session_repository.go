package memory

import (
	"zyglio-be/internal/repository/contract"
	"zyglio-be/pkg/store"

	gocache "github.com/patrickmn/go-cache"
)

// SessionRepository keeps interview sessions in process memory. Sessions do
// not expire on their own; an interview may span hours of conversation.
type SessionRepository struct {
	cache *gocache.Cache
}

func NewSessionRepository() contract.InterviewSessionRepository {
	return &SessionRepository{
		cache: gocache.New(gocache.NoExpiration, gocache.NoExpiration),
	}
}

func (r *SessionRepository) Get(procedureId string) (*store.Session, bool) {
	value, found := r.cache.Get(procedureId)
	if !found {
		return nil, false
	}
	session, ok := value.(*store.Session)
	if !ok {
		return nil, false
	}
	return session, true
}

func (r *SessionRepository) Save(session *store.Session) {
	r.cache.Set(session.ProcedureId, session, gocache.NoExpiration)
}

func (r *SessionRepository) Delete(procedureId string) {
	r.cache.Delete(procedureId)
}
