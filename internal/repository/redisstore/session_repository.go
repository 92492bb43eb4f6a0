package redisstore

import (
	"context"
	"encoding/json"
	"time"

	"zyglio-be/internal/repository/contract"
	"zyglio-be/pkg/store"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "interview:session:"

// SessionRepository stores interview sessions in Redis so they survive
// process restarts. Errors are swallowed: session storage is best-effort
// and the caller cannot do anything useful with a failed Save.
type SessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionRepository(client *redis.Client, ttl time.Duration) contract.InterviewSessionRepository {
	return &SessionRepository{client: client, ttl: ttl}
}

func (r *SessionRepository) Get(procedureId string) (*store.Session, bool) {
	ctx := context.Background()
	raw, err := r.client.Get(ctx, sessionKeyPrefix+procedureId).Bytes()
	if err != nil {
		return nil, false
	}
	var session store.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, false
	}
	return &session, true
}

func (r *SessionRepository) Save(session *store.Session) {
	raw, err := json.Marshal(session)
	if err != nil {
		return
	}
	r.client.Set(context.Background(), sessionKeyPrefix+session.ProcedureId, raw, r.ttl)
}

func (r *SessionRepository) Delete(procedureId string) {
	r.client.Del(context.Background(), sessionKeyPrefix+procedureId)
}
