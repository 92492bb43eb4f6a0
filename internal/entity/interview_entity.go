package entity

import (
	"time"

	"github.com/google/uuid"
)

// InterviewTurn is one persisted transcript entry of an SME interview.
type InterviewTurn struct {
	Id          uuid.UUID
	ProcedureId uuid.UUID
	Role        string // "ai" | "user"
	Content     string
	CreatedAt   time.Time
}

// CertificationRecord is written when an interview completes; it feeds the
// downstream certification flow.
type CertificationRecord struct {
	Id              uuid.UUID
	ProcedureId     uuid.UUID
	TopicsTotal     int
	RequiredTopics  int
	RequiredCovered int
	QuestionsAsked  int
	CompletedAt     time.Time
}

// InterviewSnapshot is the durable best-effort copy of the in-memory session
// state, written after each turn.
type InterviewSnapshot struct {
	Id          uuid.UUID
	ProcedureId uuid.UUID
	State       []byte // JSON-serialized store.Session
	Completed   bool
	UpdatedAt   time.Time
}
