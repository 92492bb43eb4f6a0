package dto

import (
	"time"

	"github.com/google/uuid"
)

// InterviewCompletedEvent is published on the message bus when an interview
// crosses the completion threshold.
type InterviewCompletedEvent struct {
	ProcedureId     uuid.UUID `json:"procedure_id"`
	TopicsTotal     int       `json:"topics_total"`
	RequiredTopics  int       `json:"required_topics"`
	RequiredCovered int       `json:"required_covered"`
	QuestionsAsked  int       `json:"questions_asked"`
	CompletedAt     time.Time `json:"completed_at"`
}
