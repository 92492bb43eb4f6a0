package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateProcedureRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Industry    string `json:"industry"`
}

type CreateProcedureResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateProcedureRequest struct {
	Id          uuid.UUID `json:"-"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Industry    string    `json:"industry"`
}

type ListProceduresRequest struct {
	Industry string `json:"industry"`
	Limit    int    `json:"limit" validate:"gte=0"`
	Offset   int    `json:"offset" validate:"gte=0"`
}

type ProcedureResponse struct {
	Id          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Industry    string     `json:"industry"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

type CertificationResponse struct {
	Id              uuid.UUID `json:"id"`
	ProcedureId     uuid.UUID `json:"procedure_id"`
	TopicsTotal     int       `json:"topics_total"`
	RequiredTopics  int       `json:"required_topics"`
	RequiredCovered int       `json:"required_covered"`
	QuestionsAsked  int       `json:"questions_asked"`
	CompletedAt     time.Time `json:"completed_at"`
}
