package dto

import (
	"time"

	"github.com/google/uuid"
)

type StartInterviewRequest struct {
	ProcedureId    uuid.UUID `json:"procedure_id" validate:"required"`
	InitialContext string    `json:"initial_context"`
}

type TopicDTO struct {
	Id            string   `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Status        string   `json:"status"`
	IsRequired    bool     `json:"is_required"`
	Keywords      []string `json:"keywords"`
	CoverageScore int      `json:"coverage_score"`
}

type QuestionDTO struct {
	Id       string `json:"id"`
	Question string `json:"question"`
	Category string `json:"category"`
	Priority int    `json:"priority"`
}

type StartInterviewResponse struct {
	ProcedureId   uuid.UUID    `json:"procedure_id"`
	FirstQuestion *QuestionDTO `json:"first_question"`
	Topics        []TopicDTO   `json:"topics"`
}

type SubmitAnswerRequest struct {
	ProcedureId uuid.UUID `json:"procedure_id" validate:"required"`
	Answer      string    `json:"answer" validate:"required"`
}

type SubmitAnswerResponse struct {
	NextQuestion       *QuestionDTO     `json:"next_question"`
	InterviewCompleted bool             `json:"interview_completed"`
	Coverage           CoverageStatsDTO `json:"coverage"`
	Topics             []TopicDTO       `json:"topics"`
}

type CoverageStatsDTO struct {
	TotalTopics        int `json:"total_topics"`
	RequiredTopics     int `json:"required_topics"`
	ThoroughlyCovered  int `json:"thoroughly_covered"`
	BrieflyDiscussed   int `json:"briefly_discussed"`
	NotDiscussed       int `json:"not_discussed"`
	RequiredCovered    int `json:"required_covered"`
	QuestionsAsked     int `json:"questions_asked"`
	QuestionsRemaining int `json:"questions_remaining"`
}

type GetCoverageResponse struct {
	ProcedureId        uuid.UUID        `json:"procedure_id"`
	InterviewCompleted bool             `json:"interview_completed"`
	FirstOverviewGiven bool             `json:"first_overview_given"`
	Coverage           CoverageStatsDTO `json:"coverage"`
	Topics             []TopicDTO       `json:"topics"`
}

type EndInterviewRequest struct {
	ProcedureId uuid.UUID `json:"procedure_id" validate:"required"`
}

type TranscriptEntryDTO struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type GetTranscriptResponse struct {
	ProcedureId uuid.UUID            `json:"procedure_id"`
	Turns       []TranscriptEntryDTO `json:"turns"`
}
