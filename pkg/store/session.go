package store

import (
	"strings"
	"time"
)

// Topic coverage statuses
const (
	StatusNotDiscussed      = "not-discussed"
	StatusBrieflyDiscussed  = "briefly-discussed"
	StatusThoroughlyCovered = "thoroughly-covered"
)

// Topic taxonomy
const (
	CategorySafety          = "Safety"
	CategoryEquipment       = "Equipment"
	CategoryTechnique       = "Technique"
	CategoryPreparation     = "Preparation"
	CategoryTheory          = "Theory"
	CategoryTroubleshooting = "Troubleshooting"
	CategoryQualityControl  = "Quality Control"
	CategoryGeneral         = "General"
)

// Conversation roles
const (
	RoleAI   = "ai"
	RoleUser = "user"
)

// Coverage score bands. Score >= ThoroughScoreMin maps to thoroughly-covered,
// >= BriefScoreMin to briefly-discussed, below that to not-discussed.
const (
	ThoroughScoreMin = 71
	BriefScoreMin    = 26
)

// Topic is one trackable concept the interview should elicit from the SME.
type Topic struct {
	Id            string   `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Status        string   `json:"status"`
	IsRequired    bool     `json:"is_required"`
	Keywords      []string `json:"keywords"`
	CoverageScore int      `json:"coverage_score"` // 0-100, never decreases
	Description   string   `json:"description"`
}

// Question is a candidate follow-up question in the session's bank.
type Question struct {
	Id            string   `json:"id"`
	Question      string   `json:"question"`
	Category      string   `json:"category"`
	Keywords      []string `json:"keywords"`
	Priority      int      `json:"priority"` // 1 = highest, 5 = lowest
	RelatedTopics []string `json:"related_topics"`
	Used          bool     `json:"used"` // one-way false -> true
}

// ConversationEntry is one turn of the interview transcript. The history is
// append-only and never reordered.
type ConversationEntry struct {
	Role      string    `json:"role"` // "ai" | "user"
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Session is the per-procedure interview state held by the session repository.
type Session struct {
	ProcedureId         string              `json:"procedure_id"`
	InitialContext      string              `json:"initial_context"`
	ConversationHistory []ConversationEntry `json:"conversation_history"`
	Topics              []*Topic            `json:"topics"`
	BatchedQuestions    []*Question         `json:"batched_questions"`
	QuestionsAsked      int                 `json:"questions_asked"`
	InterviewCompleted  bool                `json:"interview_completed"` // one-way false -> true
	FirstOverviewGiven  bool                `json:"first_overview_given"`
	BankSeeded          bool                `json:"bank_seeded"` // large seed batch already requested
}

// CoverageStats summarizes the topic ledger for the caller-facing stats endpoint.
type CoverageStats struct {
	TotalTopics        int `json:"total_topics"`
	RequiredTopics     int `json:"required_topics"`
	ThoroughlyCovered  int `json:"thoroughly_covered"`
	BrieflyDiscussed   int `json:"briefly_discussed"`
	NotDiscussed       int `json:"not_discussed"`
	RequiredCovered    int `json:"required_covered"`
	QuestionsAsked     int `json:"questions_asked"`
	QuestionsRemaining int `json:"questions_remaining"`
}

// StatusForScore maps a coverage score to its status band.
func StatusForScore(score int) string {
	switch {
	case score >= ThoroughScoreMin:
		return StatusThoroughlyCovered
	case score >= BriefScoreMin:
		return StatusBrieflyDiscussed
	default:
		return StatusNotDiscussed
	}
}

// statusRank orders statuses for the sticky-downgrade check.
func statusRank(status string) int {
	switch status {
	case StatusThoroughlyCovered:
		return 2
	case StatusBrieflyDiscussed:
		return 1
	default:
		return 0
	}
}

// ApplyScore raises the topic's coverage score. Lower suggestions are ignored
// so the score is monotonically non-decreasing across analyzer passes.
func (t *Topic) ApplyScore(score int) {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	if score > t.CoverageScore {
		t.CoverageScore = score
	}
}

// ApplyStatus updates the topic status from the current score band.
// A topic that reached thoroughly-covered stays there unless the analysis
// pass carried an explicit contradiction signal.
func (t *Topic) ApplyStatus(contradicted bool) {
	banded := StatusForScore(t.CoverageScore)
	if !contradicted && statusRank(banded) < statusRank(t.Status) {
		return
	}
	t.Status = banded
}

// MergeKeywords unions new keywords into the topic, case-insensitively.
// The keyword set only ever grows.
func (t *Topic) MergeKeywords(keywords []string) {
	seen := make(map[string]bool, len(t.Keywords))
	for _, kw := range t.Keywords {
		seen[strings.ToLower(kw)] = true
	}
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		if !seen[strings.ToLower(kw)] {
			t.Keywords = append(t.Keywords, kw)
			seen[strings.ToLower(kw)] = true
		}
	}
}

// AppendEntry appends one transcript turn.
func (s *Session) AppendEntry(role, content string, at time.Time) {
	s.ConversationHistory = append(s.ConversationHistory, ConversationEntry{
		Role:      role,
		Content:   content,
		Timestamp: at,
	})
}

// FindTopic returns the topic with the given id, or nil.
func (s *Session) FindTopic(id string) *Topic {
	for _, t := range s.Topics {
		if t.Id == id {
			return t
		}
	}
	return nil
}

// HasTopicNamed reports whether a topic with this name already exists,
// compared case-insensitively.
func (s *Session) HasTopicNamed(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, t := range s.Topics {
		if strings.ToLower(strings.TrimSpace(t.Name)) == name {
			return true
		}
	}
	return false
}

// UnusedQuestions returns the unused questions in bank insertion order.
func (s *Session) UnusedQuestions() []*Question {
	var unused []*Question
	for _, q := range s.BatchedQuestions {
		if !q.Used {
			unused = append(unused, q)
		}
	}
	return unused
}

// ExchangeCount counts completed AI-question/SME-answer pairs.
func (s *Session) ExchangeCount() int {
	return len(s.ConversationHistory) / 2
}

// LastUserEntry returns the most recent SME answer, or nil.
func (s *Session) LastUserEntry() *ConversationEntry {
	for i := len(s.ConversationHistory) - 1; i >= 0; i-- {
		if s.ConversationHistory[i].Role == RoleUser {
			return &s.ConversationHistory[i]
		}
	}
	return nil
}

// Stats computes coverage statistics over the topic ledger.
func (s *Session) Stats() CoverageStats {
	stats := CoverageStats{
		TotalTopics:        len(s.Topics),
		QuestionsAsked:     s.QuestionsAsked,
		QuestionsRemaining: len(s.UnusedQuestions()),
	}
	for _, t := range s.Topics {
		if t.IsRequired {
			stats.RequiredTopics++
		}
		switch t.Status {
		case StatusThoroughlyCovered:
			stats.ThoroughlyCovered++
			if t.IsRequired {
				stats.RequiredCovered++
			}
		case StatusBrieflyDiscussed:
			stats.BrieflyDiscussed++
		default:
			stats.NotDiscussed++
		}
	}
	return stats
}
