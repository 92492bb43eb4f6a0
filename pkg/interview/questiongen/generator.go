// Package questiongen generates batches of follow-up questions for the bank,
// with local fallbacks so the interview can always continue.
package questiongen

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"zyglio-be/internal/constant"
	"zyglio-be/pkg/interview/coverage"
	"zyglio-be/pkg/interview/llmjson"
	"zyglio-be/pkg/llm"
	"zyglio-be/pkg/store"

	"github.com/google/uuid"
)

type Generator struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

func NewGenerator(llmProvider llm.LLMProvider, logger *log.Logger) *Generator {
	return &Generator{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

type generatedQuestion struct {
	Question      string   `json:"question"`
	Category      string   `json:"category"`
	Keywords      []string `json:"keywords"`
	Priority      int      `json:"priority"`
	RelatedTopics []string `json:"related_topics"`
}

type questionsResult struct {
	Questions []generatedQuestion `json:"questions"`
}

// InitialQuestions produces the 1-3 broad opening questions for turn zero.
// On generation failure it falls back to a fixed generic set.
func (g *Generator) InitialQuestions(ctx context.Context, procedureTitle, initialContext string) []*store.Question {
	prompt := fmt.Sprintf(constant.InitialQuestionsPrompt, procedureTitle, initialContext, 3)

	response, err := g.llmProvider.Generate(ctx, prompt,
		llm.WithTemperature(0.7), llm.WithMaxTokens(600))
	if err != nil {
		g.logger.Printf("[QUESTIONGEN] Initial generation failed, using fallback: %v", err)
		return FallbackQuestions(procedureTitle)
	}

	questions := g.parseQuestions(response)
	if len(questions) == 0 {
		g.logger.Printf("[QUESTIONGEN] Initial generation returned nothing usable, using fallback")
		return FallbackQuestions(procedureTitle)
	}
	if len(questions) > 3 {
		questions = questions[:3]
	}
	return questions
}

// GenerateBatch produces `batchSize` follow-up questions targeting the topics
// with the lowest coverage, required topics first. Question specificity grows
// with the exchange count. On failure it falls back to the fixed generic set.
func (g *Generator) GenerateBatch(ctx context.Context, session *store.Session, procedureTitle string, batchSize int) []*store.Question {
	if batchSize <= 0 {
		batchSize = constant.FollowUpQuestionBatch
	}

	prompt := fmt.Sprintf(constant.QuestionBatchPrompt,
		procedureTitle,
		formatTargetTopics(session.Topics),
		coverage.FormatRecentHistory(session.ConversationHistory, coverage.HistoryWindow),
		batchSize,
		specificityBand(session.ExchangeCount()),
	)

	response, err := g.llmProvider.Generate(ctx, prompt,
		llm.WithTemperature(0.7), llm.WithMaxTokens(1200))
	if err != nil {
		g.logger.Printf("[QUESTIONGEN] Batch generation failed, using fallback: %v", err)
		return FallbackQuestions(procedureTitle)
	}

	questions := g.parseQuestions(response)
	if len(questions) == 0 {
		g.logger.Printf("[QUESTIONGEN] Batch generation returned nothing usable, using fallback")
		return FallbackQuestions(procedureTitle)
	}
	return questions
}

func (g *Generator) parseQuestions(response string) []*store.Question {
	var result questionsResult
	if err := llmjson.Unmarshal(response, &result); err != nil {
		g.logger.Printf("[QUESTIONGEN] Parse failed: %v", err)
		return nil
	}

	questions := make([]*store.Question, 0, len(result.Questions))
	for _, q := range result.Questions {
		text := strings.TrimSpace(q.Question)
		if text == "" {
			continue
		}
		priority := q.Priority
		if priority < 1 || priority > 5 {
			priority = 3
		}
		category := q.Category
		if category == "" {
			category = store.CategoryGeneral
		}
		questions = append(questions, &store.Question{
			Id:            uuid.New().String(),
			Question:      text,
			Category:      category,
			Keywords:      q.Keywords,
			Priority:      priority,
			RelatedTopics: q.RelatedTopics,
		})
	}
	return questions
}

// specificityBand maps exchange count to a question style: general under 2
// exchanges, moderate through 5, detailed from 6 on.
func specificityBand(exchanges int) string {
	switch {
	case exchanges < 2:
		return constant.QuestionBandGeneral
	case exchanges <= 5:
		return constant.QuestionBandModerate
	default:
		return constant.QuestionBandDetailed
	}
}

// formatTargetTopics lists topics by generation priority: required before
// optional, then lowest coverage first.
func formatTargetTopics(topics []*store.Topic) string {
	ordered := make([]*store.Topic, len(topics))
	copy(ordered, topics)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].IsRequired != ordered[j].IsRequired {
			return ordered[i].IsRequired
		}
		return ordered[i].CoverageScore < ordered[j].CoverageScore
	})

	var sb strings.Builder
	for _, t := range ordered {
		required := "optional"
		if t.IsRequired {
			required = "required"
		}
		sb.WriteString(fmt.Sprintf("- id=%s %q (%s, %s, score %d)\n",
			t.Id, t.Name, t.Category, required, t.CoverageScore))
	}
	return sb.String()
}
