package questiongen

import (
	"fmt"

	"zyglio-be/pkg/store"

	"github.com/google/uuid"
)

// FallbackQuestions synthesizes a small fixed set of generic questions so the
// interview can continue through any generation failure.
func FallbackQuestions(procedureTitle string) []*store.Question {
	fixed := []struct {
		question string
		category string
		keywords []string
	}{
		{
			question: fmt.Sprintf("Can you walk me through how you perform %s from start to finish?", procedureTitle),
			category: store.CategoryTechnique,
			keywords: []string{"steps", "process", "perform", "procedure"},
		},
		{
			question: "What safety precautions are essential during this procedure?",
			category: store.CategorySafety,
			keywords: []string{"safety", "precaution", "risk", "hazard", "protective"},
		},
		{
			question: "What equipment or tools do you need, and how should they be prepared?",
			category: store.CategoryEquipment,
			keywords: []string{"equipment", "tools", "instruments", "setup", "prepare"},
		},
		{
			question: "What problems come up most often, and how do you handle them?",
			category: store.CategoryTroubleshooting,
			keywords: []string{"problem", "issue", "troubleshoot", "mistake", "error"},
		},
		{
			question: "How do you verify the procedure was done correctly?",
			category: store.CategoryQualityControl,
			keywords: []string{"verify", "check", "quality", "confirm", "inspection"},
		},
	}

	questions := make([]*store.Question, len(fixed))
	for i, f := range fixed {
		questions[i] = &store.Question{
			Id:       uuid.New().String(),
			Question: f.question,
			Category: f.category,
			Keywords: f.keywords,
			Priority: 2,
		}
	}
	return questions
}
