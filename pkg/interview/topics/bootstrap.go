// Package topics bootstraps the topic ledger for a new interview session.
package topics

import (
	"context"
	"fmt"
	"log"
	"strings"

	"zyglio-be/internal/constant"
	"zyglio-be/pkg/interview/llmjson"
	"zyglio-be/pkg/llm"
	"zyglio-be/pkg/store"

	"github.com/google/uuid"
)

type Bootstrapper struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

func NewBootstrapper(llmProvider llm.LLMProvider, logger *log.Logger) *Bootstrapper {
	return &Bootstrapper{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

type seededTopic struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	IsRequired  bool     `json:"is_required"`
}

type seedResult struct {
	Topics []seededTopic `json:"topics"`
}

// Seed produces the initial topic ledger for a procedure, asking the
// collaborator first and falling back to the fixed default set.
func (b *Bootstrapper) Seed(ctx context.Context, procedureTitle, initialContext string) []*store.Topic {
	prompt := fmt.Sprintf(constant.TopicSeedPrompt, procedureTitle, initialContext)

	response, err := b.llmProvider.Generate(ctx, prompt,
		llm.WithTemperature(0.3), llm.WithMaxTokens(1200))
	if err != nil {
		b.logger.Printf("[TOPICS] Seed generation failed, using defaults: %v", err)
		return DefaultTopics(procedureTitle)
	}

	var result seedResult
	if err := llmjson.Unmarshal(response, &result); err != nil {
		b.logger.Printf("[TOPICS] Seed parse failed, using defaults: %v", err)
		return DefaultTopics(procedureTitle)
	}

	var topics []*store.Topic
	seen := make(map[string]bool)
	for _, st := range result.Topics {
		name := strings.TrimSpace(st.Name)
		if name == "" || seen[strings.ToLower(name)] {
			continue
		}
		seen[strings.ToLower(name)] = true
		topics = append(topics, &store.Topic{
			Id:          uuid.New().String(),
			Name:        name,
			Category:    st.Category,
			Status:      store.StatusNotDiscussed,
			IsRequired:  st.IsRequired,
			Keywords:    st.Keywords,
			Description: st.Description,
		})
	}

	if len(topics) == 0 {
		b.logger.Printf("[TOPICS] Seed returned nothing usable, using defaults")
		return DefaultTopics(procedureTitle)
	}
	return topics
}

// DefaultTopics is the fixed fallback ledger covering the taxonomy. The
// procedure-agnostic required topics gate completion when seeding fails.
func DefaultTopics(procedureTitle string) []*store.Topic {
	fixed := []struct {
		name        string
		category    string
		description string
		keywords    []string
		required    bool
	}{
		{
			name:        "Procedure Overview",
			category:    store.CategoryGeneral,
			description: fmt.Sprintf("High-level walkthrough of %s", procedureTitle),
			keywords:    []string{"overview", "steps", "process", "goal", "purpose"},
			required:    true,
		},
		{
			name:        "Safety Precautions",
			category:    store.CategorySafety,
			description: "Hazards, protective measures, and contraindications",
			keywords:    []string{"safety", "hazard", "precaution", "protective", "risk"},
			required:    true,
		},
		{
			name:        "Required Equipment",
			category:    store.CategoryEquipment,
			description: "Tools, instruments, and materials needed",
			keywords:    []string{"equipment", "tools", "instruments", "materials", "supplies"},
			required:    true,
		},
		{
			name:        "Preparation Steps",
			category:    store.CategoryPreparation,
			description: "Setup and readiness checks before starting",
			keywords:    []string{"preparation", "setup", "before", "ready", "checklist"},
			required:    true,
		},
		{
			name:        "Core Technique",
			category:    store.CategoryTechnique,
			description: "The hands-on execution of the procedure",
			keywords:    []string{"technique", "method", "execution", "hands", "motion"},
			required:    true,
		},
		{
			name:        "Common Problems",
			category:    store.CategoryTroubleshooting,
			description: "Typical failures and how to recover from them",
			keywords:    []string{"problem", "troubleshoot", "error", "failure", "recover"},
			required:    false,
		},
		{
			name:        "Quality Verification",
			category:    store.CategoryQualityControl,
			description: "How to confirm a correct outcome",
			keywords:    []string{"quality", "verify", "check", "confirm", "standard"},
			required:    false,
		},
		{
			name:        "Underlying Principles",
			category:    store.CategoryTheory,
			description: "Why the procedure works the way it does",
			keywords:    []string{"theory", "principle", "why", "mechanism", "science"},
			required:    false,
		},
	}

	topics := make([]*store.Topic, len(fixed))
	for i, f := range fixed {
		topics[i] = &store.Topic{
			Id:          uuid.New().String(),
			Name:        f.name,
			Category:    f.category,
			Status:      store.StatusNotDiscussed,
			IsRequired:  f.required,
			Keywords:    f.keywords,
			Description: f.description,
		}
	}
	return topics
}
