// Package discovery runs the second, independent topic-discovery pass over an
// SME answer to catch topics the primary analysis missed.
package discovery

import (
	"context"
	"fmt"
	"log"
	"strings"

	"zyglio-be/internal/constant"
	"zyglio-be/pkg/interview/coverage"
	"zyglio-be/pkg/interview/llmjson"
	"zyglio-be/pkg/llm"
	"zyglio-be/pkg/store"
)

type Discoverer struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

func NewDiscoverer(llmProvider llm.LLMProvider, logger *log.Logger) *Discoverer {
	return &Discoverer{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

type discoveryResult struct {
	NewTopics []struct {
		Name        string   `json:"name"`
		Category    string   `json:"category"`
		Description string   `json:"description"`
		Keywords    []string `json:"keywords"`
	} `json:"new_topics"`
}

// Discover proposes brand-new topics from the SME answer and appends the ones
// that pass the duplicate-name filter. Failures are swallowed so that the
// primary analysis pass's results are never lost to a discovery error.
func (d *Discoverer) Discover(ctx context.Context, session *store.Session, smeResponse string) {
	names := make([]string, len(session.Topics))
	for i, t := range session.Topics {
		names[i] = t.Name
	}

	prompt := fmt.Sprintf(constant.TopicDiscoveryPrompt, strings.Join(names, ", "), smeResponse)

	response, err := d.llmProvider.Generate(ctx, prompt,
		llm.WithTemperature(0.2), llm.WithMaxTokens(600))
	if err != nil {
		d.logger.Printf("[DISCOVERY] Call failed, skipping pass: %v", err)
		return
	}

	var result discoveryResult
	if err := llmjson.Unmarshal(response, &result); err != nil {
		d.logger.Printf("[DISCOVERY] Parse failed, skipping pass: %v", err)
		return
	}

	for _, nt := range result.NewTopics {
		// The discovery prompt already applies the conservative criteria, so
		// proposals arrive pre-vetted; only the duplicate filter runs here.
		accepted := coverage.AcceptProposal(session, coverage.NewTopicProposal{
			Name:                 nt.Name,
			Category:             nt.Category,
			Description:          nt.Description,
			Keywords:             nt.Keywords,
			DistinctConcept:      true,
			ExtensivelyDiscussed: true,
		})
		if accepted != nil {
			d.logger.Printf("[DISCOVERY] Accepted new topic %q", accepted.Name)
		}
	}
}
