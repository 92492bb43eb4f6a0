package coverage

import (
	"context"
	"fmt"
	"log"
	"strings"

	"zyglio-be/internal/constant"
	"zyglio-be/pkg/interview/llmjson"
	"zyglio-be/pkg/interview/textmatch"
	"zyglio-be/pkg/llm"
	"zyglio-be/pkg/store"

	"github.com/google/uuid"
)

// Defaults applied to topics accepted from new-topic proposals.
const (
	NewTopicStatus = store.StatusBrieflyDiscussed
	NewTopicScore  = 30
)

// Keyword-fallback scoring: a lower-confidence score derived from pure
// keyword overlap, capped below the thoroughly-covered band so keyword
// guessing alone can never certify a topic.
const (
	fallbackBaseScore     = 25
	fallbackScorePerMatch = 15
	fallbackScoreCap      = 70
)

// TopicUpdate is the structured per-topic result of the analysis pass. The
// topic's status is not part of the contract: it is always derived from the
// merged score band (plus the sticky rule), never taken from the collaborator.
type TopicUpdate struct {
	TopicId       string   `json:"topic_id"`
	CoverageScore int      `json:"coverage_score"`
	NewKeywords   []string `json:"new_keywords"`
	Reasoning     string   `json:"reasoning"`
	Contradicts   bool     `json:"contradicts"`
}

// NewTopicProposal is a candidate brand-new topic from the analysis pass.
type NewTopicProposal struct {
	Name                 string   `json:"name"`
	Category             string   `json:"category"`
	Description          string   `json:"description"`
	Keywords             []string `json:"keywords"`
	DistinctConcept      bool     `json:"distinct_concept"`
	ExtensivelyDiscussed bool     `json:"extensively_discussed"`
}

// AnalysisResult is the parsed collaborator output. An empty result is the
// "pass contributed nothing" value used when the call or parse fails.
type AnalysisResult struct {
	TopicUpdates []TopicUpdate      `json:"topic_updates"`
	NewTopics    []NewTopicProposal `json:"new_topics"`
}

// Analyzer merges LLM analysis output and keyword-match fallback into the
// session's topic ledger.
type Analyzer struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

func NewAnalyzer(llmProvider llm.LLMProvider, logger *log.Logger) *Analyzer {
	return &Analyzer{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

// Analyze runs one analysis pass over the SME's latest answer and applies the
// merged updates to the session in place. A collaborator or parse failure is
// logged and contributes an empty structured result; the local keyword
// fallback still runs because it needs no collaborator.
func (a *Analyzer) Analyze(ctx context.Context, session *store.Session, smeResponse string) {
	result := a.invokeAnalysis(ctx, session, smeResponse)

	updated := make(map[string]bool, len(result.TopicUpdates))

	// 1. Structured updates: keyword union, max-score, sticky status.
	for _, update := range result.TopicUpdates {
		topic := session.FindTopic(update.TopicId)
		if topic == nil {
			a.logger.Printf("[COVERAGE] Ignoring update for unknown topic %q", update.TopicId)
			continue
		}
		topic.MergeKeywords(update.NewKeywords)
		topic.ApplyScore(update.CoverageScore)
		topic.ApplyStatus(a.contradictionSignal(update))
		updated[topic.Id] = true
	}

	// 2. Keyword fallback for topics the structured result skipped.
	words := textmatch.Tokenize(smeResponse)
	for _, topic := range session.Topics {
		if updated[topic.Id] {
			continue
		}
		matches := textmatch.KeywordScore(words, topic.Keywords)
		if matches == 0 {
			continue
		}
		score := fallbackBaseScore + matches*fallbackScorePerMatch
		if score > fallbackScoreCap {
			score = fallbackScoreCap
		}
		if score > topic.CoverageScore {
			topic.ApplyScore(score)
			topic.ApplyStatus(false)
		}
	}

	// 3. Conservative new-topic acceptance.
	for _, proposal := range result.NewTopics {
		if accepted := AcceptProposal(session, proposal); accepted != nil {
			a.logger.Printf("[COVERAGE] Accepted new topic %q (%s)", accepted.Name, accepted.Category)
		}
	}
}

// contradictionSignal decides whether this update is allowed to downgrade a
// thoroughly-covered topic. The structured flag is authoritative; the legacy
// substring check on the reasoning text is kept as a fallback for models that
// ignore the field.
func (a *Analyzer) contradictionSignal(update TopicUpdate) bool {
	if update.Contradicts {
		return true
	}
	return strings.Contains(strings.ToLower(update.Reasoning), "contradict")
}

// AcceptProposal appends a proposed topic if it passes the acceptance rules:
// not a case-insensitive duplicate, judged a distinct concept, and judged
// extensively discussed. Returns the new topic, or nil when rejected.
func AcceptProposal(session *store.Session, proposal NewTopicProposal) *store.Topic {
	name := strings.TrimSpace(proposal.Name)
	if name == "" || session.HasTopicNamed(name) {
		return nil
	}
	if !proposal.DistinctConcept || !proposal.ExtensivelyDiscussed {
		return nil
	}
	topic := &store.Topic{
		Id:            uuid.New().String(),
		Name:          name,
		Category:      normalizeCategory(proposal.Category),
		Status:        NewTopicStatus,
		IsRequired:    false,
		Keywords:      proposal.Keywords,
		CoverageScore: NewTopicScore,
		Description:   proposal.Description,
	}
	session.Topics = append(session.Topics, topic)
	return topic
}

// invokeAnalysis calls the collaborator and parses its JSON. Failures return
// the empty result.
func (a *Analyzer) invokeAnalysis(ctx context.Context, session *store.Session, smeResponse string) AnalysisResult {
	userPrompt := fmt.Sprintf(constant.CoverageAnalysisUserPrompt,
		formatTopicList(session.Topics),
		smeResponse,
		FormatRecentHistory(session.ConversationHistory, HistoryWindow),
	)

	response, err := llm.Complete(ctx, a.llmProvider, constant.CoverageAnalysisSystemPrompt, userPrompt,
		llm.WithTemperature(0.2), llm.WithMaxTokens(1500))
	if err != nil {
		a.logger.Printf("[COVERAGE] Analysis call failed, pass contributes no updates: %v", err)
		return AnalysisResult{}
	}

	var result AnalysisResult
	if err := llmjson.Unmarshal(response, &result); err != nil {
		a.logger.Printf("[COVERAGE] Analysis parse failed, pass contributes no updates: %v", err)
		return AnalysisResult{}
	}
	return result
}

func formatTopicList(topics []*store.Topic) string {
	var sb strings.Builder
	for _, t := range topics {
		required := "optional"
		if t.IsRequired {
			required = "required"
		}
		sb.WriteString(fmt.Sprintf("- id=%s name=%q category=%s status=%s score=%d (%s) keywords=[%s]\n",
			t.Id, t.Name, t.Category, t.Status, t.CoverageScore, required, strings.Join(t.Keywords, ", ")))
	}
	return sb.String()
}

func normalizeCategory(category string) string {
	switch strings.ToLower(strings.TrimSpace(category)) {
	case "safety":
		return store.CategorySafety
	case "equipment":
		return store.CategoryEquipment
	case "technique":
		return store.CategoryTechnique
	case "preparation":
		return store.CategoryPreparation
	case "theory":
		return store.CategoryTheory
	case "troubleshooting":
		return store.CategoryTroubleshooting
	case "quality control":
		return store.CategoryQualityControl
	default:
		return store.CategoryGeneral
	}
}
