package coverage

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"zyglio-be/pkg/llm"
	"zyglio-be/pkg/store"
)

type fakeProvider struct {
	chatResponse string
	chatErr      error
	genResponse  string
	genErr       error
}

func (f *fakeProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return f.chatResponse, f.chatErr
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.genResponse, f.genErr
}

var _ llm.LLMProvider = &fakeProvider{}

func discard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func testSession() *store.Session {
	return &store.Session{
		ProcedureId: "p1",
		Topics: []*store.Topic{
			{
				Id:       "t1",
				Name:     "Safety Precautions",
				Category: store.CategorySafety,
				Status:   store.StatusNotDiscussed,
				Keywords: []string{"safety", "hazard"},
			},
			{
				Id:       "t2",
				Name:     "Core Technique",
				Category: store.CategoryTechnique,
				Status:   store.StatusNotDiscussed,
				Keywords: []string{"suture", "knot"},
			},
		},
	}
}

func TestAnalyzeAppliesStructuredUpdates(t *testing.T) {
	provider := &fakeProvider{
		chatResponse: `{
			"topic_updates": [
				{"topic_id": "t1", "coverage_score": 85,
				 "new_keywords": ["gloves", "Hazard"], "reasoning": "covered in depth"}
			],
			"new_topics": []
		}`,
	}
	analyzer := NewAnalyzer(provider, discard())
	session := testSession()

	analyzer.Analyze(context.Background(), session, "You must wear gloves near hazards")

	topic := session.FindTopic("t1")
	if topic.CoverageScore != 85 {
		t.Errorf("CoverageScore = %d, want 85", topic.CoverageScore)
	}
	if topic.Status != store.StatusThoroughlyCovered {
		t.Errorf("Status = %q, want thoroughly-covered", topic.Status)
	}
	// union only: "Hazard" is a case-insensitive duplicate
	if len(topic.Keywords) != 3 {
		t.Errorf("Keywords = %v, want [safety hazard gloves]", topic.Keywords)
	}
}

func TestAnalyzeDerivesStatusFromScoreBand(t *testing.T) {
	// A status claim in the response carries no weight: only the merged score
	// band (and the sticky rule) determines the status.
	provider := &fakeProvider{
		chatResponse: `{"topic_updates": [{"topic_id": "t1", "status": "thoroughly-covered", "coverage_score": 40, "reasoning": "touched on"}], "new_topics": []}`,
	}
	session := testSession()

	NewAnalyzer(provider, discard()).Analyze(context.Background(), session, "x")

	topic := session.FindTopic("t1")
	if topic.Status != store.StatusBrieflyDiscussed {
		t.Errorf("Status = %q, want briefly-discussed from the score band", topic.Status)
	}
}

func TestAnalyzeScoreNeverDecreases(t *testing.T) {
	provider := &fakeProvider{
		chatResponse: `{"topic_updates": [{"topic_id": "t1", "coverage_score": 20, "reasoning": "brief"}], "new_topics": []}`,
	}
	analyzer := NewAnalyzer(provider, discard())
	session := testSession()
	session.FindTopic("t1").CoverageScore = 60
	session.FindTopic("t1").Status = store.StatusBrieflyDiscussed

	analyzer.Analyze(context.Background(), session, "something unrelated")

	if got := session.FindTopic("t1").CoverageScore; got != 60 {
		t.Errorf("CoverageScore = %d, want 60 (monotonic)", got)
	}
}

func TestAnalyzeStickyThoroughStatus(t *testing.T) {
	session := testSession()
	topic := session.FindTopic("t1")
	topic.CoverageScore = 90
	topic.Status = store.StatusThoroughlyCovered

	// Low-score update without a contradiction signal must not downgrade.
	provider := &fakeProvider{
		chatResponse: `{"topic_updates": [{"topic_id": "t1", "coverage_score": 10, "reasoning": "barely mentioned"}], "new_topics": []}`,
	}
	NewAnalyzer(provider, discard()).Analyze(context.Background(), session, "x")

	if topic.Status != store.StatusThoroughlyCovered {
		t.Errorf("Status = %q, want thoroughly-covered (sticky)", topic.Status)
	}
}

func TestAnalyzeContradictionDowngrades(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{
			name:     "structured flag",
			response: `{"topic_updates": [{"topic_id": "t1", "coverage_score": 0, "contradicts": true, "reasoning": "expert reversed position"}], "new_topics": []}`,
		},
		{
			name:     "legacy reasoning substring",
			response: `{"topic_updates": [{"topic_id": "t1", "coverage_score": 0, "reasoning": "this contradicts the earlier answer"}], "new_topics": []}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := testSession()
			topic := session.FindTopic("t1")
			topic.CoverageScore = 50 // briefly-discussed band
			topic.Status = store.StatusThoroughlyCovered

			provider := &fakeProvider{chatResponse: tt.response}
			NewAnalyzer(provider, discard()).Analyze(context.Background(), session, "x")

			if topic.Status != store.StatusBrieflyDiscussed {
				t.Errorf("Status = %q, want briefly-discussed after contradiction", topic.Status)
			}
		})
	}
}

func TestAnalyzeKeywordFallbackOnProviderFailure(t *testing.T) {
	provider := &fakeProvider{chatErr: errors.New("provider down")}
	analyzer := NewAnalyzer(provider, discard())
	session := testSession()

	analyzer.Analyze(context.Background(), session, "Tie the suture with a surgeon's knot")

	topic := session.FindTopic("t2")
	// Two keyword matches: 25 + 2*15 = 55.
	if topic.CoverageScore != 55 {
		t.Errorf("CoverageScore = %d, want 55", topic.CoverageScore)
	}
	if topic.Status != store.StatusBrieflyDiscussed {
		t.Errorf("Status = %q, want briefly-discussed", topic.Status)
	}

	// Unmatched topic untouched.
	if got := session.FindTopic("t1").CoverageScore; got != 0 {
		t.Errorf("unmatched topic score = %d, want 0", got)
	}
}

func TestKeywordFallbackNeverCertifies(t *testing.T) {
	provider := &fakeProvider{chatErr: errors.New("provider down")}
	analyzer := NewAnalyzer(provider, discard())
	session := &store.Session{
		Topics: []*store.Topic{{
			Id:       "t1",
			Name:     "Equipment",
			Status:   store.StatusNotDiscussed,
			Keywords: []string{"clamp", "retractor", "scalpel", "forceps", "suction", "drill"},
		}},
	}

	analyzer.Analyze(context.Background(), session,
		"clamp retractor scalpel forceps suction drill")

	topic := session.FindTopic("t1")
	if topic.CoverageScore != fallbackScoreCap {
		t.Errorf("CoverageScore = %d, want capped at %d", topic.CoverageScore, fallbackScoreCap)
	}
	if topic.Status == store.StatusThoroughlyCovered {
		t.Error("keyword fallback alone must not reach thoroughly-covered")
	}
}

func TestAnalyzeIgnoresUnknownTopicId(t *testing.T) {
	provider := &fakeProvider{
		chatResponse: `{"topic_updates": [{"topic_id": "ghost", "coverage_score": 99, "reasoning": "x"}], "new_topics": []}`,
	}
	session := testSession()

	NewAnalyzer(provider, discard()).Analyze(context.Background(), session, "nothing relevant")

	for _, topic := range session.Topics {
		if topic.CoverageScore != 0 {
			t.Errorf("topic %s score = %d, want 0", topic.Id, topic.CoverageScore)
		}
	}
}

func TestAnalyzeAcceptsNewTopics(t *testing.T) {
	provider := &fakeProvider{
		chatResponse: `{
			"topic_updates": [],
			"new_topics": [
				{"name": "Anesthesia Protocol", "category": "safety", "keywords": ["anesthesia"],
				 "distinct_concept": true, "extensively_discussed": true},
				{"name": "core technique", "category": "technique",
				 "distinct_concept": true, "extensively_discussed": true},
				{"name": "Passing Mention", "category": "general",
				 "distinct_concept": true, "extensively_discussed": false}
			]
		}`,
	}
	session := testSession()

	NewAnalyzer(provider, discard()).Analyze(context.Background(), session, "x")

	if len(session.Topics) != 3 {
		t.Fatalf("topics = %d, want 3 (one accepted, duplicate and shallow rejected)", len(session.Topics))
	}

	added := session.Topics[2]
	if added.Name != "Anesthesia Protocol" {
		t.Errorf("added topic = %q", added.Name)
	}
	if added.Category != store.CategorySafety {
		t.Errorf("category = %q, want normalized %q", added.Category, store.CategorySafety)
	}
	if added.IsRequired {
		t.Error("discovered topics must never be required")
	}
	if added.Status != NewTopicStatus || added.CoverageScore != NewTopicScore {
		t.Errorf("new topic defaults = %q/%d", added.Status, added.CoverageScore)
	}
}
