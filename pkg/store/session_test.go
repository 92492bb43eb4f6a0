package store

import (
	"testing"
	"time"
)

func TestStatusForScore(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, StatusNotDiscussed},
		{25, StatusNotDiscussed},
		{26, StatusBrieflyDiscussed},
		{70, StatusBrieflyDiscussed},
		{71, StatusThoroughlyCovered},
		{100, StatusThoroughlyCovered},
	}

	for _, tt := range tests {
		if got := StatusForScore(tt.score); got != tt.want {
			t.Errorf("StatusForScore(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestApplyScoreMonotonic(t *testing.T) {
	topic := &Topic{CoverageScore: 50}

	topic.ApplyScore(30)
	if topic.CoverageScore != 50 {
		t.Errorf("lower score applied: got %d, want 50", topic.CoverageScore)
	}

	topic.ApplyScore(80)
	if topic.CoverageScore != 80 {
		t.Errorf("higher score not applied: got %d, want 80", topic.CoverageScore)
	}

	topic.ApplyScore(150)
	if topic.CoverageScore != 100 {
		t.Errorf("score not clamped: got %d, want 100", topic.CoverageScore)
	}

	topic.ApplyScore(-10)
	if topic.CoverageScore != 100 {
		t.Errorf("negative score changed topic: got %d, want 100", topic.CoverageScore)
	}
}

func TestApplyStatusSticky(t *testing.T) {
	topic := &Topic{Status: StatusThoroughlyCovered, CoverageScore: 80}

	// Band says thorough, no change either way.
	topic.ApplyStatus(false)
	if topic.Status != StatusThoroughlyCovered {
		t.Errorf("status = %q, want thoroughly-covered", topic.Status)
	}

	// Force a band mismatch: a fresh topic whose status was raised by an
	// earlier pass stays raised without a contradiction signal.
	topic = &Topic{Status: StatusThoroughlyCovered, CoverageScore: 40}
	topic.ApplyStatus(false)
	if topic.Status != StatusThoroughlyCovered {
		t.Errorf("downgrade without contradiction: status = %q", topic.Status)
	}

	topic.ApplyStatus(true)
	if topic.Status != StatusBrieflyDiscussed {
		t.Errorf("contradiction should downgrade to band: status = %q", topic.Status)
	}
}

func TestApplyStatusUpgrades(t *testing.T) {
	topic := &Topic{Status: StatusNotDiscussed, CoverageScore: 45}
	topic.ApplyStatus(false)
	if topic.Status != StatusBrieflyDiscussed {
		t.Errorf("status = %q, want briefly-discussed", topic.Status)
	}

	topic.ApplyScore(90)
	topic.ApplyStatus(false)
	if topic.Status != StatusThoroughlyCovered {
		t.Errorf("status = %q, want thoroughly-covered", topic.Status)
	}
}

func TestMergeKeywordsUnion(t *testing.T) {
	topic := &Topic{Keywords: []string{"sterile", "field"}}

	topic.MergeKeywords([]string{"Sterile", "drape", "", "  ", "field", "DRAPE"})

	want := []string{"sterile", "field", "drape"}
	if len(topic.Keywords) != len(want) {
		t.Fatalf("keywords = %v, want %v", topic.Keywords, want)
	}
	for i, kw := range want {
		if topic.Keywords[i] != kw {
			t.Errorf("keywords[%d] = %q, want %q", i, topic.Keywords[i], kw)
		}
	}
}

func TestFindTopicAndHasTopicNamed(t *testing.T) {
	session := &Session{
		Topics: []*Topic{
			{Id: "t1", Name: "Safety Precautions"},
			{Id: "t2", Name: "Core Technique"},
		},
	}

	if session.FindTopic("t2") == nil {
		t.Error("FindTopic(t2) = nil, want topic")
	}
	if session.FindTopic("missing") != nil {
		t.Error("FindTopic(missing) != nil")
	}
	if !session.HasTopicNamed("  safety precautions ") {
		t.Error("HasTopicNamed should be case and whitespace insensitive")
	}
	if session.HasTopicNamed("Sterile Field") {
		t.Error("HasTopicNamed reported a topic that does not exist")
	}
}

func TestUnusedQuestionsOrder(t *testing.T) {
	session := &Session{
		BatchedQuestions: []*Question{
			{Id: "q1", Used: true},
			{Id: "q2"},
			{Id: "q3"},
			{Id: "q4", Used: true},
		},
	}

	unused := session.UnusedQuestions()
	if len(unused) != 2 || unused[0].Id != "q2" || unused[1].Id != "q3" {
		t.Errorf("UnusedQuestions() = %v, want [q2 q3] in insertion order", unused)
	}
}

func TestExchangeCount(t *testing.T) {
	session := &Session{}
	now := time.Now()

	if session.ExchangeCount() != 0 {
		t.Errorf("empty history exchange count = %d", session.ExchangeCount())
	}

	session.AppendEntry(RoleAI, "q1", now)
	if session.ExchangeCount() != 0 {
		t.Errorf("unanswered question counts as exchange")
	}

	session.AppendEntry(RoleUser, "a1", now)
	if session.ExchangeCount() != 1 {
		t.Errorf("exchange count = %d, want 1", session.ExchangeCount())
	}
}

func TestStats(t *testing.T) {
	session := &Session{
		QuestionsAsked: 4,
		Topics: []*Topic{
			{Status: StatusThoroughlyCovered, IsRequired: true},
			{Status: StatusThoroughlyCovered},
			{Status: StatusBrieflyDiscussed, IsRequired: true},
			{Status: StatusNotDiscussed},
		},
		BatchedQuestions: []*Question{
			{Used: true}, {Used: true}, {}, {},
		},
	}

	stats := session.Stats()
	if stats.TotalTopics != 4 {
		t.Errorf("TotalTopics = %d", stats.TotalTopics)
	}
	if stats.RequiredTopics != 2 {
		t.Errorf("RequiredTopics = %d", stats.RequiredTopics)
	}
	if stats.ThoroughlyCovered != 2 {
		t.Errorf("ThoroughlyCovered = %d", stats.ThoroughlyCovered)
	}
	if stats.RequiredCovered != 1 {
		t.Errorf("RequiredCovered = %d", stats.RequiredCovered)
	}
	if stats.BrieflyDiscussed != 1 || stats.NotDiscussed != 1 {
		t.Errorf("band counts = %d/%d", stats.BrieflyDiscussed, stats.NotDiscussed)
	}
	if stats.QuestionsAsked != 4 || stats.QuestionsRemaining != 2 {
		t.Errorf("question stats = %d/%d", stats.QuestionsAsked, stats.QuestionsRemaining)
	}
}

func TestLastUserEntry(t *testing.T) {
	session := &Session{}
	now := time.Now()

	if session.LastUserEntry() != nil {
		t.Error("empty history should have no user entry")
	}

	session.AppendEntry(RoleAI, "q1", now)
	session.AppendEntry(RoleUser, "a1", now)
	session.AppendEntry(RoleAI, "q2", now)

	entry := session.LastUserEntry()
	if entry == nil || entry.Content != "a1" {
		t.Errorf("LastUserEntry() = %v, want a1", entry)
	}
}
