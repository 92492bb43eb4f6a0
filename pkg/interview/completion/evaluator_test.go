package completion

import (
	"testing"

	"zyglio-be/pkg/store"
)

func sessionWith(topics ...*store.Topic) *store.Session {
	return &store.Session{Topics: topics}
}

func TestIsComplete(t *testing.T) {
	tests := []struct {
		name   string
		topics []*store.Topic
		want   bool
	}{
		{
			name:   "no topics",
			topics: nil,
			want:   false,
		},
		{
			name: "no required topics never completes",
			topics: []*store.Topic{
				{Status: store.StatusThoroughlyCovered},
				{Status: store.StatusThoroughlyCovered},
			},
			want: false,
		},
		{
			name: "required topic still open",
			topics: []*store.Topic{
				{IsRequired: true, Status: store.StatusThoroughlyCovered},
				{IsRequired: true, Status: store.StatusBrieflyDiscussed},
			},
			want: false,
		},
		{
			name: "all required covered",
			topics: []*store.Topic{
				{IsRequired: true, Status: store.StatusThoroughlyCovered},
				{IsRequired: true, Status: store.StatusThoroughlyCovered},
				{Status: store.StatusNotDiscussed}, // optional, ignored
			},
			want: true,
		},
	}

	evaluator := NewEvaluator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := evaluator.IsComplete(sessionWith(tt.topics...)); got != tt.want {
				t.Errorf("IsComplete() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluateTransition(t *testing.T) {
	evaluator := NewEvaluator()
	session := sessionWith(&store.Topic{IsRequired: true, Status: store.StatusBrieflyDiscussed})

	if evaluator.Evaluate(session) {
		t.Error("incomplete session evaluated complete")
	}
	if session.InterviewCompleted {
		t.Error("flag set on incomplete session")
	}

	session.Topics[0].Status = store.StatusThoroughlyCovered
	if !evaluator.Evaluate(session) {
		t.Error("complete session evaluated incomplete")
	}
	if !session.InterviewCompleted {
		t.Error("flag not set on completion")
	}

	// One-way: even if a topic later downgrades, a completed session stays completed.
	session.Topics[0].Status = store.StatusBrieflyDiscussed
	if !evaluator.Evaluate(session) {
		t.Error("completed session reverted")
	}
}
