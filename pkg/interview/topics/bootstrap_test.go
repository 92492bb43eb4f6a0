package topics

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
	response string
	err      error
}

func (f *fakeProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return f.response, f.err
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.response, f.err
}

func newTestBootstrapper(response string, err error) *Bootstrapper {
	return NewBootstrapper(&fakeProvider{response: response, err: err}, log.New(io.Discard, "", 0))
}

func TestSeedParsesAndDedupes(t *testing.T) {
	b := newTestBootstrapper(`{"topics": [
		{"name": "Patient Positioning", "category": "Preparation", "keywords": ["position"], "is_required": true},
		{"name": "patient positioning", "category": "Preparation", "keywords": ["dup"]},
		{"name": "", "category": "General"},
		{"name": "Wound Assessment", "category": "Technique", "is_required": false}
	]}`, nil)

	seeded := b.Seed(context.Background(), "Suturing", "")
	if len(seeded) != 2 {
		t.Fatalf("len = %d, want 2 (duplicate and blank dropped)", len(seeded))
	}

	first := seeded[0]
	if first.Name != "Patient Positioning" || !first.IsRequired {
		t.Errorf("first topic = %q required=%v", first.Name, first.IsRequired)
	}
	if first.Status != store.StatusNotDiscussed || first.CoverageScore != 0 {
		t.Errorf("seeded topic not pristine: %q/%d", first.Status, first.CoverageScore)
	}
}

func TestSeedFallsBackOnError(t *testing.T) {
	b := newTestBootstrapper("", errors.New("provider down"))

	seeded := b.Seed(context.Background(), "Suturing", "")
	if len(seeded) != len(DefaultTopics("Suturing")) {
		t.Fatalf("len = %d, want default set", len(seeded))
	}
}

func TestSeedFallsBackOnEmptyResult(t *testing.T) {
	b := newTestBootstrapper(`{"topics": []}`, nil)

	seeded := b.Seed(context.Background(), "Suturing", "")
	if len(seeded) == 0 {
		t.Fatal("empty seed result should fall back to defaults")
	}
}

func TestDefaultTopicsShape(t *testing.T) {
	defaults := DefaultTopics("Suturing")
	if len(defaults) != 8 {
		t.Fatalf("len = %d, want 8", len(defaults))
	}

	required := 0
	names := map[string]bool{}
	for _, topic := range defaults {
		if names[topic.Name] {
			t.Errorf("duplicate default topic %q", topic.Name)
		}
		names[topic.Name] = true
		if topic.IsRequired {
			required++
		}
		if topic.Status != store.StatusNotDiscussed {
			t.Errorf("default topic %q starts at %q", topic.Name, topic.Status)
		}
		if len(topic.Keywords) == 0 {
			t.Errorf("default topic %q has no keywords", topic.Name)
		}
	}
	if required != 5 {
		t.Errorf("required defaults = %d, want 5", required)
	}
}
