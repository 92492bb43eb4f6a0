package memory

import (
	"testing"

	"zyglio-be/pkg/store"
)

func TestSessionRepositoryRoundTrip(t *testing.T) {
	repo := NewSessionRepository()

	if _, found := repo.Get("missing"); found {
		t.Error("Get on empty repository reported found")
	}

	session := &store.Session{ProcedureId: "p1", QuestionsAsked: 3}
	repo.Save(session)

	got, found := repo.Get("p1")
	if !found {
		t.Fatal("saved session not found")
	}
	if got != session {
		t.Error("repository should return the same session pointer")
	}

	repo.Delete("p1")
	if _, found := repo.Get("p1"); found {
		t.Error("deleted session still found")
	}
}

func TestSessionRepositoryOverwrite(t *testing.T) {
	repo := NewSessionRepository()

	repo.Save(&store.Session{ProcedureId: "p1", QuestionsAsked: 1})
	repo.Save(&store.Session{ProcedureId: "p1", QuestionsAsked: 2})

	got, _ := repo.Get("p1")
	if got.QuestionsAsked != 2 {
		t.Errorf("QuestionsAsked = %d, want latest save", got.QuestionsAsked)
	}
}
