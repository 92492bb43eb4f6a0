package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"zyglio-be/internal/dto"
	"zyglio-be/internal/entity"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

func newConsumerHarness() (*consumerService, *fakeState, *captureLogger) {
	state := &fakeState{snapshots: make(map[uuid.UUID]entity.InterviewSnapshot)}
	logs := &captureLogger{}
	pubSub := gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 16}, watermill.NopLogger{})

	cs := NewConsumerService(pubSub, "INTERVIEW_COMPLETED", &fakeFactory{state: state}, logs).(*consumerService)
	return cs, state, logs
}

func acked(t *testing.T, msg *message.Message) bool {
	t.Helper()
	select {
	case <-msg.Acked():
		return true
	case <-time.After(100 * time.Millisecond):
		return false
	}
}

func TestConsumerRecordsCertification(t *testing.T) {
	cs, state, logs := newConsumerHarness()

	event := dto.InterviewCompletedEvent{
		ProcedureId:     uuid.New(),
		TopicsTotal:     9,
		RequiredTopics:  5,
		RequiredCovered: 5,
		QuestionsAsked:  7,
		CompletedAt:     time.Now(),
	}
	payload, _ := json.Marshal(event)
	msg := message.NewMessage(watermill.NewUUID(), payload)

	cs.processMessage(context.Background(), msg)

	if !acked(t, msg) {
		t.Fatal("message not acked")
	}
	if len(state.certs) != 1 {
		t.Fatalf("certs = %d, want 1", len(state.certs))
	}
	record := state.certs[0]
	if record.ProcedureId != event.ProcedureId {
		t.Errorf("procedure = %s, want %s", record.ProcedureId, event.ProcedureId)
	}
	if record.RequiredCovered != 5 || record.QuestionsAsked != 7 {
		t.Errorf("record = %+v", record)
	}
	if !logs.has("info", "Certification recorded") {
		t.Error("successful recording not logged")
	}
}

func TestConsumerAcksInvalidPayload(t *testing.T) {
	cs, state, logs := newConsumerHarness()

	msg := message.NewMessage(watermill.NewUUID(), []byte("not json"))
	cs.processMessage(context.Background(), msg)

	// Invalid messages are acked so the bus never redelivers them.
	if !acked(t, msg) {
		t.Fatal("invalid message not acked")
	}
	if len(state.certs) != 0 {
		t.Errorf("certs = %d, want 0", len(state.certs))
	}
	if !logs.has("error", "Failed to unmarshal completion event") {
		t.Error("unmarshal failure not logged")
	}
}

func TestConsumerDefaultsCompletedAt(t *testing.T) {
	cs, state, _ := newConsumerHarness()

	payload, _ := json.Marshal(dto.InterviewCompletedEvent{ProcedureId: uuid.New()})
	msg := message.NewMessage(watermill.NewUUID(), payload)

	cs.processMessage(context.Background(), msg)

	if len(state.certs) != 1 {
		t.Fatalf("certs = %d, want 1", len(state.certs))
	}
	if state.certs[0].CompletedAt.IsZero() {
		t.Error("CompletedAt not defaulted")
	}
}
