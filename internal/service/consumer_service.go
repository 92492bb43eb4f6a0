package service

import (
	"context"
	"encoding/json"
	"time"

	"zyglio-be/internal/dto"
	"zyglio-be/internal/entity"
	"zyglio-be/internal/pkg/logger"
	"zyglio-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService turns interview-completed events into certification records.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}
	cs.logger.Info("ConsumerService", "Listening for interview-completed events", map[string]interface{}{"topic": cs.topicName})

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var event dto.InterviewCompletedEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		cs.logger.Error("ConsumerService", "Failed to unmarshal completion event", map[string]interface{}{"error": err.Error()})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	cs.logger.Info("ConsumerService", "Recording certification", map[string]interface{}{"procedure_id": event.ProcedureId.String()})

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		cs.logger.Error("ConsumerService", "Failed to begin transaction", map[string]interface{}{"error": err.Error()})
		msg.Nack()
		return
	}
	defer uow.Rollback()

	record := entity.CertificationRecord{
		Id:              uuid.New(),
		ProcedureId:     event.ProcedureId,
		TopicsTotal:     event.TopicsTotal,
		RequiredTopics:  event.RequiredTopics,
		RequiredCovered: event.RequiredCovered,
		QuestionsAsked:  event.QuestionsAsked,
		CompletedAt:     event.CompletedAt,
	}
	if record.CompletedAt.IsZero() {
		record.CompletedAt = time.Now()
	}

	if err := uow.CertificationRepository().Create(ctx, &record); err != nil {
		cs.logger.Error("ConsumerService", "Failed to save certification record", map[string]interface{}{"error": err.Error()})
		msg.Nack()
		return
	}

	if err := uow.Commit(); err != nil {
		cs.logger.Error("ConsumerService", "Failed to commit transaction", map[string]interface{}{"error": err.Error()})
		msg.Nack()
		return
	}

	cs.logger.Info("ConsumerService", "Certification recorded", map[string]interface{}{"procedure_id": event.ProcedureId.String()})
	msg.Ack()
}
