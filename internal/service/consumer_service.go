package service

import (
	"context"
	"encoding/json"
	"log"

	"medisearch-be/internal/dto"
	"medisearch-be/internal/entity"
	"medisearch-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the search-log topic and persists one SearchLog
// row per completed search. Analytics writes stay off the request path.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishSearchLogMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal search log message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	entry := entity.SearchLog{
		Id:          uuid.New(),
		Kind:        payload.Kind,
		Term:        payload.Term,
		Location:    payload.Location,
		Source:      payload.Source,
		ResultCount: payload.ResultCount,
		Cached:      payload.Cached,
		DurationMs:  payload.DurationMs,
	}
	if err := uow.SearchLogRepository().Create(ctx, &entry); err != nil {
		log.Printf("[ERROR] Failed to persist search log: %v", err)
		msg.Nack() // Nack for retriable errors
		return
	}

	msg.Ack()
}
