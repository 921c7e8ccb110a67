package events

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

var marshaler = cqrs.JSONMarshaler{GenerateName: cqrs.StructName}

// Publisher is what the services need to announce a booking transition.
type Publisher interface {
	Publish(ctx context.Context, event any) error
}

// NewPubSub returns the in-process pub/sub backing the lifecycle dispatcher.
func NewPubSub(logger watermill.LoggerAdapter) *gochannel.GoChannel {
	return gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: 64,
	}, logger)
}

type EventBus struct {
	bus *cqrs.EventBus
}

func NewEventBus(publisher message.Publisher, logger watermill.LoggerAdapter) (*EventBus, error) {
	bus, err := cqrs.NewEventBusWithConfig(publisher, cqrs.EventBusConfig{
		GeneratePublishTopic: func(params cqrs.GenerateEventPublishTopicParams) (string, error) {
			return params.EventName, nil
		},
		Marshaler: marshaler,
		Logger:    logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating event bus: %w", err)
	}
	return &EventBus{bus: bus}, nil
}

func (b *EventBus) Publish(ctx context.Context, event any) error {
	return b.bus.Publish(ctx, event)
}

// NewRouter builds the message router running the lifecycle handlers. There
// is deliberately no retry middleware: a failed send is recorded on the
// booking row, not redelivered.
func NewRouter(
	subscriber message.Subscriber,
	logger watermill.LoggerAdapter,
	handlers ...cqrs.EventHandler,
) (*message.Router, error) {
	router, err := message.NewRouter(message.RouterConfig{}, logger)
	if err != nil {
		return nil, fmt.Errorf("creating router: %w", err)
	}

	ep, err := cqrs.NewEventProcessorWithConfig(router, cqrs.EventProcessorConfig{
		SubscriberConstructor: func(params cqrs.EventProcessorSubscriberConstructorParams) (message.Subscriber, error) {
			return subscriber, nil
		},
		GenerateSubscribeTopic: func(params cqrs.EventProcessorGenerateSubscribeTopicParams) (string, error) {
			return params.EventName, nil
		},
		Marshaler: marshaler,
		Logger:    logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating event processor: %w", err)
	}

	if err := ep.AddHandlers(handlers...); err != nil {
		return nil, fmt.Errorf("adding handlers: %w", err)
	}

	return router, nil
}
