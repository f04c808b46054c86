package event

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"

	"ticketing/entity"
	"ticketing/pubsub/bus"
)

type TicketsSoldRecorder interface {
	RecordTicketsSold(ticketType entity.TicketType, numberOfTickets int)
	RecordRevenue(amount int)
}

type Handler struct {
	ticketsSoldRecorder TicketsSoldRecorder
}

func NewHandler(ticketsSoldRecorder TicketsSoldRecorder) Handler {
	if ticketsSoldRecorder == nil {
		panic("missing ticketsSoldRecorder")
	}

	return Handler{
		ticketsSoldRecorder: ticketsSoldRecorder,
	}
}

func NewProcessorConfig(
	subscriberConstructor bus.SubscriberConstructor,
	watermillLogger watermill.LoggerAdapter,
) cqrs.EventProcessorConfig {
	return cqrs.EventProcessorConfig{
		GenerateSubscribeTopic: func(params cqrs.EventProcessorGenerateSubscribeTopicParams) (string, error) {
			return bus.EventTopic(params.EventName), nil
		},
		SubscriberConstructor: func(params cqrs.EventProcessorSubscriberConstructorParams) (message.Subscriber, error) {
			return subscriberConstructor(params.HandlerName)
		},
		Marshaler: bus.Marshaler,
		Logger:    watermillLogger,
	}
}
