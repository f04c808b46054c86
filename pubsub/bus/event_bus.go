package bus

import (
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"
)

// Marshaler names messages after their Go struct, e.g. "MakePayment".
var Marshaler = cqrs.JSONMarshaler{
	GenerateName: cqrs.StructName,
}

// SubscriberConstructor returns the subscriber a handler consumes from.
type SubscriberConstructor func(handlerName string) (message.Subscriber, error)

func NewEventBus(pub message.Publisher) (*cqrs.EventBus, error) {
	return cqrs.NewEventBusWithConfig(pub, cqrs.EventBusConfig{
		GeneratePublishTopic: func(params cqrs.GenerateEventPublishTopicParams) (string, error) {
			return EventTopic(params.EventName), nil
		},
		Marshaler: Marshaler,
	})
}

func EventTopic(eventName string) string {
	return "events." + eventName
}
