package pubsub

import (
	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/ThreeDotsLabs/watermill/message"

	"ticketing/tracing"
)

// DecoratePublisher copies the correlation id and the trace context of the message context
// into the message metadata.
func DecoratePublisher(publisher message.Publisher) message.Publisher {
	publisher = log.CorrelationPublisherDecorator{Publisher: publisher}
	publisher = tracing.PublisherDecorator{Publisher: publisher}
	return publisher
}
