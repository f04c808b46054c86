package pubsub_test

import (
	"errors"
	"testing"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketing/pubsub"
)

func TestPropagateCorrelationIDMiddleware(t *testing.T) {
	var correlationID string
	handler := pubsub.PropagateCorrelationIDMiddleware(func(msg *message.Message) ([]*message.Message, error) {
		correlationID = log.CorrelationIDFromContext(msg.Context())
		return nil, nil
	})

	msg := message.NewMessage(watermill.NewUUID(), []byte("{}"))
	msg.Metadata.Set("correlation_id", "purchase-correlation")
	_, err := handler(msg)
	require.NoError(t, err)
	assert.Equal(t, "purchase-correlation", correlationID)

	_, err = handler(message.NewMessage(watermill.NewUUID(), []byte("{}")))
	require.NoError(t, err)
	assert.NotEmpty(t, correlationID)
	assert.NotEqual(t, "purchase-correlation", correlationID)
}

func TestLoggingMiddleware_returns_handler_error(t *testing.T) {
	handlerErr := errors.New("handler failed")
	handler := pubsub.LoggingMiddleware(func(msg *message.Message) ([]*message.Message, error) {
		return nil, handlerErr
	})

	_, err := handler(message.NewMessage(watermill.NewUUID(), []byte("{}")))
	assert.ErrorIs(t, err, handlerErr)
}
