package pubsub

import (
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/redis/go-redis/v9"

	"ticketing/pubsub/bus"
)

func NewRedisClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: addr,
	})
}

func NewRedisPublisher(rdb *redis.Client, watermillLogger watermill.LoggerAdapter) (message.Publisher, error) {
	publisher, err := redisstream.NewPublisher(redisstream.PublisherConfig{
		Client: rdb,
	}, watermillLogger)
	if err != nil {
		return nil, fmt.Errorf("could not create redis publisher: %w", err)
	}

	return publisher, nil
}

// NewRedisSubscriberConstructor gives every handler its own consumer group, so each of them
// receives every message.
func NewRedisSubscriberConstructor(
	rdb *redis.Client,
	consumerGroupPrefix string,
	watermillLogger watermill.LoggerAdapter,
) bus.SubscriberConstructor {
	return func(handlerName string) (message.Subscriber, error) {
		return redisstream.NewSubscriber(redisstream.SubscriberConfig{
			Client:        rdb,
			ConsumerGroup: consumerGroupPrefix + "." + handlerName,
		}, watermillLogger)
	}
}
