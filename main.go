package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/sirupsen/logrus"

	"ticketing/app"
	"ticketing/config"
	"ticketing/pubsub"
	"ticketing/tracing"
)

func main() {
	log.Init(logrus.InfoLevel)

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		logrus.WithError(err).Fatal("could not load config")
	}

	level, err := cfg.Level()
	if err != nil {
		logrus.WithError(err).Fatal("could not load config")
	}
	log.Init(level)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	traceProvider, err := tracing.ConfigureTraceProvider(cfg.ServiceName, cfg.JaegerEndpoint)
	if err != nil {
		logrus.WithError(err).Fatal("could not configure tracing")
	}

	redisClient := pubsub.NewRedisClient(cfg.RedisAddr)
	defer redisClient.Close()

	watermillLogger := log.NewWatermill(log.FromContext(ctx))

	redisPublisher, err := pubsub.NewRedisPublisher(redisClient, watermillLogger)
	if err != nil {
		logrus.WithError(err).Fatal("could not create publisher")
	}

	err = app.New(app.Dependencies{
		HTTPAddr:              cfg.HTTPAddr,
		ServiceName:           cfg.ServiceName,
		Publisher:             redisPublisher,
		SubscriberConstructor: pubsub.NewRedisSubscriberConstructor(redisClient, cfg.ConsumerGroupPrefix, watermillLogger),
		TraceProvider:         traceProvider,
	}).Run(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("ticketing service stopped")
	}
}
