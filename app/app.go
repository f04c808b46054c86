package app

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/ThreeDotsLabs/watermill/message"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	"golang.org/x/sync/errgroup"

	"ticketing/gateway"
	"ticketing/http"
	"ticketing/metrics"
	"ticketing/pubsub"
	"ticketing/pubsub/bus"
	"ticketing/pubsub/event"
	"ticketing/purchase"
)

type Dependencies struct {
	HTTPAddr    string
	ServiceName string

	Publisher             message.Publisher
	SubscriberConstructor bus.SubscriberConstructor

	// TraceProvider is shut down when the app stops. Optional.
	TraceProvider *tracesdk.TracerProvider
}

type App struct {
	watermillRouter *message.Router
	httpServer      *http.Server
	traceProvider   *tracesdk.TracerProvider
}

func New(deps Dependencies) App {
	if deps.Publisher == nil {
		panic("missing publisher")
	}
	if deps.SubscriberConstructor == nil {
		panic("missing subscriber constructor")
	}

	watermillLogger := log.NewWatermill(log.FromContext(context.Background()))
	publisher := pubsub.DecoratePublisher(deps.Publisher)

	eventBus, err := bus.NewEventBus(publisher)
	if err != nil {
		panic(fmt.Errorf("failed to create event bus: %w", err))
	}

	commandBus, err := bus.NewCommandBus(publisher)
	if err != nil {
		panic(fmt.Errorf("failed to create command bus: %w", err))
	}

	purchaseService := purchase.NewService(
		gateway.NewPaymentClient(commandBus),
		gateway.NewSeatReservationClient(commandBus),
	)

	watermillRouter, err := pubsub.NewWatermillRouter(
		event.NewProcessorConfig(deps.SubscriberConstructor, watermillLogger),
		event.NewHandler(metrics.TicketsSoldRecorder{}),
		watermillLogger,
	)
	if err != nil {
		panic(fmt.Errorf("failed to create watermill router: %w", err))
	}

	httpServer := http.NewServer(
		deps.HTTPAddr,
		deps.ServiceName,
		eventBus,
		purchaseService,
	)

	return App{
		watermillRouter: watermillRouter,
		httpServer:      httpServer,
		traceProvider:   deps.TraceProvider,
	}
}

func (a App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	if a.traceProvider != nil {
		g.Go(func() error {
			<-ctx.Done()
			return a.traceProvider.Shutdown(context.Background())
		})
	}

	g.Go(func() error {
		return a.watermillRouter.Run(ctx)
	})

	g.Go(func() error {
		// the app is not healthy until the router handles messages
		select {
		case <-a.watermillRouter.Running():
		case <-ctx.Done():
			return nil
		}

		return a.httpServer.Run(ctx)
	})

	return g.Wait()
}
