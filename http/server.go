package http

import (
	"context"
	"errors"
	"net/http"

	echoHTTP "github.com/ThreeDotsLabs/go-event-driven/common/http"
	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"ticketing/entity"
)

type PurchaseService interface {
	PurchaseTickets(ctx context.Context, accountID int64, ticketTypeRequests ...entity.TicketTypeRequest) (entity.PurchaseSummary, error)
	Quote(accountID int64, ticketTypeRequests ...entity.TicketTypeRequest) (entity.PurchaseSummary, error)
}

type EventBus interface {
	Publish(ctx context.Context, event any) error
}

type Server struct {
	addr            string
	e               *echo.Echo
	eventBus        EventBus
	purchaseService PurchaseService
}

func NewServer(
	addr string,
	serviceName string,
	eventBus EventBus,
	purchaseService PurchaseService,
) *Server {
	if eventBus == nil {
		panic("missing eventBus")
	}
	if purchaseService == nil {
		panic("missing purchaseService")
	}

	e := echoHTTP.NewEcho()
	e.Use(otelecho.Middleware(serviceName))

	server := &Server{
		addr:            addr,
		e:               e,
		eventBus:        eventBus,
		purchaseService: purchaseService,
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.POST("/ticket-purchases", server.PostTicketPurchases)
	e.POST("/ticket-purchases/quote", server.PostTicketPurchasesQuote)

	return server
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		err := s.e.Shutdown(context.Background())
		if err != nil {
			log.FromContext(ctx).WithError(err).Error("failed to shutdown HTTP server")
		}
	}()
	log.FromContext(ctx).WithField("addr", s.addr).Info("[HTTP] server listening")
	if err := s.e.Start(s.addr); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
