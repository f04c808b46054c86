package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"ticketing/entity"
	"ticketing/metrics"
)

type postTicketPurchasesRequest struct {
	AccountID int64               `json:"account_id"`
	Tickets   []ticketTypeRequest `json:"tickets"`
}

type ticketTypeRequest struct {
	Type     entity.TicketType `json:"type"`
	Quantity int               `json:"quantity"`
}

type postTicketPurchasesResponse struct {
	PurchaseID string `json:"purchase_id"`
	TotalSeats int    `json:"total_seats"`
	TotalCost  int    `json:"total_cost"`
}

type postTicketPurchasesQuoteResponse struct {
	TotalSeats int `json:"total_seats"`
	TotalCost  int `json:"total_cost"`
}

func (r postTicketPurchasesRequest) ticketTypeRequests() []entity.TicketTypeRequest {
	requests := make([]entity.TicketTypeRequest, 0, len(r.Tickets))
	for _, t := range r.Tickets {
		requests = append(requests, entity.NewTicketTypeRequest(t.Type, t.Quantity))
	}
	return requests
}

func (s Server) PostTicketPurchases(c echo.Context) error {
	var request postTicketPurchasesRequest
	err := c.Bind(&request)
	if err != nil {
		metrics.PurchaseRequests.WithLabelValues(metrics.OutcomeRejected).Inc()
		return err
	}

	ctx := c.Request().Context()
	ticketTypeRequests := request.ticketTypeRequests()

	summary, err := s.purchaseService.PurchaseTickets(ctx, request.AccountID, ticketTypeRequests...)
	if errors.Is(err, entity.ErrInvalidPurchase) {
		metrics.PurchaseRequests.WithLabelValues(metrics.OutcomeRejected).Inc()
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err != nil {
		metrics.PurchaseRequests.WithLabelValues(metrics.OutcomeFailed).Inc()
		return fmt.Errorf("could not purchase tickets: %w", err)
	}
	metrics.PurchaseRequests.WithLabelValues(metrics.OutcomeAccepted).Inc()

	purchaseID := uuid.NewString()

	purchasedTickets := make([]entity.PurchasedTickets, 0, len(ticketTypeRequests))
	for _, r := range ticketTypeRequests {
		purchasedTickets = append(purchasedTickets, entity.PurchasedTickets{
			TicketType:      r.TicketType(),
			NumberOfTickets: r.NumberOfTickets(),
		})
	}

	// tickets are already paid at this point, a lost event must not fail the request
	err = s.eventBus.Publish(ctx, entity.TicketsPurchased{
		Header:     entity.NewEventHeaderWithIdempotencyKey(purchaseID),
		PurchaseID: purchaseID,
		AccountID:  request.AccountID,
		Tickets:    purchasedTickets,
		TotalSeats: summary.TotalSeats,
		TotalCost:  summary.TotalCost,
	})
	if err != nil {
		log.FromContext(ctx).WithError(err).WithField("purchase_id", purchaseID).Error("could not publish TicketsPurchased")
	}

	return c.JSON(http.StatusCreated, postTicketPurchasesResponse{
		PurchaseID: purchaseID,
		TotalSeats: summary.TotalSeats,
		TotalCost:  summary.TotalCost,
	})
}

func (s Server) PostTicketPurchasesQuote(c echo.Context) error {
	var request postTicketPurchasesRequest
	err := c.Bind(&request)
	if err != nil {
		return err
	}

	summary, err := s.purchaseService.Quote(request.AccountID, request.ticketTypeRequests()...)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, postTicketPurchasesQuoteResponse{
		TotalSeats: summary.TotalSeats,
		TotalCost:  summary.TotalCost,
	})
}
