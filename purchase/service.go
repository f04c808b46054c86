package purchase

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/sirupsen/logrus"

	"ticketing/entity"
)

// MaxTicketsPerPurchase caps the number of tickets, of any type, bought at once.
const MaxTicketsPerPurchase = 20

type SeatReservationService interface {
	ReserveSeat(ctx context.Context, accountID int64, totalSeatsToAllocate int) error
}

type PaymentService interface {
	MakePayment(ctx context.Context, accountID int64, totalAmountToPay int) error
}

type Service struct {
	paymentService         PaymentService
	seatReservationService SeatReservationService
}

func NewService(paymentService PaymentService, seatReservationService SeatReservationService) Service {
	if paymentService == nil {
		panic("missing paymentService")
	}
	if seatReservationService == nil {
		panic("missing seatReservationService")
	}

	return Service{
		paymentService:         paymentService,
		seatReservationService: seatReservationService,
	}
}

// PurchaseTickets validates the request, reserves the seats and charges the account.
// Every rule is checked before any external call. Errors returned by the seat reservation or
// payment service are passed through as they are.
func (s Service) PurchaseTickets(
	ctx context.Context,
	accountID int64,
	ticketTypeRequests ...entity.TicketTypeRequest,
) (entity.PurchaseSummary, error) {
	summary, err := Quote(accountID, ticketTypeRequests...)
	if err != nil {
		log.FromContext(ctx).WithError(err).WithField("account_id", accountID).Info("Purchase rejected")
		return entity.PurchaseSummary{}, err
	}

	logger := log.FromContext(ctx).WithFields(logrus.Fields{
		"account_id":  accountID,
		"total_seats": summary.TotalSeats,
		"total_cost":  summary.TotalCost,
	})

	if err := s.seatReservationService.ReserveSeat(ctx, accountID, summary.TotalSeats); err != nil {
		return entity.PurchaseSummary{}, err
	}
	if err := s.paymentService.MakePayment(ctx, accountID, summary.TotalCost); err != nil {
		// seats stay reserved, there is no compensation for a failed payment
		logger.WithError(err).Error("Payment failed after seats were reserved")
		return entity.PurchaseSummary{}, err
	}

	logger.Info("Tickets purchased")

	return summary, nil
}

func (s Service) Quote(accountID int64, ticketTypeRequests ...entity.TicketTypeRequest) (entity.PurchaseSummary, error) {
	return Quote(accountID, ticketTypeRequests...)
}

// Quote validates a purchase and returns its seats and cost without reserving or paying anything.
func Quote(accountID int64, ticketTypeRequests ...entity.TicketTypeRequest) (entity.PurchaseSummary, error) {
	if err := validateAccountID(accountID); err != nil {
		return entity.PurchaseSummary{}, err
	}
	if len(ticketTypeRequests) == 0 {
		return entity.PurchaseSummary{}, invalidPurchase("no tickets requested")
	}

	var (
		summary      entity.PurchaseSummary
		totalTickets int
		adults       int
		minors       int
	)

	for i, request := range ticketTypeRequests {
		if err := validateTicketTypeRequest(request); err != nil {
			return entity.PurchaseSummary{}, fmt.Errorf("line item %d: %w", i, err)
		}

		// compared before adding so a huge quantity cannot overflow the running total
		if request.NumberOfTickets() > MaxTicketsPerPurchase-totalTickets {
			return entity.PurchaseSummary{}, invalidPurchase("more than %d tickets requested", MaxTicketsPerPurchase)
		}
		totalTickets += request.NumberOfTickets()

		if request.TicketType() == entity.TicketTypeAdult {
			adults += request.NumberOfTickets()
		} else {
			minors += request.NumberOfTickets()
		}

		if request.TicketType().RequiresSeat() {
			summary.TotalSeats += request.NumberOfTickets()
		}
		summary.TotalCost += request.Total()
	}

	if adults < minors {
		return entity.PurchaseSummary{}, invalidPurchase("%d child and infant tickets need as many adult tickets, got %d", minors, adults)
	}

	return summary, nil
}

func validateAccountID(accountID int64) error {
	if accountID <= 0 {
		return invalidPurchase("account id must be positive, got %d", accountID)
	}
	return nil
}

func validateTicketTypeRequest(request entity.TicketTypeRequest) error {
	if !request.TicketType().IsValid() {
		return invalidPurchase("ticket type is not set")
	}
	if request.NumberOfTickets() <= 0 {
		return invalidPurchase("number of tickets must be positive, got %d", request.NumberOfTickets())
	}
	return nil
}

func invalidPurchase(format string, args ...any) error {
	return fmt.Errorf("%w: %s", entity.ErrInvalidPurchase, fmt.Sprintf(format, args...))
}
