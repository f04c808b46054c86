package gateway

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/components/cqrs"

	"ticketing/entity"
)

// SeatReservationClient hands seat allocation to the seat booking service over the command bus.
type SeatReservationClient struct {
	commandBus *cqrs.CommandBus
}

func NewSeatReservationClient(commandBus *cqrs.CommandBus) SeatReservationClient {
	if commandBus == nil {
		panic("missing commandBus")
	}

	return SeatReservationClient{
		commandBus: commandBus,
	}
}

func (c SeatReservationClient) ReserveSeat(ctx context.Context, accountID int64, totalSeatsToAllocate int) error {
	err := c.commandBus.Send(ctx, &entity.ReserveSeats{
		Header:               entity.NewEventHeader(),
		AccountID:            accountID,
		TotalSeatsToAllocate: totalSeatsToAllocate,
	})
	if err != nil {
		return fmt.Errorf("could not send reserve seats command: %w", err)
	}

	return nil
}
