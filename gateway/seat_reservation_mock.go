package gateway

import (
	"context"
	"sync"
)

type SeatReservation struct {
	AccountID            int64
	TotalSeatsToAllocate int
}

type SeatReservationMock struct {
	lock         sync.Mutex
	reservations []SeatReservation

	Err error
}

func (c *SeatReservationMock) ReserveSeat(_ context.Context, accountID int64, totalSeatsToAllocate int) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.Err != nil {
		return c.Err
	}

	c.reservations = append(c.reservations, SeatReservation{
		AccountID:            accountID,
		TotalSeatsToAllocate: totalSeatsToAllocate,
	})

	return nil
}

func (c *SeatReservationMock) Reservations() []SeatReservation {
	c.lock.Lock()
	defer c.lock.Unlock()

	return append([]SeatReservation(nil), c.reservations...)
}
