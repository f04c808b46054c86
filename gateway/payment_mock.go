package gateway

import (
	"context"
	"sync"
)

type Payment struct {
	AccountID        int64
	TotalAmountToPay int
}

type PaymentMock struct {
	lock     sync.Mutex
	payments []Payment

	Err error
}

func (c *PaymentMock) MakePayment(_ context.Context, accountID int64, totalAmountToPay int) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.Err != nil {
		return c.Err
	}

	c.payments = append(c.payments, Payment{
		AccountID:        accountID,
		TotalAmountToPay: totalAmountToPay,
	})

	return nil
}

func (c *PaymentMock) Payments() []Payment {
	c.lock.Lock()
	defer c.lock.Unlock()

	return append([]Payment(nil), c.payments...)
}
