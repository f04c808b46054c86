package gateway

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/components/cqrs"

	"ticketing/entity"
)

type PaymentClient struct {
	commandBus *cqrs.CommandBus
}

func NewPaymentClient(commandBus *cqrs.CommandBus) PaymentClient {
	if commandBus == nil {
		panic("missing commandBus")
	}

	return PaymentClient{
		commandBus: commandBus,
	}
}

func (c PaymentClient) MakePayment(ctx context.Context, accountID int64, totalAmountToPay int) error {
	err := c.commandBus.Send(ctx, &entity.MakePayment{
		Header:           entity.NewEventHeader(),
		AccountID:        accountID,
		TotalAmountToPay: totalAmountToPay,
	})
	if err != nil {
		return fmt.Errorf("could not send make payment command: %w", err)
	}

	return nil
}
