package event

import (
	"context"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/samber/lo"

	"ticketing/entity"
)

func (h Handler) RecordTicketsSoldHandler() cqrs.EventHandler {
	return cqrs.NewEventHandler(
		"RecordTicketsSoldHandler",
		func(ctx context.Context, event *entity.TicketsPurchased) error {
			log.FromContext(ctx).WithField("purchase_id", event.PurchaseID).Info("Recording tickets sold")

			byType := lo.GroupBy(event.Tickets, func(t entity.PurchasedTickets) entity.TicketType {
				return t.TicketType
			})
			for ticketType, tickets := range byType {
				h.ticketsSoldRecorder.RecordTicketsSold(ticketType, lo.SumBy(tickets, func(t entity.PurchasedTickets) int {
					return t.NumberOfTickets
				}))
			}
			h.ticketsSoldRecorder.RecordRevenue(event.TotalCost)

			return nil
		},
	)
}
