package entity

import (
	"time"

	"github.com/google/uuid"
)

type EventHeader struct {
	ID             string    `json:"id"`
	PublishedAt    time.Time `json:"published_at"`
	IdempotencyKey string    `json:"idempotency_key"`
}

func NewEventHeader() EventHeader {
	return EventHeader{
		ID:          uuid.NewString(),
		PublishedAt: time.Now().UTC(),
	}
}

func NewEventHeaderWithIdempotencyKey(idempotencyKey string) EventHeader {
	return EventHeader{
		ID:             uuid.NewString(),
		PublishedAt:    time.Now().UTC(),
		IdempotencyKey: idempotencyKey,
	}
}

type PurchasedTickets struct {
	TicketType      TicketType `json:"ticket_type"`
	NumberOfTickets int        `json:"number_of_tickets"`
}

type TicketsPurchased struct {
	Header     EventHeader        `json:"header"`
	PurchaseID string             `json:"purchase_id"`
	AccountID  int64              `json:"account_id"`
	Tickets    []PurchasedTickets `json:"tickets"`
	TotalSeats int                `json:"total_seats"`
	TotalCost  int                `json:"total_cost"`
}
