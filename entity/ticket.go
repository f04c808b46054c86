package entity

import (
	"fmt"
	"strings"
)

type TicketType int

const (
	TicketTypeUnknown TicketType = iota
	TicketTypeAdult
	TicketTypeChild
	TicketTypeInfant
)

// ticketPrices holds the unit price of every defined ticket type.
var ticketPrices = map[TicketType]int{
	TicketTypeAdult:  20,
	TicketTypeChild:  10,
	TicketTypeInfant: 0,
}

var ticketTypeNames = map[TicketType]string{
	TicketTypeAdult:  "ADULT",
	TicketTypeChild:  "CHILD",
	TicketTypeInfant: "INFANT",
}

func (t TicketType) IsValid() bool {
	_, ok := ticketPrices[t]
	return ok
}

// Price returns the unit price, 0 for the unknown type.
func (t TicketType) Price() int {
	return ticketPrices[t]
}

// RequiresSeat reports whether a ticket of this type occupies a seat. Infants sit on an adult's lap.
func (t TicketType) RequiresSeat() bool {
	return t != TicketTypeInfant
}

func (t TicketType) String() string {
	if name, ok := ticketTypeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

func ParseTicketType(s string) (TicketType, error) {
	for t, name := range ticketTypeNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return t, nil
		}
	}
	return TicketTypeUnknown, fmt.Errorf("unknown ticket type: %q", s)
}

func (t TicketType) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("unknown ticket type: %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *TicketType) UnmarshalText(text []byte) error {
	parsed, err := ParseTicketType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// TicketTypeRequest is an immutable line item of a purchase.
type TicketTypeRequest struct {
	ticketType      TicketType
	numberOfTickets int
}

func NewTicketTypeRequest(ticketType TicketType, numberOfTickets int) TicketTypeRequest {
	return TicketTypeRequest{
		ticketType:      ticketType,
		numberOfTickets: numberOfTickets,
	}
}

func (r TicketTypeRequest) TicketType() TicketType {
	return r.ticketType
}

func (r TicketTypeRequest) NumberOfTickets() int {
	return r.numberOfTickets
}

func (r TicketTypeRequest) Total() int {
	return r.ticketType.Price() * r.numberOfTickets
}

type PurchaseSummary struct {
	TotalSeats int `json:"total_seats"`
	TotalCost  int `json:"total_cost"`
}
