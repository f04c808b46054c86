package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketing/entity"
	"ticketing/gateway"
	"ticketing/purchase"
)

type eventBusMock struct {
	lock   sync.Mutex
	events []any
	err    error
}

func (b *eventBusMock) Publish(_ context.Context, event any) error {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.events = append(b.events, event)
	return b.err
}

type testServer struct {
	server       *Server
	eventBus     *eventBusMock
	reservations *gateway.SeatReservationMock
	payments     *gateway.PaymentMock
}

func newTestServer() testServer {
	eventBus := &eventBusMock{}
	reservations := &gateway.SeatReservationMock{}
	payments := &gateway.PaymentMock{}

	return testServer{
		server:       NewServer(":0", "ticketing-test", eventBus, purchase.NewService(payments, reservations)),
		eventBus:     eventBus,
		reservations: reservations,
		payments:     payments,
	}
}

func (s testServer) post(t *testing.T, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	s.server.e.ServeHTTP(rec, req)
	return rec
}

func TestPostTicketPurchases(t *testing.T) {
	ts := newTestServer()

	rec := ts.post(t, "/ticket-purchases", `{
		"account_id": 123,
		"tickets": [{"type": "ADULT", "quantity": 2}, {"type": "CHILD", "quantity": 1}, {"type": "INFANT", "quantity": 1}]
	}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"total_seats":3`)
	assert.Contains(t, rec.Body.String(), `"total_cost":50`)

	assert.Equal(t, []gateway.SeatReservation{{AccountID: 123, TotalSeatsToAllocate: 3}}, ts.reservations.Reservations())
	assert.Equal(t, []gateway.Payment{{AccountID: 123, TotalAmountToPay: 50}}, ts.payments.Payments())

	require.Len(t, ts.eventBus.events, 1)
	event, ok := ts.eventBus.events[0].(entity.TicketsPurchased)
	require.True(t, ok)
	assert.Equal(t, int64(123), event.AccountID)
	assert.Equal(t, 3, event.TotalSeats)
	assert.Equal(t, 50, event.TotalCost)
	assert.Equal(t, event.PurchaseID, event.Header.IdempotencyKey)
	assert.Len(t, event.Tickets, 3)
}

func TestPostTicketPurchases_invalid(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{name: "missing_account_id", body: `{"tickets": [{"type": "ADULT", "quantity": 1}]}`},
		{name: "zero_account_id", body: `{"account_id": 0, "tickets": [{"type": "ADULT", "quantity": 1}]}`},
		{name: "no_tickets", body: `{"account_id": 123}`},
		{name: "missing_ticket_type", body: `{"account_id": 123, "tickets": [{"quantity": 1}]}`},
		{name: "unknown_ticket_type", body: `{"account_id": 123, "tickets": [{"type": "SENIOR", "quantity": 1}]}`},
		{name: "more_children_than_adults", body: `{"account_id": 123, "tickets": [{"type": "ADULT", "quantity": 1}, {"type": "CHILD", "quantity": 2}]}`},
		{name: "over_cap", body: `{"account_id": 123, "tickets": [{"type": "ADULT", "quantity": 21}]}`},
		{name: "quantity_overflows_ticket_total", body: `{"account_id": 123, "tickets": [{"type": "CHILD", "quantity": 1}, {"type": "ADULT", "quantity": 9223372036854775807}]}`},
		{name: "malformed_json", body: `{"account_id": `},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ts := newTestServer()

			rec := ts.post(t, "/ticket-purchases", tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

			assert.Empty(t, ts.reservations.Reservations())
			assert.Empty(t, ts.payments.Payments())
			assert.Empty(t, ts.eventBus.events)
		})
	}
}

func TestPostTicketPurchases_payment_failure(t *testing.T) {
	ts := newTestServer()
	ts.payments.Err = errors.New("card declined")

	rec := ts.post(t, "/ticket-purchases", `{"account_id": 123, "tickets": [{"type": "ADULT", "quantity": 1}]}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	assert.Len(t, ts.reservations.Reservations(), 1)
	assert.Empty(t, ts.eventBus.events)
}

func TestPostTicketPurchases_event_publish_failure_keeps_purchase(t *testing.T) {
	ts := newTestServer()
	ts.eventBus.err = errors.New("broker down")

	rec := ts.post(t, "/ticket-purchases", `{"account_id": 123, "tickets": [{"type": "ADULT", "quantity": 1}]}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Len(t, ts.payments.Payments(), 1)
}

func TestPostTicketPurchasesQuote(t *testing.T) {
	ts := newTestServer()

	rec := ts.post(t, "/ticket-purchases/quote", `{"account_id": 123, "tickets": [{"type": "ADULT", "quantity": 20}]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total_seats": 20, "total_cost": 400}`, rec.Body.String())

	rec = ts.post(t, "/ticket-purchases/quote", `{"account_id": 123, "tickets": [{"type": "INFANT", "quantity": 1}]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Empty(t, ts.reservations.Reservations())
	assert.Empty(t, ts.payments.Payments())
}

func TestHealth(t *testing.T) {
	ts := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	ts.server.e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
