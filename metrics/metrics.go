package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"ticketing/entity"
)

var (
	// MessagesProcessed The total number of processed messages (counter)
	MessagesProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "messages",
			Name:      "processed_total",
			Help:      "The total number of processed messages",
		},
		[]string{"topic", "handler"},
	)

	// MessagesProcessingFailed total number of message processing failures (counter)
	MessagesProcessingFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "messages",
			Name:      "processing_failed_total",
			Help:      "The total number of message processing failures",
		},
		[]string{"topic", "handler"},
	)

	// MessagesProcessingDuration The total time spent processing messages (summary with quantiles 0.5, 0.9, and 0.99)
	MessagesProcessingDuration = promauto.NewSummaryVec(
		prometheus.SummaryOpts{
			Namespace:  "messages",
			Name:       "processing_duration_seconds",
			Help:       "The total time spent processing messages",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"topic", "handler"},
	)

	// PurchaseRequests counts purchase requests by outcome: accepted, rejected or failed.
	PurchaseRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ticketing",
			Name:      "purchase_requests_total",
			Help:      "The total number of ticket purchase requests by outcome",
		},
		[]string{"outcome"},
	)

	TicketsSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ticketing",
			Name:      "tickets_sold_total",
			Help:      "The total number of tickets sold by ticket type",
		},
		[]string{"ticket_type"},
	)

	Revenue = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "ticketing",
			Name:      "revenue_total",
			Help:      "The total amount charged for purchased tickets",
		},
	)
)

const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// TicketsSoldRecorder writes sales to the package level counters.
type TicketsSoldRecorder struct{}

func (TicketsSoldRecorder) RecordTicketsSold(ticketType entity.TicketType, numberOfTickets int) {
	TicketsSold.WithLabelValues(ticketType.String()).Add(float64(numberOfTickets))
}

func (TicketsSoldRecorder) RecordRevenue(amount int) {
	Revenue.Add(float64(amount))
}
